/*
Package attrline maintains inline-markup attributes over a growing text.

An editing session owns a text buffer, a list of attribute spans over it,
and an incremental scanner. Text is appended at the trailing end and removed
by single-codepoint retreats; the scanner never re-reads text it already
consumed. Two delimiters are recognized while text streams in: underscores
toggle Italic, doubled asterisks toggle Bold. A span whose closing delimiter
has not arrived yet runs open towards the text end and is repaired (closed,
reopened or discarded) as the text shrinks again.

Two overlay spans exist for the whole lifetime of a session: one for the
caret placeholder and one for the underline of input-method pre-edit text.
They are protected: no general removal filter ever drops them, only their
dedicated setup/cleanup operations move them.

The span list, serialized in insertion order, is the single interface to the
rendering side; see the markup package for renderer-facing formats.

A session is single-threaded by design. It has exactly one logical owner,
performs no locking, and no operation blocks or suspends; hosts running many
sessions confine each one to its owner.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2025, Jo Langer

Please refer to the License file in the repository root.
*/
package attrline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'attrline'
func tracer() tracing.Trace {
	return tracing.Select("attrline")
}

// assert guards internal invariants.
func assert(cond bool, msg string) {
	if !cond {
		panic("attrline: " + msg)
	}
}

// AttrError is an error type for the attrline module.
type AttrError string

func (e AttrError) Error() string {
	return string(e)
}

// ErrScanPastEnd reports an Advance call with a scanner position beyond the
// text end. The buffer was shortened without going through Retreat.
const ErrScanPastEnd = AttrError("scanner position beyond text end")

// ErrCursorNotSet reports a CleanupCursor call without a matching, still
// valid SetupCursor.
const ErrCursorNotSet = AttrError("cursor cleanup without matching setup")

// ErrCursorActive reports an edit or a second SetupCursor while the caret
// placeholder is live; the placeholder has to be cleaned up first.
const ErrCursorActive = AttrError("cursor placeholder is live")

// ErrCursorClobbered reports a CleanupCursor call after the trailing
// placeholder codepoint was disturbed.
const ErrCursorClobbered = AttrError("cursor placeholder has been disturbed")

// ErrIllegalArguments is flagged whenever operation parameters are invalid.
const ErrIllegalArguments = AttrError("illegal arguments")
