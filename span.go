package attrline

import (
	"fmt"
	"strconv"
)

// Kind enumerates the attributes applicable to runs of text.
type Kind int

// The two markup attributes plus the two overlay attributes.
const (
	Bold Kind = iota + 1
	Italic
	CursorAlpha      // caret placeholder, drawn at half alpha
	ComposeUnderline // input-method pre-edit underline
)

func (k Kind) String() string {
	switch k {
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case CursorAlpha:
		return "cursor-alpha"
	case ComposeUnderline:
		return "compose-underline"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Protected reports whether spans of this kind are exempt from general
// removal filters. Protected spans are moved only by their dedicated
// setup/cleanup operations.
func (k Kind) Protected() bool {
	return k == CursorAlpha || k == ComposeUnderline
}

// SpanEnd is the tagged right bound of a span: either a fixed codepoint
// offset or open towards the text end.
type SpanEnd struct {
	bounded bool
	off     int
}

// Bounded creates a right bound fixed at codepoint offset off.
func Bounded(off int) SpanEnd {
	return SpanEnd{bounded: true, off: off}
}

// ToTextEnd creates a right bound that follows the text end, used for spans
// whose closing delimiter has not arrived yet.
func ToTextEnd() SpanEnd {
	return SpanEnd{}
}

// Bound returns the fixed offset of a bounded end; ok is false for an end
// running towards the text.
func (e SpanEnd) Bound() (off int, ok bool) {
	return e.off, e.bounded
}

// Open reports whether the end runs towards the text end.
func (e SpanEnd) Open() bool {
	return !e.bounded
}

// Beyond reports whether the bound lies past codepoint offset off. An open
// end lies past every offset.
func (e SpanEnd) Beyond(off int) bool {
	return !e.bounded || e.off > off
}

func (e SpanEnd) String() string {
	if e.bounded {
		return strconv.Itoa(e.off)
	}
	return "end"
}

// Span is a tagged half-open range [Start, End) of codepoint offsets.
//
// Invariant for bounded markup spans: Start < End after the closing
// delimiter arrived; Simplify drops the degenerate rest.
type Span struct {
	Kind  Kind
	Start int
	End   SpanEnd
}

// ZeroLength reports whether the span covers no codepoint.
func (sp Span) ZeroLength() bool {
	e, ok := sp.End.Bound()
	return ok && e <= sp.Start
}

func (sp Span) String() string {
	return fmt.Sprintf("%s [%d…%s)", sp.Kind, sp.Start, sp.End)
}

// Handle identifies a span inside one SpanList. Handles are issued by
// Insert and stay unambiguous for the list's lifetime; ids are never
// reused. The zero Handle identifies nothing.
type Handle struct {
	id uint32
}

// Valid reports whether the handle was issued by a span list.
func (h Handle) Valid() bool {
	return h.id != 0
}
