/*
Package markup is the renderer-facing side of attribute span snapshots.

It serializes text plus spans into Pango-style markup strings, parses such
fragments back into text plus spans, and writes a styled preview to a
console, wrapped to the terminal width.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2025, Jo Langer

Please refer to the License file in the repository root.
*/
package markup

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'attrline'
func tracer() tracing.Trace {
	return tracing.Select("attrline")
}
