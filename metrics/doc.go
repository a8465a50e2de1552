/*
Package metrics derives summary values from a session's text.

Currently this is the word count shown in a drafting status line, together
with its display formatting.
*/
package metrics

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'attrline'
func tracer() tracing.Trace {
	return tracing.Select("attrline")
}
