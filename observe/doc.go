/*
Package observe fans out rendering snapshots to collaborators.

A hub never touches a live editing session. The session's owner captures a
snapshot after an operation completes and publishes it; any number of
renderers receive it on their subscription channels. This keeps the
session's single-owner discipline intact while hosts drive many sessions
side by side.
*/
package observe

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'attrline'
func tracer() tracing.Trace {
	return tracing.Select("attrline")
}
