/*
Package viz renders sequence storage layouts for debugging on a console.

A sketch shows which storage region is authoritative (inline store or heap
buffer), the live size and capacity, and one cell per capacity slot. It is a
diagnostic aid for observing spill and shrink behaviour of vlseq sequences.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package viz

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
