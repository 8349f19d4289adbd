/*
Package vlseq provides a variable-length sequence container with small-buffer
storage.

A sequence `Seq[T]` keeps its elements in a fixed-size inline store as long as
the element count stays at or below a configurable threshold N (the inline
capacity). The first mutation that would exceed N migrates the elements into an
exclusively owned heap buffer, sized by a 1.5x growth policy. Erasure that
brings the element count back to N or below migrates the elements back into the
inline store and releases the heap buffer. For workloads dominated by short
sequences this avoids per-container allocations entirely, while still allowing
unbounded growth.

The two storage regions never hold live elements at the same time. Which one is
authoritative is tracked by an explicit storage-mode tag, observable through
IsInline. The capacity relation is fixed: inline mode means Cap() == InlineCap,
heap mode means Cap() > InlineCap.

Sequences are single-threaded value types. There is no internal locking, and
concurrent mutation requires external exclusion. Views handed out by Data and
the Range iterators borrow the authoritative storage and are invalidated by any
capacity-changing mutation; index-based access stays valid across mutations for
indices still within the live range.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package vlseq

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer aliases T for use inside generic methods, where the type
// parameter T shadows the package-level function.
var tracer = T

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
