/*
Package watch broadcasts storage transitions of vlseq sequences.

A sequence itself is strictly single-threaded and only offers a synchronous
OnTransition hook. A Monitor turns that hook into a broadcast: every migration
event (inline to heap, heap regrow, heap back to inline) is published to all
current subscribers, which may live on other goroutines. This is useful for
tracing allocation behaviour of long-running pipelines without touching the
container's hot path.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package watch

import (
	"context"

	"github.com/guiguan/caster"
	"github.com/npillmayer/vlseq"
)

// Monitor fans out storage transitions to any number of subscribers.
//
// A single monitor may observe any number of sequences; events carry no
// sequence identity, so clients wanting per-sequence streams should use one
// monitor per sequence.
type Monitor struct {
	cast *caster.Caster // broadcaster for transition events
}

// New creates a monitor ready to accept subscribers.
func New() *Monitor {
	return &Monitor{
		cast: caster.New(nil), // we will broadcast messages when storage migrates
	}
}

// Hook returns a transition hook suitable for vlseq.Config.OnTransition.
//
// The hook publishes every transition to all current subscribers. Delivery to
// a subscriber whose channel buffer is full is dropped, so slow subscribers
// cannot stall the mutating goroutine.
func (m *Monitor) Hook() func(vlseq.Transition) {
	return func(tr vlseq.Transition) {
		m.cast.Pub(tr)
	}
}

// Subscribe registers a subscriber and returns its event channel. Events are
// delivered as vlseq.Transition values. The subscription ends when ctx is
// canceled or the monitor is closed; the channel is closed either way.
//
// capacity is the event channel's buffer size; transitions published while
// the buffer is full are dropped for this subscriber.
func (m *Monitor) Subscribe(ctx context.Context, capacity uint) (chan interface{}, bool) {
	return m.cast.Sub(ctx, capacity)
}

// Unsubscribe removes a subscriber channel obtained from Subscribe.
func (m *Monitor) Unsubscribe(ch chan interface{}) {
	m.cast.Unsub(ch)
}

// Close shuts down the monitor and closes all subscriber channels.
func (m *Monitor) Close() bool {
	return m.cast.Close()
}
