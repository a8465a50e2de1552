package observe

import (
	"context"

	"github.com/guiguan/caster"

	"github.com/jolanger/attrline"
)

// Snapshot is one published rendering state: the text and the attribute
// spans to apply over it.
type Snapshot struct {
	Text  string
	Spans []attrline.Span
}

// Capture produces a snapshot of a session's current state.
func Capture(s *attrline.Session) Snapshot {
	return Snapshot{
		Text:  s.Buffer().String(),
		Spans: s.Spans(),
	}
}

// Hub broadcasts snapshots to all current subscribers.
type Hub struct {
	cast *caster.Caster
}

// NewHub creates a hub ready for Publish and Subscribe.
func NewHub() *Hub {
	return &Hub{
		cast: caster.New(nil), // we will broadcast snapshots to all renderers
	}
}

// Subscribe registers a renderer. The returned channel receives every
// snapshot published while the subscription is live; cancel releases it and
// closes the channel.
func (h *Hub) Subscribe(ctx context.Context, capacity uint) (<-chan Snapshot, func()) {
	ch, _ := h.cast.Sub(ctx, capacity)
	out := make(chan Snapshot, capacity)
	go func() {
		defer close(out)
		for m := range ch {
			snap, ok := m.(Snapshot)
			if !ok {
				tracer().Errorf("observe: unexpected message type on hub channel")
				continue
			}
			out <- snap
		}
	}()
	return out, func() { h.cast.Unsub(ch) }
}

// Publish hands a snapshot to every subscriber. It reports false after the
// hub has been closed.
func (h *Hub) Publish(snap Snapshot) bool {
	return h.cast.Pub(snap)
}

// Close shuts the hub down; all subscription channels are closed.
func (h *Hub) Close() {
	h.cast.Close()
}
