package engine

import (
	"testing"

	"github.com/lixenwraith/vi-pong/event"
)

type recordingHandler struct {
	types []event.EventType
	seen  []event.EventType
	onEv  func(ev event.GameEvent)
}

func (h *recordingHandler) EventTypes() []event.EventType { return h.types }

func (h *recordingHandler) HandleEvent(ev event.GameEvent) {
	h.seen = append(h.seen, ev.Type)
	if h.onEv != nil {
		h.onEv(ev)
	}
}

func TestRouterDrainsChainedEvents(t *testing.T) {
	w := NewWorld()
	r := NewEventRouter(w.Events())

	first := &recordingHandler{types: []event.EventType{event.EventPaddleHit}}
	first.onEv = func(event.GameEvent) { w.PushEvent(event.EventWallBounce, nil) }
	second := &recordingHandler{types: []event.EventType{event.EventWallBounce, event.EventPaddleHit}}

	r.Register(first)
	r.Register(second)

	if r.HandlerCount(event.EventPaddleHit) != 2 {
		t.Fatalf("Expected 2 handlers for PaddleHit, got %d", r.HandlerCount(event.EventPaddleHit))
	}

	w.PushEvent(event.EventPaddleHit, nil)
	if n := r.DispatchAll(); n != 2 {
		t.Fatalf("Expected 2 dispatched, got %d", n)
	}

	want := []event.EventType{event.EventPaddleHit, event.EventWallBounce}
	if len(second.seen) != 2 || second.seen[0] != want[0] || second.seen[1] != want[1] {
		t.Errorf("Expected %v, got %v", want, second.seen)
	}
	if w.Events().Len() != 0 {
		t.Error("Queue should be empty after DispatchAll")
	}
}
