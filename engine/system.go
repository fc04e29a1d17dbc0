package engine

import "github.com/lixenwraith/vi-pong/event"

// System is advanced once per Game tick
type System interface {
	Name() string
	Priority() int // Lower values run first
	Update(dt float64)
}

// EventHandler processes specific event types
// Systems implement this interface to receive routed events
type EventHandler interface {
	// HandleEvent processes a single event during the dispatch phase
	HandleEvent(ev event.GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []event.EventType
}
