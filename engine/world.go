package engine

import (
	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/event"
)

// ComponentStore groups the typed stores of the world
type ComponentStore struct {
	Ball   *Store[component.BallComponent]
	Paddle *Store[component.PaddleComponent]
	Score  *Store[component.ScoreComponent]
}

// World contains all entities and their components using typed stores
// Owned by the main goroutine; no internal locking
type World struct {
	nextEntityID core.Entity
	live         map[core.Entity]struct{}

	Component ComponentStore

	eventQueue *event.EventQueue
	frame      int64

	systems []System
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		nextEntityID: 1,
		live:         make(map[core.Entity]struct{}),
		Component: ComponentStore{
			Ball:   NewStore[component.BallComponent](),
			Paddle: NewStore[component.PaddleComponent](),
			Score:  NewStore[component.ScoreComponent](),
		},
		eventQueue: event.NewEventQueue(),
		systems:    make([]System, 0),
	}
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	w.live[id] = struct{}{}
	return id
}

// DestroyEntity removes the entity and every component attached to it
// Returns false if the entity was not alive
func (w *World) DestroyEntity(e core.Entity) bool {
	if _, ok := w.live[e]; !ok {
		return false
	}
	delete(w.live, e)
	w.Component.Ball.Remove(e)
	w.Component.Paddle.Remove(e)
	w.Component.Score.Remove(e)
	return true
}

// Alive reports whether e has been created and not destroyed
func (w *World) Alive(e core.Entity) bool {
	_, ok := w.live[e]
	return ok
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return len(w.live)
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)

	// Insertion sort keeps registration order among equal priorities
	for i := len(w.systems) - 1; i > 0; i-- {
		if w.systems[i-1].Priority() <= w.systems[i].Priority() {
			break
		}
		w.systems[i-1], w.systems[i] = w.systems[i], w.systems[i-1]
	}
}

// Systems returns a copy of all registered systems in run order
func (w *World) Systems() []System {
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update runs all systems sequentially in priority order
func (w *World) Update(dt float64) {
	for _, system := range w.systems {
		system.Update(dt)
	}
}

// Events returns the world's queue
func (w *World) Events() *event.EventQueue {
	return w.eventQueue
}

// PushEvent stamps the event with the current frame and queues it
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.eventQueue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.frame,
	})
}

// FrameNumber returns the current tick index
func (w *World) FrameNumber() int64 {
	return w.frame
}

// AdvanceFrame increments the tick index; called once per tick by Game
func (w *World) AdvanceFrame() int64 {
	w.frame++
	return w.frame
}
