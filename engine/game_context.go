package engine

import (
	"math/rand/v2"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/status"
)

// KeyReader answers whether a bound key is currently held
type KeyReader interface {
	Held(component.KeyBinding) bool
}

// EndData is the End screen content, present only while in End
type EndData struct {
	WinnerIsLeft bool
	Score        component.ScoreComponent
}

// GameContext is the explicit session context threaded through systems and FSM actions
// Owned by the main goroutine
type GameContext struct {
	Config   *config.Config
	Bindings Bindings

	World   *World
	Router  *EventRouter
	Session *Session
	Status  *status.Registry

	Input KeyReader
	Rand  *rand.Rand

	// State mirrors the FSM's active state for the renderer
	State AppState

	// SinglePlayer is the mode of the last started session, kept for the menu highlight
	SinglePlayer bool
	End          *EndData

	Paused bool
}

// NewGameContext wires a world, router and idle session
// input may be nil until the terminal is ready; rng nil selects a randomly seeded source
func NewGameContext(cfg *config.Config, keys Bindings, input KeyReader, rng *rand.Rand) *GameContext {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	world := NewWorld()
	return &GameContext{
		Config:   cfg,
		Bindings: keys,
		World:    world,
		Router:   NewEventRouter(world.Events()),
		Session:  NewSession(world),
		Status:   status.NewRegistry(),
		Input:    input,
		Rand:     rng,
		State:    StateMenu,
	}
}

// KeyHeld queries the input collaborator; no input means nothing is held
func (ctx *GameContext) KeyHeld(k component.KeyBinding) bool {
	if ctx.Input == nil {
		return false
	}
	return ctx.Input.Held(k)
}

// PushEvent queues an event on the world's queue
func (ctx *GameContext) PushEvent(eventType event.EventType, payload any) {
	ctx.World.PushEvent(eventType, payload)
}
