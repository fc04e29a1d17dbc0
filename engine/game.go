package engine

import (
	"time"

	"github.com/lixenwraith/vi-pong/engine/fsm"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/status"
)

// Game drives one tick of the application: FSM update, event dispatch, FSM guard evaluation
type Game struct {
	ctx     *GameContext
	machine *fsm.Machine[*GameContext]
}

// NewGame binds a loaded machine to ctx and enters the initial state
func NewGame(ctx *GameContext, machine *fsm.Machine[*GameContext]) (*Game, error) {
	g := &Game{ctx: ctx, machine: machine}
	if err := machine.Init(ctx); err != nil {
		return nil, err
	}
	// Initial OnEnter actions may queue events
	ctx.Router.DispatchAll()
	return g, nil
}

// Context returns the game context
func (g *Game) Context() *GameContext {
	return g.ctx
}

// Machine returns the state machine
func (g *Game) Machine() *fsm.Machine[*GameContext] {
	return g.machine
}

// Tick advances the application by dt
// dt is clamped to MaxFrameDelta; a paused game skips state updates but still dispatches events and evaluates transitions
func (g *Game) Tick(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	if dt > parameter.MaxFrameDelta {
		dt = parameter.MaxFrameDelta
	}

	g.ctx.World.AdvanceFrame()
	if !g.ctx.Paused {
		g.machine.Update(g.ctx, dt)
	}
	g.ctx.Router.DispatchAll()
	if g.machine.Evaluate(g.ctx) {
		g.ctx.Router.DispatchAll()
	}

	st := g.ctx.Status
	st.Ints.Get(status.KeyTicks).Add(1)
	st.Ints.Get(status.KeyLiveEntities).Store(int64(g.ctx.World.EntityCount()))
	st.Ints.Get(status.KeyEventsDropped).Store(int64(g.ctx.World.Events().Dropped()))
}

// Dispatch routes events the input loop already pushed, such as button presses between ticks
// Returns the number of events delivered
func (g *Game) Dispatch() int {
	return g.ctx.Router.DispatchAll()
}
