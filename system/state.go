package system

import (
	_ "embed"
	"fmt"
	"log"

	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/engine/fsm"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/status"
)

//go:embed states.toml
var defaultStates []byte

// DefaultStates returns the embedded Menu/Game/End graph
func DefaultStates() []byte {
	return defaultStates
}

// StateSystem owns the application FSM
// It registers the lifecycle actions and guards and forwards button events to the machine
type StateSystem struct {
	ctx     *engine.GameContext
	machine *fsm.Machine[*engine.GameContext]
}

// NewStateSystem creates the machine, registers actions and guards, and loads the graph
func NewStateSystem(ctx *engine.GameContext, graph []byte) (*StateSystem, error) {
	s := &StateSystem{
		ctx:     ctx,
		machine: fsm.NewMachine[*engine.GameContext](),
	}

	s.machine.RegisterAction("EnterState", actionEnterState)
	s.machine.RegisterAction("SpawnSession", actionSpawnSession)
	s.machine.RegisterAction("RunSimulation", actionRunSimulation)
	s.machine.RegisterAction("RecordWinner", actionRecordWinner)
	s.machine.RegisterAction("TeardownSession", actionTeardownSession)
	s.machine.RegisterAction("ClearEnd", actionClearEnd)

	s.machine.RegisterGuard("WinScoreReached", guardWinScoreReached)

	if err := s.machine.LoadConfig(graph); err != nil {
		return nil, fmt.Errorf("load state graph: %w", err)
	}
	return s, nil
}

// Machine returns the loaded machine
func (s *StateSystem) Machine() *fsm.Machine[*engine.GameContext] {
	return s.machine
}

func (s *StateSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventMenuButton, event.EventEndButton}
}

// HandleEvent forwards button presses; presses outside their state match no transition and are dropped
func (s *StateSystem) HandleEvent(ev event.GameEvent) {
	s.machine.HandleEvent(s.ctx, ev)
}

func actionEnterState(ctx *engine.GameContext, call fsm.Call) {
	state, ok := engine.ParseAppState(call.State)
	if !ok {
		panic(fmt.Sprintf("state graph names unknown app state %q", call.State))
	}
	ctx.State = state
	log.Printf("[state] enter %s", state)
}

// actionSpawnSession reads the mode from the menu press that triggered the transition
func actionSpawnSession(ctx *engine.GameContext, call fsm.Call) {
	singlePlayer := ctx.SinglePlayer
	if call.Trigger != nil {
		if payload, ok := call.Trigger.Payload.(*event.MenuButtonPayload); ok {
			singlePlayer = payload.SinglePlayer
		}
	}
	ctx.SinglePlayer = singlePlayer
	ctx.Paused = false

	ctx.Session.Spawn(ctx.Config, singlePlayer, ctx.Bindings)
	ctx.PushEvent(event.EventServeRequest, &event.ServeRequestPayload{Ball: ctx.Session.Ball})
	ctx.Status.Ints.Get(status.KeySessions).Add(1)
}

func actionRunSimulation(ctx *engine.GameContext, call fsm.Call) {
	ctx.World.Update(call.DT.Seconds())
}

// actionRecordWinner captures the final score before the entities are released
func actionRecordWinner(ctx *engine.GameContext, _ fsm.Call) {
	_, score := engine.SingleScore(ctx.World)
	winnerIsLeft, reached := score.Leader(ctx.Config.Match.WinScore)

	ctx.Session.WinnerIsLeft = winnerIsLeft
	ctx.End = &engine.EndData{WinnerIsLeft: winnerIsLeft, Score: score}

	if reached {
		ctx.PushEvent(event.EventMatchWon, &event.MatchWonPayload{WinnerIsLeft: winnerIsLeft, Score: score})
		log.Printf("[state] match won by %s %d-%d", sideName(winnerIsLeft), score.Left, score.Right)
	}
}

func actionTeardownSession(ctx *engine.GameContext, _ fsm.Call) {
	ctx.Session.Teardown()
	ctx.Paused = false
}

func actionClearEnd(ctx *engine.GameContext, _ fsm.Call) {
	ctx.End = nil
}

func guardWinScoreReached(ctx *engine.GameContext, _ *event.GameEvent) bool {
	if !ctx.Session.Active() {
		return false
	}
	_, score := engine.SingleScore(ctx.World)
	_, reached := score.Leader(ctx.Config.Match.WinScore)
	return reached
}

func sideName(left bool) string {
	if left {
		return "left"
	}
	return "right"
}
