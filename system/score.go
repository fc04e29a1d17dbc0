package system

import (
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
)

// ScoreSystem is the only writer of the session score
// Each ScoreChanged replaces the stored value, so within one drain the last message wins
type ScoreSystem struct {
	ctx *engine.GameContext
}

func NewScoreSystem(ctx *engine.GameContext) *ScoreSystem {
	return &ScoreSystem{ctx: ctx}
}

func (s *ScoreSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventScoreChanged}
}

func (s *ScoreSystem) HandleEvent(ev event.GameEvent) {
	payload, ok := ev.Payload.(*event.ScoreChangedPayload)
	if !ok {
		return
	}
	// Late messages after teardown have no score to write
	if !s.ctx.Session.Active() {
		return
	}
	entity, _ := engine.SingleScore(s.ctx.World)
	s.ctx.World.Component.Score.Set(entity, payload.Score)
}
