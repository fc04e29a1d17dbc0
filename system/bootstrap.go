package system

import (
	"github.com/lixenwraith/vi-pong/engine"
)

// Bootstrap registers every system on ctx and returns a game positioned in Menu
// graph nil selects the embedded state graph; player nil runs silent
func Bootstrap(ctx *engine.GameContext, graph []byte, player SoundPlayer) (*engine.Game, error) {
	if graph == nil {
		graph = DefaultStates()
	}

	states, err := NewStateSystem(ctx, graph)
	if err != nil {
		return nil, err
	}

	ctx.World.AddSystem(NewPaddleSystem(ctx))
	ball := NewBallSystem(ctx)
	ctx.World.AddSystem(ball)

	ctx.Router.Register(ball)
	ctx.Router.Register(NewScoreSystem(ctx))
	ctx.Router.Register(NewAudioSystem(ctx, player))
	ctx.Router.Register(states)

	return engine.NewGame(ctx, states.Machine())
}
