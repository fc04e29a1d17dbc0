package system

import (
	"fmt"
	"math"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/parameter"
)

// PaddleSystem moves both paddles by their controllers and clamps them to the legal range
type PaddleSystem struct {
	ctx *engine.GameContext
}

func NewPaddleSystem(ctx *engine.GameContext) *PaddleSystem {
	return &PaddleSystem{ctx: ctx}
}

func (s *PaddleSystem) Name() string {
	return "paddle"
}

func (s *PaddleSystem) Priority() int {
	return parameter.PriorityPaddle
}

func (s *PaddleSystem) Update(dt float64) {
	w := s.ctx.World
	cfg := s.ctx.Config
	yr := cfg.PaddleYRange()

	paddles := engine.PaddlePair(w)
	_, ball := engine.SingleBall(w)

	for _, e := range paddles {
		paddle, _ := w.Component.Paddle.Get(e)

		var delta float64
		switch c := paddle.Controller.(type) {
		case component.HumanController:
			delta = HumanDelta(s.ctx.KeyHeld(c.Up), s.ctx.KeyHeld(c.Down), cfg.Paddle.Speed, dt)
		case component.AIController:
			delta = AIDelta(paddle.Pos.Y, ball.Pos.Y, cfg.Paddle.Speed*cfg.Paddle.AISpeedModifier, dt)
		default:
			panic(fmt.Sprintf("paddle %d: unknown controller %T", e, c))
		}

		paddle.Pos.Y = yr.Clamp(paddle.Pos.Y + delta)
		w.Component.Paddle.Set(e, paddle)
	}
}

// HumanDelta applies up and down independently; holding both cancels
func HumanDelta(up, down bool, speed, dt float64) float64 {
	var delta float64
	if up {
		delta += speed * dt
	}
	if down {
		delta -= speed * dt
	}
	return delta
}

// AIDelta moves toward ballY by at most speed*dt without passing it
func AIDelta(paddleY, ballY, speed, dt float64) float64 {
	gap := ballY - paddleY
	step := math.Min(speed*dt, math.Abs(gap))
	switch {
	case gap > 0:
		return step
	case gap < 0:
		return -step
	default:
		return 0
	}
}
