package engine

import (
	"fmt"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/core"
)

// WiringError reports an entity population that a correct session can never produce
// Raised with panic; it marks a programming defect, not a gameplay condition
type WiringError struct {
	What     string
	Expected int
	Found    int
}

func (e *WiringError) Error() string {
	return fmt.Sprintf("wiring error: expected %d %s during Game, found %d", e.Expected, e.What, e.Found)
}

// SingleBall returns the only ball or panics with a WiringError
func SingleBall(w *World) (core.Entity, component.BallComponent) {
	balls := w.Component.Ball.All()
	if len(balls) != 1 {
		panic(&WiringError{What: "ball", Expected: 1, Found: len(balls)})
	}
	ball, _ := w.Component.Ball.Get(balls[0])
	return balls[0], ball
}

// SingleScore returns the only score or panics with a WiringError
func SingleScore(w *World) (core.Entity, component.ScoreComponent) {
	scores := w.Component.Score.All()
	if len(scores) != 1 {
		panic(&WiringError{What: "score", Expected: 1, Found: len(scores)})
	}
	score, _ := w.Component.Score.Get(scores[0])
	return scores[0], score
}

// PaddlePair returns both paddles or panics with a WiringError
func PaddlePair(w *World) []core.Entity {
	paddles := w.Component.Paddle.All()
	if len(paddles) != 2 {
		panic(&WiringError{What: "paddles", Expected: 2, Found: len(paddles)})
	}
	return paddles
}
