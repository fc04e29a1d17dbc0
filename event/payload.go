package event

import (
	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/core"
)

// ScoreChangedPayload replaces the session score; it is not a delta
type ScoreChangedPayload struct {
	Score component.ScoreComponent
}

// ServeRequestPayload names the ball to serve
type ServeRequestPayload struct {
	Ball core.Entity
}

// PaddleHitPayload reports which side's paddle returned the ball
type PaddleHitPayload struct {
	Side component.Side
}

// MenuButtonPayload carries the player-count selection
type MenuButtonPayload struct {
	SinglePlayer bool `toml:"single_player"`
}

// MatchWonPayload carries the winning side and final score
type MatchWonPayload struct {
	WinnerIsLeft bool
	Score        component.ScoreComponent
}
