package component

import "github.com/lixenwraith/vi-pong/vmath"

// Side identifies a half of the field
type Side uint8

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// PaddleComponent is a vertically moving paddle; Pos.X is fixed at spawn
type PaddleComponent struct {
	Pos        vmath.Vec2F
	Side       Side
	Controller Controller
}
