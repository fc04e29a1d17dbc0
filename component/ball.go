package component

import "github.com/lixenwraith/vi-pong/vmath"

// BallComponent is the single rally ball
type BallComponent struct {
	Pos vmath.Vec2F // Center, field units
	Vel vmath.Vec2F // Units per second

	// ServeLeft selects the direction of the next serve; toggled by every serve
	ServeLeft bool
}
