package config

import "github.com/lixenwraith/vi-pong/vmath"

// Range is a closed interval
type Range struct {
	Min, Max float64
}

// Contains reports v in [Min, Max]
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Clamp limits v to the range
func (r Range) Clamp(v float64) float64 {
	return vmath.Clamp(v, r.Min, r.Max)
}

// HalfWidth returns half the field width
func (c *Config) HalfWidth() float64 {
	return c.Field.Width / 2
}

// HalfHeight returns half the field height
func (c *Config) HalfHeight() float64 {
	return c.Field.Height / 2
}

// BallXRange is the horizontal span the ball center may occupy; leaving it is a goal
func (c *Config) BallXRange() Range {
	half := c.Ball.Size / 2
	return Range{Min: -c.HalfWidth() + half, Max: c.HalfWidth() - half}
}

// BallYRange is the vertical span between the bottom wall and the score bar
func (c *Config) BallYRange() Range {
	half := c.Ball.Size / 2
	return Range{Min: -c.HalfHeight() + half, Max: c.HalfHeight() - c.Field.UIHeight - half}
}

// PaddleYRange is the legal span for a paddle center
func (c *Config) PaddleYRange() Range {
	half := c.Paddle.Height / 2
	return Range{Min: -c.HalfHeight() + half, Max: c.HalfHeight() - c.Field.UIHeight - half}
}

// PaddleX returns the fixed horizontal position of a paddle, one paddle width in from its edge
func (c *Config) PaddleX(left bool) float64 {
	if left {
		return -c.HalfWidth() + c.Paddle.Width
	}
	return c.HalfWidth() - c.Paddle.Width
}

// ServeSpeed is the reduced launch speed after a goal
func (c *Config) ServeSpeed() float64 {
	return c.Ball.DefaultSpeed * c.Ball.ServeMultiplier
}
