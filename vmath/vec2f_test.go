package vmath

import (
	"math"
	"testing"
)

func TestV2FNormalize(t *testing.T) {
	n := V2FNormalize(Vec2F{3, 4})
	if math.Abs(n.X-0.6) > 1e-12 || math.Abs(n.Y-0.8) > 1e-12 {
		t.Errorf("Expected (0.6, 0.8), got (%f, %f)", n.X, n.Y)
	}

	if z := V2FNormalize(Vec2F{}); z != (Vec2F{}) {
		t.Errorf("Expected zero vector to stay zero, got %+v", z)
	}
}

func TestV2FFromAngle(t *testing.T) {
	tests := []struct {
		angle float64
		want  Vec2F
	}{
		{0, Vec2F{1, 0}},
		{math.Pi / 2, Vec2F{0, 1}},
		{math.Pi, Vec2F{-1, 0}},
	}

	for _, tc := range tests {
		got := V2FFromAngle(tc.angle)
		if math.Abs(got.X-tc.want.X) > 1e-9 || math.Abs(got.Y-tc.want.Y) > 1e-9 {
			t.Errorf("angle %f: expected %+v, got %+v", tc.angle, tc.want, got)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Errorf("Expected 3, got %f", got)
	}
	if got := Clamp(-1, 0, 3); got != 0 {
		t.Errorf("Expected 0, got %f", got)
	}
	if got := Clamp(2, 0, 3); got != 2 {
		t.Errorf("Expected 2, got %f", got)
	}
}

func TestAABBOverlaps(t *testing.T) {
	paddle := AABB{Center: Vec2F{0, 50}, Size: Vec2F{17, 120}}

	tests := []struct {
		name string
		ball Vec2F
		want bool
	}{
		{"just overlapping", Vec2F{5, 80}, true},
		{"centered", Vec2F{0, 50}, true},
		{"far right", Vec2F{100, 50}, false},
		{"above", Vec2F{0, 200}, false},
		{"edge touching", Vec2F{23.5, 50}, false},
	}

	for _, tc := range tests {
		ball := AABB{Center: tc.ball, Size: Vec2F{30, 30}}
		if got := ball.Overlaps(paddle); got != tc.want {
			t.Errorf("%s: expected overlap=%v, got %v", tc.name, tc.want, got)
		}
	}
}
