package engine

import (
	"log"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Bindings are the resolved keys of both human paddle slots
type Bindings struct {
	LeftUp, LeftDown   component.KeyBinding
	RightUp, RightDown component.KeyBinding
}

// Session owns every entity spawned for one Game state
// Spawn on Game enter, Teardown on Game exit; entities never outlive the session
type Session struct {
	world   *World
	handles []core.Entity
	active  bool

	Ball  core.Entity
	Score core.Entity
	Left  core.Entity
	Right core.Entity

	// WinnerIsLeft is set at Game exit and read by the End screen setup
	WinnerIsLeft bool
}

// NewSession creates an idle session bound to world
func NewSession(world *World) *Session {
	return &Session{world: world}
}

// Active reports whether the session currently owns entities
func (s *Session) Active() bool {
	return s.active
}

// Handles returns a copy of the owned entity handles
func (s *Session) Handles() []core.Entity {
	result := make([]core.Entity, len(s.handles))
	copy(result, s.handles)
	return result
}

// Spawn creates one ball, two paddles and one score
// The left paddle is AI when singlePlayer, otherwise human on the left bindings
// The ball starts at rest in the center; the caller requests its first serve
func (s *Session) Spawn(cfg *config.Config, singlePlayer bool, keys Bindings) {
	if s.active {
		panic(&WiringError{What: "active sessions", Expected: 0, Found: 1})
	}

	s.handles = s.handles[:0]
	s.WinnerIsLeft = false
	w := s.world

	s.Ball = s.own(w.CreateEntity())
	w.Component.Ball.Set(s.Ball, component.BallComponent{
		ServeLeft: false,
	})

	var leftController component.Controller = component.AIController{}
	if !singlePlayer {
		leftController = component.HumanController{Up: keys.LeftUp, Down: keys.LeftDown}
	}

	s.Left = s.own(w.CreateEntity())
	w.Component.Paddle.Set(s.Left, component.PaddleComponent{
		Pos:        vmath.Vec2F{X: cfg.PaddleX(true), Y: 0},
		Side:       component.SideLeft,
		Controller: leftController,
	})

	s.Right = s.own(w.CreateEntity())
	w.Component.Paddle.Set(s.Right, component.PaddleComponent{
		Pos:        vmath.Vec2F{X: cfg.PaddleX(false), Y: 0},
		Side:       component.SideRight,
		Controller: component.HumanController{Up: keys.RightUp, Down: keys.RightDown},
	})

	s.Score = s.own(w.CreateEntity())
	w.Component.Score.Set(s.Score, component.ScoreComponent{})

	s.active = true
	log.Printf("[session] spawned %d entities (single player: %v)", len(s.handles), singlePlayer)
}

func (s *Session) own(e core.Entity) core.Entity {
	s.handles = append(s.handles, e)
	return e
}

// Teardown destroys every owned entity exactly once
// Returns the number destroyed; a second call is a no-op returning 0
func (s *Session) Teardown() int {
	if !s.active {
		return 0
	}

	destroyed := 0
	for _, e := range s.handles {
		if s.world.DestroyEntity(e) {
			destroyed++
		}
	}

	s.handles = s.handles[:0]
	s.Ball, s.Score, s.Left, s.Right = core.NoEntity, core.NoEntity, core.NoEntity, core.NoEntity
	s.active = false
	log.Printf("[session] released %d entities", destroyed)
	return destroyed
}
