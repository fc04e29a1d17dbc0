package system

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/status"
	"github.com/lixenwraith/vi-pong/vmath"
)

// BallSystem advances the ball and resolves goals, walls and paddles, in that order
// A ball touching a paddle is rebounded rather than scored on its projected position
// Serves are handled on ServeRequest, decoupled from the tick
type BallSystem struct {
	ctx *engine.GameContext

	statServes      *atomic.Int64
	statGoals       *atomic.Int64
	statPaddleHits  *atomic.Int64
	statWallBounces *atomic.Int64
}

// NewBallSystem creates a ball system bound to ctx
func NewBallSystem(ctx *engine.GameContext) *BallSystem {
	return &BallSystem{
		ctx:             ctx,
		statServes:      ctx.Status.Ints.Get(status.KeyServes),
		statGoals:       ctx.Status.Ints.Get(status.KeyGoals),
		statPaddleHits:  ctx.Status.Ints.Get(status.KeyPaddleHits),
		statWallBounces: ctx.Status.Ints.Get(status.KeyWallBounces),
	}
}

func (s *BallSystem) Name() string {
	return "ball"
}

func (s *BallSystem) Priority() int {
	return parameter.PriorityBall
}

func (s *BallSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventServeRequest}
}

// HandleEvent serves the requested ball; requests for destroyed balls are dropped
func (s *BallSystem) HandleEvent(ev event.GameEvent) {
	payload, ok := ev.Payload.(*event.ServeRequestPayload)
	if !ok {
		return
	}
	ball, ok := s.ctx.World.Component.Ball.Get(payload.Ball)
	if !ok {
		return
	}
	s.serve(&ball)
	s.ctx.World.Component.Ball.Set(payload.Ball, ball)
}

// serve centers the ball and launches it inside the serve cone toward ServeLeft, then flips ServeLeft
func (s *BallSystem) serve(ball *component.BallComponent) {
	cfg := s.ctx.Config

	base := 0.0
	if ball.ServeLeft {
		base = math.Pi
	}
	spread := cfg.Ball.ServeSpreadDeg * math.Pi / 180
	angle := base + (s.ctx.Rand.Float64()*2-1)*spread

	ball.Pos = vmath.Vec2F{}
	ball.Vel = vmath.V2FScale(vmath.V2FFromAngle(angle), cfg.ServeSpeed())
	ball.ServeLeft = !ball.ServeLeft

	s.statServes.Add(1)
}

// Update advances the session ball by dt, in sub-steps when the frame is long
func (s *BallSystem) Update(dt float64) {
	w := s.ctx.World
	entity, ball := engine.SingleBall(w)

	steps := s.substeps(ball, dt)
	h := dt / float64(steps)
	for i := 0; i < steps; i++ {
		if s.checkGoal(entity, &ball, h, s.touchingPaddle(ball)) {
			// Rally over; the rest of the tick is dropped
			break
		}
		s.checkWalls(&ball)
		s.checkPaddles(&ball)
		ball.Pos = vmath.V2FAdd(ball.Pos, vmath.V2FScale(ball.Vel, h))
	}

	w.Component.Ball.Set(entity, ball)
}

// substeps splits dt so no step moves the ball more than half its size
// The paddle contact window is wider than that, so a long frame cannot skip a paddle
// Rebounds leave at DefaultSpeed, so the bound assumes at least that speed
func (s *BallSystem) substeps(ball component.BallComponent, dt float64) int {
	cfg := s.ctx.Config
	maxStep := cfg.Ball.Size / 2
	dist := max(vmath.V2FMag(ball.Vel), cfg.Ball.DefaultSpeed) * dt
	if dist <= maxStep {
		return 1
	}
	return int(math.Ceil(dist / maxStep))
}

// checkGoal tests the ball against the goal lines
// A ball already past a line scores; otherwise the position reached this step is tested,
// unless the ball is in contact with a paddle and will be rebounded instead
// On a goal the ball is centered and a replacement score plus a serve request are queued
func (s *BallSystem) checkGoal(entity core.Entity, ball *component.BallComponent, dt float64, touching bool) bool {
	xr := s.ctx.Config.BallXRange()
	nextX := ball.Pos.X
	if !touching {
		nextX += ball.Vel.X * dt
	}

	var rightScored bool
	switch {
	case nextX > xr.Max:
		rightScored = true
	case nextX < xr.Min:
		rightScored = false
	default:
		return false
	}

	_, score := engine.SingleScore(s.ctx.World)
	if rightScored {
		score.Right++
	} else {
		score.Left++
	}

	ball.Pos = vmath.Vec2F{}

	s.ctx.PushEvent(event.EventScoreChanged, &event.ScoreChangedPayload{Score: score})
	s.ctx.PushEvent(event.EventServeRequest, &event.ServeRequestPayload{Ball: entity})
	s.statGoals.Add(1)
	return true
}

// checkWalls clamps the ball inside the vertical range and sends it back toward the field
func (s *BallSystem) checkWalls(ball *component.BallComponent) {
	yr := s.ctx.Config.BallYRange()

	switch {
	case ball.Pos.Y < yr.Min:
		ball.Pos.Y = yr.Min
		ball.Vel.Y = math.Abs(ball.Vel.Y)
	case ball.Pos.Y > yr.Max:
		ball.Pos.Y = yr.Max
		ball.Vel.Y = -math.Abs(ball.Vel.Y)
	default:
		return
	}

	s.ctx.PushEvent(event.EventWallBounce, nil)
	s.statWallBounces.Add(1)
}

// checkPaddles replaces the velocity with the paddle-to-ball direction at full speed
// The first overlapping paddle wins
func (s *BallSystem) checkPaddles(ball *component.BallComponent) {
	paddle, ok := s.overlappingPaddle(*ball)
	if !ok {
		return
	}

	ball.Vel = ReboundVelocity(paddle.Pos, ball.Pos, s.ctx.Config.Ball.DefaultSpeed)

	s.ctx.PushEvent(event.EventPaddleHit, &event.PaddleHitPayload{Side: paddle.Side})
	s.statPaddleHits.Add(1)
}

func (s *BallSystem) touchingPaddle(ball component.BallComponent) bool {
	_, ok := s.overlappingPaddle(ball)
	return ok
}

// overlappingPaddle returns the first paddle whose box overlaps the ball box
func (s *BallSystem) overlappingPaddle(ball component.BallComponent) (component.PaddleComponent, bool) {
	cfg := s.ctx.Config
	w := s.ctx.World

	ballBox := vmath.AABB{
		Center: ball.Pos,
		Size:   vmath.Vec2F{X: cfg.Ball.Size, Y: cfg.Ball.Size},
	}
	paddleSize := vmath.Vec2F{X: cfg.Paddle.Width, Y: cfg.Paddle.Height}

	for _, e := range engine.PaddlePair(w) {
		paddle, _ := w.Component.Paddle.Get(e)
		if ballBox.Overlaps(vmath.AABB{Center: paddle.Pos, Size: paddleSize}) {
			return paddle, true
		}
	}
	return component.PaddleComponent{}, false
}

// ReboundVelocity points from the paddle center through the ball center at the given speed
// A ball exactly on the paddle center is sent horizontally toward the field center
func ReboundVelocity(paddlePos, ballPos vmath.Vec2F, speed float64) vmath.Vec2F {
	dir := vmath.V2FNormalize(vmath.V2FSub(ballPos, paddlePos))
	if dir == (vmath.Vec2F{}) {
		dir = vmath.Vec2F{X: 1}
		if paddlePos.X > 0 {
			dir.X = -1
		}
	}
	return vmath.V2FScale(dir, speed)
}
