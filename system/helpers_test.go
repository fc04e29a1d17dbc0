package system

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/audio"
	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/vmath"
)

const tick = 10 * time.Millisecond

var testBindings = engine.Bindings{
	LeftUp:    component.KeyBinding{Key: tcell.KeyRune, Rune: 'w'},
	LeftDown:  component.KeyBinding{Key: tcell.KeyRune, Rune: 's'},
	RightUp:   component.KeyBinding{Key: tcell.KeyUp},
	RightDown: component.KeyBinding{Key: tcell.KeyDown},
}

// fakeKeys holds keys down until released by the test
type fakeKeys map[component.KeyBinding]bool

func (k fakeKeys) Held(b component.KeyBinding) bool { return k[b] }

// recordingPlayer captures every requested sound
type recordingPlayer struct {
	played []audio.SoundType
}

func (p *recordingPlayer) Play(s audio.SoundType) { p.played = append(p.played, s) }

func (p *recordingPlayer) count(s audio.SoundType) int {
	n := 0
	for _, v := range p.played {
		if v == s {
			n++
		}
	}
	return n
}

type testGame struct {
	game   *engine.Game
	ctx    *engine.GameContext
	keys   fakeKeys
	player *recordingPlayer
}

// newTestGame boots a game in Menu with a fixed random source
func newTestGame(t *testing.T) *testGame {
	t.Helper()
	keys := fakeKeys{}
	player := &recordingPlayer{}
	ctx := engine.NewGameContext(config.Default(), testBindings, keys, rand.New(rand.NewPCG(1, 2)))

	game, err := Bootstrap(ctx, nil, player)
	if err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}
	if ctx.State != engine.StateMenu {
		t.Fatalf("Expected initial state Menu, got %s", ctx.State)
	}
	return &testGame{game: game, ctx: ctx, keys: keys, player: player}
}

// startMatch presses a menu button and dispatches it
func (tg *testGame) startMatch(t *testing.T, singlePlayer bool) {
	t.Helper()
	tg.ctx.PushEvent(event.EventMenuButton, &event.MenuButtonPayload{SinglePlayer: singlePlayer})
	tg.game.Dispatch()
	if tg.ctx.State != engine.StateGame {
		t.Fatalf("Expected Game after menu press, got %s", tg.ctx.State)
	}
}

func (tg *testGame) ball() component.BallComponent {
	b, _ := tg.ctx.World.Component.Ball.Get(tg.ctx.Session.Ball)
	return b
}

func (tg *testGame) setBall(pos, vel vmath.Vec2F) {
	b := tg.ball()
	b.Pos, b.Vel = pos, vel
	tg.ctx.World.Component.Ball.Set(tg.ctx.Session.Ball, b)
}

func (tg *testGame) paddle(left bool) component.PaddleComponent {
	e := tg.ctx.Session.Right
	if left {
		e = tg.ctx.Session.Left
	}
	p, _ := tg.ctx.World.Component.Paddle.Get(e)
	return p
}

func (tg *testGame) setPaddle(left bool, pos vmath.Vec2F) {
	e := tg.ctx.Session.Right
	if left {
		e = tg.ctx.Session.Left
	}
	p, _ := tg.ctx.World.Component.Paddle.Get(e)
	p.Pos = pos
	tg.ctx.World.Component.Paddle.Set(e, p)
}

// parkPaddles moves both paddles to the top of their range, clear of a low ball
func (tg *testGame) parkPaddles() {
	top := tg.ctx.Config.PaddleYRange().Max
	tg.setPaddle(true, vmath.Vec2F{X: tg.ctx.Config.PaddleX(true), Y: top})
	tg.setPaddle(false, vmath.Vec2F{X: tg.ctx.Config.PaddleX(false), Y: top})
}

func (tg *testGame) score() component.ScoreComponent {
	s, _ := tg.ctx.World.Component.Score.Get(tg.ctx.Session.Score)
	return s
}

func (tg *testGame) setScore(s component.ScoreComponent) {
	tg.ctx.World.Component.Score.Set(tg.ctx.Session.Score, s)
}

func approx(a, b, eps float64) bool {
	d := a - b
	return d < eps && d > -eps
}
