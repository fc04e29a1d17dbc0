package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/vmath"
)

const (
	testCols = 80
	testRows = 24
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	s.SetSize(testCols, testRows)
	t.Cleanup(s.Fini)
	return s
}

func rowText(s tcell.Screen, y int) string {
	var sb strings.Builder
	cols, _ := s.Size()
	for x := 0; x < cols; x++ {
		ch, _, _, _ := s.GetContent(x, y)
		sb.WriteRune(ch)
	}
	return sb.String()
}

func screenContains(s tcell.Screen, text string) bool {
	_, rows := s.Size()
	for y := 0; y < rows; y++ {
		if strings.Contains(rowText(s, y), text) {
			return true
		}
	}
	return false
}

func TestViewportMapping(t *testing.T) {
	vp := NewViewport(config.Default().Field, testCols, testRows)

	tests := []struct {
		name      string
		got, want int
	}{
		{"left edge", vp.Col(-401), 0},
		{"right edge clamps", vp.Col(401), testCols - 1},
		{"center col", vp.Col(0), testCols / 2},
		{"top edge", vp.Row(227.5), 0},
		{"bottom edge clamps", vp.Row(-227.5), testRows - 1},
		{"above field clamps", vp.Row(1000), 0},
		{"score rows", vp.ScoreRows(), 2},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %d, want %d", tt.name, tt.got, tt.want)
		}
	}

	// y up: a higher ball is on a smaller row
	if vp.Row(100) >= vp.Row(-100) {
		t.Error("Positive y should map above negative y")
	}
}

func TestHitTest(t *testing.T) {
	buttons := MenuButtons(testCols, testRows)
	one := buttons[0]

	if got := HitTest(buttons, one.X, one.Y); got != ButtonOnePlayer {
		t.Errorf("Expected one player at button origin, got %d", got)
	}
	if got := HitTest(buttons, one.X+one.Width-1, one.Y); got != ButtonOnePlayer {
		t.Errorf("Expected one player at last cell, got %d", got)
	}
	if got := HitTest(buttons, one.X+one.Width, one.Y); got != ButtonNone {
		t.Errorf("Expected miss past the button, got %d", got)
	}
	if got := HitTest(buttons, buttons[1].X+1, buttons[1].Y); got != ButtonTwoPlayer {
		t.Errorf("Expected two player, got %d", got)
	}
	if got := HitTest(EndButtons(testCols, testRows), testCols/2, testRows/2+2); got != ButtonGG {
		t.Errorf("Expected GG at center of end button row, got %d", got)
	}
}

func TestRenderMenu(t *testing.T) {
	s := newTestScreen(t)
	r := NewTerminalRenderer(s)
	ctx := engine.NewGameContext(config.Default(), engine.Bindings{}, nil, nil)

	r.RenderFrame(ctx, Overlay{Muted: true})

	for _, text := range []string{"One Player", "Two Player", "[muted]"} {
		if !screenContains(s, text) {
			t.Errorf("Menu should show %q", text)
		}
	}
	if got := len(r.Buttons(engine.StateMenu)); got != 2 {
		t.Errorf("Expected 2 menu buttons, got %d", got)
	}
	if r.Buttons(engine.StateGame) != nil {
		t.Error("Game screen has no buttons")
	}
}

func TestRenderGame(t *testing.T) {
	s := newTestScreen(t)
	r := NewTerminalRenderer(s)
	cfg := config.Default()
	ctx := engine.NewGameContext(cfg, engine.Bindings{}, nil, nil)

	ctx.Session.Spawn(cfg, true, ctx.Bindings)
	ctx.SinglePlayer = true
	ctx.State = engine.StateGame
	ctx.World.Component.Ball.Set(ctx.Session.Ball, component.BallComponent{Pos: vmath.Vec2F{X: 100, Y: -50}})
	ctx.World.Component.Score.Set(ctx.Session.Score, component.ScoreComponent{Left: 3, Right: 7})

	r.RenderFrame(ctx, Overlay{Debug: true})

	vp := NewViewport(cfg.Field, testCols, testRows)
	if ch, _, _, _ := s.GetContent(vp.Col(100), vp.Row(-50)); ch != '●' {
		t.Errorf("Expected ball glyph at its cell, got %q", ch)
	}
	if ch, _, _, _ := s.GetContent(vp.Col(cfg.PaddleX(true)), vp.Row(0)); ch != '█' {
		t.Errorf("Expected left paddle glyph, got %q", ch)
	}
	if ch, _, _, _ := s.GetContent(vp.Col(cfg.PaddleX(false)), vp.Row(0)); ch != '█' {
		t.Errorf("Expected right paddle glyph, got %q", ch)
	}

	bar := rowText(s, vp.ScoreRows()/2)
	if !strings.Contains(bar, "Computer 3") || !strings.Contains(bar, "7 Orange") {
		t.Errorf("Score bar mismatch: %q", bar)
	}
	if !screenContains(s, "state=Game") {
		t.Error("Debug overlay should show the state line")
	}
}

func TestRenderEnd(t *testing.T) {
	s := newTestScreen(t)
	r := NewTerminalRenderer(s)
	ctx := engine.NewGameContext(config.Default(), engine.Bindings{}, nil, nil)

	ctx.State = engine.StateEnd
	ctx.End = &engine.EndData{WinnerIsLeft: true, Score: component.ScoreComponent{Left: 10, Right: 6}}
	r.RenderFrame(ctx, Overlay{})

	for _, text := range []string{"Blue Wins", "10 : 6", "GG"} {
		if !screenContains(s, text) {
			t.Errorf("End screen should show %q", text)
		}
	}
}
