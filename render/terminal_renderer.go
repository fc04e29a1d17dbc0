package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
)

// Overlay carries presentation flags that are not part of the game context
type Overlay struct {
	Debug bool
	Muted bool
}

// TerminalRenderer draws the active screen onto a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// Buttons returns the clickable buttons of the state's screen at the current size
func (r *TerminalRenderer) Buttons(state engine.AppState) []Button {
	cols, rows := r.screen.Size()
	switch state {
	case engine.StateMenu:
		return MenuButtons(cols, rows)
	case engine.StateEnd:
		return EndButtons(cols, rows)
	default:
		return nil
	}
}

// RenderFrame renders the entire frame for the active state
func (r *TerminalRenderer) RenderFrame(ctx *engine.GameContext, ov Overlay) {
	cols, rows := r.screen.Size()
	bg := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	r.screen.Fill(' ', bg)

	switch ctx.State {
	case engine.StateMenu:
		r.drawMenu(ctx, cols, rows, bg)
	case engine.StateGame:
		r.drawField(ctx, NewViewport(ctx.Config.Field, cols, rows), bg)
	case engine.StateEnd:
		r.drawEnd(ctx, cols, rows, bg)
	}

	if ov.Muted {
		r.drawText(cols-7, rows-1, "[muted]", bg.Foreground(RgbDim))
	}
	if ov.Debug {
		r.drawDebug(ctx, rows, bg.Foreground(RgbDim))
	}

	r.screen.Show()
}

func (r *TerminalRenderer) drawMenu(ctx *engine.GameContext, cols, rows int, bg tcell.Style) {
	title := "V I - P O N G"
	r.drawText((cols-len(title))/2, rows/2-3, title, bg.Bold(true))

	for _, b := range MenuButtons(cols, rows) {
		highlight := (b.Kind == ButtonOnePlayer) == ctx.SinglePlayer
		r.drawButton(b, highlight)
	}

	hint := "Esc quit  m mute  F2 debug"
	r.drawText((cols-len(hint))/2, rows-2, hint, bg.Foreground(RgbDim))
}

func (r *TerminalRenderer) drawEnd(ctx *engine.GameContext, cols, rows int, bg tcell.Style) {
	if ctx.End == nil {
		return
	}

	text := "Orange Wins"
	if ctx.End.WinnerIsLeft {
		text = "Blue Wins"
	}
	r.drawText((cols-len(text))/2, rows/2-2, text, bg.Foreground(sideColor(ctx.End.WinnerIsLeft)).Bold(true))

	score := fmt.Sprintf("%d : %d", ctx.End.Score.Left, ctx.End.Score.Right)
	r.drawText((cols-len(score))/2, rows/2, score, bg)

	for _, b := range EndButtons(cols, rows) {
		r.drawButton(b, true)
	}
}

func (r *TerminalRenderer) drawField(ctx *engine.GameContext, vp Viewport, bg tcell.Style) {
	w := ctx.World
	cfg := ctx.Config
	top := vp.ScoreRows()

	fieldStyle := bg.Background(RgbField)
	for y := top; y < vp.Rows; y++ {
		for x := 0; x < vp.Cols; x++ {
			r.screen.SetContent(x, y, ' ', nil, fieldStyle)
		}
	}

	mid := vp.Col(0)
	for y := top; y < vp.Rows; y += 2 {
		r.screen.SetContent(mid, y, '│', nil, fieldStyle.Foreground(RgbCenterLine))
	}

	if !ctx.Session.Active() {
		return
	}

	score, _ := w.Component.Score.Get(ctx.Session.Score)
	r.drawScoreBar(ctx, vp, score, bg)

	for _, entity := range []core.Entity{ctx.Session.Left, ctx.Session.Right} {
		paddle, ok := w.Component.Paddle.Get(entity)
		if !ok {
			continue
		}
		r.fillRect(vp,
			paddle.Pos.X-cfg.Paddle.Width/2, paddle.Pos.Y+cfg.Paddle.Height/2,
			paddle.Pos.X+cfg.Paddle.Width/2, paddle.Pos.Y-cfg.Paddle.Height/2,
			'█', fieldStyle.Foreground(sideColor(paddle.Side == component.SideLeft)))
	}

	if ball, ok := w.Component.Ball.Get(ctx.Session.Ball); ok {
		half := cfg.Ball.Size / 2
		r.fillRect(vp,
			ball.Pos.X-half, ball.Pos.Y+half,
			ball.Pos.X+half, ball.Pos.Y-half,
			'●', fieldStyle.Foreground(RgbBall))
	}

	if ctx.Paused {
		text := " PAUSED  p resume "
		r.drawText((vp.Cols-len(text))/2, vp.Rows/2, text, bg.Foreground(RgbPaused).Bold(true))
	}
}

func (r *TerminalRenderer) drawScoreBar(ctx *engine.GameContext, vp Viewport, score component.ScoreComponent, bg tcell.Style) {
	barStyle := bg.Background(RgbScoreBar)
	rows := vp.ScoreRows()
	for y := 0; y < rows; y++ {
		for x := 0; x < vp.Cols; x++ {
			r.screen.SetContent(x, y, ' ', nil, barStyle)
		}
	}

	leftName := "Blue"
	if ctx.SinglePlayer {
		leftName = "Computer"
	}
	left := fmt.Sprintf("%s %d", leftName, score.Left)
	right := fmt.Sprintf("%d Orange", score.Right)

	y := rows / 2
	mid := vp.Cols / 2
	r.drawText(mid-2-len(left), y, left, barStyle.Foreground(RgbLeftSide).Bold(true))
	r.drawText(mid, y, ":", barStyle)
	r.drawText(mid+2, y, right, barStyle.Foreground(RgbRightSide).Bold(true))
}

// fillRect fills the cells covering the field rectangle (x0,y0) top-left to (x1,y1) bottom-right
// Always draws at least one cell
func (r *TerminalRenderer) fillRect(vp Viewport, x0, y0, x1, y1 float64, ch rune, style tcell.Style) {
	c0, c1 := vp.Col(x0), vp.Col(x1)
	r0, r1 := vp.Row(y0), vp.Row(y1)
	for y := r0; y <= r1; y++ {
		for x := c0; x <= c1; x++ {
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (r *TerminalRenderer) drawButton(b Button, highlight bool) {
	style := tcell.StyleDefault.Background(RgbButton).Foreground(RgbButtonLabel)
	if highlight {
		style = style.Bold(true)
	}
	r.drawText(b.X, b.Y, " "+b.Label+" ", style)
}

func (r *TerminalRenderer) drawDebug(ctx *engine.GameContext, rows int, style tcell.Style) {
	lines := ctx.Status.Lines()
	lines = append(lines, fmt.Sprintf("state=%s frame=%d", ctx.State, ctx.World.FrameNumber()))
	start := max(rows-len(lines)-1, 0)
	for i, line := range lines {
		r.drawText(1, start+i, line, style)
	}
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
