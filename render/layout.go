package render

import (
	"github.com/lixenwraith/vi-pong/config"
)

// ButtonKind identifies a clickable screen button
type ButtonKind int

const (
	ButtonNone ButtonKind = iota
	ButtonOnePlayer
	ButtonTwoPlayer
	ButtonGG
)

// Button is a one-row clickable label in cell coordinates
type Button struct {
	Kind  ButtonKind
	Label string
	X, Y  int
	Width int
}

// Contains reports whether the cell is on the button
func (b Button) Contains(x, y int) bool {
	return y == b.Y && x >= b.X && x < b.X+b.Width
}

// Viewport maps field units onto a terminal grid, y up
type Viewport struct {
	Cols, Rows int
	field      config.FieldConfig
}

// NewViewport creates a viewport for a cols x rows screen
func NewViewport(field config.FieldConfig, cols, rows int) Viewport {
	return Viewport{Cols: max(cols, 1), Rows: max(rows, 1), field: field}
}

// Col maps a field x to a column, clamped to the grid
func (v Viewport) Col(x float64) int {
	c := int((x + v.field.Width/2) / v.field.Width * float64(v.Cols))
	return min(max(c, 0), v.Cols-1)
}

// Row maps a field y to a row, clamped to the grid; row 0 is the top edge
func (v Viewport) Row(y float64) int {
	r := int((v.field.Height/2 - y) / v.field.Height * float64(v.Rows))
	return min(max(r, 0), v.Rows-1)
}

// ScoreRows is the number of rows covered by the score bar, at least one
func (v Viewport) ScoreRows() int {
	r := int(v.field.UIHeight/v.field.Height*float64(v.Rows) + 0.5)
	if v.field.UIHeight > 0 {
		r = max(r, 1)
	}
	return r
}

const (
	labelOnePlayer = "[1] One Player"
	labelTwoPlayer = "[2] Two Player"
	labelGG        = "[Enter] GG"
)

func centered(kind ButtonKind, label string, cols, y int) Button {
	w := len([]rune(label)) + 2
	return Button{Kind: kind, Label: label, X: max((cols-w)/2, 0), Y: y, Width: w}
}

// MenuButtons lays out the player-count buttons below the title
func MenuButtons(cols, rows int) []Button {
	mid := rows / 2
	return []Button{
		centered(ButtonOnePlayer, labelOnePlayer, cols, mid),
		centered(ButtonTwoPlayer, labelTwoPlayer, cols, mid+2),
	}
}

// EndButtons lays out the single end screen button
func EndButtons(cols, rows int) []Button {
	return []Button{centered(ButtonGG, labelGG, cols, rows/2+2)}
}

// HitTest returns the button under the cell, ButtonNone if none
func HitTest(buttons []Button, x, y int) ButtonKind {
	for _, b := range buttons {
		if b.Contains(x, y) {
			return b.Kind
		}
	}
	return ButtonNone
}
