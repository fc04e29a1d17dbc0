package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/parameter"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestKeyStateHoldWindows(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	ks := NewKeyState(clock.now)
	w := component.KeyBinding{Key: tcell.KeyRune, Rune: 'w'}

	if ks.Held(w) {
		t.Fatal("Unpressed key should not be held")
	}

	ks.Press(w)
	clock.advance(parameter.KeyInitialHold - time.Millisecond)
	if !ks.Held(w) {
		t.Fatal("First press should bridge the auto-repeat delay")
	}

	// Auto-repeat arrives; window shrinks to the repeat hold
	ks.Press(w)
	clock.advance(parameter.KeyRepeatHold - time.Millisecond)
	if !ks.Held(w) {
		t.Fatal("Repeat should hold for the repeat window")
	}
	clock.advance(2 * time.Millisecond)
	if ks.Held(w) {
		t.Fatal("Key should be released after the repeat window")
	}

	// A fresh press after release gets the initial window again
	clock.advance(time.Second)
	ks.Press(w)
	clock.advance(parameter.KeyRepeatHold + time.Millisecond)
	if !ks.Held(w) {
		t.Fatal("Fresh press should use the initial hold window")
	}
}

func TestKeyStateReleaseAndClear(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	ks := NewKeyState(clock.now)
	up := component.KeyBinding{Key: tcell.KeyUp}
	down := component.KeyBinding{Key: tcell.KeyDown}

	ks.Press(up)
	ks.Press(down)
	ks.Release(up)
	if ks.Held(up) || !ks.Held(down) {
		t.Fatal("Release should only forget its key")
	}
	ks.Clear()
	if ks.Held(down) {
		t.Fatal("Clear should forget every key")
	}
}
