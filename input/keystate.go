package input

import (
	"time"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/parameter"
)

// Terminals report presses and auto-repeats but no releases
// A key counts as held while its last press is recent: the first press holds for
// KeyInitialHold to bridge the auto-repeat delay, repeats hold for KeyRepeatHold

type pressInfo struct {
	last    time.Time
	repeats int
}

// KeyState answers held-key queries from the press history
// Owned by the main goroutine
type KeyState struct {
	now   func() time.Time
	press map[component.KeyBinding]*pressInfo
}

// NewKeyState creates a key state; now nil selects time.Now
func NewKeyState(now func() time.Time) *KeyState {
	if now == nil {
		now = time.Now
	}
	return &KeyState{
		now:   now,
		press: make(map[component.KeyBinding]*pressInfo),
	}
}

// Press records a press of b at the current time
// A press inside the hold window of the previous one is an auto-repeat
func (k *KeyState) Press(b component.KeyBinding) {
	t := k.now()
	info, ok := k.press[b]
	if !ok {
		k.press[b] = &pressInfo{last: t}
		return
	}
	if k.heldAt(info, t) {
		info.repeats++
	} else {
		info.repeats = 0
	}
	info.last = t
}

// Held reports whether b is considered down now
func (k *KeyState) Held(b component.KeyBinding) bool {
	info, ok := k.press[b]
	if !ok {
		return false
	}
	return k.heldAt(info, k.now())
}

func (k *KeyState) heldAt(info *pressInfo, t time.Time) bool {
	window := parameter.KeyRepeatHold
	if info.repeats == 0 {
		window = parameter.KeyInitialHold
	}
	return t.Sub(info.last) < window
}

// Release forgets b; used when a terminal reports an explicit release
func (k *KeyState) Release(b component.KeyBinding) {
	delete(k.press, b)
}

// Clear forgets every press
func (k *KeyState) Clear() {
	clear(k.press)
}
