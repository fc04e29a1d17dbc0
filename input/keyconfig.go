package input

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/engine"
)

// ErrUnknownKey is wrapped by ParseKey failures
var ErrUnknownKey = errors.New("unknown key")

// Named keys accepted in the [keys] config section
var specialKeys = map[string]tcell.Key{
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"pgup":      tcell.KeyPgUp,
	"pgdn":      tcell.KeyPgDn,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"insert":    tcell.KeyInsert,
	"delete":    tcell.KeyDelete,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
}

// Rune aliases for keys that can't be written as a bare character
var runeAliases = map[string]rune{
	"space": ' ',
}

// ParseKey resolves a config key name to a binding
// Accepts special key names, aliases and single characters; letters are case-insensitive
func ParseKey(name string) (component.KeyBinding, error) {
	lower := strings.ToLower(strings.TrimSpace(name))

	if k, ok := specialKeys[lower]; ok {
		return component.KeyBinding{Key: k}, nil
	}
	if r, ok := runeAliases[lower]; ok {
		return component.KeyBinding{Key: tcell.KeyRune, Rune: r}, nil
	}

	runes := []rune(lower)
	if len(runes) == 1 && unicode.IsPrint(runes[0]) {
		return component.KeyBinding{Key: tcell.KeyRune, Rune: runes[0]}, nil
	}

	return component.KeyBinding{}, fmt.Errorf("%w: %q (expected single character or key name)", ErrUnknownKey, name)
}

// ResolveBindings parses all four paddle keys; duplicates are rejected
func ResolveBindings(keys config.KeyConfig) (engine.Bindings, error) {
	var b engine.Bindings

	fields := []struct {
		name string
		raw  string
		dst  *component.KeyBinding
	}{
		{"left_up", keys.LeftUp, &b.LeftUp},
		{"left_down", keys.LeftDown, &b.LeftDown},
		{"right_up", keys.RightUp, &b.RightUp},
		{"right_down", keys.RightDown, &b.RightDown},
	}

	seen := make(map[component.KeyBinding]string, len(fields))
	for _, f := range fields {
		kb, err := ParseKey(f.raw)
		if err != nil {
			return engine.Bindings{}, fmt.Errorf("keys.%s: %w", f.name, err)
		}
		if prev, dup := seen[kb]; dup {
			return engine.Bindings{}, fmt.Errorf("%w: keys.%s duplicates keys.%s", config.ErrInvalidConfig, f.name, prev)
		}
		seen[kb] = f.name
		*f.dst = kb
	}
	return b, nil
}

// bindingOf normalizes a key event to the form ParseKey produces
func bindingOf(ev *tcell.EventKey) component.KeyBinding {
	if ev.Key() == tcell.KeyRune {
		return component.KeyBinding{Key: tcell.KeyRune, Rune: unicode.ToLower(ev.Rune())}
	}
	return component.KeyBinding{Key: ev.Key()}
}
