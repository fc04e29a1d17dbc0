package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/component"
)

func TestMachineKeyIntents(t *testing.T) {
	m := NewMachine(NewKeyState(nil))

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want *Intent
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), &Intent{Type: IntentQuit}},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), &Intent{Type: IntentQuit}},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), &Intent{Type: IntentEndConfirm}},
		{"one", tcell.NewEventKey(tcell.KeyRune, '1', tcell.ModNone), &Intent{Type: IntentMenuSelect, SinglePlayer: true}},
		{"two", tcell.NewEventKey(tcell.KeyRune, '2', tcell.ModNone), &Intent{Type: IntentMenuSelect}},
		{"mute", tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), &Intent{Type: IntentToggleMute}},
		{"pause", tcell.NewEventKey(tcell.KeyRune, 'P', tcell.ModNone), &Intent{Type: IntentTogglePause}},
		{"debug", tcell.NewEventKey(tcell.KeyF2, 0, tcell.ModNone), &Intent{Type: IntentToggleDebug}},
		{"paddle key", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Process(tt.ev)
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("Expected no intent, got %+v", got)
			case tt.want != nil && (got == nil || *got != *tt.want):
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestMachineRecordsPresses(t *testing.T) {
	now := time.Unix(100, 0)
	m := NewMachine(NewKeyState(func() time.Time { return now }))

	m.Process(tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModShift))
	m.Process(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))

	if !m.Keys().Held(component.KeyBinding{Key: tcell.KeyRune, Rune: 'w'}) {
		t.Error("Shifted letter should hold the lowercase binding")
	}
	if !m.Keys().Held(component.KeyBinding{Key: tcell.KeyUp}) {
		t.Error("Arrow press should be held")
	}
	if m.Keys().Held(component.KeyBinding{Key: tcell.KeyDown}) {
		t.Error("Unpressed key should not be held")
	}
}

func TestMachineMouseEdge(t *testing.T) {
	m := NewMachine(NewKeyState(nil))

	press := m.Process(tcell.NewEventMouse(12, 7, tcell.Button1, tcell.ModNone))
	if press == nil || press.Type != IntentMouseClick || press.X != 12 || press.Y != 7 {
		t.Fatalf("Expected click at 12,7, got %+v", press)
	}
	if drag := m.Process(tcell.NewEventMouse(13, 7, tcell.Button1, tcell.ModNone)); drag != nil {
		t.Errorf("Held button should not click again, got %+v", drag)
	}
	m.Process(tcell.NewEventMouse(13, 7, tcell.ButtonNone, tcell.ModNone))
	if again := m.Process(tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone)); again == nil {
		t.Error("Press after release should click")
	}
}

func TestMachineResize(t *testing.T) {
	m := NewMachine(NewKeyState(nil))
	if got := m.Process(tcell.NewEventResize(80, 24)); got == nil || got.Type != IntentResize {
		t.Errorf("Expected resize intent, got %+v", got)
	}
}
