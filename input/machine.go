package input

import (
	"github.com/gdamore/tcell/v2"
)

// Machine turns tcell events into intents and feeds key presses to KeyState
type Machine struct {
	keys *KeyState

	// Mouse press edge detection; tcell reports button state, not transitions
	mouseDown bool
}

// NewMachine creates an input machine recording presses into keys
func NewMachine(keys *KeyState) *Machine {
	return &Machine{keys: keys}
}

// Keys returns the held-key state
func (m *Machine) Keys() *KeyState {
	return m.keys
}

// Process converts one terminal event; nil means no intent
// Every key press is recorded for held queries, including ones that also map to an intent
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	m.keys.Press(bindingOf(ev))

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return &Intent{Type: IntentQuit}
	case tcell.KeyEnter:
		return &Intent{Type: IntentEndConfirm}
	case tcell.KeyF2:
		return &Intent{Type: IntentToggleDebug}
	case tcell.KeyRune:
		switch ev.Rune() {
		case '1':
			return &Intent{Type: IntentMenuSelect, SinglePlayer: true}
		case '2':
			return &Intent{Type: IntentMenuSelect, SinglePlayer: false}
		case 'm', 'M':
			return &Intent{Type: IntentToggleMute}
		case 'p', 'P':
			return &Intent{Type: IntentTogglePause}
		}
	}
	return nil
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	down := ev.Buttons()&tcell.Button1 != 0
	pressed := down && !m.mouseDown
	m.mouseDown = down

	if !pressed {
		return nil
	}
	x, y := ev.Position()
	return &Intent{Type: IntentMouseClick, X: x, Y: y}
}
