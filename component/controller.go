package component

import "github.com/gdamore/tcell/v2"

// ControllerKind tags the two controller variants
type ControllerKind uint8

const (
	ControllerHuman ControllerKind = iota
	ControllerAI
)

func (k ControllerKind) String() string {
	switch k {
	case ControllerHuman:
		return "human"
	case ControllerAI:
		return "ai"
	default:
		return "unknown"
	}
}

// Controller decides how a paddle moves
// Exactly two implementations exist; PaddleSystem switches on the concrete type
type Controller interface {
	Kind() ControllerKind
}

// KeyBinding names one physical key: a special key, or KeyRune with a rune
type KeyBinding struct {
	Key  tcell.Key
	Rune rune
}

// HumanController moves the paddle while its keys are held
type HumanController struct {
	Up   KeyBinding
	Down KeyBinding
}

func (HumanController) Kind() ControllerKind { return ControllerHuman }

// AIController chases the ball's current height with no prediction
type AIController struct{}

func (AIController) Kind() ControllerKind { return ControllerAI }
