package engine

// AppState is the top-level phase of the application
type AppState int

const (
	StateMenu AppState = iota
	StateEnd
	StateGame
)

func (s AppState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StateEnd:
		return "End"
	case StateGame:
		return "Game"
	default:
		return "Unknown"
	}
}

// ParseAppState resolves a state name as used in the FSM config
func ParseAppState(name string) (AppState, bool) {
	for _, s := range []AppState{StateMenu, StateEnd, StateGame} {
		if s.String() == name {
			return s, true
		}
	}
	return 0, false
}
