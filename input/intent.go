package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit        // Esc, Ctrl+C
	IntentToggleMute  // m
	IntentTogglePause // p
	IntentToggleDebug // F2
	IntentResize      // Terminal resize event

	// Screen buttons
	IntentMenuSelect // 1 or 2 on the menu
	IntentEndConfirm // Enter on the end screen

	// Mouse
	IntentMouseClick // Left button press at X, Y
)

// Intent is the semantic result of one terminal event
type Intent struct {
	Type IntentType

	// SinglePlayer is the selection for IntentMenuSelect
	SinglePlayer bool

	// Cell coordinates for IntentMouseClick
	X, Y int
}
