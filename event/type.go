package event

// EventType represents the type of game event
// Zero is reserved for the FSM tick trigger and is never pushed
type EventType int

const (
	eventTick EventType = iota

	// === Score Event ===

	// EventScoreChanged carries the complete replacement score after a goal
	// Trigger: BallSystem goal check
	// Consumer: ScoreSystem | Payload: *ScoreChangedPayload
	EventScoreChanged

	// EventServeRequest asks for a fresh serve of the given ball
	// Trigger: BallSystem goal check, session spawn
	// Consumer: BallSystem | Payload: *ServeRequestPayload
	EventServeRequest

	// === Collision Event ===

	// EventPaddleHit signals a rebound off a paddle
	// Trigger: BallSystem paddle check
	// Consumer: AudioSystem | Payload: *PaddleHitPayload
	EventPaddleHit

	// EventWallBounce signals a rebound off the top or bottom wall
	// Trigger: BallSystem wall check
	// Consumer: AudioSystem | Payload: nil
	EventWallBounce

	// === UI Event ===

	// EventMenuButton is a press on a menu button
	// Trigger: Input (keys 1/2, mouse on menu buttons)
	// Consumer: StateSystem | Payload: *MenuButtonPayload
	EventMenuButton

	// EventEndButton is a press on the end screen button
	// Trigger: Input (Enter, mouse on end button)
	// Consumer: StateSystem | Payload: nil
	EventEndButton

	// === State Event ===

	// EventMatchWon is emitted once when a session ends by threshold
	// Trigger: FSM Game exit
	// Consumer: AudioSystem | Payload: *MatchWonPayload
	EventMatchWon
)

// String returns the registered name of the event type
func (e EventType) String() string {
	if name := GetEventName(e); name != "" {
		return name
	}
	return "Unknown"
}

// GameEvent is a single queued message
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64 // Tick number at push time
}
