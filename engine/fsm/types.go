package fsm

import (
	"time"

	"github.com/lixenwraith/vi-pong/event"
)

// StateID is a unique identifier for a node
type StateID int

const StateNone StateID = 0

// Machine is a flat finite state machine driven by ticks and events
// T is the context type passed to actions and guards (e.g., *engine.GameContext)
type Machine[T any] struct {
	// Graph data, immutable after load
	nodes     map[StateID]*Node[T]
	nameToID  map[string]StateID
	InitialID StateID

	// Runtime state
	activeID    StateID
	timeInState time.Duration

	// Dependency injection
	guardReg  map[string]GuardFunc[T]
	actionReg map[string]ActionFunc[T]
}

// Node represents a state
type Node[T any] struct {
	ID   StateID
	Name string

	// Lifecycle actions, run in declaration order
	OnEnter  []Action[T]
	OnUpdate []Action[T]
	OnExit   []Action[T]

	// Transitions sorted by evaluation priority
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	TargetID StateID
	Event    event.EventType // 0 = Tick (guard evaluated after each dispatch)
	Guard    GuardFunc[T]    // nil = Always true
}

// Action represents a side-effect with its compiled config arguments
type Action[T any] struct {
	Name string
	Func ActionFunc[T]
	Args map[string]any
}

// Call is what an action receives besides the context
type Call struct {
	State   string           // Name of the state whose lifecycle list is running
	Args    map[string]any   // Arguments from config, nil when none
	Trigger *event.GameEvent // Event that caused the transition; nil for ticks and Init
	DT      time.Duration    // Tick length for OnUpdate, zero otherwise
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T, trigger *event.GameEvent) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T, call Call)
