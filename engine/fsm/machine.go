package fsm

import (
	"fmt"
	"time"

	"github.com/lixenwraith/vi-pong/event"
)

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes:     make(map[StateID]*Node[T]),
		nameToID:  make(map[string]StateID),
		guardReg:  make(map[string]GuardFunc[T]),
		actionReg: make(map[string]ActionFunc[T]),
	}
}

// RegisterGuard adds a predicate function to the registry
func (m *Machine[T]) RegisterGuard(name string, fn GuardFunc[T]) {
	m.guardReg[name] = fn
}

// RegisterAction adds a side-effect function to the registry
func (m *Machine[T]) RegisterAction(name string, fn ActionFunc[T]) {
	m.actionReg[name] = fn
}

// Init enters the initial state, running its OnEnter actions
func (m *Machine[T]) Init(ctx T) error {
	node, ok := m.nodes[m.InitialID]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", m.InitialID)
	}

	m.activeID = node.ID
	m.timeInState = 0
	m.run(ctx, node.OnEnter, Call{State: node.Name})
	return nil
}

// Update runs the active state's OnUpdate actions
func (m *Machine[T]) Update(ctx T, dt time.Duration) {
	node, ok := m.nodes[m.activeID]
	if !ok {
		return
	}
	m.timeInState += dt
	m.run(ctx, node.OnUpdate, Call{State: node.Name, DT: dt})
}

// Evaluate checks the active state's tick transitions and takes the first whose guard passes
// Returns true if a transition occurred
func (m *Machine[T]) Evaluate(ctx T) bool {
	node, ok := m.nodes[m.activeID]
	if !ok {
		return false
	}
	for _, trans := range node.Transitions {
		if trans.Event != 0 {
			continue
		}
		if trans.Guard == nil || trans.Guard(ctx, nil) {
			m.transition(ctx, trans.TargetID, nil)
			return true
		}
	}
	return false
}

// HandleEvent routes an external event to the active state
// Returns true if the event triggered a transition; events without a matching transition are ignored
func (m *Machine[T]) HandleEvent(ctx T, ev event.GameEvent) bool {
	node, ok := m.nodes[m.activeID]
	if !ok {
		return false
	}
	for _, trans := range node.Transitions {
		if trans.Event != ev.Type {
			continue
		}
		if trans.Guard == nil || trans.Guard(ctx, &ev) {
			m.transition(ctx, trans.TargetID, &ev)
			return true
		}
	}
	return false
}

// transition runs the exit hooks of the active state, then the enter hooks of the target
func (m *Machine[T]) transition(ctx T, targetID StateID, trigger *event.GameEvent) {
	if m.activeID == targetID {
		return
	}

	target, ok := m.nodes[targetID]
	if !ok {
		panic(fmt.Sprintf("FSM: Attempted transition to unknown state ID %d", targetID))
	}

	if current, ok := m.nodes[m.activeID]; ok {
		m.run(ctx, current.OnExit, Call{State: current.Name, Trigger: trigger})
	}

	m.activeID = targetID
	m.timeInState = 0

	m.run(ctx, target.OnEnter, Call{State: target.Name, Trigger: trigger})
}

func (m *Machine[T]) run(ctx T, actions []Action[T], call Call) {
	for _, action := range actions {
		call.Args = action.Args
		action.Func(ctx, call)
	}
}

// ActiveState returns the active StateID
func (m *Machine[T]) ActiveState() StateID {
	return m.activeID
}

// ActiveStateName returns the active state's name, empty before Init
func (m *Machine[T]) ActiveStateName() string {
	if node, ok := m.nodes[m.activeID]; ok {
		return node.Name
	}
	return ""
}

// TimeInState returns the time accumulated by Update since the last transition
func (m *Machine[T]) TimeInState() time.Duration {
	return m.timeInState
}

// GetStateID resolves a state name to ID
func (m *Machine[T]) GetStateID(name string) (StateID, bool) {
	id, ok := m.nameToID[name]
	return id, ok
}
