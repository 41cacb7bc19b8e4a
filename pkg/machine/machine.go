package machine

import (
	"errors"
	"fmt"
)

type State interface {
	~string
}

// Allowable maps where a from state is allowed to transition to
type Allowable[S State] struct {
	from S
	to   []S
}

// StateMachine tracks the current state and moves it along the allowed transitions
type StateMachine[S State] struct {
	current     S
	transitions map[S][]S
}

var (
	ErrInvalidTransition = errors.New("invalid state transition")
)

// TransitionBuilder helps in creating a from-to relationship for state transitions
type TransitionBuilder[S State] struct {
	transition Allowable[S]
}

func New[S State](initial S, transitions ...Allowable[S]) *StateMachine[S] {
	m := &StateMachine[S]{
		current:     initial,
		transitions: make(map[S][]S, len(transitions)),
	}
	for _, t := range transitions {
		m.transitions[t.from] = append(m.transitions[t.from], t.to...)
	}
	return m
}

// From initializes a transition from a specific state
func From[S State](from S) *TransitionBuilder[S] {
	return &TransitionBuilder[S]{transition: Allowable[S]{from: from}}
}

// To sets the possible destination states and returns the configured transition
func (tb *TransitionBuilder[S]) To(to ...S) Allowable[S] {
	tb.transition.to = to
	return tb.transition
}

// Current returns the state the machine is in
func (m *StateMachine[S]) Current() S {
	return m.current
}

// Can reports whether the current state may transition to s
func (m *StateMachine[S]) Can(s S) bool {
	for _, to := range m.transitions[m.current] {
		if to == s {
			return true
		}
	}
	return false
}

// ToState moves the machine to s. The state is unchanged when the transition is not allowed.
func (m *StateMachine[S]) ToState(s S) error {
	if !m.Can(s) {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, m.current, s)
	}
	m.current = s
	return nil
}
