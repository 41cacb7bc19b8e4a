package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testState string

const (
	statePending   testState = "pending"
	stateSubmitted testState = "submitted"
	stateCanceled  testState = "canceled"
	stateDone      testState = "done"
)

func newTestMachine(initial testState) *StateMachine[testState] {
	return New(initial,
		From(statePending).To(stateSubmitted, stateCanceled),
		From(stateSubmitted).To(stateDone, stateCanceled),
	)
}

func TestStateMachine_ToState(t *testing.T) {
	t.Run("valid transitions advance", func(t *testing.T) {
		m := newTestMachine(statePending)

		require.NoError(t, m.ToState(stateSubmitted))
		assert.Equal(t, stateSubmitted, m.Current())

		require.NoError(t, m.ToState(stateDone))
		assert.Equal(t, stateDone, m.Current())
	})

	t.Run("invalid transition keeps state", func(t *testing.T) {
		m := newTestMachine(stateSubmitted)

		err := m.ToState(statePending)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.EqualError(t, err, "invalid state transition: submitted to pending")
		assert.Equal(t, stateSubmitted, m.Current())
	})

	t.Run("terminal state", func(t *testing.T) {
		m := newTestMachine(stateDone)
		assert.ErrorIs(t, m.ToState(stateCanceled), ErrInvalidTransition)
	})

	t.Run("repeated from merges targets", func(t *testing.T) {
		m := New(statePending,
			From(statePending).To(stateSubmitted),
			From(statePending).To(stateCanceled),
		)
		assert.True(t, m.Can(stateSubmitted))
		assert.True(t, m.Can(stateCanceled))
		assert.False(t, m.Can(stateDone))
	})
}
