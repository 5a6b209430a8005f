package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StatePlanning, "Planning"},
		{StateSubmitting, "Submitting"},
		{StateAwaiting, "Awaiting"},
		{StateCombining, "Combining"},
		{StateSerialFallback, "SerialFallback"},
		{StateDone, "Done"},
		{StateFailed, "Failed"},
		{State(999), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.state.String(); got != tt.want {
				t.Errorf("State.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStateIsTerminal(t *testing.T) {
	require.True(t, StateDone.IsTerminal())
	require.True(t, StateFailed.IsTerminal())
	require.False(t, StatePlanning.IsTerminal())
	require.False(t, StateAwaiting.IsTerminal())
	require.False(t, StateSerialFallback.IsTerminal())
}
