package wizard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPredecessors(t *testing.T) {
	tests := []struct {
		step Step
		want Step
		ok   bool
	}{
		{StepWelcome, StepWelcome, false},
		{StepLogin, StepWelcome, true},
		{StepOtp, StepLogin, true},
		{StepBeneficiary, StepLogin, true},
		{StepAmount, StepBeneficiary, true},
		{StepReview, StepAmount, true},
		{StepSuccess, StepSuccess, false},
	}
	for _, tt := range tests {
		t.Run(tt.step.String(), func(t *testing.T) {
			got, ok := tt.step.Predecessor()
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.ok, tt.step.HasBack())
		})
	}
}

func TestStages(t *testing.T) {
	require.Equal(t, -1, StepWelcome.Stage())
	require.Equal(t, 0, StepLogin.Stage())
	require.Equal(t, 0, StepOtp.Stage())
	require.Equal(t, 1, StepBeneficiary.Stage())
	require.Equal(t, 2, StepAmount.Stage())
	require.Equal(t, 3, StepReview.Stage())
	require.Equal(t, 3, StepSuccess.Stage())
}

func TestCanEndSession(t *testing.T) {
	require.False(t, StepWelcome.CanEndSession())
	require.False(t, StepSuccess.CanEndSession())
	for _, s := range []Step{StepLogin, StepOtp, StepBeneficiary, StepAmount, StepReview} {
		require.True(t, s.CanEndSession(), s.String())
	}
	require.Equal(t, "UNKNOWN", Step(42).String())
}
