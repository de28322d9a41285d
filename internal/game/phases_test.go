package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGamePhase_Transitions(t *testing.T) {
	tests := []struct {
		from    GamePhase
		to      GamePhase
		allowed bool
	}{
		{PhasePlacement, PhaseObservation, true},
		{PhaseObservation, PhaseScoring, true},
		{PhaseScoring, PhaseGameOver, true},
		{PhasePlacement, PhaseScoring, false},
		{PhasePlacement, PhaseGameOver, false},
		{PhaseObservation, PhasePlacement, false},
		{PhaseGameOver, PhasePlacement, false},
		{PhaseGameOver, PhaseObservation, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestGamePhase_NoBackwardTransitions(t *testing.T) {
	phases := []GamePhase{PhasePlacement, PhaseObservation, PhaseScoring, PhaseGameOver}
	for i, from := range phases {
		for j, to := range phases {
			if j <= i {
				assert.False(t, from.CanTransitionTo(to), "%s -> %s must be forbidden", from, to)
			}
		}
	}
}

func TestGamePhase_Properties(t *testing.T) {
	assert.True(t, PhasePlacement.CanReceiveMoves())
	assert.False(t, PhaseObservation.CanReceiveMoves())
	assert.False(t, PhaseGameOver.CanReceiveMoves())

	assert.True(t, PhaseGameOver.IsTerminal())
	assert.False(t, PhaseScoring.IsTerminal())
}

func TestGamePhase_String(t *testing.T) {
	assert.Equal(t, "Placement", PhasePlacement.String())
	assert.Equal(t, "Observation", PhaseObservation.String())
	assert.Equal(t, "Scoring", PhaseScoring.String())
	assert.Equal(t, "GameOver", PhaseGameOver.String())
}
