package game

import "fmt"

// GamePhase represents the current phase of a session. Phases are strictly
// ordered; there are no backward transitions. Scoring is instantaneous and
// only ever observed in flight.
type GamePhase int

const (
	// PhasePlacement - players place influence, turn countdown running
	PhasePlacement GamePhase = iota

	// PhaseObservation - mass collapse of every undecided cell
	PhaseObservation

	// PhaseScoring - territory analysis, entered and left in one batch
	PhaseScoring

	// PhaseGameOver - final state
	PhaseGameOver
)

// String returns the string representation of a GamePhase
func (p GamePhase) String() string {
	switch p {
	case PhasePlacement:
		return "Placement"
	case PhaseObservation:
		return "Observation"
	case PhaseScoring:
		return "Scoring"
	case PhaseGameOver:
		return "GameOver"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}

// IsTerminal returns true if the phase represents a terminal state
func (p GamePhase) IsTerminal() bool {
	return p == PhaseGameOver
}

// CanReceiveMoves returns true if placement moves are accepted in this phase
func (p GamePhase) CanReceiveMoves() bool {
	return p == PhasePlacement
}

// AllowedTransitions returns the valid phases this phase can transition to
func (p GamePhase) AllowedTransitions() []GamePhase {
	switch p {
	case PhasePlacement:
		return []GamePhase{PhaseObservation}
	case PhaseObservation:
		return []GamePhase{PhaseScoring}
	case PhaseScoring:
		return []GamePhase{PhaseGameOver}
	default:
		return []GamePhase{}
	}
}

// CanTransitionTo checks if a transition to the target phase is allowed
func (p GamePhase) CanTransitionTo(target GamePhase) bool {
	for _, phase := range p.AllowedTransitions() {
		if phase == target {
			return true
		}
	}
	return false
}
