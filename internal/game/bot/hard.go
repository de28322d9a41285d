package bot

import (
	"math/rand"

	"github.com/quantumgrid/quantumgrid/internal/game/core"
)

// hardSelector weighs capture odds, entanglement leverage, board geometry
// and clustering, with a small jitter and a 30% chance of playing the
// runner-up to stay unpredictable.
type hardSelector struct {
	rng *rand.Rand
}

func (s *hardSelector) Difficulty() Difficulty { return Hard }

func (s *hardSelector) ChooseMove(b *core.Board, p core.Player, history []Move) (Move, bool) {
	moves := legalMoves(b, p)
	if len(moves) == 0 {
		return Move{}, false
	}

	opponent := p.Opposite()
	scored := make([]scoredMove, 0, len(moves))
	for _, m := range moves {
		cell := b.At(m.Row, m.Col)
		total := cell.TotalInfluence()
		mine := cell.InfluenceOf(p)
		theirs := cell.InfluenceOf(opponent)

		score := s.rng.Float64() * 15
		score -= repetitionPenalty(m, history, repetitionWeight/2)

		if total == 2 {
			switch {
			case mine > theirs:
				score += 100 // guaranteed win
			case mine == theirs:
				score += 70 // 50/50, worth taking
			default:
				score += 40 // contest anyway
			}
			if cell.DominantInfluence() == opponent {
				score += 90 // block
			}
		}
		if total == 1 {
			if mine == 1 {
				score += 45 // setup
			} else {
				score += 35 // disrupt
			}
		}
		if partner, ok := cell.State.Partner(); ok {
			score += 25
			pt := b.AtCoord(partner).TotalInfluence()
			if pt == 1 || pt == 2 {
				score += 30 // entanglement could trigger a capture there
			}
		}
		if cell.IsEmpty() {
			score += 20
			if b.IsCorner(m.Row, m.Col) {
				score += 15
			} else if b.IsEdge(m.Row, m.Col) {
				score += 8
			}
		}
		score += 6 * float64(ownedNeighbors(b, m.Row, m.Col, p))

		scored = append(scored, scoredMove{move: m, score: score})
	}

	return pickTopOrSecond(s.rng, scored, 0.3), true
}
