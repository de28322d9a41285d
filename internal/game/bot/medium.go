package bot

import (
	"math/rand"

	"github.com/quantumgrid/quantumgrid/internal/game/core"
)

// mediumSelector recognizes imminent captures and blocks but still carries
// enough random base to stay beatable.
type mediumSelector struct {
	rng *rand.Rand
}

func (s *mediumSelector) Difficulty() Difficulty { return Medium }

func (s *mediumSelector) ChooseMove(b *core.Board, p core.Player, history []Move) (Move, bool) {
	moves := legalMoves(b, p)
	if len(moves) == 0 {
		return Move{}, false
	}

	opponent := p.Opposite()
	scored := make([]scoredMove, 0, len(moves))
	for _, m := range moves {
		cell := b.At(m.Row, m.Col)
		total := cell.TotalInfluence()
		dominant := cell.DominantInfluence()

		score := s.rng.Float64() * 30
		score -= repetitionPenalty(m, history, repetitionWeight)

		if total == 2 && dominant == p {
			score += 60 // completes a capture in our favor
		}
		if total == 2 && dominant == opponent {
			score += 50 // blocks an imminent opponent capture
		}
		if cell.InfluenceOf(p) > 0 && total < 2 {
			score += 25 // keep building
		}
		if cell.IsEmpty() {
			score += 15
		}
		if cell.State.IsEntangled() {
			score += 20
		}

		scored = append(scored, scoredMove{move: m, score: score})
	}

	return pickAmongTop(s.rng, scored, 3), true
}
