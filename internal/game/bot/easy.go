package bot

import (
	"math/rand"

	"github.com/quantumgrid/quantumgrid/internal/game/core"
)

// easySelector plays almost randomly: a large random base with a small
// preference for untouched cells.
type easySelector struct {
	rng *rand.Rand
}

func (s *easySelector) Difficulty() Difficulty { return Easy }

func (s *easySelector) ChooseMove(b *core.Board, p core.Player, history []Move) (Move, bool) {
	moves := legalMoves(b, p)
	if len(moves) == 0 {
		return Move{}, false
	}

	scored := make([]scoredMove, 0, len(moves))
	for _, m := range moves {
		cell := b.At(m.Row, m.Col)

		score := s.rng.Float64() * 100
		score -= repetitionPenalty(m, history, repetitionWeight)
		if cell.IsEmpty() {
			score += 20
		}

		scored = append(scored, scoredMove{move: m, score: score})
	}

	return pickAmongTop(s.rng, scored, 5), true
}
