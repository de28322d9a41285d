package bot

import (
	"math/rand"

	"github.com/quantumgrid/quantumgrid/internal/game/core"
)

// expertSelector buckets candidate moves by urgency instead of scoring the
// whole board on one scale: urgent captures beat urgent blocks beat
// setup/disrupt beats expansion. Within the chosen bucket a small jitter
// and a 15% runner-up chance keep play varied.
type expertSelector struct {
	rng *rand.Rand
}

func (s *expertSelector) Difficulty() Difficulty { return Expert }

func (s *expertSelector) ChooseMove(b *core.Board, p core.Player, history []Move) (Move, bool) {
	moves := legalMoves(b, p)
	if len(moves) == 0 {
		return Move{}, false
	}

	opponent := p.Opposite()
	center := b.Center()

	var captures, blocks, setup, expansion []scoredMove
	for _, m := range moves {
		cell := b.At(m.Row, m.Col)
		total := cell.TotalInfluence()
		mine := cell.InfluenceOf(p)
		theirs := cell.InfluenceOf(opponent)

		jitter := s.rng.Float64() * 5
		jitter -= repetitionPenalty(m, history, repetitionWeight/3)

		switch {
		case total == 2 && mine >= theirs:
			captures = append(captures, scoredMove{move: m, score: 150 + jitter})

		case total == 2 && cell.DominantInfluence() == opponent:
			blocks = append(blocks, scoredMove{move: m, score: 140 + jitter})

		case total == 1:
			base := 60.0
			if mine == 1 {
				base = 80
			}
			setup = append(setup, scoredMove{move: m, score: base + jitter})

		case total == 0:
			score := 30 + jitter
			if partner, ok := cell.State.Partner(); ok {
				score += 35
				if !b.AtCoord(partner).State.IsCollapsed() {
					score += 20
				}
			}
			score += 10 * float64(ownedNeighbors(b, m.Row, m.Col, p))
			score += 5 * float64(influencedNeighbors(b, m.Row, m.Col, p))
			if core.NewCoordinate(m.Row, m.Col).DistanceTo(center) <= 1 {
				score += 15
			}
			expansion = append(expansion, scoredMove{move: m, score: score})
		}
	}

	bucket := s.chooseBucket(captures, blocks, setup, expansion)
	if len(bucket) == 0 {
		// Only cells we already own are left; any legal move is a wasted
		// placement, so just take one.
		return moves[s.rng.Intn(len(moves))], true
	}

	return pickTopOrSecond(s.rng, bucket, 0.15), true
}

func (s *expertSelector) chooseBucket(captures, blocks, setup, expansion []scoredMove) []scoredMove {
	if len(captures) > 0 {
		return captures
	}
	if len(blocks) > 0 {
		return blocks
	}

	var bucket []scoredMove
	if s.rng.Float64() < 0.7 && len(setup) > 0 {
		bucket = setup
	} else {
		bucket = expansion
	}
	if len(bucket) == 0 {
		bucket = append(append([]scoredMove{}, setup...), expansion...)
	}
	return bucket
}
