package game

import (
	"math/rand"

	"github.com/quantumgrid/quantumgrid/internal/common"
	"github.com/quantumgrid/quantumgrid/internal/game/core"
)

// Pair links two distinct cells into an entangled bond.
type Pair struct {
	A, B core.Coordinate
}

// PairCount returns how many entangled pairs a board of the given size
// starts with.
func PairCount(gridSize int) int {
	return common.Max(2, gridSize/2)
}

// GeneratePairs selects pairCount disjoint cell pairs uniformly at random
// without replacement. Every involved cell is distinct, so the resulting
// relation is symmetric and irreflexive by construction.
func GeneratePairs(gridSize, pairCount int, rng *rand.Rand) []Pair {
	perm := rng.Perm(gridSize * gridSize)
	pairs := make([]Pair, 0, pairCount)
	for i := 0; i < pairCount; i++ {
		pairs = append(pairs, Pair{
			A: core.FromIndex(perm[2*i], gridSize),
			B: core.FromIndex(perm[2*i+1], gridSize),
		})
	}
	return pairs
}

// applyPairs marks each pair mutually entangled on the board.
func applyPairs(b *core.Board, pairs []Pair) {
	for _, p := range pairs {
		b.AtCoord(p.A).State = core.Entangled(p.B)
		b.AtCoord(p.B).State = core.Entangled(p.A)
	}
}
