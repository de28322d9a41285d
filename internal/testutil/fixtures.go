package testutil

import (
	"math/rand"

	"github.com/quantumgrid/quantumgrid/internal/game/core"
)

// RNG returns a deterministic random source for tests.
func RNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Board creates an empty test board of the given size.
func Board(size int) *core.Board {
	return core.NewBoard(size)
}

// BoardWithInfluence creates a board and credits the given influence,
// keyed by coordinate: [blue, red] counts per cell.
func BoardWithInfluence(size int, influence map[core.Coordinate][2]int) *core.Board {
	b := core.NewBoard(size)
	for coord, inf := range influence {
		c := b.AtCoord(coord)
		c.AddInfluence(core.PlayerBlue, inf[0])
		c.AddInfluence(core.PlayerRed, inf[1])
	}
	return b
}

// EntanglePair marks two cells mutually entangled.
func EntanglePair(b *core.Board, a, p core.Coordinate) {
	b.AtCoord(a).State = core.Entangled(p)
	b.AtCoord(p).State = core.Entangled(a)
}

// CollapseAll resolves every undecided cell with the given rng so scoring
// paths can be exercised directly.
func CollapseAll(b *core.Board, rng *rand.Rand) {
	for i := range b.Cells {
		c := &b.Cells[i]
		if !c.State.IsCollapsed() {
			core.Collapse(b, c.Row, c.Col, rng)
		}
	}
}
