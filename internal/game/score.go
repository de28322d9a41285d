package game

import "github.com/quantumgrid/quantumgrid/internal/game/core"

// minBonusRegion is the smallest connected region that earns a territory
// bonus.
const minBonusRegion = 4

// ScoreBreakdown is one player's final score decomposition.
type ScoreBreakdown struct {
	Base          int // collapsed cells owned
	LargestRegion int // biggest 4-connected same-owner region
	Bonus         int // LargestRegion/2 when the region reaches minBonusRegion
	Total         int
}

// ScoreBoard computes the end-of-game scores for both players over a fully
// collapsed board. Base is the owned-cell count; the bonus rewards only the
// single largest orthogonally connected region.
func ScoreBoard(b *core.Board) (blue, red ScoreBreakdown) {
	blue = scorePlayer(b, core.PlayerBlue)
	red = scorePlayer(b, core.PlayerRed)
	return blue, red
}

func scorePlayer(b *core.Board, p core.Player) ScoreBreakdown {
	s := ScoreBreakdown{
		Base:          b.CollapsedCount(p),
		LargestRegion: largestRegion(b, p),
	}
	if s.LargestRegion >= minBonusRegion {
		s.Bonus = s.LargestRegion / 2
	}
	s.Total = s.Base + s.Bonus
	return s
}

// largestRegion flood-fills the player's owned cells (4-connected, no
// diagonals) and returns the biggest component size.
func largestRegion(b *core.Board, p core.Player) int {
	visited := make([]bool, len(b.Cells))
	best := 0

	for i := range b.Cells {
		if visited[i] || b.Cells[i].Owner() != p {
			continue
		}

		size := 0
		stack := []core.Coordinate{core.FromIndex(i, b.Size)}
		visited[i] = true
		for len(stack) > 0 {
			c := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			size++

			for _, n := range c.ValidNeighbors4(b.Size) {
				idx := n.ToIndex(b.Size)
				if !visited[idx] && b.Cells[idx].Owner() == p {
					visited[idx] = true
					stack = append(stack, n)
				}
			}
		}
		if size > best {
			best = size
		}
	}
	return best
}
