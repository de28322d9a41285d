// Package bot implements the computer opponent: four interchangeable
// move-selection policies over read-only board state. Selectors never
// mutate the board; they score candidate cells and return one move.
package bot

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/quantumgrid/quantumgrid/internal/common"
	"github.com/quantumgrid/quantumgrid/internal/game/core"
)

// Difficulty selects which policy a bot plays with.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

// String returns the string representation of a Difficulty
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return fmt.Sprintf("Unknown(%d)", int(d))
	}
}

// ParseDifficulty converts a string to a Difficulty
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	case "expert":
		return Expert, nil
	default:
		return Easy, fmt.Errorf("unknown difficulty %q", s)
	}
}

// Move is a candidate placement.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// HistoryLimit caps the recent-move history used to bias selection away
// from repetition.
const HistoryLimit = 5

// AppendHistory appends a move to the history, dropping the oldest entry
// beyond HistoryLimit.
func AppendHistory(history []Move, m Move) []Move {
	history = append(history, m)
	if len(history) > HistoryLimit {
		history = history[len(history)-HistoryLimit:]
	}
	return history
}

// Selector chooses one move per invocation. The boolean result is false
// only when no cell is legally influenceable.
type Selector interface {
	Difficulty() Difficulty
	ChooseMove(b *core.Board, p core.Player, history []Move) (Move, bool)
}

// New returns the selector for the given difficulty, drawing all
// randomness from rng.
func New(d Difficulty, rng *rand.Rand) Selector {
	switch d {
	case Medium:
		return &mediumSelector{rng: rng}
	case Hard:
		return &hardSelector{rng: rng}
	case Expert:
		return &expertSelector{rng: rng}
	default:
		return &easySelector{rng: rng}
	}
}

// repetitionWeight is the full-strength penalty unit; harder tiers scale
// it down so tactics dominate over variety.
const repetitionWeight = 10.0

// repetitionPenalty discourages clustering consecutive moves on the same
// line: one weight per history entry sharing the row, one per entry sharing
// the column, and one more when both match exactly.
func repetitionPenalty(m Move, history []Move, weight float64) float64 {
	penalty := 0.0
	for _, h := range history {
		if h.Row == m.Row {
			penalty += weight
		}
		if h.Col == m.Col {
			penalty += weight
		}
		if h.Row == m.Row && h.Col == m.Col {
			penalty += weight
		}
	}
	return penalty
}

// legalMoves returns every cell the player may influence: anything not
// collapsed by the opponent.
func legalMoves(b *core.Board, p core.Player) []Move {
	moves := make([]Move, 0, len(b.Cells))
	opponent := p.Opposite()
	for i := range b.Cells {
		c := &b.Cells[i]
		if c.Owner() == opponent {
			continue
		}
		moves = append(moves, Move{Row: c.Row, Col: c.Col})
	}
	return moves
}

// ownedNeighbors counts the 8-neighborhood cells already collapsed to p.
func ownedNeighbors(b *core.Board, row, col int, p core.Player) int {
	n := 0
	for _, nc := range core.NewCoordinate(row, col).ValidNeighbors8(b.Size) {
		if b.AtCoord(nc).Owner() == p {
			n++
		}
	}
	return n
}

// influencedNeighbors counts the 8-neighborhood cells where p already has
// any influence.
func influencedNeighbors(b *core.Board, row, col int, p core.Player) int {
	n := 0
	for _, nc := range core.NewCoordinate(row, col).ValidNeighbors8(b.Size) {
		if b.AtCoord(nc).InfluenceOf(p) > 0 {
			n++
		}
	}
	return n
}

type scoredMove struct {
	move  Move
	score float64
}

func sortByScore(moves []scoredMove) {
	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].score > moves[j].score
	})
}

// pickAmongTop sorts descending and returns one of the best topN moves
// uniformly at random.
func pickAmongTop(rng *rand.Rand, scored []scoredMove, topN int) Move {
	sortByScore(scored)
	topN = common.Min(topN, len(scored))
	return scored[rng.Intn(topN)].move
}

// pickTopOrSecond returns the best move, or the runner-up with the given
// probability when one exists.
func pickTopOrSecond(rng *rand.Rand, scored []scoredMove, secondChance float64) Move {
	sortByScore(scored)
	if len(scored) > 1 && rng.Float64() < secondChance {
		return scored[1].move
	}
	return scored[0].move
}
