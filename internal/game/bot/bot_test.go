package bot

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantumgrid/quantumgrid/internal/game/core"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func TestAppendHistory_Cap(t *testing.T) {
	var history []Move
	for i := 0; i < 8; i++ {
		history = AppendHistory(history, Move{Row: i, Col: 0})
	}

	require.Len(t, history, HistoryLimit)
	// Oldest entries dropped, most recent kept in order.
	assert.Equal(t, Move{Row: 3, Col: 0}, history[0])
	assert.Equal(t, Move{Row: 7, Col: 0}, history[4])
}

func TestRepetitionPenalty(t *testing.T) {
	history := []Move{
		{Row: 2, Col: 3},
		{Row: 2, Col: 0},
		{Row: 4, Col: 3},
	}

	tests := []struct {
		name     string
		move     Move
		expected float64
	}{
		{"no overlap", Move{Row: 0, Col: 1}, 0},
		{"row only, two entries", Move{Row: 2, Col: 5}, 20},
		{"col only, two entries", Move{Row: 0, Col: 3}, 20},
		{"exact repeat double counts", Move{Row: 2, Col: 3}, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, repetitionPenalty(tt.move, history, 10))
		})
	}
}

func TestLegalMoves(t *testing.T) {
	b := core.NewBoard(5)
	b.At(0, 0).State = core.Collapsed(core.PlayerRed)
	b.At(1, 1).State = core.Collapsed(core.PlayerBlue)

	moves := legalMoves(b, core.PlayerBlue)

	// Opponent-collapsed cell is excluded; own collapsed cell is legal.
	assert.Len(t, moves, 24)
	assert.NotContains(t, moves, Move{Row: 0, Col: 0})
	assert.Contains(t, moves, Move{Row: 1, Col: 1})
}

func TestChooseMove_EmptyBoard(t *testing.T) {
	for _, d := range []Difficulty{Easy, Medium, Hard, Expert} {
		t.Run(d.String(), func(t *testing.T) {
			b := core.NewBoard(5)
			sel := New(d, testRNG())

			m, ok := sel.ChooseMove(b, core.PlayerRed, nil)
			require.True(t, ok)
			assert.True(t, b.InBounds(m.Row, m.Col), "move %v out of bounds", m)
		})
	}
}

func TestChooseMove_NoLegalMoves(t *testing.T) {
	b := core.NewBoard(5)
	for i := range b.Cells {
		b.Cells[i].State = core.Collapsed(core.PlayerBlue)
	}

	for _, d := range []Difficulty{Easy, Medium, Hard, Expert} {
		t.Run(d.String(), func(t *testing.T) {
			sel := New(d, testRNG())
			_, ok := sel.ChooseMove(b, core.PlayerRed, nil)
			assert.False(t, ok)
		})
	}
}

func TestChooseMove_NeverMutatesBoard(t *testing.T) {
	b := core.NewBoard(6)
	b.At(2, 2).AddInfluence(core.PlayerBlue, 2)
	b.At(3, 3).State = core.Collapsed(core.PlayerRed)

	before := make([]core.Cell, len(b.Cells))
	copy(before, b.Cells)

	for _, d := range []Difficulty{Easy, Medium, Hard, Expert} {
		sel := New(d, testRNG())
		_, ok := sel.ChooseMove(b, core.PlayerBlue, []Move{{Row: 1, Col: 1}})
		require.True(t, ok)
	}

	assert.Equal(t, before, b.Cells)
}

func TestOwnedNeighbors(t *testing.T) {
	b := core.NewBoard(5)
	b.At(1, 1).State = core.Collapsed(core.PlayerRed)
	b.At(1, 3).State = core.Collapsed(core.PlayerRed)
	b.At(3, 3).State = core.Collapsed(core.PlayerBlue)

	assert.Equal(t, 2, ownedNeighbors(b, 2, 2, core.PlayerRed))
	assert.Equal(t, 1, ownedNeighbors(b, 2, 2, core.PlayerBlue))
	assert.Equal(t, 0, ownedNeighbors(b, 4, 0, core.PlayerRed))
}

func TestInfluencedNeighbors(t *testing.T) {
	b := core.NewBoard(5)
	b.At(0, 1).AddInfluence(core.PlayerBlue, 1)
	b.At(1, 0).AddInfluence(core.PlayerBlue, 2)
	b.At(1, 1).AddInfluence(core.PlayerRed, 1)

	assert.Equal(t, 2, influencedNeighbors(b, 0, 0, core.PlayerBlue))
	assert.Equal(t, 1, influencedNeighbors(b, 0, 0, core.PlayerRed))
}

func TestParseDifficulty(t *testing.T) {
	for _, d := range []Difficulty{Easy, Medium, Hard, Expert} {
		parsed, err := ParseDifficulty(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, parsed)
	}

	_, err := ParseDifficulty("nightmare")
	assert.Error(t, err)
}
