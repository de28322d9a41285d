package core

const (
	// MinGridSize and MaxGridSize bound the supported board sizes.
	MinGridSize = 5
	MaxGridSize = 8
)

// Board is an N×N grid of cells, stored row-major.
type Board struct {
	Size  int
	Cells []Cell
}

// NewBoard creates an empty board: every cell in superposition with
// zero influence.
func NewBoard(size int) *Board {
	b := &Board{Size: size, Cells: make([]Cell, size*size)}
	for i := range b.Cells {
		b.Cells[i].Row = i / size
		b.Cells[i].Col = i % size
		b.Cells[i].State = Superposition()
	}
	return b
}

// ValidGridSize reports whether size is a supported board size.
func ValidGridSize(size int) bool {
	return size >= MinGridSize && size <= MaxGridSize
}

// Idx converts (row, col) to the flat cell index.
func (b *Board) Idx(row, col int) int { return row*b.Size + col }

// InBounds checks if coordinates are within board boundaries
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.Size && col >= 0 && col < b.Size
}

// At safely returns a cell pointer if coordinates are valid, nil otherwise
func (b *Board) At(row, col int) *Cell {
	if !b.InBounds(row, col) {
		return nil
	}
	return &b.Cells[b.Idx(row, col)]
}

// AtCoord returns the cell at the given coordinate, nil when out of bounds.
func (b *Board) AtCoord(c Coordinate) *Cell { return b.At(c.Row, c.Col) }

// Center returns the board center coordinate (rounded down on even sizes).
func (b *Board) Center() Coordinate {
	return Coordinate{Row: b.Size / 2, Col: b.Size / 2}
}

// IsCorner reports whether (row, col) is one of the four grid corners.
func (b *Board) IsCorner(row, col int) bool {
	last := b.Size - 1
	return (row == 0 || row == last) && (col == 0 || col == last)
}

// IsEdge reports whether (row, col) sits on the boundary but is not a corner.
func (b *Board) IsEdge(row, col int) bool {
	last := b.Size - 1
	onBoundary := row == 0 || row == last || col == 0 || col == last
	return onBoundary && !b.IsCorner(row, col)
}

// CollapsedCount returns how many cells the given player owns.
func (b *Board) CollapsedCount(p Player) int {
	n := 0
	for i := range b.Cells {
		if b.Cells[i].Owner() == p {
			n++
		}
	}
	return n
}

// AllCollapsed reports whether every cell on the board has an owner.
func (b *Board) AllCollapsed() bool {
	for i := range b.Cells {
		if !b.Cells[i].State.IsCollapsed() {
			return false
		}
	}
	return true
}
