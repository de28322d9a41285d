package core

import "fmt"

// Coordinate represents a cell position on the board (row-major)
type Coordinate struct {
	Row, Col int
}

// NewCoordinate creates a new coordinate with the given row and column
func NewCoordinate(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col}
}

// FromIndex creates a coordinate from a flat board index
func FromIndex(idx, size int) Coordinate {
	return Coordinate{
		Row: idx / size,
		Col: idx % size,
	}
}

// ToIndex converts the coordinate to a flat board index
func (c Coordinate) ToIndex(size int) int {
	return c.Row*size + c.Col
}

// IsValid checks if the coordinate is within an N×N board
func (c Coordinate) IsValid(size int) bool {
	return c.Row >= 0 && c.Row < size && c.Col >= 0 && c.Col < size
}

// DistanceTo calculates the Manhattan distance to another coordinate
func (c Coordinate) DistanceTo(other Coordinate) int {
	dr := c.Row - other.Row
	dc := c.Col - other.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// Equal checks if two coordinates are equal
func (c Coordinate) Equal(other Coordinate) bool {
	return c.Row == other.Row && c.Col == other.Col
}

// Neighbors4 returns the four orthogonal neighbors of this coordinate
func (c Coordinate) Neighbors4() []Coordinate {
	return []Coordinate{
		{Row: c.Row - 1, Col: c.Col},
		{Row: c.Row, Col: c.Col + 1},
		{Row: c.Row + 1, Col: c.Col},
		{Row: c.Row, Col: c.Col - 1},
	}
}

// Neighbors8 returns all eight surrounding coordinates, diagonals included
func (c Coordinate) Neighbors8() []Coordinate {
	out := make([]Coordinate, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			out = append(out, Coordinate{Row: c.Row + dr, Col: c.Col + dc})
		}
	}
	return out
}

// ValidNeighbors4 returns the orthogonal neighbors that fall inside an N×N board
func (c Coordinate) ValidNeighbors4(size int) []Coordinate {
	neighbors := c.Neighbors4()
	valid := make([]Coordinate, 0, 4)
	for _, n := range neighbors {
		if n.IsValid(size) {
			valid = append(valid, n)
		}
	}
	return valid
}

// ValidNeighbors8 returns the surrounding coordinates that fall inside an N×N board
func (c Coordinate) ValidNeighbors8(size int) []Coordinate {
	neighbors := c.Neighbors8()
	valid := make([]Coordinate, 0, 8)
	for _, n := range neighbors {
		if n.IsValid(size) {
			valid = append(valid, n)
		}
	}
	return valid
}

// String returns a string representation of the coordinate
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}
