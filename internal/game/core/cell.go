package core

import "fmt"

// StateKind tags the variant held by a QuantumState.
type StateKind int

const (
	// KindSuperposition - undecided, accumulating influence
	KindSuperposition StateKind = iota

	// KindEntangled - undecided, linked to exactly one partner cell
	KindEntangled

	// KindCollapsed - permanently resolved to an owner
	KindCollapsed
)

// String returns the string representation of a StateKind
func (k StateKind) String() string {
	switch k {
	case KindSuperposition:
		return "superposition"
	case KindEntangled:
		return "entangled"
	case KindCollapsed:
		return "collapsed"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// QuantumState is a closed sum over the three cell states. The owner payload
// exists only for collapsed cells and the partner payload only for entangled
// ones; use the constructors so the illegal combinations cannot be built.
type QuantumState struct {
	kind    StateKind
	owner   Player
	partner Coordinate
}

// Superposition returns the undecided, unlinked state.
func Superposition() QuantumState {
	return QuantumState{kind: KindSuperposition}
}

// Entangled returns an undecided state linked to the partner cell.
func Entangled(partner Coordinate) QuantumState {
	return QuantumState{kind: KindEntangled, partner: partner}
}

// Collapsed returns the resolved state. Owner must be blue or red.
func Collapsed(owner Player) QuantumState {
	if !owner.IsActor() {
		panic("core: collapsed cell requires a blue or red owner")
	}
	return QuantumState{kind: KindCollapsed, owner: owner}
}

// Kind returns the variant tag.
func (s QuantumState) Kind() StateKind { return s.kind }

// IsCollapsed reports whether the state is resolved to an owner.
func (s QuantumState) IsCollapsed() bool { return s.kind == KindCollapsed }

// IsEntangled reports whether the state is linked to a partner.
func (s QuantumState) IsEntangled() bool { return s.kind == KindEntangled }

// Owner returns the resolved owner, or PlayerNone when undecided.
func (s QuantumState) Owner() Player {
	if s.kind == KindCollapsed {
		return s.owner
	}
	return PlayerNone
}

// Partner returns the linked cell and true when the state is entangled.
func (s QuantumState) Partner() (Coordinate, bool) {
	if s.kind == KindEntangled {
		return s.partner, true
	}
	return Coordinate{}, false
}

// String returns a string representation of the state
func (s QuantumState) String() string {
	switch s.kind {
	case KindCollapsed:
		return fmt.Sprintf("collapsed(%s)", s.owner)
	case KindEntangled:
		return fmt.Sprintf("entangled%s", s.partner)
	default:
		return "superposition"
	}
}

// Cell is a single square on the grid.
// Influence counters only ever grow; ownership is decided by collapse.
type Cell struct {
	Row, Col      int
	State         QuantumState
	InfluenceBlue int
	InfluenceRed  int
}

// ID returns the cell identity row*size+col.
func (c *Cell) ID(size int) int { return c.Row*size + c.Col }

// Coord returns the cell position.
func (c *Cell) Coord() Coordinate { return Coordinate{Row: c.Row, Col: c.Col} }

// Owner returns the collapsed owner, or PlayerNone while undecided.
func (c *Cell) Owner() Player { return c.State.Owner() }

// TotalInfluence returns the combined influence of both players.
func (c *Cell) TotalInfluence() int { return c.InfluenceBlue + c.InfluenceRed }

// IsEmpty reports whether the cell has received no influence yet.
func (c *Cell) IsEmpty() bool { return c.TotalInfluence() == 0 }

// InfluenceOf returns the influence the given player has on this cell.
func (c *Cell) InfluenceOf(p Player) int {
	switch p {
	case PlayerBlue:
		return c.InfluenceBlue
	case PlayerRed:
		return c.InfluenceRed
	default:
		return 0
	}
}

// DominantInfluence returns the player with strictly more influence,
// or PlayerNone on a tie.
func (c *Cell) DominantInfluence() Player {
	switch {
	case c.InfluenceBlue > c.InfluenceRed:
		return PlayerBlue
	case c.InfluenceRed > c.InfluenceBlue:
		return PlayerRed
	default:
		return PlayerNone
	}
}

// AddInfluence credits n influence to the given player.
func (c *Cell) AddInfluence(p Player, n int) {
	switch p {
	case PlayerBlue:
		c.InfluenceBlue += n
	case PlayerRed:
		c.InfluenceRed += n
	}
}
