package core

import "math/rand"

// CaptureThreshold is the total influence at which an undecided cell
// resolves to an owner.
const CaptureThreshold = 3

// ResolveOwner determines the winner of an undecided cell: strictly greater
// influence wins outright; an exact tie is decided by a fair coin flip.
// The flip is uniform regardless of magnitude.
func ResolveOwner(c *Cell, rng *rand.Rand) Player {
	if dom := c.DominantInfluence(); dom != PlayerNone {
		return dom
	}
	if rng.Intn(2) == 0 {
		return PlayerBlue
	}
	return PlayerRed
}

// Collapse resolves the cell at (row, col) to a definitive owner and severs
// its entanglement bond, if any. When the cell was entangled and the partner
// still links back, the partner is demoted to plain superposition; it keeps
// its accumulated influence and stays independently collapsible. Returns the
// winner and, when a bond was severed, the partner coordinate.
func Collapse(b *Board, row, col int, rng *rand.Rand) (Player, Coordinate, bool) {
	cell := b.At(row, col)
	if cell == nil || cell.State.IsCollapsed() {
		return PlayerNone, Coordinate{}, false
	}

	winner := ResolveOwner(cell, rng)
	severed := false
	var severedAt Coordinate

	if partner, ok := cell.State.Partner(); ok {
		if pc := b.AtCoord(partner); pc != nil && pc.State.IsEntangled() {
			pc.State = Superposition()
			severed = true
			severedAt = partner
		}
	}

	cell.State = Collapsed(winner)
	return winner, severedAt, severed
}
