package core

import "fmt"

// Player identifies a side on the board. PlayerNone is the "no owner /
// no influence" sentinel; it never acts and never owns a collapsed cell.
type Player int

const (
	PlayerNone Player = iota
	PlayerBlue
	PlayerRed
)

// String returns the string representation of a Player
func (p Player) String() string {
	switch p {
	case PlayerBlue:
		return "blue"
	case PlayerRed:
		return "red"
	case PlayerNone:
		return "none"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}

// Opposite returns the other side. The sentinel maps to itself.
func (p Player) Opposite() Player {
	switch p {
	case PlayerBlue:
		return PlayerRed
	case PlayerRed:
		return PlayerBlue
	default:
		return PlayerNone
	}
}

// IsActor reports whether the player is a real side (blue or red)
// rather than the sentinel.
func (p Player) IsActor() bool {
	return p == PlayerBlue || p == PlayerRed
}

// ParsePlayer converts a string to a Player
func ParsePlayer(s string) (Player, error) {
	switch s {
	case "blue":
		return PlayerBlue, nil
	case "red":
		return PlayerRed, nil
	case "none":
		return PlayerNone, nil
	default:
		return PlayerNone, fmt.Errorf("unknown player %q", s)
	}
}
