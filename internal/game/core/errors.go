package core

import "errors"

var (
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrInvalidGridSize    = errors.New("grid size out of range")
	ErrCellClaimed        = errors.New("cell already claimed by opponent")
	ErrWrongPhase         = errors.New("action not allowed in current phase")
	ErrNotYourTurn        = errors.New("not this player's turn")
	ErrBotThinking        = errors.New("bot move is pending")
	ErrInvalidPlayer      = errors.New("invalid player")
)
