package model

import "errors"

// Common errors used across the application
var (
	// Board and match errors
	ErrOutOfRange    = errors.New("position out of range")
	ErrSpaceOccupied = errors.New("space is already occupied")
	ErrMatchOver     = errors.New("match is already over")
	ErrInvalidBoard  = errors.New("invalid board")

	// Match driver errors
	ErrInvalidSeat = errors.New("seat needs exactly one of a strategy or a move source")

	// Strategy errors
	ErrNoLegalMove       = errors.New("no legal move available")
	ErrUnknownDifficulty = errors.New("unknown difficulty")

	// Storage errors
	ErrMatchNotFound = errors.New("match not found")
)
