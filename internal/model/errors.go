package model

import "errors"

// Common errors used across the application
var (
	// Cell errors
	ErrImmutable     = errors.New("immutable field cannot be reassigned")
	ErrInvalidLetter = errors.New("invalid letter")

	// Layout errors
	ErrLayout = errors.New("invalid page layout")

	// Input errors
	ErrUnknownTarget   = errors.New("unknown click target")
	ErrRequestInFlight = errors.New("a best move request is already in flight")

	// Solver errors
	ErrSolverUnavailable    = errors.New("solver unavailable")
	ErrInvalidResponseShape = errors.New("invalid solver response")

	// Cache errors
	ErrMoveNotCached = errors.New("move not cached")
)
