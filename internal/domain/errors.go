package domain

import "errors"

// Sentinel errors. Construction-time errors (invalid shapes, invalid
// excluded cells) abort before any search begins. ErrUnsolvable is a normal
// negative result from an exhausted search, not a fault. ErrMalformedSolution
// indicates an internal consistency bug and must never be conflated with
// ErrUnsolvable.
var (
	ErrInvalidPieceShape   = errors.New("invalid piece shape")
	ErrInvalidExcludedCell = errors.New("excluded cell outside board")
	ErrUnsolvable          = errors.New("no solution")
	ErrMalformedSolution   = errors.New("malformed solution")
)
