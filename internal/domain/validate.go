package domain

import "fmt"

// ValidateShape checks a piece shape definition: it must be non-empty,
// contain no duplicate offsets, and be edge-connected. Invalid shapes fail
// fast at load, before any matrix is built.
func ValidateShape(s Shape) error {
	if len(s) == 0 {
		return fmt.Errorf("%w: empty shape", ErrInvalidPieceShape)
	}
	seen := make(map[Cell]bool, len(s))
	for _, c := range s {
		if seen[c] {
			return fmt.Errorf("%w: duplicate offset %v", ErrInvalidPieceShape, c)
		}
		seen[c] = true
	}
	// flood fill from the first offset
	reached := make(map[Cell]bool, len(s))
	stack := []Cell{s[0]}
	reached[s[0]] = true
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range []Cell{
			{c.Row - 1, c.Col}, {c.Row + 1, c.Col},
			{c.Row, c.Col - 1}, {c.Row, c.Col + 1},
		} {
			if seen[n] && !reached[n] {
				reached[n] = true
				stack = append(stack, n)
			}
		}
	}
	if len(reached) != len(s) {
		return fmt.Errorf("%w: disconnected shape", ErrInvalidPieceShape)
	}
	return nil
}
