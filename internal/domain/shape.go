package domain

import (
	"fmt"
	"sort"
)

// Normalize translates a shape so its minimal row and column are zero and
// sorts it row-major. The result is the canonical form used to compare
// orientations for equality.
func Normalize(s Shape) Shape {
	if len(s) == 0 {
		return Shape{}
	}
	minR, minC := s[0].Row, s[0].Col
	for _, c := range s[1:] {
		if c.Row < minR {
			minR = c.Row
		}
		if c.Col < minC {
			minC = c.Col
		}
	}
	out := make(Shape, len(s))
	for i, c := range s {
		out[i] = Cell{Row: c.Row - minR, Col: c.Col - minC}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// rotate turns a shape 90 degrees clockwise.
func rotate(s Shape) Shape {
	out := make(Shape, len(s))
	for i, c := range s {
		out[i] = Cell{Row: c.Col, Col: -c.Row}
	}
	return out
}

// mirror flips a shape horizontally.
func mirror(s Shape) Shape {
	out := make(Shape, len(s))
	for i, c := range s {
		out[i] = Cell{Row: c.Row, Col: -c.Col}
	}
	return out
}

func shapeKey(s Shape) string {
	return fmt.Sprint(s)
}

// Orientations returns the symmetry orbit of a shape: the 4 rotations and
// their mirror images, normalized and deduplicated. A fully symmetric shape
// (e.g. a square) yields a single orientation; an asymmetric one up to 8.
// Order is generation order with first occurrence kept, so it is stable for
// a given input shape.
func Orientations(s Shape) []Shape {
	seen := make(map[string]bool, 8)
	out := make([]Shape, 0, 8)
	cur := s
	for m := 0; m < 2; m++ {
		for r := 0; r < 4; r++ {
			n := Normalize(cur)
			if k := shapeKey(n); !seen[k] {
				seen[k] = true
				out = append(out, n)
			}
			cur = rotate(cur)
		}
		cur = mirror(cur)
	}
	return out
}

// PlacementsFor enumerates every legal placement of a piece on the board:
// each orientation anchored at each translation such that all occupied
// cells are open board cells and none is excluded. Overlap between pieces
// is not checked here; that is the exact-cover matrix's job.
// Enumeration order is deterministic: orientation order, then anchors
// row-major.
func PlacementsFor(p Piece, b Board, excluded []Cell) []Placement {
	isExcluded := make(map[Cell]bool, len(excluded))
	for _, c := range excluded {
		isExcluded[c] = true
	}
	var out []Placement
	for _, o := range Orientations(p.Shape) {
		for r := 0; r < b.Rows; r++ {
		anchors:
			for c := 0; c < b.Cols; c++ {
				cells := make([]Cell, len(o))
				for i, off := range o {
					cell := Cell{Row: off.Row + r, Col: off.Col + c}
					if !b.Open(cell) || isExcluded[cell] {
						continue anchors
					}
					cells[i] = cell
				}
				out = append(out, Placement{Piece: p.Name, Cells: cells})
			}
		}
	}
	return out
}
