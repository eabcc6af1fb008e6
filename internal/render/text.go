// Package render turns a solved board into presentable output: an ASCII
// grid for terminals and a PPM image matching the physical puzzle's colors.
package render

import (
	"strings"

	"svw.info/daytile/internal/domain"
)

// Text renders the board as an ASCII grid, one two-character token per
// cell: the piece name for covered cells, "()" for the excluded date
// cells, "##" for blocked cells and ".." for uncovered open cells.
func Text(pz *domain.Puzzle, sol *domain.Solution) string {
	covered := map[domain.Cell]string{}
	if sol != nil {
		covered = sol.CellMap()
	}
	var b strings.Builder
	for r := 0; r < pz.Board.Rows; r++ {
		for c := 0; c < pz.Board.Cols; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			cell := domain.Cell{Row: r, Col: c}
			switch {
			case !pz.Board.Open(cell):
				b.WriteString("##")
			case pz.IsExcluded(cell):
				b.WriteString("()")
			default:
				if name, ok := covered[cell]; ok {
					b.WriteString(name)
				} else {
					b.WriteString("..")
				}
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
