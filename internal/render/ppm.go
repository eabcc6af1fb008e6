package render

import (
	"fmt"
	"strconv"
	"strings"

	"svw.info/daytile/internal/domain"
)

// CellSizePx is the rendered edge length of one board cell.
const CellSizePx = 50

func hexToRGB(s string) (r, g, b int) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return 0, 0, 0
	}
	rr, _ := strconv.ParseUint(s[0:2], 16, 8)
	gg, _ := strconv.ParseUint(s[2:4], 16, 8)
	bb, _ := strconv.ParseUint(s[4:6], 16, 8)
	return int(rr), int(gg), int(bb)
}

// PPM renders the solved board as a plain-text PPM (P3) image. Covered
// cells take their piece's catalog color; everything else (blocked,
// excluded, uncovered) is black.
func PPM(pz *domain.Puzzle, sol *domain.Solution) []byte {
	colorOf := make(map[string]string, len(pz.Pieces))
	for _, p := range pz.Pieces {
		colorOf[p.Name] = p.Color
	}
	covered := map[domain.Cell]string{}
	if sol != nil {
		covered = sol.CellMap()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "P3\n%d %d\n255\n", pz.Board.Cols*CellSizePx, pz.Board.Rows*CellSizePx)
	for r := 0; r < pz.Board.Rows; r++ {
		// precompute one pixel row of this board row, reuse it CellSizePx times
		var line strings.Builder
		for c := 0; c < pz.Board.Cols; c++ {
			red, green, blue := 0, 0, 0
			if name, ok := covered[domain.Cell{Row: r, Col: c}]; ok {
				red, green, blue = hexToRGB(colorOf[name])
			}
			px := fmt.Sprintf("%d %d %d\n", red, green, blue)
			for i := 0; i < CellSizePx; i++ {
				line.WriteString(px)
			}
		}
		for i := 0; i < CellSizePx; i++ {
			b.WriteString(line.String())
		}
	}
	return []byte(b.String())
}
