// Package matrix translates one puzzle configuration into an exact-cover
// instance and decodes selected rows back into placements.
//
// Columns: one per open non-excluded board cell in row-major order, then
// one per piece in declaration order (each piece must be placed exactly
// once). Rows: every legal placement, in piece order, then orientation
// order, then anchor row-major. The ordering is stable so solver output is
// reproducible.
package matrix

import (
	"fmt"

	"svw.info/daytile/internal/dlx"
	"svw.info/daytile/internal/domain"
)

// Problem binds a dancing-links instance to its board meaning.
type Problem struct {
	DLX *dlx.Problem

	placements []domain.Placement // row index -> placement
	cells      []domain.Cell      // cell column index -> cell
}

// Build constructs the exact-cover instance for a puzzle. Piece shapes and
// excluded cells are validated here, before any structure is built; an
// excluded cell that is off the board (or blocked) is ErrInvalidExcludedCell.
// Feasibility is not checked — an untileable configuration simply produces
// a search with no complete cover.
func Build(pz *domain.Puzzle) (*Problem, error) {
	for _, p := range pz.Pieces {
		if err := domain.ValidateShape(p.Shape); err != nil {
			return nil, fmt.Errorf("piece %s: %w", p.Name, err)
		}
	}
	for _, e := range pz.Excluded {
		if !pz.Board.Open(e) {
			return nil, fmt.Errorf("%w: (%d,%d)", domain.ErrInvalidExcludedCell, e.Row, e.Col)
		}
	}

	cellCol := make(map[domain.Cell]int)
	var cells []domain.Cell
	for _, c := range pz.Board.OpenCells() {
		if pz.IsExcluded(c) {
			continue
		}
		cellCol[c] = len(cells)
		cells = append(cells, c)
	}

	m := &Problem{
		DLX:   dlx.New(len(cells) + len(pz.Pieces)),
		cells: cells,
	}
	for i, piece := range pz.Pieces {
		pieceCol := len(cells) + i
		for _, pl := range domain.PlacementsFor(piece, pz.Board, pz.Excluded) {
			cols := make([]int, 0, len(pl.Cells)+1)
			for _, c := range pl.Cells {
				cols = append(cols, cellCol[c])
			}
			cols = append(cols, pieceCol)
			m.DLX.AddRow(cols...)
			m.placements = append(m.placements, pl)
		}
	}
	return m, nil
}

// NumCellColumns returns the number of cell constraint columns.
func (m *Problem) NumCellColumns() int { return len(m.cells) }

// Placement returns the placement a candidate row stands for.
func (m *Problem) Placement(row int) domain.Placement { return m.placements[row] }

// Decode maps a complete cover's selected rows back into a solution,
// keeping search order. Two placements claiming the same cell is
// ErrMalformedSolution — a defensive assertion; it cannot occur if the
// engine's cover/uncover invariants hold.
func (m *Problem) Decode(rows []int) (domain.Solution, error) {
	sol := domain.Solution{Placements: make([]domain.Placement, 0, len(rows))}
	claimed := make(map[domain.Cell]string)
	for _, r := range rows {
		pl := m.placements[r]
		for _, c := range pl.Cells {
			if prev, ok := claimed[c]; ok {
				return domain.Solution{}, fmt.Errorf("%w: cell (%d,%d) claimed by %s and %s",
					domain.ErrMalformedSolution, c.Row, c.Col, prev, pl.Piece)
			}
			claimed[c] = pl.Piece
		}
		sol.Placements = append(sol.Placements, pl)
	}
	return sol, nil
}
