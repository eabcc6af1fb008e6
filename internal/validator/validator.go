package validator

import (
	"context"

	"svw.info/daytile/internal/domain"
)

// CoverValidator checks a solution against its puzzle without any search:
// every open non-excluded cell must be covered exactly once, excluded and
// blocked cells never, and every piece must appear in exactly one placement.
type CoverValidator struct{}

func New() *CoverValidator { return &CoverValidator{} }

func (v *CoverValidator) Validate(ctx context.Context, pz *domain.Puzzle, sol *domain.Solution) (bool, []domain.Cell, error) {
	conf := make([]domain.Cell, 0, 8)
	count := make(map[domain.Cell]int)
	usedBy := make(map[string]int)

	for _, pl := range sol.Placements {
		usedBy[pl.Piece]++
		for _, c := range pl.Cells {
			count[c]++
			if count[c] == 2 {
				conf = append(conf, c) // overlap
			}
			if !pz.Board.Open(c) || pz.IsExcluded(c) {
				conf = append(conf, c) // covers a cell that must stay free
			}
		}
	}
	// uncovered cells
	for _, c := range pz.Board.OpenCells() {
		if pz.IsExcluded(c) {
			continue
		}
		if count[c] == 0 {
			conf = append(conf, c)
		}
	}
	// piece-use invariant: each catalog piece placed exactly once
	for _, p := range pz.Pieces {
		switch usedBy[p.Name] {
		case 1:
		case 0:
			conf = append(conf, domain.Cell{Row: -1, Col: -1}) // piece missing
		default:
			for _, pl := range sol.Placements {
				if pl.Piece == p.Name {
					conf = append(conf, pl.Cells...)
				}
			}
		}
	}
	return len(conf) == 0, conf, nil
}
