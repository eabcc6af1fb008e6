package solver

import (
	"context"
	"fmt"
	"time"

	"svw.info/daytile/internal/domain"
	"svw.info/daytile/internal/ports"
)

// BruteSolver is a straightforward recursive solver used to cross-validate
// DLXSolver: it repeatedly picks the first uncovered open cell in row-major
// order and tries every placement of an unused piece that covers it. Same
// interface, same output shape, no dancing links.
type BruteSolver struct{}

func NewBruteSolver() *BruteSolver { return &BruteSolver{} }

func (s *BruteSolver) Solve(ctx context.Context, pz *domain.Puzzle) (*domain.Solution, ports.Stats, error) {
	start := time.Now()
	var sol *domain.Solution
	nodes, err := s.run(ctx, pz, func(stack []domain.Placement) bool {
		cp := make([]domain.Placement, len(stack))
		copy(cp, stack)
		sol = &domain.Solution{Placements: cp}
		return true
	})
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err != nil {
		return nil, st, err
	}
	if err := ctx.Err(); err != nil {
		return nil, st, err
	}
	if sol == nil {
		return nil, st, domain.ErrUnsolvable
	}
	return sol, st, nil
}

func (s *BruteSolver) SolveAll(ctx context.Context, pz *domain.Puzzle) ([]domain.Solution, ports.Stats, error) {
	start := time.Now()
	var out []domain.Solution
	nodes, err := s.run(ctx, pz, func(stack []domain.Placement) bool {
		cp := make([]domain.Placement, len(stack))
		copy(cp, stack)
		out = append(out, domain.Solution{Placements: cp})
		return false
	})
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err != nil {
		return nil, st, err
	}
	if err := ctx.Err(); err != nil {
		return nil, st, err
	}
	return out, st, nil
}

// run enumerates complete tilings, passing each placement stack to emit.
// emit returns true to stop the search.
func (s *BruteSolver) run(ctx context.Context, pz *domain.Puzzle, emit func([]domain.Placement) bool) (int, error) {
	for _, p := range pz.Pieces {
		if err := domain.ValidateShape(p.Shape); err != nil {
			return 0, fmt.Errorf("piece %s: %w", p.Name, err)
		}
	}
	for _, e := range pz.Excluded {
		if !pz.Board.Open(e) {
			return 0, fmt.Errorf("%w: (%d,%d)", domain.ErrInvalidExcludedCell, e.Row, e.Col)
		}
	}

	cellIdx := make(map[domain.Cell]int)
	var cells []domain.Cell
	for _, c := range pz.Board.OpenCells() {
		if pz.IsExcluded(c) {
			continue
		}
		cellIdx[c] = len(cells)
		cells = append(cells, c)
	}

	var placements []domain.Placement
	var pieceOf []int // placement -> piece index
	byCell := make([][]int, len(cells))
	for i, piece := range pz.Pieces {
		for _, pl := range domain.PlacementsFor(piece, pz.Board, pz.Excluded) {
			id := len(placements)
			placements = append(placements, pl)
			pieceOf = append(pieceOf, i)
			for _, c := range pl.Cells {
				byCell[cellIdx[c]] = append(byCell[cellIdx[c]], id)
			}
		}
	}

	covered := make([]bool, len(cells))
	used := make([]bool, len(pz.Pieces))
	remaining := len(cells)
	nodes := 0
	var stack []domain.Placement

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return true
		}
		if remaining == 0 {
			return emit(stack)
		}
		target := -1
		for i, cov := range covered {
			if !cov {
				target = i
				break
			}
		}
	trials:
		for _, id := range byCell[target] {
			if used[pieceOf[id]] {
				continue
			}
			pl := placements[id]
			for _, c := range pl.Cells {
				if covered[cellIdx[c]] {
					continue trials
				}
			}
			nodes++
			for _, c := range pl.Cells {
				covered[cellIdx[c]] = true
			}
			used[pieceOf[id]] = true
			remaining -= len(pl.Cells)
			stack = append(stack, pl)

			if dfs() {
				return true
			}

			stack = stack[:len(stack)-1]
			remaining += len(pl.Cells)
			used[pieceOf[id]] = false
			for _, c := range pl.Cells {
				covered[cellIdx[c]] = false
			}
		}
		return false
	}
	_ = dfs()
	return nodes, nil
}
