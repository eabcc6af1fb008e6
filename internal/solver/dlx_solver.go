package solver

import (
	"context"
	"time"

	"svw.info/daytile/internal/domain"
	"svw.info/daytile/internal/matrix"
	"svw.info/daytile/internal/ports"
)

// DLXSolver solves puzzles with Algorithm X over dancing links. It builds
// the exact-cover matrix for the instance and searches it; this is the
// default solver.
type DLXSolver struct{}

func NewDLXSolver() *DLXSolver { return &DLXSolver{} }

func (s *DLXSolver) Solve(ctx context.Context, pz *domain.Puzzle) (*domain.Solution, ports.Stats, error) {
	start := time.Now()
	m, err := matrix.Build(pz)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	var selected []int
	m.DLX.Search(ctx, func(rows []int) bool {
		selected = rows
		return true // first solution only
	})
	st := ports.Stats{Nodes: m.DLX.Nodes(), Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return nil, st, err
	}
	if selected == nil {
		return nil, st, domain.ErrUnsolvable
	}
	sol, err := m.Decode(selected)
	if err != nil {
		return nil, st, err
	}
	return &sol, st, nil
}

// SolveAll enumerates every solution in discovery order. No solutions is
// not an error: the result is an empty slice.
func (s *DLXSolver) SolveAll(ctx context.Context, pz *domain.Puzzle) ([]domain.Solution, ports.Stats, error) {
	start := time.Now()
	m, err := matrix.Build(pz)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	var out []domain.Solution
	var decodeErr error
	m.DLX.Search(ctx, func(rows []int) bool {
		sol, err := m.Decode(rows)
		if err != nil {
			decodeErr = err
			return true
		}
		out = append(out, sol)
		return false // keep searching
	})
	st := ports.Stats{Nodes: m.DLX.Nodes(), Duration: time.Since(start)}
	if decodeErr != nil {
		return nil, st, decodeErr
	}
	if err := ctx.Err(); err != nil {
		return nil, st, err
	}
	return out, st, nil
}
