// Package sweep solves every real date of a year, reporting which days are
// tileable and how much work each one took. Useful for verifying a piece
// catalog covers the whole calendar.
package sweep

import (
	"context"
	"errors"
	"time"

	"svw.info/daytile/internal/domain"
	"svw.info/daytile/internal/ports"
	"svw.info/daytile/internal/puzzle"
)

// YearSweeper runs the provided solver over each date of a year.
type YearSweeper struct {
	Solver ports.Solver
}

func NewYearSweeper(s ports.Solver) *YearSweeper { return &YearSweeper{Solver: s} }

func (y *YearSweeper) Sweep(ctx context.Context, year int) ([]domain.DayResult, ports.Stats, error) {
	start := time.Now()
	nodes := 0
	var out []domain.DayResult
	for d := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC); d.Year() == year; d = d.AddDate(0, 0, 1) {
		if err := ctx.Err(); err != nil {
			return out, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		pz, err := puzzle.ForDate(d)
		if err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		_, st, err := y.Solver.Solve(ctx, pz)
		nodes += st.Nodes
		solvable := err == nil
		if err != nil && !errors.Is(err, domain.ErrUnsolvable) {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		out = append(out, domain.DayResult{
			Date:     d.Format("2006-01-02"),
			Solvable: solvable,
			Nodes:    st.Nodes,
		})
	}
	return out, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
