package ports

import (
	"context"
	"time"

	"svw.info/daytile/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver finds tilings of a puzzle. Solve returns the first solution found
// (domain.ErrUnsolvable if none exists); SolveAll returns every solution in
// discovery order, an empty slice meaning none.
type Solver interface {
	Solve(ctx context.Context, pz *domain.Puzzle) (*domain.Solution, Stats, error)
	SolveAll(ctx context.Context, pz *domain.Puzzle) ([]domain.Solution, Stats, error)
}

// Validator checks a solution against its puzzle: every open non-excluded
// cell covered exactly once, every piece used exactly once.
type Validator interface {
	Validate(ctx context.Context, pz *domain.Puzzle, sol *domain.Solution) (ok bool, conflicts []domain.Cell, err error)
}

// Hinter suggests a single piece placement for a puzzle.
type Hinter interface {
	Hint(ctx context.Context, pz *domain.Puzzle) (domain.Placement, bool, error)
}

// Sweeper solves every date of a year and reports per-day results.
type Sweeper interface {
	Sweep(ctx context.Context, year int) ([]domain.DayResult, Stats, error)
}

// Storage persists and retrieves solved days as JSON.
type Storage interface {
	Save(ctx context.Context, d *domain.SolvedDay) error
	Load(ctx context.Context, id string) (*domain.SolvedDay, error)
	List(ctx context.Context) ([]domain.SolvedDayMeta, error)
}
