package sweep

import (
	"context"
	"testing"

	"svw.info/daytile/internal/domain"
	"svw.info/daytile/internal/ports"
)

// stubSolver counts calls; it reports every date as solvable or none,
// depending on allDates.
type stubSolver struct {
	calls    int
	allDates bool
}

func (s *stubSolver) Solve(ctx context.Context, pz *domain.Puzzle) (*domain.Solution, ports.Stats, error) {
	s.calls++
	st := ports.Stats{Nodes: 1}
	if s.allDates {
		return &domain.Solution{}, st, nil
	}
	return nil, st, domain.ErrUnsolvable
}

func (s *stubSolver) SolveAll(ctx context.Context, pz *domain.Puzzle) ([]domain.Solution, ports.Stats, error) {
	return nil, ports.Stats{}, nil
}

func TestSweepVisitsEveryDay(t *testing.T) {
	cases := []struct {
		year int
		days int
	}{
		{2025, 365},
		{2024, 366}, // leap year
	}
	for _, tc := range cases {
		st := &stubSolver{allDates: true}
		out, stats, err := NewYearSweeper(st).Sweep(context.Background(), tc.year)
		if err != nil {
			t.Fatalf("Sweep(%d) failed: %v", tc.year, err)
		}
		if len(out) != tc.days || st.calls != tc.days {
			t.Fatalf("Sweep(%d) visited %d days (%d calls), want %d", tc.year, len(out), st.calls, tc.days)
		}
		if stats.Nodes != tc.days {
			t.Fatalf("nodes = %d, want %d", stats.Nodes, tc.days)
		}
		for _, d := range out {
			if !d.Solvable {
				t.Fatalf("day %s reported unsolvable by all-solvable stub", d.Date)
			}
		}
	}
}

func TestSweepReportsUnsolvableDays(t *testing.T) {
	st := &stubSolver{}
	out, _, err := NewYearSweeper(st).Sweep(context.Background(), 2025)
	if err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}
	for _, d := range out {
		if d.Solvable {
			t.Fatalf("day %s reported solvable by never-solvable stub", d.Date)
		}
	}
}

func TestSweepStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := NewYearSweeper(&stubSolver{allDates: true}).Sweep(ctx, 2025)
	if err == nil {
		t.Fatal("expected context error")
	}
}
