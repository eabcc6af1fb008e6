package hint

import (
	"context"
	"errors"
	"testing"

	"svw.info/daytile/internal/domain"
	"svw.info/daytile/internal/ports"
)

type stubSolver struct {
	sol *domain.Solution
	err error
}

func (s *stubSolver) Solve(ctx context.Context, pz *domain.Puzzle) (*domain.Solution, ports.Stats, error) {
	return s.sol, ports.Stats{}, s.err
}

func (s *stubSolver) SolveAll(ctx context.Context, pz *domain.Puzzle) ([]domain.Solution, ports.Stats, error) {
	return nil, ports.Stats{}, nil
}

func TestHintRevealsFirstPlacement(t *testing.T) {
	want := domain.Placement{Piece: "L5", Cells: []domain.Cell{{Row: 0, Col: 0}}}
	h := NewOnePiece(&stubSolver{sol: &domain.Solution{Placements: []domain.Placement{
		want,
		{Piece: "T5"},
	}}})
	pl, ok, err := h.Hint(context.Background(), &domain.Puzzle{})
	if err != nil || !ok {
		t.Fatalf("Hint = %v, %v", ok, err)
	}
	if pl.Piece != want.Piece {
		t.Fatalf("placement = %+v, want %+v", pl, want)
	}
}

func TestHintOnUnsolvableDate(t *testing.T) {
	h := NewOnePiece(&stubSolver{err: domain.ErrUnsolvable})
	_, ok, err := h.Hint(context.Background(), &domain.Puzzle{})
	if err != nil || ok {
		t.Fatalf("Hint = %v, %v; want false, nil", ok, err)
	}
}

func TestHintPropagatesRealErrors(t *testing.T) {
	boom := errors.New("boom")
	h := NewOnePiece(&stubSolver{err: boom})
	_, _, err := h.Hint(context.Background(), &domain.Puzzle{})
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want boom", err)
	}
}
