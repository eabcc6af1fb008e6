package validator

import (
	"context"
	"testing"

	"svw.info/daytile/internal/domain"
)

// 2x2 board, two dominoes, no exclusions.
func fixture() (*domain.Puzzle, *domain.Solution) {
	pz := &domain.Puzzle{
		Board: domain.NewBoard(2, 2),
		Pieces: []domain.Piece{
			{Name: "A", Shape: domain.Shape{{Row: 0, Col: 0}, {Row: 0, Col: 1}}},
			{Name: "B", Shape: domain.Shape{{Row: 0, Col: 0}, {Row: 0, Col: 1}}},
		},
	}
	sol := &domain.Solution{Placements: []domain.Placement{
		{Piece: "A", Cells: []domain.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}}},
		{Piece: "B", Cells: []domain.Cell{{Row: 1, Col: 0}, {Row: 1, Col: 1}}},
	}}
	return pz, sol
}

func TestValidateAcceptsExactCover(t *testing.T) {
	pz, sol := fixture()
	ok, conf, err := New().Validate(context.Background(), pz, sol)
	if err != nil || !ok {
		t.Fatalf("Validate = %v, conflicts %v, err %v", ok, conf, err)
	}
}

func TestValidateFlagsOverlap(t *testing.T) {
	pz, sol := fixture()
	sol.Placements[1].Cells = []domain.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 0}}
	ok, conf, err := New().Validate(context.Background(), pz, sol)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if ok || len(conf) == 0 {
		t.Fatalf("overlap not flagged: ok=%v conflicts=%v", ok, conf)
	}
}

func TestValidateFlagsMissingPiece(t *testing.T) {
	pz, sol := fixture()
	sol.Placements = sol.Placements[:1]
	ok, conf, err := New().Validate(context.Background(), pz, sol)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if ok || len(conf) == 0 {
		t.Fatalf("missing piece not flagged: ok=%v conflicts=%v", ok, conf)
	}
}

func TestValidateFlagsCoveredExcludedCell(t *testing.T) {
	pz, sol := fixture()
	pz.Excluded = []domain.Cell{{Row: 1, Col: 1}}
	ok, conf, err := New().Validate(context.Background(), pz, sol)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if ok || len(conf) == 0 {
		t.Fatalf("covered excluded cell not flagged: ok=%v conflicts=%v", ok, conf)
	}
}
