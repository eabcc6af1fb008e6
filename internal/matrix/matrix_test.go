package matrix

import (
	"context"
	"errors"
	"testing"

	"svw.info/daytile/internal/domain"
)

func square() domain.Piece {
	return domain.Piece{Name: "O4", Shape: domain.Shape{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}}
}

func TestBuildColumnAndRowCounts(t *testing.T) {
	// 2x3 board with the right column excluded leaves a 2x2 area:
	// exactly one placement of the square piece.
	pz := &domain.Puzzle{
		Board:    domain.NewBoard(2, 3),
		Pieces:   []domain.Piece{square()},
		Excluded: []domain.Cell{{Row: 0, Col: 2}, {Row: 1, Col: 2}},
	}
	m, err := Build(pz)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if got, want := m.DLX.NumCols(), 4+1; got != want {
		t.Fatalf("columns = %d, want %d", got, want)
	}
	if got, want := m.DLX.NumRows(), 1; got != want {
		t.Fatalf("rows = %d, want %d", got, want)
	}

	var sel []int
	m.DLX.Search(context.Background(), func(rows []int) bool {
		sel = rows
		return true
	})
	if sel == nil {
		t.Fatal("no cover found")
	}
	sol, err := m.Decode(sel)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(sol.Placements) != 1 || sol.Placements[0].Piece != "O4" {
		t.Fatalf("unexpected solution %+v", sol)
	}
}

func TestBuildRejectsExcludedCellOffBoard(t *testing.T) {
	pz := &domain.Puzzle{
		Board:    domain.NewBoard(2, 2),
		Pieces:   []domain.Piece{square()},
		Excluded: []domain.Cell{{Row: 5, Col: 5}},
	}
	if _, err := Build(pz); !errors.Is(err, domain.ErrInvalidExcludedCell) {
		t.Fatalf("error = %v, want ErrInvalidExcludedCell", err)
	}
}

func TestBuildRejectsExcludedBlockedCell(t *testing.T) {
	pz := &domain.Puzzle{
		Board:    domain.NewBoard(2, 2, domain.Cell{Row: 0, Col: 0}),
		Pieces:   []domain.Piece{square()},
		Excluded: []domain.Cell{{Row: 0, Col: 0}},
	}
	if _, err := Build(pz); !errors.Is(err, domain.ErrInvalidExcludedCell) {
		t.Fatalf("error = %v, want ErrInvalidExcludedCell", err)
	}
}

func TestBuildRejectsInvalidPieceShape(t *testing.T) {
	pz := &domain.Puzzle{
		Board: domain.NewBoard(2, 2),
		Pieces: []domain.Piece{
			{Name: "bad", Shape: domain.Shape{{Row: 0, Col: 0}, {Row: 0, Col: 0}}},
		},
	}
	if _, err := Build(pz); !errors.Is(err, domain.ErrInvalidPieceShape) {
		t.Fatalf("error = %v, want ErrInvalidPieceShape", err)
	}
}

func TestDecodeRejectsOverlap(t *testing.T) {
	domino := func(name string) domain.Piece {
		return domain.Piece{Name: name, Shape: domain.Shape{{Row: 0, Col: 0}, {Row: 0, Col: 1}}}
	}
	pz := &domain.Puzzle{
		Board:  domain.NewBoard(2, 2),
		Pieces: []domain.Piece{domino("A"), domino("B")},
	}
	m, err := Build(pz)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	// find two rows of different pieces sharing a cell
	var a, b int = -1, -1
	for i := 0; i < m.DLX.NumRows() && b < 0; i++ {
		for j := i + 1; j < m.DLX.NumRows(); j++ {
			pi, pj := m.Placement(i), m.Placement(j)
			if pi.Piece == pj.Piece {
				continue
			}
			for _, ci := range pi.Cells {
				for _, cj := range pj.Cells {
					if ci == cj {
						a, b = i, j
					}
				}
			}
			if b >= 0 {
				break
			}
		}
	}
	if b < 0 {
		t.Fatal("no overlapping row pair found")
	}
	if _, err := m.Decode([]int{a, b}); !errors.Is(err, domain.ErrMalformedSolution) {
		t.Fatalf("error = %v, want ErrMalformedSolution", err)
	}
}

func TestBuildRowOrderIsStable(t *testing.T) {
	pz := &domain.Puzzle{
		Board:    domain.NewBoard(3, 3),
		Pieces:   []domain.Piece{square(), {Name: "D", Shape: domain.Shape{{Row: 0, Col: 0}, {Row: 0, Col: 1}}}},
		Excluded: []domain.Cell{{Row: 2, Col: 2}},
	}
	m1, err := Build(pz)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	m2, err := Build(pz)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if m1.DLX.NumRows() != m2.DLX.NumRows() {
		t.Fatalf("row counts differ: %d vs %d", m1.DLX.NumRows(), m2.DLX.NumRows())
	}
	for i := 0; i < m1.DLX.NumRows(); i++ {
		p1, p2 := m1.Placement(i), m2.Placement(i)
		if p1.Piece != p2.Piece || len(p1.Cells) != len(p2.Cells) {
			t.Fatalf("row %d differs: %+v vs %+v", i, p1, p2)
		}
		for j := range p1.Cells {
			if p1.Cells[j] != p2.Cells[j] {
				t.Fatalf("row %d differs: %+v vs %+v", i, p1, p2)
			}
		}
	}
}
