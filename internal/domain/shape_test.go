package domain

import (
	"errors"
	"reflect"
	"testing"
)

func TestNormalizeTranslatesToOrigin(t *testing.T) {
	s := Shape{{Row: 2, Col: 5}, {Row: 3, Col: 4}, {Row: 2, Col: 4}}
	got := Normalize(s)
	want := Shape{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Normalize = %v, want %v", got, want)
	}
}

func TestOrientationCounts(t *testing.T) {
	cases := []struct {
		name  string
		shape Shape
		want  int
	}{
		{"square", Shape{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, 1},
		{"bar", Shape{{0, 0}, {0, 1}, {0, 2}, {0, 3}}, 2},
		{"skew", Shape{{0, 1}, {0, 2}, {1, 0}, {1, 1}}, 4},
		{"ell", Shape{{0, 0}, {1, 0}, {2, 0}, {2, 1}}, 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Orientations(tc.shape)
			if len(got) != tc.want {
				t.Fatalf("got %d orientations, want %d: %v", len(got), tc.want, got)
			}
			// all orientations must be distinct and normalized
			seen := map[string]bool{}
			for _, o := range got {
				k := shapeKey(o)
				if seen[k] {
					t.Fatalf("duplicate orientation %v", o)
				}
				seen[k] = true
				if !reflect.DeepEqual(o, Normalize(o)) {
					t.Fatalf("orientation %v not normalized", o)
				}
			}
		})
	}
}

func TestPlacementsForRespectsBoundsAndExclusions(t *testing.T) {
	b := NewBoard(2, 2)
	domino := Piece{Name: "D", Shape: Shape{{0, 0}, {0, 1}}}

	// 2 orientations x 2 anchors each on an empty 2x2 board
	all := PlacementsFor(domino, b, nil)
	if len(all) != 4 {
		t.Fatalf("got %d placements, want 4: %v", len(all), all)
	}

	// excluding one corner removes every placement touching it
	excl := []Cell{{Row: 0, Col: 0}}
	some := PlacementsFor(domino, b, excl)
	if len(some) != 2 {
		t.Fatalf("got %d placements with exclusion, want 2: %v", len(some), some)
	}
	for _, pl := range some {
		for _, c := range pl.Cells {
			if c == excl[0] {
				t.Fatalf("placement %v covers excluded cell", pl)
			}
		}
	}
}

func TestPlacementsForSkipsBlockedCells(t *testing.T) {
	b := NewBoard(1, 3, Cell{Row: 0, Col: 1})
	domino := Piece{Name: "D", Shape: Shape{{0, 0}, {0, 1}}}
	if got := PlacementsFor(domino, b, nil); len(got) != 0 {
		t.Fatalf("expected no placements across a blocked cell, got %v", got)
	}
}

func TestValidateShape(t *testing.T) {
	cases := []struct {
		name  string
		shape Shape
		ok    bool
	}{
		{"valid", Shape{{0, 0}, {0, 1}, {1, 1}}, true},
		{"empty", Shape{}, false},
		{"duplicate", Shape{{0, 0}, {0, 0}}, false},
		{"disconnected", Shape{{0, 0}, {2, 2}}, false},
		{"diagonal only", Shape{{0, 0}, {1, 1}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateShape(tc.shape)
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok {
				if err == nil {
					t.Fatal("expected error")
				}
				if !errors.Is(err, ErrInvalidPieceShape) {
					t.Fatalf("error %v is not ErrInvalidPieceShape", err)
				}
			}
		})
	}
}
