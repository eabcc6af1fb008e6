// Package puzzle defines the daily calendar tiling puzzle: an 8x7 board
// whose cells are labeled with months, day numbers and weekdays, and a
// catalog of ten polyomino pieces that tile everything except today's
// three date cells.
package puzzle

import (
	"fmt"
	"time"

	"svw.info/daytile/internal/domain"
)

const (
	GridRows = 8
	GridCols = 7
)

// The four corners of the grid that are not part of the puzzle surface.
var blocked = []domain.Cell{
	{Row: 0, Col: 6},
	{Row: 1, Col: 6},
	{Row: 7, Col: 0},
	{Row: 7, Col: 1},
	{Row: 7, Col: 2},
	{Row: 7, Col: 3},
}

// Board returns the calendar board.
func Board() domain.Board {
	return domain.NewBoard(GridRows, GridCols, blocked...)
}

// MonthCell returns the cell labeled with the given month. Months occupy
// rows 0-1, columns 0-5 (January top-left, December bottom-right).
func MonthCell(m time.Month) (domain.Cell, error) {
	if m < time.January || m > time.December {
		return domain.Cell{}, fmt.Errorf("%w: month %d", domain.ErrInvalidExcludedCell, m)
	}
	return domain.Cell{Row: (int(m) - 1) / 6, Col: (int(m) - 1) % 6}, nil
}

// DayCell returns the cell labeled with the given day of month. Days 1-31
// fill rows 2-6 left to right.
func DayCell(d int) (domain.Cell, error) {
	if d < 1 || d > 31 {
		return domain.Cell{}, fmt.Errorf("%w: day %d", domain.ErrInvalidExcludedCell, d)
	}
	return domain.Cell{Row: 2 + (d-1)/GridCols, Col: (d - 1) % GridCols}, nil
}

// WeekdayCell returns the cell labeled with the given weekday. The seven
// weekday cells sit in the bottom-right corner of the grid.
func WeekdayCell(w time.Weekday) domain.Cell {
	return [...]domain.Cell{
		{Row: 6, Col: 3}, // Sunday
		{Row: 6, Col: 4},
		{Row: 6, Col: 5},
		{Row: 6, Col: 6},
		{Row: 7, Col: 4},
		{Row: 7, Col: 5},
		{Row: 7, Col: 6}, // Saturday
	}[w]
}

// For builds the puzzle instance for a month/day/weekday combination: the
// full board and piece catalog with the three matching date cells excluded.
func For(m time.Month, day int, w time.Weekday) (*domain.Puzzle, error) {
	mc, err := MonthCell(m)
	if err != nil {
		return nil, err
	}
	dc, err := DayCell(day)
	if err != nil {
		return nil, err
	}
	return &domain.Puzzle{
		Board:    Board(),
		Pieces:   Pieces(),
		Excluded: []domain.Cell{mc, dc, WeekdayCell(w)},
	}, nil
}

// ForDate builds the puzzle instance for a calendar date.
func ForDate(t time.Time) (*domain.Puzzle, error) {
	return For(t.Month(), t.Day(), t.Weekday())
}
