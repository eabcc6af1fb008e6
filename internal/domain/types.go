package domain

// Cell identifies one board square by row and column.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Shape is a set of cell offsets relative to some origin.
type Shape []Cell

// Piece is an immutable puzzle piece: a name, a canonical shape and a
// display color used by renderers.
type Piece struct {
	Name  string `json:"name"`
	Shape Shape  `json:"shape"`
	Color string `json:"color,omitempty"` // "#rrggbb"
}

// Board is a rectangular grid with some cells blocked out entirely
// (they are not part of the puzzle surface).
type Board struct {
	Rows    int    `json:"rows"`
	Cols    int    `json:"cols"`
	Blocked []Cell `json:"blocked,omitempty"`

	blocked map[Cell]bool
}

// NewBoard builds a board with the given dimensions and blocked cells.
func NewBoard(rows, cols int, blocked ...Cell) Board {
	m := make(map[Cell]bool, len(blocked))
	for _, c := range blocked {
		m[c] = true
	}
	return Board{Rows: rows, Cols: cols, Blocked: blocked, blocked: m}
}

// InBounds reports whether c lies inside the board rectangle.
func (b Board) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < b.Rows && c.Col >= 0 && c.Col < b.Cols
}

// Open reports whether c is a usable puzzle cell (in bounds, not blocked).
func (b Board) Open(c Cell) bool {
	if !b.InBounds(c) {
		return false
	}
	if b.blocked != nil {
		return !b.blocked[c]
	}
	for _, bl := range b.Blocked {
		if bl == c {
			return false
		}
	}
	return true
}

// OpenCells returns all open cells in row-major order.
func (b Board) OpenCells() []Cell {
	out := make([]Cell, 0, b.Rows*b.Cols)
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			cell := Cell{Row: r, Col: c}
			if b.Open(cell) {
				out = append(out, cell)
			}
		}
	}
	return out
}

// Puzzle is one solve instance: a board, a piece catalog, and the cells
// deliberately left uncovered (the date cells).
type Puzzle struct {
	Board    Board   `json:"board"`
	Pieces   []Piece `json:"pieces"`
	Excluded []Cell  `json:"excluded"`
}

// IsExcluded reports whether c is one of the puzzle's excluded cells.
func (p *Puzzle) IsExcluded(c Cell) bool {
	for _, e := range p.Excluded {
		if e == c {
			return true
		}
	}
	return false
}

// Placement is one piece in a specific orientation anchored on the board,
// with the concrete cells it occupies.
type Placement struct {
	Piece string `json:"piece"`
	Cells []Cell `json:"cells"`
}

// Solution is an ordered set of placements that together cover every open
// non-excluded cell exactly once.
type Solution struct {
	Placements []Placement `json:"placements"`
}

// PieceAt returns the name of the piece covering c, or "" if none does.
func (s *Solution) PieceAt(c Cell) string {
	for _, p := range s.Placements {
		for _, pc := range p.Cells {
			if pc == c {
				return p.Piece
			}
		}
	}
	return ""
}

// CellMap returns the cell-to-piece-name mapping of the solution.
func (s *Solution) CellMap() map[Cell]string {
	m := make(map[Cell]string)
	for _, p := range s.Placements {
		for _, c := range p.Cells {
			m[c] = p.Piece
		}
	}
	return m
}

// SolvedDay is a persisted solution with metadata.
type SolvedDay struct {
	ID        string   `json:"id"` // "YYYY-MM-DD"
	Solution  Solution `json:"solution"`
	CreatedAt int64    `json:"createdAt,omitempty"`
	Name      string   `json:"name,omitempty"`
	Notes     string   `json:"notes,omitempty"`
}

// SolvedDayMeta is a lightweight listing entry.
type SolvedDayMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}

// DayResult is one entry of a year sweep.
type DayResult struct {
	Date     string `json:"date"` // "YYYY-MM-DD"
	Solvable bool   `json:"solvable"`
	Nodes    int    `json:"nodes"`
}
