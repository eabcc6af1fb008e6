package puzzle

import "svw.info/daytile/internal/domain"

// The piece catalog: seven pentominoes and three tetrominoes, 47 cells in
// total — exactly the 50 open board cells minus the three date cells.
// Shapes are given in normalized form; colors are for rendering only.
var catalog = []domain.Piece{
	{Name: "L5", Color: "#FAFF81", Shape: domain.Shape{
		{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}, {Row: 3, Col: 0}, {Row: 3, Col: 1},
	}},
	{Name: "T5", Color: "#FFC53A", Shape: domain.Shape{
		{Row: 0, Col: 2}, {Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 2},
	}},
	{Name: "P5", Color: "#E06D06", Shape: domain.Shape{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 1, Col: 2},
	}},
	{Name: "N5", Color: "#B26700", Shape: domain.Shape{
		{Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}, {Row: 1, Col: 0}, {Row: 1, Col: 1},
	}},
	{Name: "V5", Color: "#004E89", Shape: domain.Shape{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2},
	}},
	{Name: "U5", Color: "#177E89", Shape: domain.Shape{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 0}, {Row: 1, Col: 2},
	}},
	{Name: "Z5", Color: "#412234", Shape: domain.Shape{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}, {Row: 2, Col: 2},
	}},
	{Name: "I4", Color: "#63A088", Shape: domain.Shape{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3},
	}},
	{Name: "S4", Color: "#252F5F", Shape: domain.Shape{
		{Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 0}, {Row: 1, Col: 1},
	}},
	{Name: "L4", Color: "#5C8001", Shape: domain.Shape{
		{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}, {Row: 2, Col: 1},
	}},
}

// Pieces returns a copy of the piece catalog in declaration order.
func Pieces() []domain.Piece {
	out := make([]domain.Piece, len(catalog))
	copy(out, catalog)
	return out
}

// PieceByName looks up a catalog piece.
func PieceByName(name string) (domain.Piece, bool) {
	for _, p := range catalog {
		if p.Name == name {
			return p, true
		}
	}
	return domain.Piece{}, false
}
