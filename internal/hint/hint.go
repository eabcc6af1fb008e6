package hint

import (
	"context"
	"errors"

	"svw.info/daytile/internal/domain"
	"svw.info/daytile/internal/ports"
)

// OnePiece suggests a single placement by solving the puzzle and revealing
// the first piece of the solution. Returns ok=false for an unsolvable date.
type OnePiece struct {
	Solver ports.Solver
}

func NewOnePiece(s ports.Solver) *OnePiece { return &OnePiece{Solver: s} }

func (h *OnePiece) Hint(ctx context.Context, pz *domain.Puzzle) (domain.Placement, bool, error) {
	sol, _, err := h.Solver.Solve(ctx, pz)
	if err != nil {
		if errors.Is(err, domain.ErrUnsolvable) {
			return domain.Placement{}, false, nil
		}
		return domain.Placement{}, false, err
	}
	if len(sol.Placements) == 0 {
		return domain.Placement{}, false, nil
	}
	return sol.Placements[0], true, nil
}
