package usecase

import (
	"context"
	"errors"

	"svw.info/daytile/internal/domain"
	"svw.info/daytile/internal/ports"
)

type Service struct {
	Solver    ports.Solver
	Validator ports.Validator
	Hinter    ports.Hinter
	Sweeper   ports.Sweeper
	Storage   ports.Storage
}

func NewService(s ports.Solver, v ports.Validator, h ports.Hinter, sw ports.Sweeper, st ports.Storage) *Service {
	return &Service{Solver: s, Validator: v, Hinter: h, Sweeper: sw, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, pz *domain.Puzzle) (*domain.Solution, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, pz)
}

func (u *Service) SolveAll(ctx context.Context, pz *domain.Puzzle) ([]domain.Solution, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.SolveAll(ctx, pz)
}

func (u *Service) Validate(ctx context.Context, pz *domain.Puzzle, sol *domain.Solution) (bool, []domain.Cell, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, pz, sol)
}

func (u *Service) Hint(ctx context.Context, pz *domain.Puzzle) (domain.Placement, bool, error) {
	if u.Hinter == nil {
		return domain.Placement{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, pz)
}

func (u *Service) Sweep(ctx context.Context, year int) ([]domain.DayResult, ports.Stats, error) {
	if u.Sweeper == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Sweeper.Sweep(ctx, year)
}

// Persistence
func (u *Service) Save(ctx context.Context, d *domain.SolvedDay) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, d)
}
func (u *Service) Load(ctx context.Context, id string) (*domain.SolvedDay, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}
func (u *Service) List(ctx context.Context) ([]domain.SolvedDayMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
