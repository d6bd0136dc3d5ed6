package planmock

import (
	"context"

	domain "furnimart-backend/internal/domain/plan"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies plan.Repository.
// Fill in the function fields a test needs; unfilled ones report not-found.
type Repo struct {
	ListActiveFn  func(ctx context.Context) ([]domain.Plan, error)
	GetByPlanIDFn func(ctx context.Context, planID string) (*domain.Plan, error)
}

func (m *Repo) ListActive(ctx context.Context) ([]domain.Plan, error) {
	if m.ListActiveFn != nil {
		return m.ListActiveFn(ctx)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByPlanID(ctx context.Context, planID string) (*domain.Plan, error) {
	if m.GetByPlanIDFn != nil {
		return m.GetByPlanIDFn(ctx, planID)
	}
	return nil, domain.ErrNotFound
}
