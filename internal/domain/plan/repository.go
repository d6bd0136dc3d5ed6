package plan

import "context"

type Repository interface {
	ListActive(ctx context.Context) ([]Plan, error)
	GetByPlanID(ctx context.Context, planID string) (*Plan, error)
}
