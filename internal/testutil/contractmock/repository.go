package contractmock

import (
	"context"

	domain "furnimart-backend/internal/domain/contract"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies contract.Repository.
type Repo struct {
	CreateFn              func(ctx context.Context, c *domain.Contract) error
	GetByContractNumberFn func(ctx context.Context, contractNumber string) (*domain.Contract, error)
}

func (m *Repo) Create(ctx context.Context, c *domain.Contract) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByContractNumber(ctx context.Context, contractNumber string) (*domain.Contract, error) {
	if m.GetByContractNumberFn != nil {
		return m.GetByContractNumberFn(ctx, contractNumber)
	}
	return nil, domain.ErrNotFound
}
