package uow

import (
	"context"

	"furnimart-backend/internal/domain/contract"
	"furnimart-backend/internal/domain/plan"
)

type Repos struct {
	Plans     plan.Repository
	Contracts contract.Repository
}

// UnitOfWork scopes repository work to one db transaction so a contract row
// is committed whole or not at all.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
