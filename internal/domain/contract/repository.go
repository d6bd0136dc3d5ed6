package contract

import "context"

type Repository interface {
	Create(ctx context.Context, c *Contract) error
	GetByContractNumber(ctx context.Context, contractNumber string) (*Contract, error)
}
