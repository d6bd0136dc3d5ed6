package contractmock

import (
	"context"
	"errors"
	"testing"

	domain "furnimart-backend/internal/domain/contract"
)

func TestRepo_Defaults(t *testing.T) {
	m := &Repo{}
	if err := m.Create(context.Background(), &domain.Contract{}); err != nil {
		t.Fatalf("default Create err: %v", err)
	}
	if _, err := m.GetByContractNumber(context.Background(), "x"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("default Get err = %v, want ErrNotFound", err)
	}
}

func TestRepo_DelegatesToFns(t *testing.T) {
	var gotNumber string
	m := &Repo{
		GetByContractNumberFn: func(ctx context.Context, num string) (*domain.Contract, error) {
			gotNumber = num
			return &domain.Contract{ContractNumber: num}, nil
		},
	}
	c, err := m.GetByContractNumber(context.Background(), "CT-1")
	if err != nil || c.ContractNumber != "CT-1" || gotNumber != "CT-1" {
		t.Fatalf("delegation failed: %v %v", c, err)
	}
}
