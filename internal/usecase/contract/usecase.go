package contract

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "furnimart-backend/internal/domain/contract"
	planDomain "furnimart-backend/internal/domain/plan"
	"furnimart-backend/internal/domain/uow"
	"furnimart-backend/internal/usecase/installment"
	"furnimart-backend/pkg/id"
)

// PlanCatalog resolves the plan a draft references (store or fallback).
type PlanCatalog interface {
	Get(ctx context.Context, planID string) (*planDomain.Plan, error)
}

type Usecase struct {
	plans     PlanCatalog
	contracts domain.Repository
	uow       uow.UnitOfWork
	notifier  Notifier
}

func NewUsecase(plans PlanCatalog, contracts domain.Repository, tx uow.UnitOfWork, n Notifier) *Usecase {
	if n == nil {
		n = LogNotifier{}
	}
	return &Usecase{plans: plans, contracts: contracts, uow: tx, notifier: n}
}

// Quote computes the money figures for a principal/plan pair without any
// side effects.
func (u *Usecase) Quote(ctx context.Context, planID string, principal float64) (*installment.Calculation, error) {
	p, err := u.plans.Get(ctx, planID)
	if err != nil {
		return nil, err
	}
	calc := installment.Calculate(principal, p)
	if calc == nil {
		return nil, &ValidationError{Fields: installment.Errors{"amount": "contract amount is required"}}
	}
	return calc, nil
}

// Submit runs the full rule set over the draft, assembles the contract and
// hands it to the store in one transaction. The contract is written whole or
// not at all, and a failed write is not retried here; the caller resubmits.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*ContractDTO, error) {
	p, err := u.plans.Get(ctx, in.PlanID)
	if err != nil {
		if errors.Is(err, planDomain.ErrNotFound) {
			return nil, &ValidationError{Fields: installment.Errors{"plan": "select an installment plan"}}
		}
		return nil, err
	}

	calc := installment.Calculate(in.Principal, p)
	errs := installment.ValidateDraft(in.Customer, in.Guarantor, p, in.Principal, calc)
	if in.Guarantor != nil && !p.RequiresGuarantor {
		// Voluntary co-signer: still has to be a real, distinct person.
		for k, v := range installment.ValidateGuarantor(*in.Guarantor, in.Customer.IDCard) {
			errs[k] = v
		}
	}
	if !errs.Valid() {
		return nil, &ValidationError{Fields: errs}
	}
	if calc == nil {
		// Unreachable once validation passed; keep the invariant loud.
		return nil, errors.New("calculation missing for a validated draft")
	}

	c := assemble(in, p, calc, time.Now().UTC())

	if err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		return r.Contracts.Create(ctx, c)
	}); err != nil {
		u.notifier.SubmitFailed(ctx, "could not save the contract, please try again")
		return nil, fmt.Errorf("persist contract: %w", err)
	}

	u.notifier.ContractCreated(ctx, c.ContractNumber)
	return toDTO(c), nil
}

func (u *Usecase) Get(ctx context.Context, contractNumber string) (*ContractDTO, error) {
	c, err := u.contracts.GetByContractNumber(ctx, contractNumber)
	if err != nil {
		return nil, err
	}
	return toDTO(c), nil
}

// assemble builds the immutable contract record from a validated draft.
// endDate uses the contractual 30-day-month policy, not calendar months.
func assemble(in SubmitInput, p *planDomain.Plan, calc *installment.Calculation, now time.Time) *domain.Contract {
	start := in.StartDate
	if start.IsZero() {
		start = now
	}

	c := &domain.Contract{
		ContractNumber: id.NewContractNumber(now),

		CustomerID:         installment.StripSeparators(in.Customer.IDCard),
		CustomerName:       in.Customer.Name,
		CustomerPhone:      installment.StripSeparators(in.Customer.Phone),
		CustomerEmail:      in.Customer.Email,
		CustomerAddress:    in.Customer.Address,
		CustomerOccupation: in.Customer.Occupation,
		CustomerIncome:     in.Customer.MonthlyIncome,

		PlanID: p.PlanID,

		TotalAmount:          in.Principal,
		DownPayment:          calc.DownPayment,
		FinancedAmount:       calc.FinancedAmount,
		MonthlyPayment:       calc.MonthlyPayment,
		RemainingBalance:     calc.FinancedAmount,
		InterestRate:         p.InterestRate,
		NumberOfInstallments: p.Months,

		Status:    domain.StatusActive,
		StartDate: start,
		EndDate:   start.Add(time.Duration(p.Months) * 30 * 24 * time.Hour),
		Notes:     in.Notes,
		Payments:  []domain.Payment{},
	}

	if in.Guarantor != nil {
		gid := installment.StripSeparators(in.Guarantor.IDCard)
		c.GuarantorID = &gid
		c.GuarantorName = in.Guarantor.Name
		c.GuarantorPhone = installment.StripSeparators(in.Guarantor.Phone)
		c.GuarantorAddress = in.Guarantor.Address
		c.GuarantorOccupation = in.Guarantor.Occupation
		c.GuarantorIncome = in.Guarantor.MonthlyIncome
	}
	return c
}

func toDTO(c *domain.Contract) *ContractDTO {
	dto := &ContractDTO{
		ContractNumber:       c.ContractNumber,
		CustomerID:           c.CustomerID,
		PlanID:               c.PlanID,
		TotalAmount:          c.TotalAmount,
		DownPayment:          c.DownPayment,
		FinancedAmount:       c.FinancedAmount,
		MonthlyPayment:       c.MonthlyPayment,
		RemainingBalance:     c.RemainingBalance,
		InterestRate:         c.InterestRate,
		NumberOfInstallments: c.NumberOfInstallments,
		Status:               string(c.Status),
		StartDate:            c.StartDate,
		EndDate:              c.EndDate,
		CreatedAt:            c.CreatedAt,
	}
	if c.GuarantorID != nil {
		dto.GuarantorID = *c.GuarantorID
	}
	return dto
}
