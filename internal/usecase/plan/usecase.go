package plan

import (
	"context"
	"errors"
	"log"
	"sort"

	domain "furnimart-backend/internal/domain/plan"

	"gorm.io/gorm"
)

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

// ListActive returns selectable plans ordered by ascending tenor. A failing
// or absent store degrades to the static fallback catalog instead of failing
// closed; the storefront must always have plans to offer.
func (u *Usecase) ListActive(ctx context.Context) []domain.Plan {
	var plans []domain.Plan
	if u.repo == nil {
		plans = domain.Fallback()
	} else {
		var err error
		plans, err = u.repo.ListActive(ctx)
		if err != nil || len(plans) == 0 {
			if err != nil {
				log.Printf("plan catalog unavailable, serving fallback: %v", err)
			}
			plans = domain.Fallback()
		}
	}
	sort.Slice(plans, func(i, j int) bool { return plans[i].Months < plans[j].Months })
	return plans
}

// Get resolves a plan by its public id, consulting the fallback catalog when
// the store misses or is down. Inactive plans are not selectable.
func (u *Usecase) Get(ctx context.Context, planID string) (*domain.Plan, error) {
	if u.repo != nil {
		p, err := u.repo.GetByPlanID(ctx, planID)
		switch {
		case err == nil:
			if !p.IsActive {
				return nil, domain.ErrNotFound
			}
			return p, nil
		case !errors.Is(err, gorm.ErrRecordNotFound):
			log.Printf("plan lookup failed, trying fallback: %v", err)
		}
	}
	for _, p := range domain.Fallback() {
		if p.PlanID == planID {
			p := p
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}
