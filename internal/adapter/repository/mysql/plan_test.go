package mysql

import (
	"context"
	"errors"
	"testing"

	planDomain "furnimart-backend/internal/domain/plan"
	"furnimart-backend/pkg/id"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openPlanTestDB creates an in-memory sqlite DB. The plans schema has no
// MySQL-only column types, so the domain model migrates as-is.
func openPlanTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&planDomain.Plan{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func seedPlan(t *testing.T, db *gorm.DB, months int, active bool) planDomain.Plan {
	t.Helper()
	p := planDomain.Plan{
		PlanID: id.NewID32(), PlanNumber: "P-TEST", Name: "test plan",
		Months: months, InterestRate: 18, DownPaymentPercent: 20,
		ProcessingFee: 1200, MinAmount: 5000, MaxAmount: 150000,
		RequiresGuarantor: months >= 12, IsActive: active,
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed plan: %v", err)
	}
	return p
}

func TestPlanRepository_ListActive(t *testing.T) {
	db := openPlanTestDB(t)
	repo := NewPlanRepository(db)

	seedPlan(t, db, 24, true)
	seedPlan(t, db, 3, true)
	seedPlan(t, db, 12, false) // inactive, must not be listed

	got, err := repo.ListActive(context.Background())
	if err != nil {
		t.Fatalf("ListActive err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d plans, want 2 active", len(got))
	}
	if got[0].Months != 3 || got[1].Months != 24 {
		t.Fatalf("not ordered by tenor: %+v", got)
	}
}

func TestPlanRepository_GetByPlanID(t *testing.T) {
	db := openPlanTestDB(t)
	repo := NewPlanRepository(db)
	p := seedPlan(t, db, 12, true)

	got, err := repo.GetByPlanID(context.Background(), p.PlanID)
	if err != nil {
		t.Fatalf("GetByPlanID err: %v", err)
	}
	if got.PlanID != p.PlanID || got.Months != 12 {
		t.Fatalf("got %+v", got)
	}

	if _, err := repo.GetByPlanID(context.Background(), "missing"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want gorm.ErrRecordNotFound", err)
	}
}
