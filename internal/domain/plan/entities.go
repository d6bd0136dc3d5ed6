package plan

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("plan not found")

type Plan struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex)
	PlanID     string `gorm:"column:plan_id;size:32;uniqueIndex:ux_plans_plan_id_active" json:"plan_id"`
	PlanNumber string `gorm:"column:plan_number;size:16" json:"plan_number"`
	Name       string `gorm:"column:name;size:128" json:"name"`
	// Tenor in months, > 0
	Months int `gorm:"column:months" json:"months"`
	// Annual nominal rate in percent (18 means 18%/year)
	InterestRate       float64        `gorm:"column:interest_rate;type:decimal(6,2)" json:"interest_rate"`
	DownPaymentPercent float64        `gorm:"column:down_payment_percent;type:decimal(5,2)" json:"down_payment_percent"`
	ProcessingFee      float64        `gorm:"column:processing_fee;type:decimal(18,2)" json:"processing_fee"`
	MinAmount          float64        `gorm:"column:min_amount;type:decimal(18,2)" json:"min_amount"`
	MaxAmount          float64        `gorm:"column:max_amount;type:decimal(18,2)" json:"max_amount"`
	RequiresGuarantor  bool           `gorm:"column:requires_guarantor" json:"requires_guarantor"`
	IsActive           bool           `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt          time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Plan) TableName() string { return "installment_plans" }
