package contract

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("contract not found")
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusDefaulted Status = "defaulted"
)

// Contract is an installment-sale contract. Rows are written once by the
// assembler and never mutated by this service; payment posting belongs to
// the billing system.
type Contract struct {
	ID             uint64 `gorm:"primaryKey;column:id" json:"-"`
	ContractNumber string `gorm:"column:contract_number;size:32;uniqueIndex:ux_contracts_number_active" json:"contract_number"`

	// Customer snapshot at signing time. The stripped ID card doubles as the
	// customer identifier; master data lives in the host system.
	CustomerID         string  `gorm:"column:customer_id;size:13;index:idx_contracts_customer" json:"customer_id"`
	CustomerName       string  `gorm:"column:customer_name;size:128" json:"customer_name"`
	CustomerPhone      string  `gorm:"column:customer_phone;size:16" json:"customer_phone"`
	CustomerEmail      string  `gorm:"column:customer_email;size:128" json:"customer_email,omitempty"`
	CustomerAddress    string  `gorm:"column:customer_address;type:text" json:"customer_address"`
	CustomerOccupation string  `gorm:"column:customer_occupation;size:64" json:"customer_occupation"`
	CustomerIncome     float64 `gorm:"column:customer_income;type:decimal(18,2)" json:"customer_income"`

	// Guarantor snapshot; GuarantorID is nil when the plan required none.
	GuarantorID         *string `gorm:"column:guarantor_id;size:13" json:"guarantor_id,omitempty"`
	GuarantorName       string  `gorm:"column:guarantor_name;size:128" json:"guarantor_name,omitempty"`
	GuarantorPhone      string  `gorm:"column:guarantor_phone;size:16" json:"guarantor_phone,omitempty"`
	GuarantorAddress    string  `gorm:"column:guarantor_address;type:text" json:"guarantor_address,omitempty"`
	GuarantorOccupation string  `gorm:"column:guarantor_occupation;size:64" json:"guarantor_occupation,omitempty"`
	GuarantorIncome     float64 `gorm:"column:guarantor_income;type:decimal(18,2)" json:"guarantor_income,omitempty"`

	PlanID string `gorm:"column:plan_id;size:32;index:idx_contracts_plan" json:"plan_id"`

	// TotalAmount is the principal before the down payment is subtracted.
	TotalAmount          float64 `gorm:"column:total_amount;type:decimal(18,2)" json:"total_amount"`
	DownPayment          float64 `gorm:"column:down_payment;type:decimal(18,2)" json:"down_payment"`
	FinancedAmount       float64 `gorm:"column:financed_amount;type:decimal(18,2)" json:"financed_amount"`
	MonthlyPayment       float64 `gorm:"column:monthly_payment;type:decimal(18,2)" json:"monthly_payment"`
	RemainingBalance     float64 `gorm:"column:remaining_balance;type:decimal(18,2)" json:"remaining_balance"`
	InterestRate         float64 `gorm:"column:interest_rate;type:decimal(6,2)" json:"interest_rate"`
	NumberOfInstallments int     `gorm:"column:number_of_installments" json:"number_of_installments"`

	Status    Status    `gorm:"column:status;type:enum('active','completed','cancelled','defaulted');default:'active'" json:"status"`
	StartDate time.Time `gorm:"column:start_date" json:"start_date"`
	EndDate   time.Time `gorm:"column:end_date" json:"end_date"`
	Notes     string    `gorm:"column:notes;type:text" json:"notes,omitempty"`

	Payments []Payment `gorm:"foreignKey:ContractID" json:"payments"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Contract) TableName() string { return "installment_contracts" }

type Payment struct {
	ID         uint64    `gorm:"primaryKey;column:id" json:"-"`
	PaymentID  string    `gorm:"column:payment_id;size:32;uniqueIndex" json:"payment_id"`
	ContractID uint64    `gorm:"column:contract_id;index" json:"-"`
	Amount     float64   `gorm:"column:amount;type:decimal(18,2)" json:"amount"`
	PaidAt     time.Time `gorm:"column:paid_at" json:"paid_at"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Payment) TableName() string { return "installment_payments" }
