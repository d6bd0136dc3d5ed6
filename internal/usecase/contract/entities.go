package contract

import (
	"fmt"
	"time"

	"furnimart-backend/internal/usecase/installment"
)

type SubmitInput struct {
	Customer  installment.Customer   `json:"customer"`
	Guarantor *installment.Guarantor `json:"guarantor,omitempty"`
	PlanID    string                 `json:"plan_id"`
	Principal float64                `json:"principal"`
	StartDate time.Time              `json:"start_date,omitempty"`
	Notes     string                 `json:"notes,omitempty"`
}

type ContractDTO struct {
	ContractNumber       string    `json:"contract_number"`
	CustomerID           string    `json:"customer_id"`
	GuarantorID          string    `json:"guarantor_id,omitempty"`
	PlanID               string    `json:"plan_id"`
	TotalAmount          float64   `json:"total_amount"`
	DownPayment          float64   `json:"down_payment"`
	FinancedAmount       float64   `json:"financed_amount"`
	MonthlyPayment       float64   `json:"monthly_payment"`
	RemainingBalance     float64   `json:"remaining_balance"`
	InterestRate         float64   `json:"interest_rate"`
	NumberOfInstallments int       `json:"number_of_installments"`
	Status               string    `json:"status"`
	StartDate            time.Time `json:"start_date"`
	EndDate              time.Time `json:"end_date"`
	CreatedAt            time.Time `json:"created_at"`
}

// ValidationError carries the per-field messages from the draft validators.
// It blocks submission; it is not a server failure.
type ValidationError struct {
	Fields installment.Errors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("draft validation failed on %d field(s)", len(e.Fields))
}
