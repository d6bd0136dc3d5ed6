package installment

// Customer is the applicant as entered in the contract form.
type Customer struct {
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
	Email         string  `json:"email,omitempty"`
	IDCard        string  `json:"id_card"`
	Address       string  `json:"address"`
	Occupation    string  `json:"occupation"`
	MonthlyIncome float64 `json:"monthly_income"`
}

// Guarantor co-signs when the plan demands one. Same shape as Customer minus
// the optional email.
type Guarantor struct {
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
	IDCard        string  `json:"id_card"`
	Address       string  `json:"address"`
	Occupation    string  `json:"occupation"`
	MonthlyIncome float64 `json:"monthly_income"`
}

// Calculation holds the derived money figures for one principal/plan pair.
// All amounts are whole currency units, rounded at each step.
type Calculation struct {
	DownPayment    float64 `json:"down_payment"`
	FinancedAmount float64 `json:"financed_amount"`
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalPayable   float64 `json:"total_payable"`
	TotalInterest  float64 `json:"total_interest"`
}
