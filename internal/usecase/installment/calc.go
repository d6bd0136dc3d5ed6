package installment

import (
	"math"

	"furnimart-backend/internal/domain/plan"
)

// round is the single rounding rule for the whole module: half away from
// zero, whole currency units (math.Round, matching the storefront's
// Math.round behavior). Applied at every intermediate step, not just at the
// end; compounding differences otherwise drift by a unit or two over a
// 24-month tenor.
func round(v float64) float64 { return math.Round(v) }

// Calculate derives the money figures for principal under p.
//
// Returns nil while no plan is selected or the principal is not yet a
// positive amount; callers must treat nil as "nothing to show yet", not as
// an error. A plan with months <= 0 is a catalog defect and also yields nil
// (such a plan is rejected upstream before it can be selected).
func Calculate(principal float64, p *plan.Plan) *Calculation {
	if p == nil || principal <= 0 || p.Months <= 0 {
		return nil
	}

	downPayment := round(principal * p.DownPaymentPercent / 100)
	financed := principal - downPayment

	var monthly float64
	if financed > 0 {
		monthlyRate := p.InterestRate / 100 / 12
		if monthlyRate == 0 {
			// Zero-interest plans: the annuity formula degenerates to 0/0.
			monthly = round(financed / float64(p.Months))
		} else {
			growth := math.Pow(1+monthlyRate, float64(p.Months))
			monthly = round(financed * monthlyRate * growth / (growth - 1))
		}
	}

	total := monthly*float64(p.Months) + downPayment + p.ProcessingFee
	return &Calculation{
		DownPayment:    downPayment,
		FinancedAmount: financed,
		MonthlyPayment: monthly,
		TotalPayable:   total,
		TotalInterest:  total - principal - p.ProcessingFee,
	}
}
