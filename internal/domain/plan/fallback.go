package plan

// Fallback is the static catalog served when the plan store is unreachable.
// The four plans (values included) are part of the product contract with the
// storefront; do not change them without business sign-off.
func Fallback() []Plan {
	return []Plan{
		{
			PlanID: "fallback-plan-3m", PlanNumber: "P-003", Name: "3-month plan",
			Months: 3, InterestRate: 12, DownPaymentPercent: 30, ProcessingFee: 500,
			MinAmount: 1000, MaxAmount: 30000,
			RequiresGuarantor: false, IsActive: true,
		},
		{
			PlanID: "fallback-plan-6m", PlanNumber: "P-006", Name: "6-month plan",
			Months: 6, InterestRate: 15, DownPaymentPercent: 25, ProcessingFee: 800,
			MinAmount: 3000, MaxAmount: 60000,
			RequiresGuarantor: false, IsActive: true,
		},
		{
			PlanID: "fallback-plan-12m", PlanNumber: "P-012", Name: "12-month plan",
			Months: 12, InterestRate: 18, DownPaymentPercent: 20, ProcessingFee: 1200,
			MinAmount: 5000, MaxAmount: 150000,
			RequiresGuarantor: true, IsActive: true,
		},
		{
			PlanID: "fallback-plan-24m", PlanNumber: "P-024", Name: "24-month plan",
			Months: 24, InterestRate: 22, DownPaymentPercent: 15, ProcessingFee: 2000,
			MinAmount: 10000, MaxAmount: 300000,
			RequiresGuarantor: true, IsActive: true,
		},
	}
}
