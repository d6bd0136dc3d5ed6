package installment

import (
	"fmt"
	"regexp"
	"strings"

	"furnimart-backend/internal/domain/plan"
)

// Business policy constants. The guarantor income floor is deliberately
// higher than the customer's.
const (
	MinMonthlyIncome       = 8000.0
	MinGuarantorIncome     = 10000.0
	MinPrincipal           = 1000.0
	MaxDebtToIncomePercent = 40.0
	minNameLen             = 2
	minAddressLen          = 10
)

var (
	rePhone  = regexp.MustCompile(`^[0-9]{9,10}$`)
	reIDCard = regexp.MustCompile(`^[0-9]{13}$`)
	reEmail  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Errors maps a form field to a human-readable message; an empty map means
// the input is valid. Keys follow the request json tags.
type Errors map[string]string

func (e Errors) Valid() bool { return len(e) == 0 }

func (e Errors) merge(other Errors) Errors {
	for k, v := range other {
		e[k] = v
	}
	return e
}

// StripSeparators removes the hyphens and spaces people type into phone and
// ID card fields before pattern matching.
func StripSeparators(s string) string {
	return strings.NewReplacer("-", "", " ", "").Replace(s)
}

// ValidateCustomer checks applicant completeness. Pure; safe to run on every
// keystroke.
func ValidateCustomer(c Customer) Errors {
	errs := Errors{}
	if len(strings.TrimSpace(c.Name)) < minNameLen {
		errs["name"] = "name must be at least 2 characters"
	}
	if !rePhone.MatchString(StripSeparators(c.Phone)) {
		errs["phone"] = "phone must be 9-10 digits"
	}
	if c.Email != "" && !reEmail.MatchString(c.Email) {
		errs["email"] = "email format is invalid"
	}
	if !reIDCard.MatchString(StripSeparators(c.IDCard)) {
		errs["id_card"] = "ID card must be 13 digits"
	}
	if len(strings.TrimSpace(c.Address)) < minAddressLen {
		errs["address"] = "address must be at least 10 characters"
	}
	if strings.TrimSpace(c.Occupation) == "" {
		errs["occupation"] = "occupation is required"
	}
	if c.MonthlyIncome <= 0 {
		errs["monthly_income"] = "monthly income is required"
	} else if c.MonthlyIncome < MinMonthlyIncome {
		errs["monthly_income"] = fmt.Sprintf("monthly income must be at least %.0f", MinMonthlyIncome)
	}
	return errs
}

// ValidatePlanAmount checks the principal against the selected plan and, when
// the income is known, applies the debt-to-income gate. calc may be nil while
// the quote has not been computed yet. A missing plan is a normal state while
// the catalog loads, reported as a field error rather than a failure.
func ValidatePlanAmount(p *plan.Plan, principal float64, calc *Calculation, monthlyIncome float64) Errors {
	errs := Errors{}
	if p == nil {
		errs["plan"] = "select an installment plan"
		return errs
	}
	if principal <= 0 {
		errs["amount"] = "contract amount is required"
		return errs
	}
	if principal < MinPrincipal {
		errs["amount"] = fmt.Sprintf("contract amount must be at least %.0f", MinPrincipal)
		return errs
	}
	if principal < p.MinAmount || principal > p.MaxAmount {
		errs["amount"] = fmt.Sprintf("amount for %s must be between %.0f and %.0f", p.Name, p.MinAmount, p.MaxAmount)
		return errs
	}
	// Hard affordability gate: the installment may take up to 40.0% of
	// monthly income inclusive.
	if calc != nil && monthlyIncome > 0 {
		ratio := calc.MonthlyPayment / monthlyIncome * 100
		if ratio > MaxDebtToIncomePercent {
			errs["amount"] = fmt.Sprintf(
				"installment is %.1f%% of monthly income (limit %.0f%%); reduce the amount or choose a longer plan",
				ratio, MaxDebtToIncomePercent)
		}
	}
	return errs
}

// ValidateGuarantor checks the co-signer. customerIDCard is the applicant's
// ID card; the guarantor must be a different person, and that violation is a
// distinct error from a malformed ID.
func ValidateGuarantor(g Guarantor, customerIDCard string) Errors {
	errs := Errors{}
	if len(strings.TrimSpace(g.Name)) < minNameLen {
		errs["guarantor_name"] = "guarantor name must be at least 2 characters"
	}
	if !rePhone.MatchString(StripSeparators(g.Phone)) {
		errs["guarantor_phone"] = "guarantor phone must be 9-10 digits"
	}
	gID := StripSeparators(g.IDCard)
	if !reIDCard.MatchString(gID) {
		errs["guarantor_id_card"] = "guarantor ID card must be 13 digits"
	} else if gID == StripSeparators(customerIDCard) {
		errs["guarantor_id_card"] = "guarantor must be a different person than the customer"
	}
	if strings.TrimSpace(g.Address) == "" {
		errs["guarantor_address"] = "guarantor address is required"
	}
	if strings.TrimSpace(g.Occupation) == "" {
		errs["guarantor_occupation"] = "guarantor occupation is required"
	}
	if g.MonthlyIncome <= 0 {
		errs["guarantor_monthly_income"] = "guarantor monthly income is required"
	} else if g.MonthlyIncome < MinGuarantorIncome {
		errs["guarantor_monthly_income"] = fmt.Sprintf("guarantor monthly income must be at least %.0f", MinGuarantorIncome)
	}
	return errs
}

// ValidateDraft runs the full rule set for one submission: customer, plan and
// amount, and the guarantor branch when p requires one.
func ValidateDraft(c Customer, g *Guarantor, p *plan.Plan, principal float64, calc *Calculation) Errors {
	errs := ValidateCustomer(c)
	errs.merge(ValidatePlanAmount(p, principal, calc, c.MonthlyIncome))
	if p != nil && p.RequiresGuarantor {
		if g == nil {
			errs["guarantor"] = "this plan requires a guarantor"
		} else {
			errs.merge(ValidateGuarantor(*g, c.IDCard))
		}
	}
	return errs
}
