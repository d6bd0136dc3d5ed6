package installment

// Step is one screen of the contract entry wizard.
type Step string

const (
	StepCustomer  Step = "customer"
	StepPlan      Step = "plan"
	StepGuarantor Step = "guarantor"
	StepReview    Step = "review"
)

// Wizard is the explicit state machine behind the entry flow:
//
//	customer -> plan -> (guarantor ->) review
//
// The guarantor step exists only while the selected plan requires one; the
// skip is decided on every forward transition, so switching plans after
// navigating back re-routes correctly.
type Wizard struct {
	step Step
}

func NewWizard() *Wizard { return &Wizard{step: StepCustomer} }

func (w *Wizard) Step() Step { return w.step }

// Advance moves forward when the current step's validation passed. Review is
// terminal for data entry; Advance from review is a no-op (submission is a
// separate action, not a step transition).
func (w *Wizard) Advance(valid bool, planRequiresGuarantor bool) Step {
	if !valid {
		return w.step
	}
	switch w.step {
	case StepCustomer:
		w.step = StepPlan
	case StepPlan:
		if planRequiresGuarantor {
			w.step = StepGuarantor
		} else {
			w.step = StepReview
		}
	case StepGuarantor:
		w.step = StepReview
	}
	return w.step
}

// Back moves to the previous step. Never validates; going back must not
// re-check anything the user already passed.
func (w *Wizard) Back(planRequiresGuarantor bool) Step {
	switch w.step {
	case StepPlan:
		w.step = StepCustomer
	case StepGuarantor:
		w.step = StepPlan
	case StepReview:
		if planRequiresGuarantor {
			w.step = StepGuarantor
		} else {
			w.step = StepPlan
		}
	}
	return w.step
}
