// Package wizard gates progression through the four setup steps.
package wizard

import (
	"strings"

	"sportify/models"
	"sportify/services/fields"
)

// Check is the validity of each step, recomputed on every read.
type Check struct {
	ComplexInfoComplete bool     `json:"complexInfoComplete"`
	MissingComplex      []string `json:"missingComplex,omitempty"`
	FieldsNamed         bool     `json:"fieldsNamed"`
	DuplicateNames      []string `json:"duplicateNames"`
	AllFieldsHaveSlots  bool     `json:"allFieldsHaveSlots"`
}

// Evaluate computes every guard for the draft. It performs no I/O.
func Evaluate(info models.ComplexInfo, reg *fields.Registry) Check {
	missing := info.MissingFields()
	opening, closing := info.Hours()
	if opening >= closing {
		missing = append(missing, "openingHours")
	}
	return Check{
		ComplexInfoComplete: len(missing) == 0,
		MissingComplex:      missing,
		FieldsNamed:         reg.Len() > 0 && reg.AllNamed(),
		DuplicateNames:      reg.DuplicateNames(),
		AllFieldsHaveSlots:  reg.AllHaveSlots(),
	}
}

// CanLeave reports whether the forward guard of step holds.
func (c Check) CanLeave(step models.WizardStep) bool {
	switch step {
	case models.StepComplexInfo:
		return c.ComplexInfoComplete
	case models.StepFieldSetup:
		return c.FieldsNamed && len(c.DuplicateNames) == 0
	case models.StepSlotSetup:
		return c.AllFieldsHaveSlots
	}
	return false
}

// Next advances one step when the current step's guard holds.
func Next(step models.WizardStep, c Check) (models.WizardStep, error) {
	if step == models.StepConfirmation {
		return step, models.Reject(models.RejectStepIncomplete, "confirmation is the last step; submit instead")
	}
	if !c.CanLeave(step) {
		return step, models.Reject(models.RejectStepIncomplete, "%s", incompleteReason(step, c))
	}
	return step + 1, nil
}

// Back moves one step back without validation. From the first step it
// reports exit so the caller can navigate away.
func Back(step models.WizardStep) (prev models.WizardStep, exit bool) {
	if step <= models.StepComplexInfo {
		return models.StepComplexInfo, true
	}
	return step - 1, false
}

func incompleteReason(step models.WizardStep, c Check) string {
	switch step {
	case models.StepComplexInfo:
		return "complex information is incomplete: " + strings.Join(c.MissingComplex, ", ")
	case models.StepFieldSetup:
		if !c.FieldsNamed {
			return "every field needs a name"
		}
		return "field names must be unique: " + strings.Join(c.DuplicateNames, ", ")
	case models.StepSlotSetup:
		return "every field needs at least one time slot"
	}
	return "step is incomplete"
}
