package models

import "time"

// WizardStep is a stage of the complex setup wizard.
type WizardStep int

const (
	StepComplexInfo WizardStep = iota + 1
	StepFieldSetup
	StepSlotSetup
	StepConfirmation
)

func (s WizardStep) String() string {
	switch s {
	case StepComplexInfo:
		return "complexInfo"
	case StepFieldSetup:
		return "fieldSetup"
	case StepSlotSetup:
		return "slotSetup"
	case StepConfirmation:
		return "confirmation"
	}
	return "unknown"
}

// DraftStatus tracks the submission lifecycle of a draft.
type DraftStatus string

const (
	DraftEditing    DraftStatus = "editing"
	DraftSubmitting DraftStatus = "submitting"
	DraftSubmitted  DraftStatus = "submitted"
)

// Draft is the full in-memory, not yet submitted state of a complex.
type Draft struct {
	ID          string                    `json:"id"`
	OperatorID  string                    `json:"operatorId"`
	Step        WizardStep                `json:"step"`
	Status      DraftStatus               `json:"status"`
	Complex     ComplexInfo               `json:"complex"`
	Fields      []Field                   `json:"fields"`
	Suggestions map[string]SlotSuggestion `json:"suggestions,omitempty"` // keyed by field id
	CreatedAt   time.Time                 `json:"createdAt"`
	UpdatedAt   time.Time                 `json:"updatedAt"`
}

// Clone returns a deep copy of d so a failed operation can be discarded.
func (d Draft) Clone() Draft {
	out := d
	out.Fields = make([]Field, len(d.Fields))
	for i, f := range d.Fields {
		out.Fields[i] = f.Clone()
	}
	if d.Suggestions != nil {
		out.Suggestions = make(map[string]SlotSuggestion, len(d.Suggestions))
		for k, v := range d.Suggestions {
			out.Suggestions[k] = v
		}
	}
	if d.Complex.OpeningTime != nil {
		t := *d.Complex.OpeningTime
		out.Complex.OpeningTime = &t
	}
	if d.Complex.ClosingTime != nil {
		t := *d.Complex.ClosingTime
		out.Complex.ClosingTime = &t
	}
	return out
}

// FieldSummary condenses one field for the confirmation step.
type FieldSummary struct {
	FieldID   string    `json:"fieldId"`
	Name      string    `json:"name"`
	FieldType FieldType `json:"fieldType"`
	SlotCount int       `json:"slotCount"`
	MinPrice  float64   `json:"minPrice"`
	MaxPrice  float64   `json:"maxPrice"`
}

// DraftSummary is the overview shown before submission.
type DraftSummary struct {
	FieldCount int            `json:"fieldCount"`
	SlotCount  int            `json:"slotCount"`
	Fields     []FieldSummary `json:"fields"`
}

// Summary computes the confirmation overview of d.
func (d Draft) Summary() DraftSummary {
	sum := DraftSummary{FieldCount: len(d.Fields), Fields: make([]FieldSummary, 0, len(d.Fields))}
	for _, f := range d.Fields {
		fs := FieldSummary{FieldID: f.ID, Name: f.Name, FieldType: f.FieldType, SlotCount: len(f.TimeSlots)}
		for i, s := range f.TimeSlots {
			if i == 0 || s.Price < fs.MinPrice {
				fs.MinPrice = s.Price
			}
			if i == 0 || s.Price > fs.MaxPrice {
				fs.MaxPrice = s.Price
			}
		}
		sum.SlotCount += fs.SlotCount
		sum.Fields = append(sum.Fields, fs)
	}
	return sum
}
