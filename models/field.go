package models

// FieldType is the playing format a field is laid out for.
type FieldType string

const (
	FieldType5  FieldType = "5-a-side"
	FieldType7  FieldType = "7-a-side"
	FieldType11 FieldType = "11-a-side"
)

// DefaultFieldType is assigned to fields added without an explicit type.
const DefaultFieldType = FieldType5

// Valid reports whether t is one of the supported formats.
func (t FieldType) Valid() bool {
	switch t {
	case FieldType5, FieldType7, FieldType11:
		return true
	}
	return false
}

// TimeSlot is a priced, recurring daily interval during which a field is bookable.
type TimeSlot struct {
	ID    string    `bson:"id" json:"id"`
	Start TimeOfDay `bson:"start" json:"startTime"` // minutes from midnight
	End   TimeOfDay `bson:"end" json:"endTime"`     // exclusive
	Price float64   `bson:"price" json:"price"`
}

// Field is one bookable sub-venue of a complex. TimeSlots is only ever
// mutated through the slots package.
type Field struct {
	ID          string     `bson:"id" json:"id"`
	Name        string     `bson:"name" json:"name"`
	FieldType   FieldType  `bson:"fieldType" json:"fieldType"`
	Description string     `bson:"description" json:"description"`
	TimeSlots   []TimeSlot `bson:"timeSlots" json:"timeSlots"`
}

// Clone returns a deep copy of f.
func (f Field) Clone() Field {
	out := f
	if f.TimeSlots != nil {
		out.TimeSlots = make([]TimeSlot, len(f.TimeSlots))
		copy(out.TimeSlots, f.TimeSlots)
	}
	return out
}

// FieldPatch carries a partial update of a field. Nil members are left untouched.
type FieldPatch struct {
	Name        *string    `json:"name,omitempty"`
	FieldType   *FieldType `json:"fieldType,omitempty"`
	Description *string    `json:"description,omitempty"`
}

// SlotInput is the raw slot entry form as the operator filled it in.
type SlotInput struct {
	StartTime string   `json:"startTime"`
	EndTime   string   `json:"endTime"`
	Price     *float64 `json:"price"`
}

// SlotSuggestion pre-fills the next slot entry form.
type SlotSuggestion struct {
	Start TimeOfDay `json:"startTime"`
	End   TimeOfDay `json:"endTime"`
}
