// Package fields manages the ordered field collection of a draft and routes
// slot edits through the slots package.
package fields

import (
	"fmt"
	"strings"

	"sportify/models"
	"sportify/services/slots"
)

// Registry owns the field records of one draft. It always holds at least one field.
type Registry struct {
	fields []models.Field
	newID  slots.IDFunc
}

// New wraps fields, seeding a default field when the collection is empty.
// The caller's slice is not retained.
func New(fields []models.Field, newID slots.IDFunc) *Registry {
	r := &Registry{fields: make([]models.Field, 0, len(fields)), newID: newID}
	for _, f := range fields {
		r.fields = append(r.fields, f.Clone())
	}
	if len(r.fields) == 0 {
		r.AddField("")
	}
	return r
}

// Fields returns a copy of the collection with every slot list sorted.
func (r *Registry) Fields() []models.Field {
	out := make([]models.Field, len(r.fields))
	for i, f := range r.fields {
		out[i] = f.Clone()
		out[i].TimeSlots = slots.Sort(f.TimeSlots)
	}
	return out
}

func (r *Registry) Len() int { return len(r.fields) }

// Get returns a copy of the field with the given id.
func (r *Registry) Get(id string) (models.Field, bool) {
	idx := r.indexOf(id)
	if idx < 0 {
		return models.Field{}, false
	}
	f := r.fields[idx].Clone()
	f.TimeSlots = slots.Sort(f.TimeSlots)
	return f, true
}

// AddField appends a field. A blank name becomes "Field {n+1}".
func (r *Registry) AddField(name string) models.Field {
	if strings.TrimSpace(name) == "" {
		name = fmt.Sprintf("Field %d", len(r.fields)+1)
	}
	f := models.Field{
		ID:        r.newID(),
		Name:      name,
		FieldType: models.DefaultFieldType,
		TimeSlots: []models.TimeSlot{},
	}
	r.fields = append(r.fields, f)
	return f.Clone()
}

// RemoveField deletes a field and its slots. The last field cannot be removed.
func (r *Registry) RemoveField(id string) error {
	idx := r.indexOf(id)
	if idx < 0 {
		return models.Reject(models.RejectFieldNotFound, "field %s does not exist", id)
	}
	if len(r.fields) == 1 {
		return models.Reject(models.RejectLastFieldRemaining, "a complex needs at least one field")
	}
	r.fields = append(r.fields[:idx], r.fields[idx+1:]...)
	return nil
}

// UpdateField merges patch into the field. Slots are never touched.
func (r *Registry) UpdateField(id string, patch models.FieldPatch) (models.Field, error) {
	idx := r.indexOf(id)
	if idx < 0 {
		return models.Field{}, models.Reject(models.RejectFieldNotFound, "field %s does not exist", id)
	}
	if patch.FieldType != nil && !patch.FieldType.Valid() {
		return models.Field{}, models.Reject(models.RejectInvalidFieldType, "unknown field type %q", *patch.FieldType)
	}
	f := &r.fields[idx]
	if patch.Name != nil {
		f.Name = *patch.Name
	}
	if patch.FieldType != nil {
		f.FieldType = *patch.FieldType
	}
	if patch.Description != nil {
		f.Description = *patch.Description
	}
	return f.Clone(), nil
}

// AllNamed reports whether every field has a non-blank name.
func (r *Registry) AllNamed() bool {
	for _, f := range r.fields {
		if strings.TrimSpace(f.Name) == "" {
			return false
		}
	}
	return true
}

// AllHaveSlots reports whether every field has at least one time slot.
func (r *Registry) AllHaveSlots() bool {
	for _, f := range r.fields {
		if len(f.TimeSlots) == 0 {
			return false
		}
	}
	return true
}

func (r *Registry) indexOf(id string) int {
	for i, f := range r.fields {
		if f.ID == id {
			return i
		}
	}
	return -1
}
