package fields

import (
	"sportify/models"
	"sportify/services/slots"
)

// AddSlot validates and inserts a slot into the field's collection.
func (r *Registry) AddSlot(fieldID string, in models.SlotInput) (models.TimeSlot, error) {
	idx := r.indexOf(fieldID)
	if idx < 0 {
		return models.TimeSlot{}, models.Reject(models.RejectFieldNotFound, "field %s does not exist", fieldID)
	}
	next, added, err := slots.Add(r.fields[idx].TimeSlots, in, r.newID)
	if err != nil {
		return models.TimeSlot{}, err
	}
	r.fields[idx].TimeSlots = next
	return added, nil
}

// EditSlot replaces a slot of the field in place.
func (r *Registry) EditSlot(fieldID, slotID string, in models.SlotInput) error {
	idx := r.indexOf(fieldID)
	if idx < 0 {
		return models.Reject(models.RejectFieldNotFound, "field %s does not exist", fieldID)
	}
	next, err := slots.Edit(r.fields[idx].TimeSlots, slotID, in)
	if err != nil {
		return err
	}
	r.fields[idx].TimeSlots = next
	return nil
}

// RemoveSlot drops a slot; unknown slot ids are a no-op.
func (r *Registry) RemoveSlot(fieldID, slotID string) error {
	idx := r.indexOf(fieldID)
	if idx < 0 {
		return models.Reject(models.RejectFieldNotFound, "field %s does not exist", fieldID)
	}
	r.fields[idx].TimeSlots = slots.Remove(r.fields[idx].TimeSlots, slotID)
	return nil
}

// Slots returns the field's slots sorted by start time.
func (r *Registry) Slots(fieldID string) ([]models.TimeSlot, error) {
	idx := r.indexOf(fieldID)
	if idx < 0 {
		return nil, models.Reject(models.RejectFieldNotFound, "field %s does not exist", fieldID)
	}
	return slots.Sort(r.fields[idx].TimeSlots), nil
}

// ReplaceSlots overwrites the field's collection with copies of src under
// fresh ids. Nothing of the previous collection survives.
func (r *Registry) ReplaceSlots(fieldID string, src []models.TimeSlot) error {
	idx := r.indexOf(fieldID)
	if idx < 0 {
		return models.Reject(models.RejectFieldNotFound, "field %s does not exist", fieldID)
	}
	r.fields[idx].TimeSlots = slots.CopyAll(src, r.newID)
	return nil
}

// IDs lists field ids in registry order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.fields))
	for i, f := range r.fields {
		ids[i] = f.ID
	}
	return ids
}
