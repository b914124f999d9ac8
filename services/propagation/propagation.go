// Package propagation copies one field's slot configuration onto its siblings.
package propagation

import (
	"sportify/models"
	"sportify/services/fields"
)

// ApplyToAll overwrites the slots of every field except sourceFieldID with
// copies of the source's slots. Existing slots on target fields are discarded,
// so callers should confirm with the operator first. It returns the number of
// fields that were overwritten.
func ApplyToAll(reg *fields.Registry, sourceFieldID string) (int, error) {
	src, err := reg.Slots(sourceFieldID)
	if err != nil {
		return 0, err
	}
	if len(src) == 0 {
		return 0, models.Reject(models.RejectEmptySource, "field %s has no time slots to copy", sourceFieldID)
	}

	updated := 0
	for _, id := range reg.IDs() {
		if id == sourceFieldID {
			continue
		}
		if err := reg.ReplaceSlots(id, src); err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}
