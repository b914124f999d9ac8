package fields

import (
	"strconv"
	"strings"

	"sportify/models"
)

// NumberPlaceholder is replaced by the running field number in bulk patterns.
const NumberPlaceholder = "{number}"

// BulkAdd appends count fields named from pattern, numbered from the current
// field count plus one. Callers are expected to clamp count.
func (r *Registry) BulkAdd(pattern string, count int, fieldType models.FieldType) ([]models.Field, error) {
	if count < 1 {
		return nil, models.Reject(models.RejectInvalidCount, "count must be at least 1, got %d", count)
	}
	if fieldType == "" {
		fieldType = models.DefaultFieldType
	}
	if !fieldType.Valid() {
		return nil, models.Reject(models.RejectInvalidFieldType, "unknown field type %q", fieldType)
	}
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		pattern = "Field " + NumberPlaceholder
	} else if !strings.Contains(pattern, NumberPlaceholder) {
		pattern += " " + NumberPlaceholder
	}

	start := len(r.fields) + 1
	added := make([]models.Field, 0, count)
	for i := 0; i < count; i++ {
		f := models.Field{
			ID:        r.newID(),
			Name:      strings.ReplaceAll(pattern, NumberPlaceholder, strconv.Itoa(start+i)),
			FieldType: fieldType,
			TimeSlots: []models.TimeSlot{},
		}
		r.fields = append(r.fields, f)
		added = append(added, f.Clone())
	}
	return added, nil
}
