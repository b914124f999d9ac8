// Package slots holds the interval rules for a single field's time slots.
// Every function is pure: collections are copied, never mutated in place.
package slots

import (
	"sort"
	"strings"

	"sportify/models"
)

// DefaultDurationMinutes is the length of a suggested follow-up slot.
const DefaultDurationMinutes = 90

// IDFunc mints a fresh slot identity.
type IDFunc func() string

// Overlaps reports whether [start, end) intersects any slot in collection
// other than excludeID. Touching boundaries do not overlap.
func Overlaps(collection []models.TimeSlot, start, end models.TimeOfDay, excludeID string) bool {
	for _, s := range collection {
		if excludeID != "" && s.ID == excludeID {
			continue
		}
		if start < s.End && s.Start < end {
			return true
		}
	}
	return false
}

// Sort returns a copy of collection ordered by start time. Ties keep their
// original relative order.
func Sort(collection []models.TimeSlot) []models.TimeSlot {
	out := make([]models.TimeSlot, len(collection))
	copy(out, collection)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}

// Add validates in against collection and returns a new sorted collection
// containing the inserted slot.
func Add(collection []models.TimeSlot, in models.SlotInput, newID IDFunc) ([]models.TimeSlot, models.TimeSlot, error) {
	slot, err := validate(collection, in, "")
	if err != nil {
		return collection, models.TimeSlot{}, err
	}
	slot.ID = newID()

	out := make([]models.TimeSlot, 0, len(collection)+1)
	out = append(out, collection...)
	out = append(out, slot)
	return Sort(out), slot, nil
}

// Edit replaces slotID with the values of in, keeping its id. The slot does
// not conflict with its own previous interval.
func Edit(collection []models.TimeSlot, slotID string, in models.SlotInput) ([]models.TimeSlot, error) {
	idx := indexOf(collection, slotID)
	if idx < 0 {
		return collection, models.Reject(models.RejectSlotNotFound, "time slot %s does not exist", slotID)
	}
	slot, err := validate(collection, in, slotID)
	if err != nil {
		return collection, err
	}
	slot.ID = slotID

	out := make([]models.TimeSlot, len(collection))
	copy(out, collection)
	out[idx] = slot
	return Sort(out), nil
}

// Remove drops slotID. Unknown ids are ignored.
func Remove(collection []models.TimeSlot, slotID string) []models.TimeSlot {
	out := make([]models.TimeSlot, 0, len(collection))
	for _, s := range collection {
		if s.ID != slotID {
			out = append(out, s)
		}
	}
	return out
}

// SuggestNext pre-fills the next entry form so it starts where the last slot
// ended. The end is clamped to 23:59; times never wrap past midnight.
func SuggestNext(lastEnd models.TimeOfDay, durationMinutes int) models.SlotSuggestion {
	if durationMinutes <= 0 {
		durationMinutes = DefaultDurationMinutes
	}
	return models.SlotSuggestion{Start: lastEnd, End: lastEnd.Add(durationMinutes)}
}

// CopyAll duplicates collection with freshly minted ids, sorted by start.
func CopyAll(collection []models.TimeSlot, newID IDFunc) []models.TimeSlot {
	out := make([]models.TimeSlot, len(collection))
	for i, s := range collection {
		out[i] = models.TimeSlot{ID: newID(), Start: s.Start, End: s.End, Price: s.Price}
	}
	return Sort(out)
}

func validate(collection []models.TimeSlot, in models.SlotInput, excludeID string) (models.TimeSlot, error) {
	if strings.TrimSpace(in.StartTime) == "" || strings.TrimSpace(in.EndTime) == "" || in.Price == nil {
		return models.TimeSlot{}, models.Reject(models.RejectEmptyField, "start time, end time and price are required")
	}
	start, err := models.ParseTimeOfDay(in.StartTime)
	if err != nil {
		return models.TimeSlot{}, models.Reject(models.RejectInvalidTime, "%v", err)
	}
	end, err := models.ParseTimeOfDay(in.EndTime)
	if err != nil {
		return models.TimeSlot{}, models.Reject(models.RejectInvalidTime, "%v", err)
	}
	if start >= end {
		return models.TimeSlot{}, models.Reject(models.RejectInvertedRange, "start time %s must be before end time %s", start, end)
	}
	if *in.Price < 0 {
		return models.TimeSlot{}, models.Reject(models.RejectInvalidPrice, "price must not be negative")
	}
	if Overlaps(collection, start, end, excludeID) {
		return models.TimeSlot{}, models.Reject(models.RejectOverlap, "%s-%s overlaps an existing time slot", start, end)
	}
	return models.TimeSlot{Start: start, End: end, Price: *in.Price}, nil
}

func indexOf(collection []models.TimeSlot, slotID string) int {
	for i, s := range collection {
		if s.ID == slotID {
			return i
		}
	}
	return -1
}
