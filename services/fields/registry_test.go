package fields

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportify/models"
	"sportify/services/slots"
)

func seqIDs() slots.IDFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func strPtr(s string) *string { return &s }

func price(p float64) *float64 { return &p }

func TestNew_SeedsDefaultField(t *testing.T) {
	r := New(nil, seqIDs())
	require.Equal(t, 1, r.Len())
	f := r.Fields()[0]
	assert.Equal(t, "Field 1", f.Name)
	assert.Equal(t, models.DefaultFieldType, f.FieldType)
	assert.Empty(t, f.TimeSlots)
}

func TestAddField_AutoNumbers(t *testing.T) {
	r := New(nil, seqIDs())
	f := r.AddField("")
	assert.Equal(t, "Field 2", f.Name)

	named := r.AddField("Center Court")
	assert.Equal(t, "Center Court", named.Name)
	assert.Equal(t, 3, r.Len())
	assert.NotEqual(t, f.ID, named.ID)
}

func TestRemoveField_KeepsLastField(t *testing.T) {
	r := New(nil, seqIDs())
	only := r.Fields()[0].ID

	err := r.RemoveField(only)
	assert.True(t, models.IsRejection(err, models.RejectLastFieldRemaining))
	assert.Equal(t, 1, r.Len())

	second := r.AddField("")
	require.NoError(t, r.RemoveField(only))
	assert.Equal(t, []string{second.ID}, r.IDs())

	assert.True(t, models.IsRejection(r.RemoveField("missing"), models.RejectFieldNotFound))
}

func TestUpdateField_MergesPatch(t *testing.T) {
	r := New(nil, seqIDs())
	id := r.Fields()[0].ID
	_, err := r.AddSlot(id, models.SlotInput{StartTime: "06:00", EndTime: "07:00", Price: price(10)})
	require.NoError(t, err)

	ft := models.FieldType11
	f, err := r.UpdateField(id, models.FieldPatch{FieldType: &ft})
	require.NoError(t, err)
	assert.Equal(t, "Field 1", f.Name)
	assert.Equal(t, models.FieldType11, f.FieldType)
	assert.Len(t, f.TimeSlots, 1)

	f, err = r.UpdateField(id, models.FieldPatch{Name: strPtr("North"), Description: strPtr("turf")})
	require.NoError(t, err)
	assert.Equal(t, "North", f.Name)
	assert.Equal(t, "turf", f.Description)
	assert.Equal(t, models.FieldType11, f.FieldType)

	bad := models.FieldType("3-a-side")
	_, err = r.UpdateField(id, models.FieldPatch{FieldType: &bad})
	assert.True(t, models.IsRejection(err, models.RejectInvalidFieldType))
}

func TestDuplicateNames(t *testing.T) {
	r := New([]models.Field{
		{ID: "a", Name: "Pitch A"},
		{ID: "b", Name: "  pitch a "},
		{ID: "c", Name: "Pitch B"},
		{ID: "d", Name: ""},
		{ID: "e", Name: "   "},
	}, seqIDs())

	assert.True(t, r.IsDuplicateName("PITCH A"))
	assert.False(t, r.IsDuplicateName("Pitch B"))
	assert.False(t, r.IsDuplicateName(""))
	assert.Equal(t, []string{"pitch a"}, r.DuplicateNames())

	_, err := r.UpdateField("b", models.FieldPatch{Name: strPtr("Pitch C")})
	require.NoError(t, err)
	assert.Empty(t, r.DuplicateNames())
	assert.False(t, r.AllNamed())
}

func TestBulkAdd_NumbersFromCurrentCount(t *testing.T) {
	r := New([]models.Field{{ID: "a", Name: "Field 1"}, {ID: "b", Name: "Field 2"}}, seqIDs())

	added, err := r.BulkAdd("Field {number}", 3, models.FieldType5)
	require.NoError(t, err)
	require.Len(t, added, 3)
	assert.Equal(t, "Field 3", added[0].Name)
	assert.Equal(t, "Field 4", added[1].Name)
	assert.Equal(t, "Field 5", added[2].Name)
	for _, f := range added {
		assert.Equal(t, models.FieldType5, f.FieldType)
		assert.Empty(t, f.TimeSlots)
	}
	assert.Equal(t, 5, r.Len())
	assert.Empty(t, r.DuplicateNames())
}

func TestBulkAdd_PatternAndValidation(t *testing.T) {
	r := New(nil, seqIDs())

	added, err := r.BulkAdd("Court", 2, "")
	require.NoError(t, err)
	assert.Equal(t, "Court 2", added[0].Name)
	assert.Equal(t, models.DefaultFieldType, added[0].FieldType)

	_, err = r.BulkAdd("Court {number}", 0, models.FieldType7)
	assert.True(t, models.IsRejection(err, models.RejectInvalidCount))

	_, err = r.BulkAdd("Court {number}", 1, "rugby")
	assert.True(t, models.IsRejection(err, models.RejectInvalidFieldType))
	assert.Equal(t, 3, r.Len())
}

func TestSlotDelegation(t *testing.T) {
	r := New(nil, seqIDs())
	id := r.Fields()[0].ID

	late, err := r.AddSlot(id, models.SlotInput{StartTime: "18:00", EndTime: "19:30", Price: price(200)})
	require.NoError(t, err)
	_, err = r.AddSlot(id, models.SlotInput{StartTime: "06:00", EndTime: "07:30", Price: price(100)})
	require.NoError(t, err)

	_, err = r.AddSlot(id, models.SlotInput{StartTime: "19:00", EndTime: "20:00", Price: price(100)})
	assert.True(t, models.IsRejection(err, models.RejectOverlap))

	got, err := r.Slots(id)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "06:00", got[0].Start.String())

	require.NoError(t, r.EditSlot(id, late.ID, models.SlotInput{StartTime: "05:00", EndTime: "06:00", Price: price(50)}))
	got, _ = r.Slots(id)
	assert.Equal(t, late.ID, got[0].ID)

	require.NoError(t, r.RemoveSlot(id, late.ID))
	require.NoError(t, r.RemoveSlot(id, "ghost"))
	got, _ = r.Slots(id)
	assert.Len(t, got, 1)

	_, err = r.AddSlot("nope", models.SlotInput{StartTime: "05:00", EndTime: "06:00", Price: price(50)})
	assert.True(t, models.IsRejection(err, models.RejectFieldNotFound))
	assert.True(t, r.AllHaveSlots())
}

func TestFields_ReturnsCopies(t *testing.T) {
	r := New(nil, seqIDs())
	out := r.Fields()
	out[0].Name = "mutated"
	assert.Equal(t, "Field 1", r.Fields()[0].Name)
}
