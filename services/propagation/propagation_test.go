package propagation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportify/models"
	"sportify/services/fields"
)

func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func price(p float64) *float64 { return &p }

func TestApplyToAll_CopiesWithFreshIDs(t *testing.T) {
	reg := fields.New(nil, seqIDs())
	reg.AddField("")
	reg.AddField("")
	ids := reg.IDs()
	src := ids[0]

	_, err := reg.AddSlot(src, models.SlotInput{StartTime: "08:00", EndTime: "10:00", Price: price(120000)})
	require.NoError(t, err)
	_, err = reg.AddSlot(src, models.SlotInput{StartTime: "06:00", EndTime: "08:00", Price: price(100000)})
	require.NoError(t, err)
	_, err = reg.AddSlot(ids[2], models.SlotInput{StartTime: "20:00", EndTime: "21:00", Price: price(5)})
	require.NoError(t, err)

	n, err := ApplyToAll(reg, src)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	srcSlots, _ := reg.Slots(src)
	seen := map[string]bool{}
	for _, s := range srcSlots {
		seen[s.ID] = true
	}
	for _, id := range ids[1:] {
		got, err := reg.Slots(id)
		require.NoError(t, err)
		require.Len(t, got, 2)
		for i, s := range got {
			assert.Equal(t, srcSlots[i].Start, s.Start)
			assert.Equal(t, srcSlots[i].End, s.End)
			assert.Equal(t, srcSlots[i].Price, s.Price)
			assert.False(t, seen[s.ID], "slot id %s reused", s.ID)
			seen[s.ID] = true
		}
		assert.Equal(t, "06:00", got[0].Start.String())
	}
}

func TestApplyToAll_EmptySource(t *testing.T) {
	reg := fields.New(nil, seqIDs())
	other := reg.AddField("")
	_, err := reg.AddSlot(other.ID, models.SlotInput{StartTime: "08:00", EndTime: "10:00", Price: price(1)})
	require.NoError(t, err)

	_, err = ApplyToAll(reg, reg.IDs()[0])
	assert.True(t, models.IsRejection(err, models.RejectEmptySource))

	kept, _ := reg.Slots(other.ID)
	assert.Len(t, kept, 1)
}

func TestApplyToAll_UnknownSource(t *testing.T) {
	reg := fields.New(nil, seqIDs())
	_, err := ApplyToAll(reg, "missing")
	assert.True(t, models.IsRejection(err, models.RejectFieldNotFound))
}
