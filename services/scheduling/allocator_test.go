package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsecutiveSlots(t *testing.T) {
	slots := GenerateSlots()

	t.Run("single slot", func(t *testing.T) {
		got := ConsecutiveSlots("09:00", 1, slots)
		assert.Equal(t, []string{"09:00"}, got)
	})
	t.Run("three slots", func(t *testing.T) {
		got := ConsecutiveSlots("09:00", 3, slots)
		assert.Equal(t, []string{"09:00", "09:15", "09:30"}, got)
	})
	t.Run("last slot of the day fits one", func(t *testing.T) {
		got := ConsecutiveSlots("17:45", 1, slots)
		assert.Equal(t, []string{"17:45"}, got)
	})
	t.Run("runs past closing", func(t *testing.T) {
		assert.Nil(t, ConsecutiveSlots("17:45", 2, slots))
	})
	t.Run("start not in grid", func(t *testing.T) {
		assert.Nil(t, ConsecutiveSlots("07:45", 1, slots))
		assert.Nil(t, ConsecutiveSlots("09:05", 2, slots))
	})
	t.Run("non-positive count", func(t *testing.T) {
		assert.Nil(t, ConsecutiveSlots("09:00", 0, slots))
	})
}

func TestCanSelect(t *testing.T) {
	slots := GenerateSlots()
	booked := map[string]bool{"09:30": true}
	isBooked := func(s string) bool { return booked[s] }

	t.Run("free run", func(t *testing.T) {
		assert.True(t, CanSelect("08:00", 3, slots, isBooked))
	})
	t.Run("run crosses a booked slot", func(t *testing.T) {
		assert.False(t, CanSelect("09:00", 3, slots, isBooked))
	})
	t.Run("run ends right before a booked slot", func(t *testing.T) {
		assert.True(t, CanSelect("09:00", 2, slots, isBooked))
	})
	t.Run("leave day blocks every slot", func(t *testing.T) {
		onLeave := func(string) bool { return true }
		for _, s := range slots {
			require.False(t, CanSelect(s, 1, slots, onLeave), s)
		}
	})
	t.Run("nil predicate only checks the run", func(t *testing.T) {
		assert.True(t, CanSelect("09:30", 1, slots, nil))
		assert.False(t, CanSelect("17:45", 2, slots, nil))
	})
}
