package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeToMinutesRoundTrip(t *testing.T) {
	for m := 0; m < 24*60; m += SlotMinutes {
		clock := MinutesToTime(m)
		got, err := TimeToMinutes(clock)
		require.NoError(t, err, clock)
		assert.Equal(t, m, got, clock)
	}
}

func TestTimeToMinutesRejectsBadInput(t *testing.T) {
	cases := []string{"", "9:00", "09:7", "09:07", "24:00", "12:60", "ab:cd", "09-30", "09:30:00"}
	for _, clock := range cases {
		_, err := TimeToMinutes(clock)
		require.Error(t, err, clock)
		ve, ok := AsValidation(err)
		require.True(t, ok, clock)
		assert.Equal(t, CodeInvalidTime, ve.Code)
	}
}

func TestGenerateSlots(t *testing.T) {
	slots := GenerateSlots()
	require.Len(t, slots, 40)
	assert.Equal(t, "08:00", slots[0])
	assert.Equal(t, "17:45", slots[len(slots)-1])
	for i := 1; i < len(slots); i++ {
		prev, _ := TimeToMinutes(slots[i-1])
		cur, _ := TimeToMinutes(slots[i])
		assert.Equal(t, SlotMinutes, cur-prev)
	}
}

func TestValidateStartTimeWindow(t *testing.T) {
	assert.NoError(t, ValidateStartTime("08:00"))
	assert.NoError(t, ValidateStartTime("17:45"))
	assert.Error(t, ValidateStartTime("07:45"))
	assert.Error(t, ValidateStartTime("18:00"))
	assert.Error(t, ValidateStartTime("17:50"))
}
