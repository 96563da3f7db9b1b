package booking

import (
	"testing"
	"time"

	"dentora/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotByTime(t *testing.T, day *models.DayAvailability, at string) models.SlotAvailability {
	t.Helper()
	for _, s := range day.Slots {
		if s.Time == at {
			return s
		}
	}
	t.Fatalf("slot %s not in grid", at)
	return models.SlotAvailability{}
}

func TestBuildDayAvailabilityEmptyDay(t *testing.T) {
	now := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	day := BuildDayAvailability("dr-1", "2024-03-04", 1, nil, false, now)

	require.Len(t, day.Slots, 40)
	assert.False(t, day.OnLeave)
	for _, s := range day.Slots {
		assert.True(t, s.Available, "slot %s should be free", s.Time)
		assert.Empty(t, s.Reason)
	}
}

func TestBuildDayAvailabilityBookedSlots(t *testing.T) {
	now := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	existing := []models.Appointment{
		{ID: "a1", PractitionerID: "dr-1", Date: "2024-03-04", Time: "10:00", Duration: 30, Status: models.StatusConfirmed},
	}
	day := BuildDayAvailability("dr-1", "2024-03-04", 1, existing, false, now)

	assert.Equal(t, "booked", slotByTime(t, day, "10:00").Reason)
	assert.Equal(t, "booked", slotByTime(t, day, "10:15").Reason)
	assert.True(t, slotByTime(t, day, "09:45").Available)
	assert.True(t, slotByTime(t, day, "10:30").Available)
}

func TestBuildDayAvailabilityCancelledDoesNotBlock(t *testing.T) {
	now := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	existing := []models.Appointment{
		{ID: "a1", PractitionerID: "dr-1", Date: "2024-03-04", Time: "10:00", Duration: 30, Status: models.StatusCancelled},
	}
	day := BuildDayAvailability("dr-1", "2024-03-04", 1, existing, false, now)

	assert.True(t, slotByTime(t, day, "10:00").Available)
	assert.True(t, slotByTime(t, day, "10:15").Available)
}

func TestBuildDayAvailabilityLeaveBlanksGrid(t *testing.T) {
	now := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	day := BuildDayAvailability("dr-1", "2024-03-04", 1, nil, true, now)

	assert.True(t, day.OnLeave)
	for _, s := range day.Slots {
		assert.False(t, s.Available)
		assert.Equal(t, "on leave", s.Reason)
	}
}

func TestBuildDayAvailabilityPastSlotsSameDay(t *testing.T) {
	// Mid-afternoon on the queried day itself.
	now := time.Date(2024, 3, 4, 14, 0, 0, 0, time.UTC)
	day := BuildDayAvailability("dr-1", "2024-03-04", 1, nil, false, now)

	assert.Equal(t, "in the past", slotByTime(t, day, "08:00").Reason)
	assert.Equal(t, "in the past", slotByTime(t, day, "13:45").Reason)
	assert.True(t, slotByTime(t, day, "14:00").Available)
	assert.True(t, slotByTime(t, day, "17:45").Available)
}

func TestBuildDayAvailabilityMultiSlotRuns(t *testing.T) {
	now := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	existing := []models.Appointment{
		{ID: "a1", PractitionerID: "dr-1", Date: "2024-03-04", Time: "08:30", Duration: 15, Status: models.StatusConfirmed},
	}
	day := BuildDayAvailability("dr-1", "2024-03-04", 2, existing, false, now)

	// 08:15 is free but its 2-slot run crosses the 08:30 booking.
	assert.Equal(t, "not enough consecutive slots", slotByTime(t, day, "08:15").Reason)
	assert.True(t, slotByTime(t, day, "08:00").Available)
	assert.True(t, slotByTime(t, day, "08:45").Available)

	// The closing slot can never host a 2-slot visit.
	assert.Equal(t, "not enough consecutive slots", slotByTime(t, day, "17:45").Reason)
	assert.True(t, slotByTime(t, day, "17:30").Available)
}
