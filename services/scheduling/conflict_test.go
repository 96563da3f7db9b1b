package scheduling

import (
	"testing"

	"dentora/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appt(id, practitioner, date, clock string, duration int, status string) models.Appointment {
	return models.Appointment{
		ID:             id,
		PractitionerID: practitioner,
		Date:           date,
		Time:           clock,
		Duration:       duration,
		Status:         status,
	}
}

func TestCheckConflictOverlapCases(t *testing.T) {
	existing := appt("b1", "dr-lee", "2024-03-04", "10:00", 45, models.StatusConfirmed)

	tests := []struct {
		name     string
		clock    string
		duration int
		want     bool
	}{
		{"exact coincidence", "10:00", 45, true},
		{"fully contained", "10:15", 15, true},
		{"partial overlap at head", "09:45", 30, true},
		{"partial overlap at tail", "10:30", 30, true},
		{"candidate contains existing", "09:45", 75, true},
		{"adjacent before is legal", "09:15", 45, false},
		{"adjacent after is legal", "10:45", 15, false},
		{"disjoint later", "11:30", 30, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			candidate := appt("", "dr-lee", "2024-03-04", tc.clock, tc.duration, models.StatusPending)
			res := CheckConflict(candidate, []models.Appointment{existing})
			assert.Equal(t, tc.want, res.HasConflict)
		})
	}
}

func TestCheckConflictSymmetry(t *testing.T) {
	pairs := [][2]models.Appointment{
		{appt("a", "p", "2024-03-04", "09:00", 30, models.StatusConfirmed), appt("b", "p", "2024-03-04", "09:15", 30, models.StatusConfirmed)},
		{appt("a", "p", "2024-03-04", "09:00", 30, models.StatusConfirmed), appt("b", "p", "2024-03-04", "09:30", 15, models.StatusConfirmed)},
		{appt("a", "p", "2024-03-04", "10:00", 45, models.StatusConfirmed), appt("b", "p", "2024-03-04", "10:15", 15, models.StatusConfirmed)},
	}
	for _, pair := range pairs {
		ab := CheckConflict(pair[0], []models.Appointment{pair[1]}).HasConflict
		ba := CheckConflict(pair[1], []models.Appointment{pair[0]}).HasConflict
		assert.Equal(t, ab, ba, "overlap must be symmetric")
	}
}

func TestCheckConflictDefaultDuration(t *testing.T) {
	// No duration on the stored record: behaves as one 15-minute slot.
	existing := appt("b1", "dr-lee", "2024-03-04", "09:00", 0, models.StatusConfirmed)

	same := appt("", "dr-lee", "2024-03-04", "09:00", 45, models.StatusPending)
	assert.True(t, CheckConflict(same, []models.Appointment{existing}).HasConflict)

	after := appt("", "dr-lee", "2024-03-04", "09:15", 15, models.StatusPending)
	assert.False(t, CheckConflict(after, []models.Appointment{existing}).HasConflict)
}

func TestCheckConflictFilters(t *testing.T) {
	candidate := appt("self", "dr-lee", "2024-03-04", "09:00", 30, models.StatusPending)

	t.Run("other practitioner ignored", func(t *testing.T) {
		other := appt("b1", "dr-osei", "2024-03-04", "09:00", 30, models.StatusConfirmed)
		assert.False(t, CheckConflict(candidate, []models.Appointment{other}).HasConflict)
	})
	t.Run("other date ignored", func(t *testing.T) {
		other := appt("b1", "dr-lee", "2024-03-05", "09:00", 30, models.StatusConfirmed)
		assert.False(t, CheckConflict(candidate, []models.Appointment{other}).HasConflict)
	})
	t.Run("own id ignored for reschedule", func(t *testing.T) {
		same := appt("self", "dr-lee", "2024-03-04", "09:00", 30, models.StatusConfirmed)
		assert.False(t, CheckConflict(candidate, []models.Appointment{same}).HasConflict)
	})
	t.Run("cancelled and no-show ignored", func(t *testing.T) {
		cancelled := appt("b1", "dr-lee", "2024-03-04", "09:00", 30, models.StatusCancelled)
		noShow := appt("b2", "dr-lee", "2024-03-04", "09:00", 30, models.StatusNoShow)
		assert.False(t, CheckConflict(candidate, []models.Appointment{cancelled, noShow}).HasConflict)
	})
	t.Run("arrived still occupies its slots", func(t *testing.T) {
		arrived := appt("b1", "dr-lee", "2024-03-04", "09:00", 30, models.StatusArrived)
		assert.True(t, CheckConflict(candidate, []models.Appointment{arrived}).HasConflict)
	})
}

func TestCheckConflictReportsAllConflicts(t *testing.T) {
	existing := []models.Appointment{
		appt("b1", "dr-lee", "2024-03-04", "09:00", 30, models.StatusConfirmed),
		appt("b2", "dr-lee", "2024-03-04", "09:30", 30, models.StatusConfirmed),
		appt("b3", "dr-lee", "2024-03-04", "11:00", 30, models.StatusConfirmed),
	}
	candidate := appt("", "dr-lee", "2024-03-04", "09:15", 30, models.StatusPending)
	res := CheckConflict(candidate, existing)
	require.True(t, res.HasConflict)
	require.Len(t, res.Conflicting, 2)
	assert.Equal(t, "b1", res.Conflicting[0].ID)
	assert.Equal(t, "b2", res.Conflicting[1].ID)
	assert.Contains(t, res.Message, "09:00-09:30")
}

func TestCheckConflictIsPure(t *testing.T) {
	existing := []models.Appointment{appt("b1", "dr-lee", "2024-03-04", "09:00", 30, models.StatusConfirmed)}
	candidate := appt("", "dr-lee", "2024-03-04", "09:15", 15, models.StatusPending)
	first := CheckConflict(candidate, existing)
	second := CheckConflict(candidate, existing)
	assert.Equal(t, first, second)
}
