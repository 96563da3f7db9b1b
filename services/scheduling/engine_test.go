package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"dentora/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	byKey map[string][]models.Appointment
	err   error
	calls int
}

func (f *fakeSource) ListByPractitionerAndDate(_ context.Context, practitionerID, date string) ([]models.Appointment, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.byKey[practitionerID+"|"+date], nil
}

type fakeLeave struct {
	days map[string]bool
}

func (f *fakeLeave) IsOnLeave(_ context.Context, practitionerID, date string) (bool, error) {
	return f.days[practitionerID+"|"+date], nil
}

func newEngine(src *fakeSource, leave *fakeLeave) *DefaultSchedulingEngine {
	return &DefaultSchedulingEngine{
		Appointments:   src,
		Leave:          leave,
		MaxMonthsAhead: 2,
		Now:            func() time.Time { return time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC) },
	}
}

func candidateOn(date, clock string, duration int) models.Appointment {
	return models.Appointment{
		PractitionerID: "dr-lee",
		PatientName:    "Ama Mensah",
		Date:           date,
		Time:           clock,
		Duration:       duration,
		Status:         models.StatusPending,
	}
}

func rejectionCode(t *testing.T, err error) string {
	t.Helper()
	require.Error(t, err)
	ve, ok := AsValidation(err)
	require.True(t, ok, "expected a validation rejection, got %v", err)
	return ve.Code
}

func TestValidateCandidateAccepts(t *testing.T) {
	src := &fakeSource{byKey: map[string][]models.Appointment{}}
	eng := newEngine(src, &fakeLeave{})
	err := eng.ValidateCandidate(context.Background(), candidateOn("2024-03-05", "09:00", 30))
	assert.NoError(t, err)
}

func TestValidateCandidateRejections(t *testing.T) {
	src := &fakeSource{byKey: map[string][]models.Appointment{
		"dr-lee|2024-03-05": {appt("b1", "dr-lee", "2024-03-05", "09:00", 30, models.StatusConfirmed)},
	}}
	leave := &fakeLeave{days: map[string]bool{"dr-lee|2024-03-08": true}}
	eng := newEngine(src, leave)
	ctx := context.Background()

	t.Run("unaligned time", func(t *testing.T) {
		err := eng.ValidateCandidate(ctx, candidateOn("2024-03-05", "09:10", 15))
		assert.Equal(t, CodeInvalidTime, rejectionCode(t, err))
	})
	t.Run("outside operating window", func(t *testing.T) {
		err := eng.ValidateCandidate(ctx, candidateOn("2024-03-05", "07:00", 15))
		assert.Equal(t, CodeInvalidTime, rejectionCode(t, err))
	})
	t.Run("past date", func(t *testing.T) {
		err := eng.ValidateCandidate(ctx, candidateOn("2000-01-01", "09:00", 15))
		assert.Equal(t, CodePastDate, rejectionCode(t, err))
	})
	t.Run("beyond booking horizon", func(t *testing.T) {
		err := eng.ValidateCandidate(ctx, candidateOn("2024-06-01", "09:00", 15))
		assert.Equal(t, CodeTooFarFuture, rejectionCode(t, err))
	})
	t.Run("practitioner on leave", func(t *testing.T) {
		err := eng.ValidateCandidate(ctx, candidateOn("2024-03-08", "09:00", 15))
		assert.Equal(t, CodeSlotBlocked, rejectionCode(t, err))
	})
	t.Run("runs past closing", func(t *testing.T) {
		err := eng.ValidateCandidate(ctx, candidateOn("2024-03-05", "17:45", 30))
		assert.Equal(t, CodeInsufficientConsecutiveSlots, rejectionCode(t, err))
	})
	t.Run("interval conflict with details", func(t *testing.T) {
		err := eng.ValidateCandidate(ctx, candidateOn("2024-03-05", "09:15", 15))
		require.Equal(t, CodeSchedulingConflict, rejectionCode(t, err))
		ve, _ := AsValidation(err)
		require.Len(t, ve.Conflicting, 1)
		assert.Equal(t, "b1", ve.Conflicting[0].ID)
	})
	t.Run("adjacent slot is accepted", func(t *testing.T) {
		assert.NoError(t, eng.ValidateCandidate(ctx, candidateOn("2024-03-05", "09:30", 15)))
	})
}

func TestValidateCandidatePolicyShortCircuitsSnapshotRead(t *testing.T) {
	src := &fakeSource{byKey: map[string][]models.Appointment{}}
	eng := newEngine(src, &fakeLeave{})
	_ = eng.ValidateCandidate(context.Background(), candidateOn("2000-01-01", "09:00", 15))
	assert.Zero(t, src.calls, "past candidates must not reach the conflict detector")
}

func TestValidateCandidateSnapshotError(t *testing.T) {
	src := &fakeSource{err: errors.New("store offline")}
	eng := newEngine(src, &fakeLeave{})
	err := eng.ValidateCandidate(context.Background(), candidateOn("2024-03-05", "09:00", 15))
	require.Error(t, err)
	_, isRejection := AsValidation(err)
	assert.False(t, isRejection, "infrastructure failures are not validation outcomes")
}

func TestValidateSeriesPartialSuccess(t *testing.T) {
	// Week 2's Monday is taken; siblings still succeed on their own.
	src := &fakeSource{byKey: map[string][]models.Appointment{
		"dr-lee|2024-03-11": {appt("b1", "dr-lee", "2024-03-11", "09:00", 45, models.StatusConfirmed)},
	}}
	eng := newEngine(src, &fakeLeave{})

	pattern := Pattern{
		Frequency:  FreqWeekly,
		Interval:   1,
		DaysOfWeek: []time.Weekday{time.Monday},
		End:        AfterCount(3),
	}
	occ, err := eng.ValidateSeries(context.Background(), candidateOn("2024-03-04", "09:00", 30), pattern)
	require.NoError(t, err)
	require.Len(t, occ, 3)

	assert.Nil(t, occ[0].Rejection)
	require.NotNil(t, occ[1].Rejection)
	assert.Equal(t, CodeSchedulingConflict, occ[1].Rejection.Code)
	assert.Equal(t, "2024-03-11", occ[1].Date)
	assert.Nil(t, occ[2].Rejection)
}

func TestSlotCountForDuration(t *testing.T) {
	assert.Equal(t, 1, SlotCountForDuration(0))
	assert.Equal(t, 1, SlotCountForDuration(15))
	assert.Equal(t, 2, SlotCountForDuration(30))
	assert.Equal(t, 3, SlotCountForDuration(45))
	assert.Equal(t, 2, SlotCountForDuration(20))
}
