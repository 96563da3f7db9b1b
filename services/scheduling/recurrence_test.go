package scheduling

import (
	"testing"
	"time"

	"dentora/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dates(ts []time.Time) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.Format("2006-01-02")
	}
	return out
}

func TestExpandWeeklyOccurrenceCount(t *testing.T) {
	p := Pattern{
		Frequency:  FreqWeekly,
		Interval:   1,
		DaysOfWeek: []time.Weekday{time.Monday},
		End:        AfterCount(4),
	}
	got := p.Expand(day(2024, time.January, 1)) // a Monday
	assert.Equal(t, []string{"2024-01-01", "2024-01-08", "2024-01-15", "2024-01-22"}, dates(got))
}

func TestExpandDailyEndDate(t *testing.T) {
	p := Pattern{Frequency: FreqDaily, Interval: 2, End: OnDate(day(2024, time.January, 10))}
	got := p.Expand(day(2024, time.January, 1))
	assert.Equal(t, []string{"2024-01-01", "2024-01-03", "2024-01-05", "2024-01-07", "2024-01-09"}, dates(got))
}

func TestExpandBiweeklyByDaysSkipsWeekBlocks(t *testing.T) {
	// Every 2 weeks on Mon/Wed: alternate week blocks drop out entirely.
	p := Pattern{
		Frequency:  FreqWeekly,
		Interval:   2,
		DaysOfWeek: []time.Weekday{time.Monday, time.Wednesday},
		End:        AfterCount(6),
	}
	got := p.Expand(day(2024, time.January, 1)) // Monday
	assert.Equal(t, []string{
		"2024-01-01", "2024-01-03", // week 0
		"2024-01-15", "2024-01-17", // week 2
		"2024-01-29", "2024-01-31", // week 4
	}, dates(got))
}

func TestExpandWeeklyWithoutDaySetUsesStartWeekday(t *testing.T) {
	p := Pattern{Frequency: FreqWeekly, Interval: 1, End: AfterCount(3)}
	got := p.Expand(day(2024, time.January, 2)) // a Tuesday
	assert.Equal(t, []string{"2024-01-02", "2024-01-09", "2024-01-16"}, dates(got))
}

func TestExpandMonthlyAndYearly(t *testing.T) {
	monthly := Pattern{Frequency: FreqMonthly, Interval: 1, End: AfterCount(3)}
	assert.Equal(t, []string{"2024-02-15", "2024-03-15", "2024-04-15"},
		dates(monthly.Expand(day(2024, time.February, 15))))

	yearly := Pattern{Frequency: FreqYearly, Interval: 1, End: AfterCount(2)}
	assert.Equal(t, []string{"2024-06-01", "2025-06-01"},
		dates(yearly.Expand(day(2024, time.June, 1))))
}

func TestExpandStartDateIsFirst(t *testing.T) {
	p := Pattern{Frequency: FreqDaily, Interval: 3, End: AfterCount(2)}
	got := p.Expand(day(2024, time.March, 4))
	require.NotEmpty(t, got)
	assert.Equal(t, "2024-03-04", got[0].Format("2006-01-02"))
}

func TestExpandNoneFrequency(t *testing.T) {
	p := Pattern{Frequency: FreqNone, Interval: 1, End: Never()}
	got := p.Expand(day(2024, time.March, 4))
	assert.Equal(t, []string{"2024-03-04"}, dates(got))
}

func TestExpandOpenEndedIsCapped(t *testing.T) {
	p := Pattern{Frequency: FreqDaily, Interval: 1, End: Never()}
	got := p.Expand(day(2024, time.January, 1))
	assert.Len(t, got, MaxSeriesLength)
}

func TestExpandEndDateBeforeStart(t *testing.T) {
	p := Pattern{Frequency: FreqDaily, Interval: 1, End: OnDate(day(2023, time.December, 31))}
	assert.Empty(t, p.Expand(day(2024, time.January, 1)))
}

func TestExpandZeroOccurrences(t *testing.T) {
	p := Pattern{Frequency: FreqWeekly, Interval: 1, End: AfterCount(0)}
	assert.Empty(t, p.Expand(day(2024, time.January, 1)))
}

func TestExpandIsRestartable(t *testing.T) {
	p := Pattern{
		Frequency:  FreqWeekly,
		Interval:   2,
		DaysOfWeek: []time.Weekday{time.Monday, time.Friday},
		End:        AfterCount(8),
	}
	start := day(2024, time.January, 1)
	assert.Equal(t, dates(p.Expand(start)), dates(p.Expand(start)))
}

func TestPatternFromInput(t *testing.T) {
	t.Run("end date wins over occurrences", func(t *testing.T) {
		p, err := PatternFromInput(&models.RecurrenceInput{
			Frequency:   "daily",
			Interval:    1,
			EndDate:     "2024-01-03",
			Occurrences: 10,
		})
		require.NoError(t, err)
		got := p.Expand(day(2024, time.January, 1))
		assert.Equal(t, []string{"2024-01-01", "2024-01-02", "2024-01-03"}, dates(got))
	})
	t.Run("occurrences alone", func(t *testing.T) {
		p, err := PatternFromInput(&models.RecurrenceInput{Frequency: "daily", Occurrences: 2})
		require.NoError(t, err)
		assert.Len(t, p.Expand(day(2024, time.January, 1)), 2)
	})
	t.Run("neither end condition is open-ended", func(t *testing.T) {
		p, err := PatternFromInput(&models.RecurrenceInput{Frequency: "daily", Interval: 1})
		require.NoError(t, err)
		assert.Len(t, p.Expand(day(2024, time.January, 1)), MaxSeriesLength)
	})
	t.Run("nil input means no recurrence", func(t *testing.T) {
		p, err := PatternFromInput(nil)
		require.NoError(t, err)
		assert.Equal(t, FreqNone, p.Frequency)
	})
	t.Run("unknown frequency rejected", func(t *testing.T) {
		_, err := PatternFromInput(&models.RecurrenceInput{Frequency: "fortnightly"})
		assert.Error(t, err)
	})
	t.Run("weekday out of range rejected", func(t *testing.T) {
		_, err := PatternFromInput(&models.RecurrenceInput{Frequency: "weekly", DaysOfWeek: []int{7}})
		assert.Error(t, err)
	})
	t.Run("bad end date rejected", func(t *testing.T) {
		_, err := PatternFromInput(&models.RecurrenceInput{Frequency: "daily", EndDate: "01/02/2024"})
		assert.Error(t, err)
	})
}
