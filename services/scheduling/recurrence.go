package scheduling

import (
	"fmt"
	"time"

	"dentora/models"
)

// Frequency is the unit a recurrence pattern advances by.
type Frequency string

const (
	FreqNone    Frequency = "none"
	FreqDaily   Frequency = "daily"
	FreqWeekly  Frequency = "weekly"
	FreqMonthly Frequency = "monthly"
	FreqYearly  Frequency = "yearly"
)

// MaxSeriesLength caps any expanded series. Open-ended patterns stay
// finite, and an end date years away cannot flood the calendar.
const MaxSeriesLength = 52

type endKind int

const (
	endNever endKind = iota
	endOnDate
	endAfterCount
)

// EndCondition is a tagged variant: Never, OnDate or AfterCount.
// Exactly one applies; the "end date and occurrence count both set"
// state cannot be represented.
type EndCondition struct {
	kind  endKind
	date  time.Time
	count int
}

func Never() EndCondition               { return EndCondition{kind: endNever} }
func OnDate(d time.Time) EndCondition   { return EndCondition{kind: endOnDate, date: dateOnly(d)} }
func AfterCount(n int) EndCondition     { return EndCondition{kind: endAfterCount, count: n} }

// Pattern describes how a single candidate expands into dated instances.
type Pattern struct {
	Frequency  Frequency
	Interval   int            // every N units; values < 1 are treated as 1
	DaysOfWeek []time.Weekday // weekly only; empty falls back to the start date's weekday
	End        EndCondition
}

// PatternFromInput converts the wire-level recurrence DTO into a Pattern.
// When the input carries both an end date and an occurrence count, the end
// date wins; the tagged EndCondition keeps that decision out of Expand.
func PatternFromInput(in *models.RecurrenceInput) (Pattern, error) {
	if in == nil || in.Frequency == "" || in.Frequency == string(FreqNone) {
		return Pattern{Frequency: FreqNone, Interval: 1, End: Never()}, nil
	}
	freq := Frequency(in.Frequency)
	switch freq {
	case FreqDaily, FreqWeekly, FreqMonthly, FreqYearly:
	default:
		return Pattern{}, fmt.Errorf("unknown recurrence frequency %q", in.Frequency)
	}

	p := Pattern{Frequency: freq, Interval: in.Interval, End: Never()}
	if p.Interval < 1 {
		p.Interval = 1
	}
	for _, d := range in.DaysOfWeek {
		if d < 0 || d > 6 {
			return Pattern{}, fmt.Errorf("day of week %d out of range 0-6", d)
		}
		p.DaysOfWeek = append(p.DaysOfWeek, time.Weekday(d))
	}

	switch {
	case in.EndDate != "":
		end, err := time.Parse(dateLayout, in.EndDate)
		if err != nil {
			return Pattern{}, fmt.Errorf("invalid recurrence end date %q: %w", in.EndDate, err)
		}
		p.End = OnDate(end)
	case in.Occurrences > 0:
		p.End = AfterCount(in.Occurrences)
	}
	return p, nil
}

// Expand produces the ordered dates a recurring appointment is
// instantiated on. It is a pure function of its inputs and can be called
// repeatedly with identical results.
//
// The start date is the first element. Advancement steps by Interval
// units of Frequency, except weekly patterns with an explicit day-of-week
// set: those walk forward day by day and emit every date whose weekday is
// in the set, skipping week blocks according to Interval ("every 2 weeks
// on Mon/Wed" skips alternate weeks, not alternate matches).
//
// An OnDate end is inclusive; AfterCount emits exactly that many dates;
// every expansion is additionally capped at MaxSeriesLength.
func (p Pattern) Expand(start time.Time) []time.Time {
	first := dateOnly(start)

	if p.Frequency == FreqNone || p.Frequency == "" {
		if p.excluded(first) {
			return nil
		}
		return []time.Time{first}
	}

	interval := p.Interval
	if interval < 1 {
		interval = 1
	}

	limit := MaxSeriesLength
	if p.End.kind == endAfterCount {
		if p.End.count <= 0 {
			return nil
		}
		if p.End.count < limit {
			limit = p.End.count
		}
	}

	if p.Frequency == FreqWeekly && len(p.DaysOfWeek) > 0 {
		return p.expandWeeklyByDays(first, interval, limit)
	}

	var out []time.Time
	for d := first; len(out) < limit; d = p.advance(d, interval) {
		if p.End.kind == endOnDate && d.After(p.End.date) {
			break
		}
		out = append(out, d)
	}
	return out
}

// expandWeeklyByDays walks the calendar day by day. Week blocks are
// anchored at the Sunday of the start date's week, matching the 0=Sunday
// weekday numbering used on the wire.
func (p Pattern) expandWeeklyByDays(first time.Time, interval, limit int) []time.Time {
	anchor := first.AddDate(0, 0, -int(first.Weekday()))

	inSet := func(w time.Weekday) bool {
		for _, d := range p.DaysOfWeek {
			if d == w {
				return true
			}
		}
		return false
	}

	var out []time.Time
	// Hard bound on the walk keeps a sparse day set from spinning forever.
	maxDays := limit*7*interval + 7
	for i := 0; i < maxDays && len(out) < limit; i++ {
		d := first.AddDate(0, 0, i)
		if p.End.kind == endOnDate && d.After(p.End.date) {
			break
		}
		week := int(d.Sub(anchor).Hours()) / 24 / 7
		if week%interval != 0 {
			continue
		}
		if inSet(d.Weekday()) {
			out = append(out, d)
		}
	}
	return out
}

func (p Pattern) advance(d time.Time, interval int) time.Time {
	switch p.Frequency {
	case FreqDaily:
		return d.AddDate(0, 0, interval)
	case FreqWeekly:
		return d.AddDate(0, 0, 7*interval)
	case FreqMonthly:
		return d.AddDate(0, interval, 0)
	case FreqYearly:
		return d.AddDate(interval, 0, 0)
	}
	return d.AddDate(0, 0, interval)
}

// excluded reports whether a non-recurring expansion is ended before it
// starts (AfterCount(0) or an end date before the start).
func (p Pattern) excluded(first time.Time) bool {
	switch p.End.kind {
	case endAfterCount:
		return p.End.count <= 0
	case endOnDate:
		return first.After(p.End.date)
	}
	return false
}

// dateOnly normalizes to midnight UTC so day arithmetic is exact.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
