package scheduling

import (
	"fmt"
	"strconv"
	"strings"
)

// The practice day grid: quarter-hour slots from 08:00 to 17:45 inclusive
// of start times. The last bookable start is 17:45 for a one-slot visit.
const (
	SlotMinutes     = 15
	DayStartMinutes = 8 * 60      // 08:00
	DayEndMinutes   = 17*60 + 45  // 17:45
)

// TimeToMinutes converts a slot-aligned "HH:MM" clock string to minutes
// from midnight. It rejects strings that are malformed, out of clock
// range, or not aligned to the quarter-hour grid.
func TimeToMinutes(clock string) (int, error) {
	h, m, ok := splitClock(clock)
	if !ok {
		return 0, NewValidationError(CodeInvalidTime, fmt.Sprintf("invalid time %q", clock))
	}
	if m%SlotMinutes != 0 {
		return 0, NewValidationError(CodeInvalidTime, fmt.Sprintf("time %q is not aligned to %d-minute slots", clock, SlotMinutes))
	}
	return h*60 + m, nil
}

// MinutesToTime converts minutes from midnight back to "HH:MM".
// Inverse of TimeToMinutes for all slot-aligned values in [0, 1440).
func MinutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// GenerateSlots enumerates every bookable start time of a practice day,
// ordered. The window is fixed and date-independent; closing a weekday
// entirely (e.g., Sundays) is the caller's policy, not the grid's.
func GenerateSlots() []string {
	slots := make([]string, 0, (DayEndMinutes-DayStartMinutes)/SlotMinutes+1)
	for m := DayStartMinutes; m <= DayEndMinutes; m += SlotMinutes {
		slots = append(slots, MinutesToTime(m))
	}
	return slots
}

// ValidateStartTime checks that clock is slot-aligned and inside the
// practice's operating window.
func ValidateStartTime(clock string) error {
	m, err := TimeToMinutes(clock)
	if err != nil {
		return err
	}
	if m < DayStartMinutes || m > DayEndMinutes {
		return NewValidationError(CodeInvalidTime,
			fmt.Sprintf("time %s is outside the practice day (%s-%s)",
				clock, MinutesToTime(DayStartMinutes), MinutesToTime(DayEndMinutes)))
	}
	return nil
}

// splitClock parses "HH:MM" without any grid alignment requirement.
func splitClock(clock string) (h, m int, ok bool) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	m, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}

// clockMinutes is the lenient variant used for stored appointment times,
// which are trusted but may predate the current grid. Returns -1 when
// unparseable.
func clockMinutes(clock string) int {
	h, m, ok := splitClock(clock)
	if !ok {
		return -1
	}
	return h*60 + m
}
