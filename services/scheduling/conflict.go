package scheduling

import (
	"fmt"
	"strings"

	"dentora/models"
)

// ConflictResult reports whether a candidate overlaps existing
// appointments, and which ones, so the caller can surface the exact
// clashing times.
type ConflictResult struct {
	HasConflict bool                 `json:"hasConflict"`
	Conflicting []models.Appointment `json:"conflicting,omitempty"`
	Message     string               `json:"message,omitempty"`
}

// CheckConflict tests candidate against the given snapshot of existing
// appointments. Only appointments for the same practitioner and date with
// an active status participate; the candidate's own ID is skipped so an
// appointment can be rescheduled in place.
//
// Two intervals conflict iff they are not disjoint:
// cStart < bEnd && bStart < cEnd. A candidate starting exactly when
// another appointment ends is NOT a conflict; back-to-back visits are
// legal.
func CheckConflict(candidate models.Appointment, existing []models.Appointment) ConflictResult {
	cStart := clockMinutes(candidate.Time)
	if cStart < 0 {
		return ConflictResult{}
	}
	cEnd := cStart + candidate.EffectiveDuration()

	var conflicting []models.Appointment
	for _, booked := range existing {
		if booked.PractitionerID != candidate.PractitionerID || booked.Date != candidate.Date {
			continue
		}
		if candidate.ID != "" && booked.ID == candidate.ID {
			continue
		}
		if !booked.IsActive() {
			continue
		}
		bStart := clockMinutes(booked.Time)
		if bStart < 0 {
			continue
		}
		bEnd := bStart + booked.EffectiveDuration()
		if cStart < bEnd && bStart < cEnd {
			conflicting = append(conflicting, booked)
		}
	}

	if len(conflicting) == 0 {
		return ConflictResult{}
	}
	return ConflictResult{
		HasConflict: true,
		Conflicting: conflicting,
		Message:     conflictMessage(conflicting),
	}
}

func conflictMessage(conflicting []models.Appointment) string {
	times := make([]string, 0, len(conflicting))
	for _, a := range conflicting {
		start := clockMinutes(a.Time)
		times = append(times, fmt.Sprintf("%s-%s", a.Time, MinutesToTime(start+a.EffectiveDuration())))
	}
	return fmt.Sprintf("requested time overlaps existing appointment(s) at %s", strings.Join(times, ", "))
}
