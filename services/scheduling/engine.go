package scheduling

import (
	"context"
	"fmt"
	"time"

	"dentora/models"
)

// AppointmentSource supplies the read-only snapshot of existing
// appointments a validation runs against.
type AppointmentSource interface {
	ListByPractitionerAndDate(ctx context.Context, practitionerID, date string) ([]models.Appointment, error)
}

// LeaveChecker answers whether a practitioner is off for a whole date.
// Leave state lives wherever the caller keeps it; the engine only asks.
type LeaveChecker interface {
	IsOnLeave(ctx context.Context, practitionerID, date string) (bool, error)
}

// DefaultSchedulingEngine validates appointment candidates against
// temporal policy, leave days and existing bookings.
//
// Validation reads a snapshot and the subsequent write is not serialized
// against other writers: two near-simultaneous bookings for the same slot
// can both pass and both land. That is the accepted model here; the staff
// calendar is the reconciliation point. A caller needing stronger
// guarantees must serialize around validate-then-create itself, e.g. with
// a per-practitioner-per-day mutex; the engine's contract stays pure.
type DefaultSchedulingEngine struct {
	Appointments   AppointmentSource
	Leave          LeaveChecker
	MaxMonthsAhead int
	Now            func() time.Time // injectable clock; defaults to time.Now
}

func (e *DefaultSchedulingEngine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// ValidateCandidate checks one candidate appointment. It returns nil when
// the candidate may be booked, a *ValidationError for an expected
// rejection, or a wrapped error when the snapshot read itself fails.
//
// Checks run cheapest first: grid alignment, temporal policy, leave day,
// closing-time fit, then interval conflicts.
func (e *DefaultSchedulingEngine) ValidateCandidate(ctx context.Context, candidate models.Appointment) error {
	if err := ValidateStartTime(candidate.Time); err != nil {
		return err
	}

	now := e.now()
	if IsPast(candidate.Date, candidate.Time, now) {
		return NewValidationError(CodePastDate, "appointments cannot be booked in the past")
	}
	if IsTooFarFuture(candidate.Date, e.MaxMonthsAhead, now) {
		return NewValidationError(CodeTooFarFuture,
			fmt.Sprintf("appointments cannot be booked more than %d months ahead", e.MaxMonthsAhead))
	}

	if e.Leave != nil {
		onLeave, err := e.Leave.IsOnLeave(ctx, candidate.PractitionerID, candidate.Date)
		if err != nil {
			return fmt.Errorf("checking leave days: %w", err)
		}
		if onLeave {
			return &ValidationError{Code: CodeSlotBlocked, Message: "practitioner is on leave that day"}
		}
	}

	slotCount := SlotCountForDuration(candidate.EffectiveDuration())
	if ConsecutiveSlots(candidate.Time, slotCount, GenerateSlots()) == nil {
		return NewValidationError(CodeInsufficientConsecutiveSlots,
			"requested duration runs past closing time; choose an earlier start or shorter visit")
	}

	existing, err := e.Appointments.ListByPractitionerAndDate(ctx, candidate.PractitionerID, candidate.Date)
	if err != nil {
		return fmt.Errorf("loading existing appointments: %w", err)
	}
	if res := CheckConflict(candidate, existing); res.HasConflict {
		return &ValidationError{Code: CodeSchedulingConflict, Message: res.Message, Conflicting: res.Conflicting}
	}
	return nil
}

// Occurrence is the validation outcome for one date of a recurring series.
type Occurrence struct {
	Date      string
	Rejection *ValidationError // nil when the date may be booked
}

// ValidateSeries expands pattern from the candidate's date and validates
// every occurrence independently. One conflicting occurrence does not
// invalidate its siblings; the series books best-effort.
func (e *DefaultSchedulingEngine) ValidateSeries(ctx context.Context, candidate models.Appointment, pattern Pattern) ([]Occurrence, error) {
	start, err := time.Parse(dateLayout, candidate.Date)
	if err != nil {
		return nil, NewValidationError(CodeInvalidTime, fmt.Sprintf("invalid date %q", candidate.Date))
	}

	dates := pattern.Expand(start)
	occurrences := make([]Occurrence, 0, len(dates))
	for _, d := range dates {
		inst := candidate
		inst.Date = d.Format(dateLayout)
		verr := e.ValidateCandidate(ctx, inst)
		switch {
		case verr == nil:
			occurrences = append(occurrences, Occurrence{Date: inst.Date})
		default:
			ve, ok := AsValidation(verr)
			if !ok {
				return nil, verr // infrastructure failure, not a rejection
			}
			occurrences = append(occurrences, Occurrence{Date: inst.Date, Rejection: ve})
		}
	}
	return occurrences, nil
}

// SlotCountForDuration converts a duration in minutes to the number of
// quarter-hour slots it occupies, rounding up. The core contract stays in
// raw minutes; slot counts are a boundary conversion.
func SlotCountForDuration(minutes int) int {
	if minutes <= 0 {
		return 1
	}
	return (minutes + SlotMinutes - 1) / SlotMinutes
}
