package booking

import (
	"time"

	"dentora/models"
	"dentora/services/scheduling"
)

// BuildDayAvailability computes the wizard's slot picker for one
// practitioner and date: every grid slot, flagged bookable or not with a
// reason the UI can render. A leave day blanks the whole grid no matter
// how empty it is.
func BuildDayAvailability(
	practitionerID, date string,
	slotCount int,
	existing []models.Appointment,
	onLeave bool,
	now time.Time,
) *models.DayAvailability {
	if slotCount < 1 {
		slotCount = 1
	}
	grid := scheduling.GenerateSlots()
	out := &models.DayAvailability{
		PractitionerID: practitionerID,
		Date:           date,
		OnLeave:        onLeave,
		Slots:          make([]models.SlotAvailability, 0, len(grid)),
	}

	occupied := occupiedSlots(practitionerID, date, existing)
	isBooked := func(slot string) bool { return occupied[slot] }

	for _, slot := range grid {
		sa := models.SlotAvailability{Time: slot}
		switch {
		case onLeave:
			sa.Reason = "on leave"
		case scheduling.IsPast(date, slot, now):
			sa.Reason = "in the past"
		case occupied[slot]:
			sa.Reason = "booked"
		case !scheduling.CanSelect(slot, slotCount, grid, isBooked):
			// The start itself is free but the run is not.
			sa.Reason = "not enough consecutive slots"
		default:
			sa.Available = true
		}
		out.Slots = append(out.Slots, sa)
	}
	return out
}

// occupiedSlots marks every grid slot overlapped by an active appointment.
func occupiedSlots(practitionerID, date string, existing []models.Appointment) map[string]bool {
	occupied := make(map[string]bool)
	for _, slot := range scheduling.GenerateSlots() {
		probe := models.Appointment{
			PractitionerID: practitionerID,
			Date:           date,
			Time:           slot,
			Duration:       scheduling.SlotMinutes,
		}
		if scheduling.CheckConflict(probe, existing).HasConflict {
			occupied[slot] = true
		}
	}
	return occupied
}
