package booking

import (
	"context"

	"dentora/models"
)

// ConfirmRequest carries the wizard's final step: who is booking what.
type ConfirmRequest struct {
	PractitionerID string                  `json:"practitioner_id" binding:"required"`
	Date           string                  `json:"date" binding:"required"`
	Time           string                  `json:"time" binding:"required"`
	SlotCount      int                     `json:"slot_count"` // 1, 2 or 3 in the wizard UI
	Treatment      string                  `json:"treatment"`
	PatientName    string                  `json:"patient_name" binding:"required"`
	PatientPhone   string                  `json:"patient_phone"`
	PatientEmail   string                  `json:"patient_email"`
	Recurrence     *models.RecurrenceInput `json:"recurrence,omitempty"`
}

// BookingSessionService manages the public booking wizard's stateful flow.
type BookingSessionService interface {
	StartSession(ctx context.Context, treatment string) (*models.BookingSession, []models.Practitioner, error)
	GetAvailability(ctx context.Context, sessionID, practitionerID, date string, slotCount int) (*models.DayAvailability, error)
	ConfirmBooking(ctx context.Context, sessionID string, req ConfirmRequest) ([]models.BookingOutcome, error)
	CancelSession(ctx context.Context, sessionID string) error
}
