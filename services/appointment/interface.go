package appointment

import (
	"context"

	"dentora/models"
)

// CreateRequest is the staff scheduler's booking form.
type CreateRequest struct {
	PractitionerID string                  `json:"practitioner_id" binding:"required"`
	PatientID      string                  `json:"patient_id"`
	PatientName    string                  `json:"patient_name" binding:"required"`
	PatientPhone   string                  `json:"patient_phone"`
	Date           string                  `json:"date" binding:"required"`
	Time           string                  `json:"time" binding:"required"`
	Duration       int                     `json:"duration"` // minutes; defaults to one slot
	Treatment      string                  `json:"treatment"`
	Notes          string                  `json:"notes"`
	Recurrence     *models.RecurrenceInput `json:"recurrence,omitempty"`
}

// RescheduleRequest moves an existing appointment to a new slot.
type RescheduleRequest struct {
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
	Duration int    `json:"duration"`
}

// AppointmentService is the staff portal's scheduling surface.
type AppointmentService interface {
	Create(ctx context.Context, req CreateRequest) ([]models.BookingOutcome, error)
	Reschedule(ctx context.Context, id string, req RescheduleRequest) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Cancel(ctx context.Context, id string) error
	DayCalendar(ctx context.Context, date string) ([]models.Appointment, error)
	PractitionerDay(ctx context.Context, practitionerID, date string) ([]models.Appointment, error)
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
}
