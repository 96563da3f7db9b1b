package models

import "time"

// Appointment statuses. Only active statuses participate in conflict checks.
const (
	StatusConfirmed = "confirmed"
	StatusPending   = "pending"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
	StatusArrived   = "arrived"
	StatusNoShow    = "no-show"
)

// Appointment represents a booked visit on a practitioner's day grid.
type Appointment struct {
	ID                string    `bson:"id" json:"id"`                                   // Unique appointment identifier (UUID)
	PractitionerID    string    `bson:"practitioner_id" json:"practitioner_id"`         // Practitioner who was booked
	PractitionerName  string    `bson:"practitioner_name" json:"practitioner_name"`     // Denormalized for calendar display
	PatientID         string    `bson:"patient_id,omitempty" json:"patient_id"`         // Patient reference (may be empty for walk-ins)
	PatientName       string    `bson:"patient_name" json:"patient_name"`               // Name captured at booking time
	PatientPhone      string    `bson:"patient_phone,omitempty" json:"patient_phone"`   // Contact for reminders
	Date              string    `bson:"date" json:"date"`                               // "YYYY-MM-DD"
	Time              string    `bson:"time" json:"time"`                               // Slot-aligned "HH:MM"
	Duration          int       `bson:"duration,omitempty" json:"duration"`             // Minutes; 0 is treated as one slot (15)
	Status            string    `bson:"status" json:"status"`                           // confirmed|pending|cancelled|completed|arrived|no-show
	Treatment         string    `bson:"treatment,omitempty" json:"treatment"`           // e.g., "Checkup", "Root Canal"
	Notes             string    `bson:"notes,omitempty" json:"notes,omitempty"`
	RecurrenceGroupID string    `bson:"recurrence_group_id,omitempty" json:"recurrence_group_id,omitempty"` // Links siblings of a recurring series
	CreatedAt         time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// IsActive reports whether the appointment still occupies its slots.
// Cancelled and no-show appointments free their time for rebooking.
func (a Appointment) IsActive() bool {
	return a.Status != StatusCancelled && a.Status != StatusNoShow
}

// EffectiveDuration returns the appointment duration in minutes,
// defaulting to a single slot when the record omits it.
func (a Appointment) EffectiveDuration() int {
	if a.Duration <= 0 {
		return 15
	}
	return a.Duration
}
