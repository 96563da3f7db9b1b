package models

import "time"

// BookingSession carries the public booking wizard's state between steps.
// Sessions live in Redis and expire if the visitor walks away.
type BookingSession struct {
	SessionID      string    `json:"session_id"`
	Treatment      string    `json:"treatment,omitempty"`
	PractitionerID string    `json:"practitioner_id,omitempty"`
	Date           string    `json:"date,omitempty"` // "YYYY-MM-DD"
	Time           string    `json:"time,omitempty"` // "HH:MM"
	SlotCount      int       `json:"slot_count,omitempty"`
	PatientName    string    `json:"patient_name,omitempty"`
	PatientPhone   string    `json:"patient_phone,omitempty"`
	PatientEmail   string    `json:"patient_email,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// SlotAvailability describes one bookable start time on a practitioner's day.
type SlotAvailability struct {
	Time      string `json:"time"` // "HH:MM"
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"` // set when unavailable, e.g. "booked", "on leave"
}

// DayAvailability is the wizard's slot-picker payload for one practitioner/date.
type DayAvailability struct {
	PractitionerID string             `json:"practitioner_id"`
	Date           string             `json:"date"`
	OnLeave        bool               `json:"on_leave"`
	Slots          []SlotAvailability `json:"slots"`
}

// BookingOutcome reports the result of committing one candidate date.
// A recurring series yields one outcome per expanded occurrence.
type BookingOutcome struct {
	Date        string       `json:"date"`
	Booked      bool         `json:"booked"`
	Appointment *Appointment `json:"appointment,omitempty"`
	Reason      string       `json:"reason,omitempty"` // rejection code when not booked
	Message     string       `json:"message,omitempty"`
}
