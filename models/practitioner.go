package models

import "time"

// Practitioner represents a dentist or hygienist bookable through the platform.
type Practitioner struct {
	ID        string     `bson:"id" json:"id"`
	Name      string     `bson:"name" json:"name"`
	Specialty string     `bson:"specialty,omitempty" json:"specialty,omitempty"` // e.g., "Orthodontics"
	Color     string     `bson:"color,omitempty" json:"color,omitempty"`         // Calendar display colour
	Active    bool       `bson:"active" json:"active"`
	LeaveDays []LeaveDay `bson:"leave_days,omitempty" json:"leave_days,omitempty"` // Embedded, like timeslots on a provider doc
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
}

// LeaveDay marks a practitioner unavailable for a whole calendar date.
type LeaveDay struct {
	Date      string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Reason    string    `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
