package models

import "time"

// Patient is a practice patient record managed from the staff portal.
type Patient struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Email       string    `bson:"email,omitempty" json:"email,omitempty"`
	Phone       string    `bson:"phone,omitempty" json:"phone,omitempty"`
	DateOfBirth string    `bson:"date_of_birth,omitempty" json:"date_of_birth,omitempty"` // "YYYY-MM-DD"
	Notes       string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
