package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var policyNow = time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC) // Monday noon

func TestIsPast(t *testing.T) {
	tests := []struct {
		name  string
		date  string
		clock string
		want  bool
	}{
		{"years ago", "2000-01-01", "09:00", true},
		{"earlier today", "2024-03-04", "09:00", true},
		{"exactly now is not past", "2024-03-04", "12:00", false},
		{"later today", "2024-03-04", "14:30", false},
		{"tomorrow", "2024-03-05", "08:00", false},
		{"bad date rejected", "not-a-date", "09:00", true},
		{"bad time rejected", "2024-03-05", "nope", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsPast(tc.date, tc.clock, policyNow))
		})
	}
}

func TestIsTooFarFuture(t *testing.T) {
	tests := []struct {
		name string
		date string
		want bool
	}{
		{"tomorrow", "2024-03-05", false},
		{"horizon day itself", "2024-05-04", false},
		{"one day beyond horizon", "2024-05-05", true},
		{"way beyond", "2025-01-01", true},
		{"bad date rejected", "soon", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsTooFarFuture(tc.date, 2, policyNow))
		})
	}
}
