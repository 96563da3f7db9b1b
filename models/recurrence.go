package models

// RecurrenceInput is the wire form of a recurrence pattern as the booking
// wizard and staff scheduler submit it. EndDate and Occurrences are both
// optional on the wire; the scheduling package converts this into a tagged
// end condition at the boundary (end date wins when both are supplied).
type RecurrenceInput struct {
	Frequency   string `json:"frequency"`             // daily|weekly|monthly|yearly|none
	Interval    int    `json:"interval"`              // every N units, >= 1
	DaysOfWeek  []int  `json:"daysOfWeek,omitempty"`  // 0=Sunday..6=Saturday, weekly only
	EndDate     string `json:"endDate,omitempty"`     // "YYYY-MM-DD", inclusive
	Occurrences int    `json:"occurrences,omitempty"` // total instances including the first
}

// HasRecurrence reports whether the input describes an actual repeating series.
func (r *RecurrenceInput) HasRecurrence() bool {
	return r != nil && r.Frequency != "" && r.Frequency != "none"
}
