package scheduling

// ConsecutiveSlots returns the slotCount consecutive slots beginning at
// startTime's position in availableSlots. It returns nil when startTime
// is not in the grid or when fewer than slotCount slots remain before
// closing; a visit must never silently truncate at the end of the day.
func ConsecutiveSlots(startTime string, slotCount int, availableSlots []string) []string {
	if slotCount <= 0 {
		return nil
	}
	start := -1
	for i, s := range availableSlots {
		if s == startTime {
			start = i
			break
		}
	}
	if start < 0 || start+slotCount > len(availableSlots) {
		return nil
	}
	out := make([]string, slotCount)
	copy(out, availableSlots[start:start+slotCount])
	return out
}

// CanSelect reports whether slotCount consecutive slots starting at
// startTime exist and none of them is blocked. isBlocked is supplied by
// the caller and typically closes over that practitioner's bookings for
// the day and their leave calendar.
func CanSelect(startTime string, slotCount int, availableSlots []string, isBlocked func(slot string) bool) bool {
	run := ConsecutiveSlots(startTime, slotCount, availableSlots)
	if run == nil {
		return false
	}
	if isBlocked == nil {
		return true
	}
	for _, s := range run {
		if isBlocked(s) {
			return false
		}
	}
	return true
}
