package scheduling

import "time"

const dateLayout = "2006-01-02"

// IsPast reports whether the combined date and clock time is strictly
// before now. The caller injects now so tests can pin the clock.
// Unparseable inputs are treated as past; they can never become bookable.
func IsPast(date, clock string, now time.Time) bool {
	d, err := time.ParseInLocation(dateLayout, date, now.Location())
	if err != nil {
		return true
	}
	m := clockMinutes(clock)
	if m < 0 {
		return true
	}
	at := d.Add(time.Duration(m) * time.Minute)
	return at.Before(now)
}

// IsTooFarFuture reports whether date lands strictly after now plus
// maxMonthsAhead calendar months.
func IsTooFarFuture(date string, maxMonthsAhead int, now time.Time) bool {
	d, err := time.ParseInLocation(dateLayout, date, now.Location())
	if err != nil {
		return true
	}
	horizon := now.AddDate(0, maxMonthsAhead, 0)
	horizonDay := time.Date(horizon.Year(), horizon.Month(), horizon.Day(), 0, 0, 0, 0, now.Location())
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, now.Location())
	return day.After(horizonDay)
}
