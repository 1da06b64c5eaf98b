package schedule

import "time"

// LookaheadDays is how far ahead clients may book.
const LookaheadDays = 30

const DateLayout = "2006-01-02"

// DateBookable decides whether a calendar date can be offered at all:
// not in the past, inside the lookahead window, on a weekday the
// stylist works, and not already saturated with bookings.
//
// Saturation compares the non-canceled booking count against the full
// grid size. It is a coarse pre-filter for the calendar widget; the
// precise fit check happens per slot in Resolve.
func DateBookable(today, date time.Time, weekdayAvailable bool, bookedCount int) bool {
	day := truncateToDay(date)
	start := truncateToDay(today)

	if day.Before(start) {
		return false
	}
	if day.After(start.AddDate(0, 0, LookaheadDays)) {
		return false
	}
	if !weekdayAvailable {
		return false
	}
	if bookedCount >= SlotsPerDay {
		return false
	}

	return true
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
