package schedule

import (
	"github.com/levelupglow/salon-scheduler/internal/httperr"
	"github.com/levelupglow/salon-scheduler/internal/models"
)

// DefaultWeeklyAvailability is the schedule seeded the first time a
// stylist's hours are read: Monday through Friday 10:00-18:00
// available, weekends 12:00-16:00 kept as rows but switched off.
func DefaultWeeklyAvailability(stylistID uint) []models.WeeklyAvailability {
	rows := make([]models.WeeklyAvailability, 0, 7)

	for day := 0; day <= 6; day++ {
		weekday := day >= 1 && day <= 5

		row := models.WeeklyAvailability{
			StylistID:   stylistID,
			DayOfWeek:   day,
			StartTime:   "12:00:00",
			EndTime:     "16:00:00",
			IsAvailable: weekday,
		}
		if weekday {
			row.StartTime = "10:00:00"
			row.EndTime = "18:00:00"
		}

		rows = append(rows, row)
	}

	return rows
}

// ValidateDay rejects an available day whose window is empty or
// inverted. Unavailable days keep whatever times they carry.
func ValidateDay(row models.WeeklyAvailability) error {
	if row.DayOfWeek < 0 || row.DayOfWeek > 6 {
		return httperr.ErrBusiness("invalid_weekday")
	}

	if !row.IsAvailable {
		return nil
	}

	start, err := ParseClock(row.StartTime)
	if err != nil {
		return err
	}
	end, err := ParseClock(row.EndTime)
	if err != nil {
		return err
	}

	if start >= end {
		return httperr.ErrBusiness("invalid_time_range")
	}

	return nil
}

// WindowsForDay converts a stylist's availability rows for one weekday
// into resolver windows, skipping unavailable or malformed rows.
func WindowsForDay(rows []models.WeeklyAvailability, weekday int) []Window {
	var windows []Window

	for _, row := range rows {
		if row.DayOfWeek != weekday || !row.IsAvailable {
			continue
		}

		start, err := ParseClock(row.StartTime)
		if err != nil {
			continue
		}
		end, err := ParseClock(row.EndTime)
		if err != nil {
			continue
		}

		windows = append(windows, Window{StartMinute: start, EndMinute: end})
	}

	return windows
}

// BusyIntervals converts existing bookings into occupied intervals.
// Rows missing a duration snapshot fall back to DefaultBookingMinutes.
func BusyIntervals(bookings []models.Booking) []Interval {
	intervals := make([]Interval, 0, len(bookings))

	for _, b := range bookings {
		start, err := ParseClock(b.Time)
		if err != nil {
			continue
		}

		duration := b.DurationMinutes
		if duration <= 0 {
			duration = DefaultBookingMinutes
		}

		intervals = append(intervals, Interval{
			StartMinute: start,
			EndMinute:   start + duration,
		})
	}

	return intervals
}
