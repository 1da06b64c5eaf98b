package schedule

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/levelupglow/salon-scheduler/internal/httperr"
)

// Times-of-day are handled as minutes since midnight. Persisted rows
// carry salon-local "HH:MM:SS" strings (seconds optional on input).

func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, httperr.ErrBusiness("invalid_time")
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, httperr.ErrBusiness("invalid_time")
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, httperr.ErrBusiness("invalid_time")
	}

	return hour*60 + minute, nil
}

// ClockString renders minutes since midnight as "HH:MM:SS", the
// storage format for booking times.
func ClockString(minutes int) string {
	return fmt.Sprintf("%02d:%02d:00", minutes/60, minutes%60)
}

// ClockLabel renders minutes since midnight as "hh:mm AM", the label
// shown on slot grids.
func ClockLabel(minutes int) string {
	hour := minutes / 60
	minute := minutes % 60

	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}

	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}

	return fmt.Sprintf("%02d:%02d %s", hour12, minute, ampm)
}
