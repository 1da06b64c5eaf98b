package booking

import (
	"time"

	"github.com/levelupglow/salon-scheduler/internal/domain/schedule"
)

func parseDate(s string) (time.Time, error) {
	return time.Parse(schedule.DateLayout, s)
}
