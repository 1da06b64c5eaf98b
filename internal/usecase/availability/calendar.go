package availability

import (
	"context"
	"time"

	domain "github.com/levelupglow/salon-scheduler/internal/domain/booking"
	"github.com/levelupglow/salon-scheduler/internal/domain/schedule"
	"github.com/levelupglow/salon-scheduler/internal/timezone"
)

type Calendar struct {
	repo    domain.Repository
	salonTZ string
}

func NewCalendar(repo domain.Repository, salonTZ string) *Calendar {
	return &Calendar{repo: repo, salonTZ: salonTZ}
}

type DateStatus struct {
	Date     string `json:"date"`
	Bookable bool   `json:"bookable"`
}

// Execute walks the lookahead window and flags which dates can be
// offered for the stylist. One availability read and one grouped
// booking count serve the whole window.
func (uc *Calendar) Execute(
	ctx context.Context,
	stylistID uint,
	days int,
) ([]DateStatus, error) {

	if days <= 0 || days > schedule.LookaheadDays {
		days = schedule.LookaheadDays
	}

	if _, err := uc.repo.GetStylist(ctx, stylistID); err != nil {
		return nil, err
	}

	rows, err := uc.repo.WeeklyAvailability(ctx, stylistID)
	if err != nil {
		return nil, err
	}

	weekdayOpen := make(map[int]bool, 7)
	for _, row := range rows {
		if row.IsAvailable {
			weekdayOpen[row.DayOfWeek] = true
		}
	}

	today := uc.today()
	from := today.Format(schedule.DateLayout)
	to := today.AddDate(0, 0, days).Format(schedule.DateLayout)

	counts, err := uc.repo.CountActiveBookingsByDate(ctx, stylistID, from, to)
	if err != nil {
		return nil, err
	}

	out := make([]DateStatus, 0, days+1)
	for d := 0; d <= days; d++ {
		date := today.AddDate(0, 0, d)
		dateStr := date.Format(schedule.DateLayout)

		out = append(out, DateStatus{
			Date: dateStr,
			Bookable: schedule.DateBookable(
				today,
				date,
				weekdayOpen[int(date.Weekday())],
				counts[dateStr],
			),
		})
	}

	return out, nil
}

// IsDateBookable answers for a single date, used as a guard before
// booking creation.
func (uc *Calendar) IsDateBookable(
	ctx context.Context,
	stylistID uint,
	dateStr string,
) (bool, error) {

	date, err := time.ParseInLocation(
		schedule.DateLayout,
		dateStr,
		timezone.Location(uc.salonTZ),
	)
	if err != nil {
		return false, err
	}

	rows, err := uc.repo.WeeklyAvailability(ctx, stylistID)
	if err != nil {
		return false, err
	}

	weekdayOpen := false
	for _, row := range rows {
		if row.DayOfWeek == int(date.Weekday()) && row.IsAvailable {
			weekdayOpen = true
			break
		}
	}

	counts, err := uc.repo.CountActiveBookingsByDate(ctx, stylistID, dateStr, dateStr)
	if err != nil {
		return false, err
	}

	return schedule.DateBookable(uc.today(), date, weekdayOpen, counts[dateStr]), nil
}

func (uc *Calendar) today() time.Time {
	return timezone.NowIn(uc.salonTZ)
}
