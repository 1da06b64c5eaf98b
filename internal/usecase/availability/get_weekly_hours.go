package availability

import (
	"context"

	domain "github.com/levelupglow/salon-scheduler/internal/domain/booking"
	"github.com/levelupglow/salon-scheduler/internal/domain/schedule"
	"github.com/levelupglow/salon-scheduler/internal/models"
)

type GetWeeklyHours struct {
	repo domain.Repository
}

func NewGetWeeklyHours(repo domain.Repository) *GetWeeklyHours {
	return &GetWeeklyHours{repo: repo}
}

// Execute returns the stylist's seven weekday rows, synthesizing and
// persisting the default schedule on first access.
func (uc *GetWeeklyHours) Execute(
	ctx context.Context,
	stylistID uint,
) ([]models.WeeklyAvailability, error) {

	if _, err := uc.repo.GetStylist(ctx, stylistID); err != nil {
		return nil, err
	}

	rows, err := uc.repo.WeeklyAvailability(ctx, stylistID)
	if err != nil {
		return nil, err
	}

	if len(rows) > 0 {
		return rows, nil
	}

	seed := schedule.DefaultWeeklyAvailability(stylistID)
	if err := uc.repo.SeedWeeklyAvailability(ctx, seed); err != nil {
		return nil, err
	}

	// Re-read so a concurrent seeder's rows win over ours.
	return uc.repo.WeeklyAvailability(ctx, stylistID)
}
