package availability

import (
	"context"

	"github.com/levelupglow/salon-scheduler/internal/audit"
	"github.com/levelupglow/salon-scheduler/internal/cache"
	domain "github.com/levelupglow/salon-scheduler/internal/domain/booking"
	"github.com/levelupglow/salon-scheduler/internal/domain/schedule"
	"github.com/levelupglow/salon-scheduler/internal/httperr"
	"github.com/levelupglow/salon-scheduler/internal/models"
)

type SaveWeeklyHours struct {
	repo      domain.Repository
	audit     *audit.Dispatcher
	slotCache *cache.SlotCache
}

func NewSaveWeeklyHours(
	repo domain.Repository,
	audit *audit.Dispatcher,
	slotCache *cache.SlotCache,
) *SaveWeeklyHours {
	return &SaveWeeklyHours{
		repo:      repo,
		audit:     audit,
		slotCache: slotCache,
	}
}

type DayInput struct {
	DayOfWeek   int
	StartTime   string
	EndTime     string
	IsAvailable bool
}

type DayFailure struct {
	DayOfWeek int    `json:"day_of_week"`
	Code      string `json:"code"`
}

type SaveResult struct {
	Saved  []int        `json:"saved"`
	Failed []DayFailure `json:"failed"`
}

// Execute saves each day independently: one bad row must not throw
// away the rest of the edit. Failed days are reported back with the
// reason; everything else persists.
func (uc *SaveWeeklyHours) Execute(
	ctx context.Context,
	actor domain.Actor,
	stylistID uint,
	days []DayInput,
) (*SaveResult, error) {

	if !actor.OwnsStylist(stylistID) {
		return nil, httperr.ErrBusiness("not_allowed")
	}

	if _, err := uc.repo.GetStylist(ctx, stylistID); err != nil {
		return nil, err
	}

	result := &SaveResult{
		Saved:  []int{},
		Failed: []DayFailure{},
	}

	for _, day := range days {
		row := models.WeeklyAvailability{
			StylistID:   stylistID,
			DayOfWeek:   day.DayOfWeek,
			StartTime:   day.StartTime,
			EndTime:     day.EndTime,
			IsAvailable: day.IsAvailable,
		}

		if err := schedule.ValidateDay(row); err != nil {
			result.Failed = append(result.Failed, dayFailure(day.DayOfWeek, err))
			continue
		}

		if err := uc.repo.SaveWeeklyDay(ctx, &row); err != nil {
			result.Failed = append(result.Failed, dayFailure(day.DayOfWeek, err))
			continue
		}

		result.Saved = append(result.Saved, day.DayOfWeek)
	}

	if len(result.Saved) > 0 {
		uc.slotCache.Invalidate(ctx, stylistID)

		uc.audit.Dispatch(audit.Event{
			UserID:   &actor.UserID,
			Action:   "weekly_hours_saved",
			Entity:   "weekly_availability",
			EntityID: &stylistID,
			Metadata: result,
		})
	}

	return result, nil
}

func dayFailure(day int, err error) DayFailure {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		code = "save_failed"
	}
	return DayFailure{DayOfWeek: day, Code: code}
}
