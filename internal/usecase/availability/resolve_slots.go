package availability

import (
	"context"
	"time"

	"github.com/levelupglow/salon-scheduler/internal/cache"
	domain "github.com/levelupglow/salon-scheduler/internal/domain/booking"
	"github.com/levelupglow/salon-scheduler/internal/domain/schedule"
	"github.com/levelupglow/salon-scheduler/internal/httperr"
)

type ResolveSlots struct {
	repo      domain.Repository
	slotCache *cache.SlotCache
}

func NewResolveSlots(
	repo domain.Repository,
	slotCache *cache.SlotCache,
) *ResolveSlots {
	return &ResolveSlots{
		repo:      repo,
		slotCache: slotCache,
	}
}

type ResolveSlotsInput struct {
	StylistID uint
	ServiceID uint
	Date      string // YYYY-MM-DD, salon-local

	// Previously chosen slot label, restored onto the grid and
	// re-validated against the consecutive-slot requirement.
	SelectedTime string
}

type ResolveSlotsOutput struct {
	Slots         []schedule.TimeSlot `json:"slots"`
	NoneAvailable bool                `json:"none_available"`

	// SelectionFits is false when SelectedTime was given but the
	// service no longer has enough consecutive free slots there.
	SelectionFits bool `json:"selection_fits"`
}

func (uc *ResolveSlots) Execute(
	ctx context.Context,
	in ResolveSlotsInput,
) (*ResolveSlotsOutput, error) {

	date, err := time.Parse(schedule.DateLayout, in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	weekday := int(date.Weekday())

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if service.DurationMinutes <= 0 {
		return nil, httperr.ErrBusiness("invalid_duration")
	}

	slots, ok := uc.slotCache.Get(ctx, in.StylistID, in.Date, service.DurationMinutes)
	if !ok {
		slots, err = uc.resolveFresh(ctx, in.StylistID, in.Date, weekday, service.DurationMinutes)
		if err != nil {
			return nil, err
		}
		uc.slotCache.Set(ctx, in.StylistID, in.Date, service.DurationMinutes, slots)
	}

	out := &ResolveSlotsOutput{
		Slots:         slots,
		NoneAvailable: true,
		SelectionFits: true,
	}

	for i := range slots {
		slots[i].Selected = slots[i].Time == in.SelectedTime
		if slots[i].Available {
			out.NoneAvailable = false
		}
	}

	if in.SelectedTime != "" {
		idx := schedule.SlotIndex(slots, in.SelectedTime)
		out.SelectionFits = schedule.FitsAt(slots, idx, service.DurationMinutes)
	}

	return out, nil
}

func (uc *ResolveSlots) resolveFresh(
	ctx context.Context,
	stylistID uint,
	date string,
	weekday int,
	serviceMinutes int,
) ([]schedule.TimeSlot, error) {

	rows, err := uc.repo.WeeklyAvailability(ctx, stylistID)
	if err != nil {
		return nil, err
	}

	bookings, err := uc.repo.ListBookingsForDay(
		ctx,
		stylistID,
		date,
		domain.OccupyingStatuses(),
	)
	if err != nil {
		return nil, err
	}

	slots := schedule.Generate("")
	slots, _ = schedule.Resolve(
		slots,
		schedule.WindowsForDay(rows, weekday),
		schedule.BusyIntervals(bookings),
		serviceMinutes,
	)

	return slots, nil
}
