package booking

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/levelupglow/salon-scheduler/internal/audit"
	"github.com/levelupglow/salon-scheduler/internal/cache"
	domain "github.com/levelupglow/salon-scheduler/internal/domain/booking"
	"github.com/levelupglow/salon-scheduler/internal/domain/schedule"
	"github.com/levelupglow/salon-scheduler/internal/httperr"
	"github.com/levelupglow/salon-scheduler/internal/logger"
	"github.com/levelupglow/salon-scheduler/internal/models"
	"github.com/levelupglow/salon-scheduler/internal/usecase/availability"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	Actor domain.Actor

	ClientName  string
	ClientEmail string
	ClientPhone string

	StylistID uint

	// One booking row is created per service, stacked back-to-back
	// from Time so the rows never overlap each other.
	ServiceIDs []uint

	Date string // YYYY-MM-DD
	Time string // HH:MM or HH:MM:SS, slot-aligned

	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo      domain.Repository
	calendar  *availability.Calendar
	audit     *audit.Dispatcher
	slotCache *cache.SlotCache
}

func NewCreateBooking(
	repo domain.Repository,
	calendar *availability.Calendar,
	audit *audit.Dispatcher,
	slotCache *cache.SlotCache,
) *CreateBooking {
	return &CreateBooking{
		repo:      repo,
		calendar:  calendar,
		audit:     audit,
		slotCache: slotCache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute validates the selection against current state and appends
// one pending row per service. The repository repeats the overlap
// check atomically at write time, so a slot read as free here can
// still come back ErrTimeConflict if another client won the race.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) ([]*models.Booking, error) {

	if len(in.ServiceIDs) == 0 {
		return nil, httperr.ErrBusiness("no_services_selected")
	}

	stylist, err := uc.repo.GetStylist(ctx, in.StylistID)
	if err != nil {
		return nil, err
	}
	if !stylist.Active {
		return nil, domain.ErrStylistNotFound
	}

	bookable, err := uc.calendar.IsDateBookable(ctx, in.StylistID, in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if !bookable {
		return nil, httperr.ErrBusiness("date_not_bookable")
	}

	startMinute, err := schedule.ParseClock(in.Time)
	if err != nil {
		return nil, err
	}

	rows, err := uc.repo.WeeklyAvailability(ctx, in.StylistID)
	if err != nil {
		return nil, err
	}

	date, _ := parseDate(in.Date)
	windows := schedule.WindowsForDay(rows, int(date.Weekday()))

	existing, err := uc.repo.ListBookingsForDay(
		ctx,
		in.StylistID,
		in.Date,
		domain.OccupyingStatuses(),
	)
	if err != nil {
		return nil, err
	}
	busy := schedule.BusyIntervals(existing)

	created := make([]*models.Booking, 0, len(in.ServiceIDs))
	cursor := startMinute

	for _, serviceID := range in.ServiceIDs {
		service, err := uc.repo.GetService(ctx, serviceID)
		if err != nil {
			return created, err
		}
		if service.DurationMinutes <= 0 {
			return created, httperr.ErrBusiness("invalid_duration")
		}

		// Selection re-validation: the service needs enough
		// consecutive free grid slots starting at the cursor.
		slots := schedule.Generate("")
		slots, _ = schedule.Resolve(slots, windows, busy, service.DurationMinutes)

		idx := schedule.SlotIndexByMinute(slots, cursor)
		if !schedule.FitsAt(slots, idx, service.DurationMinutes) {
			return created, httperr.ErrBusiness("slot_unavailable")
		}

		b := &models.Booking{
			Reference:       uuid.NewString(),
			StylistID:       in.StylistID,
			ServiceID:       serviceID,
			ClientID:        in.Actor.UserID,
			ClientName:      in.ClientName,
			ClientEmail:     in.ClientEmail,
			ClientPhone:     in.ClientPhone,
			Date:            in.Date,
			Time:            schedule.ClockString(cursor),
			DurationMinutes: service.DurationMinutes,
			Status:          string(domain.InitialStatus()),
			Notes:           in.Notes,
		}

		if err := uc.repo.CreateBooking(ctx, b); err != nil {
			return created, err
		}

		// Eligibility bookkeeping must not undo a placed booking.
		if err := uc.repo.EnsureStylistService(ctx, in.StylistID, serviceID); err != nil {
			logger.Get().Warn("failed to record stylist-service link",
				zap.Uint("stylist_id", in.StylistID),
				zap.Uint("service_id", serviceID),
				zap.Error(err),
			)
		}

		uc.audit.Dispatch(audit.Event{
			UserID:   &in.Actor.UserID,
			Action:   "booking_created",
			Entity:   "booking",
			EntityID: &b.ID,
		})

		created = append(created, b)

		busy = append(busy, schedule.Interval{
			StartMinute: cursor,
			EndMinute:   cursor + service.DurationMinutes,
		})
		cursor += service.DurationMinutes
	}

	uc.slotCache.Invalidate(ctx, in.StylistID)

	return created, nil
}
