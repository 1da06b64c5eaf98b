package booking

import (
	"context"

	"github.com/levelupglow/salon-scheduler/internal/audit"
	"github.com/levelupglow/salon-scheduler/internal/cache"
	domain "github.com/levelupglow/salon-scheduler/internal/domain/booking"
	"github.com/levelupglow/salon-scheduler/internal/httperr"
	"github.com/levelupglow/salon-scheduler/internal/models"
	"github.com/levelupglow/salon-scheduler/internal/timezone"
)

type CancelBooking struct {
	repo      domain.Repository
	audit     *audit.Dispatcher
	slotCache *cache.SlotCache
	salonTZ   string
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	slotCache *cache.SlotCache,
	salonTZ string,
) *CancelBooking {
	return &CancelBooking{
		repo:      repo,
		audit:     audit,
		slotCache: slotCache,
		salonTZ:   salonTZ,
	}
}

// Execute soft-cancels: the row is retained with status canceled and
// its slot is freed. Clients may cancel their own bookings; staff may
// cancel any. Canceling twice is a no-op.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	actor domain.Actor,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	ownClient := actor.UserID != 0 && actor.UserID == b.ClientID
	if !ownClient && !actor.OwnsStylist(b.StylistID) {
		return nil, httperr.ErrBusiness("not_allowed")
	}

	now := timezone.NowIn(uc.salonTZ)
	changed, err := domain.Cancel(b, now)
	if err != nil {
		return nil, err
	}

	if !changed {
		return b, nil
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	// The canceled span is free again.
	uc.slotCache.Invalidate(ctx, b.StylistID)

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   "booking_canceled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
