package booking

import (
	"context"

	"github.com/levelupglow/salon-scheduler/internal/audit"
	domain "github.com/levelupglow/salon-scheduler/internal/domain/booking"
	"github.com/levelupglow/salon-scheduler/internal/httperr"
	"github.com/levelupglow/salon-scheduler/internal/models"
	"github.com/levelupglow/salon-scheduler/internal/timezone"
)

type CompleteBooking struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	salonTZ string
}

func NewCompleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	salonTZ string,
) *CompleteBooking {
	return &CompleteBooking{
		repo:    repo,
		audit:   audit,
		salonTZ: salonTZ,
	}
}

func (uc *CompleteBooking) Execute(
	ctx context.Context,
	actor domain.Actor,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !actor.OwnsStylist(b.StylistID) {
		return nil, httperr.ErrBusiness("not_allowed")
	}

	now := timezone.NowIn(uc.salonTZ)
	changed, err := domain.Complete(b, now)
	if err != nil {
		return nil, err
	}

	if !changed {
		return b, nil
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   "booking_completed",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
