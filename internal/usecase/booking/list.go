package booking

import (
	"context"

	domain "github.com/levelupglow/salon-scheduler/internal/domain/booking"
	"github.com/levelupglow/salon-scheduler/internal/httperr"
	"github.com/levelupglow/salon-scheduler/internal/models"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// ForStylist returns a stylist's bookings, optionally bounded by an
// inclusive date range (empty bounds mean unbounded).
func (uc *ListBookings) ForStylist(
	ctx context.Context,
	actor domain.Actor,
	stylistID uint,
	from string,
	to string,
) ([]models.Booking, error) {

	if !actor.OwnsStylist(stylistID) {
		return nil, httperr.ErrBusiness("not_allowed")
	}

	if from != "" {
		if _, err := parseDate(from); err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
	}
	if to != "" {
		if _, err := parseDate(to); err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
	}

	return uc.repo.ListBookingsForStylist(ctx, stylistID, from, to)
}

// ForClient returns the acting client's own booking history.
func (uc *ListBookings) ForClient(
	ctx context.Context,
	actor domain.Actor,
) ([]models.Booking, error) {

	return uc.repo.ListBookingsForClient(ctx, actor.UserID)
}
