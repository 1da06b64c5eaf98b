package booking

import (
	"context"

	"github.com/levelupglow/salon-scheduler/internal/httperr"
	"github.com/levelupglow/salon-scheduler/internal/models"
)

var (
	ErrStylistNotFound = httperr.ErrBusiness("stylist_not_found")
	ErrServiceNotFound = httperr.ErrBusiness("service_not_found")
	ErrBookingNotFound = httperr.ErrBusiness("booking_not_found")

	// ErrTimeConflict means the requested span was no longer free at
	// write time. The caller re-fetches the slot grid and picks again.
	ErrTimeConflict = httperr.ErrBusiness("time_conflict")
)

type Repository interface {
	// -------- Catalog --------
	GetStylist(ctx context.Context, id uint) (*models.Stylist, error)

	GetService(ctx context.Context, id uint) (*models.Service, error)

	ListStylistsForService(
		ctx context.Context,
		serviceID uint,
	) ([]models.Stylist, error)

	EnsureStylistService(
		ctx context.Context,
		stylistID uint,
		serviceID uint,
	) error

	// -------- Weekly availability --------
	WeeklyAvailability(
		ctx context.Context,
		stylistID uint,
	) ([]models.WeeklyAvailability, error)

	SeedWeeklyAvailability(
		ctx context.Context,
		rows []models.WeeklyAvailability,
	) error

	SaveWeeklyDay(
		ctx context.Context,
		row *models.WeeklyAvailability,
	) error

	// -------- Bookings --------
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)

	// CreateBooking re-checks the overlap invariant against current
	// persisted state and inserts atomically with respect to other
	// writers for the same (stylist, date). Returns ErrTimeConflict
	// when the span is taken.
	CreateBooking(ctx context.Context, b *models.Booking) error

	UpdateBooking(ctx context.Context, b *models.Booking) error

	ListBookingsForDay(
		ctx context.Context,
		stylistID uint,
		date string,
		statuses []Status,
	) ([]models.Booking, error)

	ListBookingsForStylist(
		ctx context.Context,
		stylistID uint,
		from string,
		to string,
	) ([]models.Booking, error)

	ListBookingsForClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Booking, error)

	// CountActiveBookingsByDate returns per-date counts of
	// non-canceled bookings in [from, to], for calendar saturation.
	CountActiveBookingsByDate(
		ctx context.Context,
		stylistID uint,
		from string,
		to string,
	) (map[string]int, error)
}
