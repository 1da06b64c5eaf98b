package availability

import (
	"context"

	domain "github.com/levelupglow/salon-scheduler/internal/domain/booking"
	"github.com/levelupglow/salon-scheduler/internal/models"
)

// stubRepo covers the slice of domain.Repository the availability
// usecases touch; booking writes are not exercised here.
type stubRepo struct {
	stylists map[uint]*models.Stylist
	services map[uint]*models.Service
	weekly   map[uint][]models.WeeklyAvailability
	bookings []models.Booking

	seedCalls int
	saveErr   error
}

var _ domain.Repository = (*stubRepo)(nil)

func newStubRepo() *stubRepo {
	return &stubRepo{
		stylists: make(map[uint]*models.Stylist),
		services: make(map[uint]*models.Service),
		weekly:   make(map[uint][]models.WeeklyAvailability),
	}
}

func (r *stubRepo) GetStylist(_ context.Context, id uint) (*models.Stylist, error) {
	s, ok := r.stylists[id]
	if !ok {
		return nil, domain.ErrStylistNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *stubRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, domain.ErrServiceNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *stubRepo) ListStylistsForService(_ context.Context, _ uint) ([]models.Stylist, error) {
	return nil, nil
}

func (r *stubRepo) EnsureStylistService(_ context.Context, _, _ uint) error {
	return nil
}

func (r *stubRepo) WeeklyAvailability(_ context.Context, stylistID uint) ([]models.WeeklyAvailability, error) {
	return append([]models.WeeklyAvailability(nil), r.weekly[stylistID]...), nil
}

func (r *stubRepo) SeedWeeklyAvailability(_ context.Context, rows []models.WeeklyAvailability) error {
	r.seedCalls++
	for _, row := range rows {
		r.weekly[row.StylistID] = append(r.weekly[row.StylistID], row)
	}
	return nil
}

func (r *stubRepo) SaveWeeklyDay(_ context.Context, row *models.WeeklyAvailability) error {
	if r.saveErr != nil {
		return r.saveErr
	}

	rows := r.weekly[row.StylistID]
	for i := range rows {
		if rows[i].DayOfWeek == row.DayOfWeek {
			rows[i] = *row
			return nil
		}
	}
	r.weekly[row.StylistID] = append(rows, *row)
	return nil
}

func (r *stubRepo) GetBooking(_ context.Context, _ uint) (*models.Booking, error) {
	return nil, domain.ErrBookingNotFound
}

func (r *stubRepo) CreateBooking(_ context.Context, _ *models.Booking) error {
	return nil
}

func (r *stubRepo) UpdateBooking(_ context.Context, _ *models.Booking) error {
	return nil
}

func (r *stubRepo) ListBookingsForDay(
	_ context.Context,
	stylistID uint,
	date string,
	statuses []domain.Status,
) ([]models.Booking, error) {

	wanted := make(map[string]bool, len(statuses))
	for _, s := range statuses {
		wanted[string(s)] = true
	}

	var out []models.Booking
	for _, b := range r.bookings {
		if b.StylistID == stylistID && b.Date == date && wanted[b.Status] {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *stubRepo) ListBookingsForStylist(_ context.Context, _ uint, _, _ string) ([]models.Booking, error) {
	return nil, nil
}

func (r *stubRepo) ListBookingsForClient(_ context.Context, _ uint) ([]models.Booking, error) {
	return nil, nil
}

func (r *stubRepo) CountActiveBookingsByDate(
	_ context.Context,
	stylistID uint,
	from string,
	to string,
) (map[string]int, error) {

	counts := make(map[string]int)
	for _, b := range r.bookings {
		if b.StylistID != stylistID || b.Date < from || b.Date > to {
			continue
		}
		if domain.Status(b.Status).Occupies() {
			counts[b.Date]++
		}
	}
	return counts, nil
}
