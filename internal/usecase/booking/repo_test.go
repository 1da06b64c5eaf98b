package booking

import (
	"context"
	"sync"

	domain "github.com/levelupglow/salon-scheduler/internal/domain/booking"
	"github.com/levelupglow/salon-scheduler/internal/domain/schedule"
	"github.com/levelupglow/salon-scheduler/internal/models"
)

// fakeRepo is an in-memory domain.Repository. CreateBooking repeats
// the overlap check under the mutex, mirroring the transactional
// behavior of the real repository.
type fakeRepo struct {
	mu sync.Mutex

	stylists map[uint]*models.Stylist
	services map[uint]*models.Service
	links    map[[2]uint]bool
	weekly   map[uint][]models.WeeklyAvailability
	bookings map[uint]*models.Booking
	nextID   uint

	linkErr error
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		stylists: make(map[uint]*models.Stylist),
		services: make(map[uint]*models.Service),
		links:    make(map[[2]uint]bool),
		weekly:   make(map[uint][]models.WeeklyAvailability),
		bookings: make(map[uint]*models.Booking),
	}
}

func (r *fakeRepo) addStylist(s models.Stylist) {
	r.stylists[s.ID] = &s
}

func (r *fakeRepo) addService(s models.Service) {
	r.services[s.ID] = &s
}

// openAllWeek marks every weekday available 10:00-18:00 so tests are
// independent of what weekday "tomorrow" lands on.
func (r *fakeRepo) openAllWeek(stylistID uint) {
	rows := make([]models.WeeklyAvailability, 0, 7)
	for day := 0; day <= 6; day++ {
		rows = append(rows, models.WeeklyAvailability{
			StylistID:   stylistID,
			DayOfWeek:   day,
			StartTime:   "10:00:00",
			EndTime:     "18:00:00",
			IsAvailable: true,
		})
	}
	r.weekly[stylistID] = rows
}

func (r *fakeRepo) GetStylist(_ context.Context, id uint) (*models.Stylist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.stylists[id]
	if !ok {
		return nil, domain.ErrStylistNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *fakeRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.services[id]
	if !ok {
		return nil, domain.ErrServiceNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *fakeRepo) ListStylistsForService(_ context.Context, serviceID uint) ([]models.Stylist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Stylist
	for key, ok := range r.links {
		if ok && key[1] == serviceID {
			if s, found := r.stylists[key[0]]; found {
				out = append(out, *s)
			}
		}
	}
	return out, nil
}

func (r *fakeRepo) EnsureStylistService(_ context.Context, stylistID, serviceID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.linkErr != nil {
		return r.linkErr
	}
	r.links[[2]uint{stylistID, serviceID}] = true
	return nil
}

func (r *fakeRepo) WeeklyAvailability(_ context.Context, stylistID uint) ([]models.WeeklyAvailability, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]models.WeeklyAvailability(nil), r.weekly[stylistID]...), nil
}

func (r *fakeRepo) SeedWeeklyAvailability(_ context.Context, rows []models.WeeklyAvailability) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range rows {
		if len(r.weekly[row.StylistID]) == 0 {
			r.weekly[row.StylistID] = append(r.weekly[row.StylistID], row)
		}
	}
	return nil
}

func (r *fakeRepo) SaveWeeklyDay(_ context.Context, row *models.WeeklyAvailability) error {
	r.mu.Lock()
	defer r.mu.Unlock()

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

func (r *fakeRepo) GetBooking(_ context.Context, id uint) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	start, err := schedule.ParseClock(b.Time)
	if err != nil {
		return err
	}
	end := start + b.DurationMinutes

	for _, other := range r.bookings {
		if other.StylistID != b.StylistID || other.Date != b.Date {
			continue
		}
		if !domain.Status(other.Status).Occupies() {
			continue
		}

		oStart, err := schedule.ParseClock(other.Time)
		if err != nil {
			continue
		}
		oDuration := other.DurationMinutes
		if oDuration <= 0 {
			oDuration = schedule.DefaultBookingMinutes
		}

		if schedule.Overlaps(start, end, oStart, oStart+oDuration) {
			return domain.ErrTimeConflict
		}
	}

	r.nextID++
	b.ID = r.nextID
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[b.ID]; !ok {
		return domain.ErrBookingNotFound
	}
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeRepo) ListBookingsForDay(
	_ context.Context,
	stylistID uint,
	date string,
	statuses []domain.Status,
) ([]models.Booking, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	wanted := make(map[string]bool, len(statuses))
	for _, s := range statuses {
		wanted[string(s)] = true
	}

	var out []models.Booking
	for _, b := range r.bookings {
		if b.StylistID == stylistID && b.Date == date && wanted[b.Status] {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListBookingsForStylist(
	_ context.Context,
	stylistID uint,
	from string,
	to string,
) ([]models.Booking, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Booking
	for _, b := range r.bookings {
		if b.StylistID != stylistID {
			continue
		}
		if from != "" && b.Date < from {
			continue
		}
		if to != "" && b.Date > to {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakeRepo) ListBookingsForClient(_ context.Context, clientID uint) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Booking
	for _, b := range r.bookings {
		if b.ClientID == clientID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeRepo) CountActiveBookingsByDate(
	_ context.Context,
	stylistID uint,
	from string,
	to string,
) (map[string]int, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	counts := make(map[string]int)
	for _, b := range r.bookings {
		if b.StylistID != stylistID {
			continue
		}
		if b.Date < from || b.Date > to {
			continue
		}
		if domain.Status(b.Status).Occupies() {
			counts[b.Date]++
		}
	}
	return counts, nil
}
