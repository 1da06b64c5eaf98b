package repository

import (
	"context"
	"errors"
	"hash/fnv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/levelupglow/salon-scheduler/internal/domain/booking"
	"github.com/levelupglow/salon-scheduler/internal/domain/schedule"
	"github.com/levelupglow/salon-scheduler/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *BookingGormRepository) GetStylist(
	ctx context.Context,
	id uint,
) (*models.Stylist, error) {

	var stylist models.Stylist
	if err := r.db.WithContext(ctx).First(&stylist, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStylistNotFound
		}
		return nil, err
	}
	return &stylist, nil
}

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrServiceNotFound
		}
		return nil, err
	}
	return &service, nil
}

func (r *BookingGormRepository) ListStylistsForService(
	ctx context.Context,
	serviceID uint,
) ([]models.Stylist, error) {

	var stylists []models.Stylist
	err := r.db.WithContext(ctx).
		Joins("JOIN stylist_services ss ON ss.stylist_id = stylists.id").
		Where("ss.service_id = ? AND stylists.active = true", serviceID).
		Order("stylists.id ASC").
		Find(&stylists).Error

	if err != nil {
		return nil, err
	}

	return stylists, nil
}

func (r *BookingGormRepository) EnsureStylistService(
	ctx context.Context,
	stylistID uint,
	serviceID uint,
) error {

	rel := models.StylistService{
		StylistID: stylistID,
		ServiceID: serviceID,
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rel).Error
}

// --------------------------------------------------
// Weekly availability
// --------------------------------------------------

func (r *BookingGormRepository) WeeklyAvailability(
	ctx context.Context,
	stylistID uint,
) ([]models.WeeklyAvailability, error) {

	var rows []models.WeeklyAvailability
	if err := r.db.WithContext(ctx).
		Where("stylist_id = ?", stylistID).
		Order("day_of_week ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *BookingGormRepository) SeedWeeklyAvailability(
	ctx context.Context,
	rows []models.WeeklyAvailability,
) error {

	if len(rows) == 0 {
		return nil
	}

	// First writer wins if two readers race on the same stylist.
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}

func (r *BookingGormRepository) SaveWeeklyDay(
	ctx context.Context,
	row *models.WeeklyAvailability,
) error {

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "stylist_id"},
				{Name: "day_of_week"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"start_time", "end_time", "is_available", "updated_at",
			}),
		}).
		Create(row).Error
}

// --------------------------------------------------
// Bookings
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}

	return &b, nil
}

// CreateBooking re-runs the overlap check against current rows and
// inserts, all inside one transaction holding an advisory lock on
// (stylist, date). Two clients racing on the same span serialize on
// the lock; the loser sees the winner's row and gets ErrTimeConflict.
//
// A plain SELECT ... FOR UPDATE is not enough here: when the span is
// free the locking scan matches nothing, so it cannot block the
// other writer's insert.
func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	start, err := schedule.ParseClock(b.Time)
	if err != nil {
		return err
	}
	end := start + b.DurationMinutes

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Exec(
			"SELECT pg_advisory_xact_lock(?, ?)",
			int32(b.StylistID),
			dayLockKey(b.Date),
		).Error; err != nil {
			return err
		}

		existing, err := listForDayTx(tx, b.StylistID, b.Date, domain.OccupyingStatuses())
		if err != nil {
			return err
		}

		for _, interval := range schedule.BusyIntervals(existing) {
			if schedule.Overlaps(start, end, interval.StartMinute, interval.EndMinute) {
				return domain.ErrTimeConflict
			}
		}

		return tx.Create(b).Error
	})
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingGormRepository) ListBookingsForDay(
	ctx context.Context,
	stylistID uint,
	date string,
	statuses []domain.Status,
) ([]models.Booking, error) {

	return listForDayTx(r.db.WithContext(ctx), stylistID, date, statuses)
}

func listForDayTx(
	tx *gorm.DB,
	stylistID uint,
	date string,
	statuses []domain.Status,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := tx.
		Where(
			"stylist_id = ? AND date = ? AND status IN ?",
			stylistID, date, statuses,
		).
		Order("time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsForStylist(
	ctx context.Context,
	stylistID uint,
	from string,
	to string,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).
		Preload("Service").
		Where("stylist_id = ?", stylistID)

	if from != "" {
		q = q.Where("date >= ?", from)
	}
	if to != "" {
		q = q.Where("date <= ?", to)
	}

	var bookings []models.Booking
	if err := q.Order("date ASC, time ASC").Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsForClient(
	ctx context.Context,
	clientID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Stylist").
		Where("client_id = ?", clientID).
		Order("date DESC, time DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) CountActiveBookingsByDate(
	ctx context.Context,
	stylistID uint,
	from string,
	to string,
) (map[string]int, error) {

	type dateCount struct {
		Date  string
		Count int
	}

	var rows []dateCount
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select("date, COUNT(*) as count").
		Where(
			"stylist_id = ? AND date >= ? AND date <= ? AND status <> ?",
			stylistID, from, to, string(domain.StatusCanceled),
		).
		Group("date").
		Scan(&rows).Error

	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Date] = row.Count
	}

	return counts, nil
}

// dayLockKey folds a date string into the second advisory lock key.
func dayLockKey(date string) int32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(date))
	return int32(h.Sum32())
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
