package booking

import (
	"time"

	"github.com/levelupglow/salon-scheduler/internal/httperr"
	"github.com/levelupglow/salon-scheduler/internal/models"
)

// Confirm moves a pending booking to confirmed. Confirming a booking
// that already left pending is a no-op, not an error, so a retried
// request converges on the current state.
func Confirm(b *models.Booking, now time.Time) (bool, error) {
	switch Status(b.Status) {
	case StatusPending:
		b.Status = string(StatusConfirmed)
		b.ConfirmedAt = &now
		return true, nil
	case StatusConfirmed, StatusCanceled, StatusCompleted:
		return false, nil
	}
	return false, httperr.ErrBusiness("invalid_state")
}

// Cancel soft-cancels a pending or confirmed booking. Canceling an
// already-canceled booking is a no-op; completed bookings cannot be
// canceled.
func Cancel(b *models.Booking, now time.Time) (bool, error) {
	switch Status(b.Status) {
	case StatusPending, StatusConfirmed:
		b.Status = string(StatusCanceled)
		b.CanceledAt = &now
		return true, nil
	case StatusCanceled:
		return false, nil
	case StatusCompleted:
		return false, httperr.ErrBusiness("invalid_state")
	}
	return false, httperr.ErrBusiness("invalid_state")
}

// Complete is the administrative terminal marking.
func Complete(b *models.Booking, now time.Time) (bool, error) {
	switch Status(b.Status) {
	case StatusPending, StatusConfirmed:
		b.Status = string(StatusCompleted)
		b.CompletedAt = &now
		return true, nil
	case StatusCompleted:
		return false, nil
	case StatusCanceled:
		return false, httperr.ErrBusiness("invalid_state")
	}
	return false, httperr.ErrBusiness("invalid_state")
}
