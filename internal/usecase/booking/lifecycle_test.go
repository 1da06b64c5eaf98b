package booking

import (
	"context"
	"testing"

	domain "github.com/levelupglow/salon-scheduler/internal/domain/booking"
	"github.com/levelupglow/salon-scheduler/internal/httperr"
	"github.com/levelupglow/salon-scheduler/internal/models"
)

func seedBooking(t *testing.T, repo *fakeRepo, status string) *models.Booking {
	t.Helper()

	b := &models.Booking{
		Reference:       "ref-1",
		StylistID:       1,
		ServiceID:       10,
		ClientID:        42,
		Date:            tomorrow(),
		Time:            "10:00:00",
		DurationMinutes: 60,
		Status:          status,
	}
	if err := repo.CreateBooking(context.Background(), b); err != nil {
		t.Fatalf("seed booking: %v", err)
	}
	return b
}

var (
	owningStylist = domain.Actor{UserID: 7, Role: models.RoleStylist, StylistID: 1}
	otherStylist  = domain.Actor{UserID: 8, Role: models.RoleStylist, StylistID: 2}
	admin         = domain.Actor{UserID: 1, Role: models.RoleAdmin}
	owningClient  = domain.Actor{UserID: 42, Role: models.RoleClient}
	otherClient   = domain.Actor{UserID: 43, Role: models.RoleClient}
)

func TestConfirmBooking(t *testing.T) {
	repo := newFakeRepo()
	b := seedBooking(t, repo, "pending")
	uc := NewConfirmBooking(repo, nil, testTZ)
	ctx := context.Background()

	if _, err := uc.Execute(ctx, otherStylist, b.ID); !httperr.IsBusiness(err, "not_allowed") {
		t.Errorf("other stylist: err = %v, want not_allowed", err)
	}
	if _, err := uc.Execute(ctx, owningClient, b.ID); !httperr.IsBusiness(err, "not_allowed") {
		t.Errorf("client: err = %v, want not_allowed", err)
	}

	got, err := uc.Execute(ctx, owningStylist, b.ID)
	if err != nil {
		t.Fatalf("owning stylist confirm: %v", err)
	}
	if got.Status != "confirmed" || got.ConfirmedAt == nil {
		t.Errorf("after confirm: status=%q confirmedAt=%v", got.Status, got.ConfirmedAt)
	}

	// Retry converges without error.
	again, err := uc.Execute(ctx, admin, b.ID)
	if err != nil {
		t.Fatalf("repeat confirm: %v", err)
	}
	if !again.ConfirmedAt.Equal(*got.ConfirmedAt) {
		t.Error("repeat confirm moved the confirmation timestamp")
	}

	if _, err := uc.Execute(ctx, admin, 999); !httperr.IsBusiness(err, "booking_not_found") {
		t.Errorf("unknown id: err = %v, want booking_not_found", err)
	}
}

func TestCancelBooking(t *testing.T) {
	repo := newFakeRepo()
	b := seedBooking(t, repo, "pending")
	uc := NewCancelBooking(repo, nil, nil, testTZ)
	ctx := context.Background()

	if _, err := uc.Execute(ctx, otherClient, b.ID); !httperr.IsBusiness(err, "not_allowed") {
		t.Errorf("other client: err = %v, want not_allowed", err)
	}
	if _, err := uc.Execute(ctx, otherStylist, b.ID); !httperr.IsBusiness(err, "not_allowed") {
		t.Errorf("other stylist: err = %v, want not_allowed", err)
	}

	got, err := uc.Execute(ctx, owningClient, b.ID)
	if err != nil {
		t.Fatalf("owning client cancel: %v", err)
	}
	if got.Status != "canceled" || got.CanceledAt == nil {
		t.Errorf("after cancel: status=%q canceledAt=%v", got.Status, got.CanceledAt)
	}

	// Double cancel is a no-op.
	if _, err := uc.Execute(ctx, owningClient, b.ID); err != nil {
		t.Errorf("repeat cancel: %v", err)
	}
}

func TestCancelBookingByStaff(t *testing.T) {
	repo := newFakeRepo()
	b := seedBooking(t, repo, "confirmed")
	uc := NewCancelBooking(repo, nil, nil, testTZ)

	got, err := uc.Execute(context.Background(), owningStylist, b.ID)
	if err != nil {
		t.Fatalf("stylist cancel: %v", err)
	}
	if got.Status != "canceled" {
		t.Errorf("status = %q, want canceled", got.Status)
	}
}

func TestCancelCompletedBooking(t *testing.T) {
	repo := newFakeRepo()
	b := seedBooking(t, repo, "completed")
	uc := NewCancelBooking(repo, nil, nil, testTZ)

	_, err := uc.Execute(context.Background(), admin, b.ID)
	if !httperr.IsBusiness(err, "invalid_state") {
		t.Errorf("err = %v, want invalid_state", err)
	}
}

func TestCompleteBooking(t *testing.T) {
	repo := newFakeRepo()
	b := seedBooking(t, repo, "confirmed")
	uc := NewCompleteBooking(repo, nil, testTZ)
	ctx := context.Background()

	if _, err := uc.Execute(ctx, owningClient, b.ID); !httperr.IsBusiness(err, "not_allowed") {
		t.Errorf("client: err = %v, want not_allowed", err)
	}

	got, err := uc.Execute(ctx, owningStylist, b.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if got.Status != "completed" || got.CompletedAt == nil {
		t.Errorf("after complete: status=%q completedAt=%v", got.Status, got.CompletedAt)
	}

	// Completed is terminal for cancel.
	cancelUC := NewCancelBooking(repo, nil, nil, testTZ)
	if _, err := cancelUC.Execute(ctx, admin, b.ID); !httperr.IsBusiness(err, "invalid_state") {
		t.Errorf("cancel completed: err = %v, want invalid_state", err)
	}
}

func TestListBookings(t *testing.T) {
	repo := newFakeRepo()
	ctx := context.Background()

	dates := []string{"2025-06-02", "2025-06-03", "2025-06-10"}
	for i, d := range dates {
		b := &models.Booking{
			Reference:       string(rune('a' + i)),
			StylistID:       1,
			ClientID:        42,
			Date:            d,
			Time:            "10:00:00",
			DurationMinutes: 30,
			Status:          "pending",
		}
		if err := repo.CreateBooking(ctx, b); err != nil {
			t.Fatalf("seed %s: %v", d, err)
		}
	}

	uc := NewListBookings(repo)

	got, err := uc.ForStylist(ctx, owningStylist, 1, "2025-06-01", "2025-06-05")
	if err != nil {
		t.Fatalf("ForStylist: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("bounded range returned %d rows, want 2", len(got))
	}

	got, err = uc.ForStylist(ctx, admin, 1, "", "")
	if err != nil {
		t.Fatalf("ForStylist unbounded: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("unbounded returned %d rows, want 3", len(got))
	}

	if _, err := uc.ForStylist(ctx, otherStylist, 1, "", ""); !httperr.IsBusiness(err, "not_allowed") {
		t.Errorf("other stylist: err = %v, want not_allowed", err)
	}
	if _, err := uc.ForStylist(ctx, owningStylist, 1, "junk", ""); !httperr.IsBusiness(err, "invalid_date") {
		t.Errorf("bad from: err = %v, want invalid_date", err)
	}

	mine, err := uc.ForClient(ctx, owningClient)
	if err != nil {
		t.Fatalf("ForClient: %v", err)
	}
	if len(mine) != 3 {
		t.Errorf("client history returned %d rows, want 3", len(mine))
	}
	if other, _ := uc.ForClient(ctx, otherClient); len(other) != 0 {
		t.Errorf("other client sees %d rows, want 0", len(other))
	}
}
