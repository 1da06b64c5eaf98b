package availability

import (
	"context"
	"testing"

	domain "github.com/levelupglow/salon-scheduler/internal/domain/booking"
	"github.com/levelupglow/salon-scheduler/internal/httperr"
	"github.com/levelupglow/salon-scheduler/internal/models"
)

func TestGetWeeklyHoursSeedsDefaults(t *testing.T) {
	repo := newStubRepo()
	repo.stylists[1] = &models.Stylist{ID: 1, Name: "Dana", Active: true}

	uc := NewGetWeeklyHours(repo)

	rows, err := uc.Execute(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 7 {
		t.Fatalf("expected 7 seeded rows, got %d", len(rows))
	}
	if repo.seedCalls != 1 {
		t.Errorf("seed called %d times, want 1", repo.seedCalls)
	}

	for _, row := range rows {
		weekday := row.DayOfWeek >= 1 && row.DayOfWeek <= 5
		if row.IsAvailable != weekday {
			t.Errorf("day %d available = %v, want %v", row.DayOfWeek, row.IsAvailable, weekday)
		}
	}

	// Second read returns the persisted rows without reseeding.
	if _, err := uc.Execute(context.Background(), 1); err != nil {
		t.Fatalf("second read: %v", err)
	}
	if repo.seedCalls != 1 {
		t.Errorf("seed called %d times after second read, want 1", repo.seedCalls)
	}
}

func TestGetWeeklyHoursUnknownStylist(t *testing.T) {
	uc := NewGetWeeklyHours(newStubRepo())

	_, err := uc.Execute(context.Background(), 99)
	if !httperr.IsBusiness(err, "stylist_not_found") {
		t.Errorf("err = %v, want stylist_not_found", err)
	}
}

func TestSaveWeeklyHoursPartialFailure(t *testing.T) {
	repo := newStubRepo()
	repo.stylists[1] = &models.Stylist{ID: 1, Name: "Dana", Active: true}

	uc := NewSaveWeeklyHours(repo, nil, nil)
	actor := domain.Actor{UserID: 7, Role: models.RoleStylist, StylistID: 1}

	days := []DayInput{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", IsAvailable: true},
		{DayOfWeek: 2, StartTime: "18:00", EndTime: "10:00", IsAvailable: true}, // inverted
		{DayOfWeek: 3, StartTime: "10:00", EndTime: "16:00", IsAvailable: true},
		{DayOfWeek: 9, IsAvailable: false}, // bad weekday
	}

	result, err := uc.Execute(context.Background(), actor, 1, days)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Saved) != 2 || result.Saved[0] != 1 || result.Saved[1] != 3 {
		t.Errorf("saved = %v, want [1 3]", result.Saved)
	}
	if len(result.Failed) != 2 {
		t.Fatalf("failed = %v, want 2 entries", result.Failed)
	}
	if result.Failed[0].DayOfWeek != 2 || result.Failed[0].Code != "invalid_time_range" {
		t.Errorf("first failure = %+v, want day 2 / invalid_time_range", result.Failed[0])
	}
	if result.Failed[1].DayOfWeek != 9 || result.Failed[1].Code != "invalid_weekday" {
		t.Errorf("second failure = %+v, want day 9 / invalid_weekday", result.Failed[1])
	}

	// The valid days actually landed.
	if len(repo.weekly[1]) != 2 {
		t.Errorf("persisted %d rows, want 2", len(repo.weekly[1]))
	}
}

func TestSaveWeeklyHoursAuthorization(t *testing.T) {
	repo := newStubRepo()
	repo.stylists[1] = &models.Stylist{ID: 1, Active: true}

	uc := NewSaveWeeklyHours(repo, nil, nil)
	days := []DayInput{{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", IsAvailable: true}}

	other := domain.Actor{UserID: 8, Role: models.RoleStylist, StylistID: 2}
	if _, err := uc.Execute(context.Background(), other, 1, days); !httperr.IsBusiness(err, "not_allowed") {
		t.Errorf("other stylist: err = %v, want not_allowed", err)
	}

	client := domain.Actor{UserID: 9, Role: models.RoleClient}
	if _, err := uc.Execute(context.Background(), client, 1, days); !httperr.IsBusiness(err, "not_allowed") {
		t.Errorf("client: err = %v, want not_allowed", err)
	}

	admin := domain.Actor{UserID: 1, Role: models.RoleAdmin}
	if _, err := uc.Execute(context.Background(), admin, 1, days); err != nil {
		t.Errorf("admin: unexpected error %v", err)
	}
}

func TestSaveWeeklyHoursRepoFailure(t *testing.T) {
	repo := newStubRepo()
	repo.stylists[1] = &models.Stylist{ID: 1, Active: true}
	repo.saveErr = context.DeadlineExceeded

	uc := NewSaveWeeklyHours(repo, nil, nil)
	actor := domain.Actor{UserID: 7, Role: models.RoleStylist, StylistID: 1}

	result, err := uc.Execute(context.Background(), actor, 1, []DayInput{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", IsAvailable: true},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Failed) != 1 || result.Failed[0].Code != "save_failed" {
		t.Errorf("failed = %+v, want one save_failed entry", result.Failed)
	}
}
