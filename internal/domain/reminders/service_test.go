package reminders

import (
	"context"
	"errors"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	list []Reminder
}

func (r *testRepo) List(ctx context.Context) ([]Reminder, error) {
	out := make([]Reminder, len(r.list))
	copy(out, r.list)
	return out, nil
}

func (r *testRepo) SaveAll(ctx context.Context, list []Reminder) error {
	r.list = make([]Reminder, len(list))
	copy(r.list, list)
	return nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Upsert_Validates(t *testing.T) {
	svc := NewService(&testRepo{})

	cases := []Reminder{
		{PetID: "", Title: "Vet", Date: "2026-03-02", Frequency: FrequencyNone},
		{PetID: "pet-1", Title: "  ", Date: "2026-03-02", Frequency: FrequencyNone},
		{PetID: "pet-1", Title: "Vet", Date: "02/03/2026", Frequency: FrequencyNone},
		{PetID: "pet-1", Title: "Vet", Date: "2026-03-02", Frequency: Frequency("monthly")},
	}
	for i, c := range cases {
		if _, err := svc.Upsert(context.Background(), c); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestService_Upsert_AssignsIDAndReplaces(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	r1, err := svc.Upsert(context.Background(), Reminder{PetID: "pet-1", Title: "Vaccine", Date: "2026-03-02", Frequency: FrequencyNone})
	if err != nil {
		t.Fatalf("Upsert error: %v", err)
	}
	if r1.ID == "" {
		t.Fatalf("expected generated id")
	}

	r1.Title = "Vaccine booster"
	if _, err := svc.Upsert(context.Background(), r1); err != nil {
		t.Fatalf("Upsert replace error: %v", err)
	}
	if len(repo.list) != 1 || repo.list[0].Title != "Vaccine booster" {
		t.Fatalf("expected in-place replace, got %#v", repo.list)
	}
}

func TestService_ListFor_FiltersAndSorts(t *testing.T) {
	repo := &testRepo{list: []Reminder{
		{ID: "a", PetID: "pet-1", Title: "Later", Date: "2026-04-01", Time: "09:00", Frequency: FrequencyNone},
		{ID: "b", PetID: "pet-2", Title: "Other pet", Date: "2026-03-01", Time: "09:00", Frequency: FrequencyNone},
		{ID: "c", PetID: "pet-1", Title: "Sooner", Date: "2026-03-10", Time: "08:00", Frequency: FrequencyNone},
		{ID: "d", PetID: "pet-1", Title: "Same day earlier", Date: "2026-03-10", Time: "07:00", Frequency: FrequencyNone},
	}}
	svc := NewService(repo)

	out, err := svc.ListFor(context.Background(), "pet-1")
	if err != nil {
		t.Fatalf("ListFor error: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 reminders for pet-1, got %d", len(out))
	}
	if out[0].ID != "d" || out[1].ID != "c" || out[2].ID != "a" {
		t.Fatalf("expected date/time ascending order, got %#v", out)
	}
}

func TestService_PurgeFor_RemovesOnlyThatPet(t *testing.T) {
	repo := &testRepo{list: []Reminder{
		{ID: "a", PetID: "pet-1", Title: "Vet", Date: "2026-03-02", Frequency: FrequencyNone},
		{ID: "b", PetID: "pet-2", Title: "Bath", Date: "2026-03-02", Frequency: FrequencyNone},
	}}
	svc := NewService(repo)

	if err := svc.PurgeFor(context.Background(), "pet-1"); err != nil {
		t.Fatalf("PurgeFor error: %v", err)
	}
	if len(repo.list) != 1 || repo.list[0].PetID != "pet-2" {
		t.Fatalf("expected only pet-2 reminders left, got %#v", repo.list)
	}

	// purgar de nuevo es un no-op
	if err := svc.PurgeFor(context.Background(), "pet-1"); err != nil {
		t.Fatalf("PurgeFor no-op error: %v", err)
	}
}

func TestService_DueOn(t *testing.T) {
	repo := &testRepo{list: []Reminder{
		{ID: "a", PetID: "pet-1", Title: "Daily pill", Date: "2026-03-01", Frequency: FrequencyDaily},
		{ID: "b", PetID: "pet-1", Title: "Future checkup", Date: "2026-06-01", Frequency: FrequencyNone},
		{ID: "c", PetID: "pet-2", Title: "Weekly bath", Date: "2026-03-02", Frequency: FrequencyWeekly},
	}}
	svc := NewService(repo)

	// 2026-03-09 es lunes, igual que el inicio del weekly
	due, err := svc.DueOn(context.Background(), time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("DueOn error: %v", err)
	}
	if len(due) != 2 {
		t.Fatalf("expected daily + weekly due, got %#v", due)
	}
}

func TestService_Remove_NotFound(t *testing.T) {
	svc := NewService(&testRepo{})
	if err := svc.Remove(context.Background(), "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
