package kvrepo

import (
	"context"
	"testing"
	"time"

	"petpal-lite/internal/adapters/storage/memory"
	"petpal-lite/internal/domain/health"
	"petpal-lite/internal/domain/pets"
	"petpal-lite/internal/domain/reminders"
	"petpal-lite/internal/domain/routines"
)

func TestPetsRepo_RoundTripAndSelection(t *testing.T) {
	repo := NewPetsRepo(memory.NewStore())
	ctx := context.Background()

	// sin datos: lista vacía, sin selección
	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %#v", list)
	}
	if id, _ := repo.SelectedID(ctx); id != "" {
		t.Fatalf("expected no selection, got %q", id)
	}

	bd := time.Date(2022, 5, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	in := []pets.Pet{{
		ID:              "p1",
		Name:            "Milo",
		Species:         pets.SpeciesDog,
		Breed:           "mixed",
		Birthday:        &bd,
		VaccinationInfo: "rabies 2025",
		CreatedAt:       now,
		UpdatedAt:       now,
	}}
	if err := repo.SaveAll(ctx, in); err != nil {
		t.Fatalf("SaveAll error: %v", err)
	}

	out, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List #2 error: %v", err)
	}
	if len(out) != 1 || out[0].Name != "Milo" || out[0].Species != pets.SpeciesDog {
		t.Fatalf("round trip mismatch: %#v", out)
	}
	if out[0].Birthday == nil || !out[0].Birthday.Equal(bd) {
		t.Fatalf("birthday lost in round trip: %#v", out[0].Birthday)
	}

	// puntero de selección: guardar, leer, limpiar
	if err := repo.SaveSelectedID(ctx, "p1"); err != nil {
		t.Fatalf("SaveSelectedID error: %v", err)
	}
	if id, _ := repo.SelectedID(ctx); id != "p1" {
		t.Fatalf("expected p1 selected, got %q", id)
	}
	if err := repo.ClearSelectedID(ctx); err != nil {
		t.Fatalf("ClearSelectedID error: %v", err)
	}
	if id, _ := repo.SelectedID(ctx); id != "" {
		t.Fatalf("expected cleared selection, got %q", id)
	}
}

func TestRoutinesRepo_KeyedByPet(t *testing.T) {
	repo := NewRoutinesRepo(memory.NewStore())
	ctx := context.Background()

	if err := repo.SaveFor(ctx, "p1", []routines.Item{{ID: "a", Time: "07:00", Activity: "Breakfast", Icon: routines.IconFood}}); err != nil {
		t.Fatalf("SaveFor error: %v", err)
	}
	if err := repo.SaveFor(ctx, "p2", []routines.Item{{ID: "b", Time: "08:00", Activity: "Walk", Icon: routines.IconWalk}}); err != nil {
		t.Fatalf("SaveFor #2 error: %v", err)
	}

	p1, _ := repo.ListFor(ctx, "p1")
	if len(p1) != 1 || p1[0].Activity != "Breakfast" {
		t.Fatalf("unexpected p1 routine: %#v", p1)
	}

	// purge de p1 no toca a p2
	if err := repo.PurgeFor(ctx, "p1"); err != nil {
		t.Fatalf("PurgeFor error: %v", err)
	}
	p1, _ = repo.ListFor(ctx, "p1")
	if len(p1) != 0 {
		t.Fatalf("expected p1 purged, got %#v", p1)
	}
	p2, _ := repo.ListFor(ctx, "p2")
	if len(p2) != 1 {
		t.Fatalf("expected p2 untouched, got %#v", p2)
	}
}

func TestRemindersRepo_FlatCollection(t *testing.T) {
	repo := NewRemindersRepo(memory.NewStore())
	ctx := context.Background()

	in := []reminders.Reminder{
		{ID: "a", PetID: "p1", Title: "Vet", Date: "2026-03-02", Time: "09:00", Frequency: reminders.FrequencyNone},
		{ID: "b", PetID: "p2", Title: "Bath", Date: "2026-03-05", Time: "18:00", Frequency: reminders.FrequencyWeekly},
	}
	if err := repo.SaveAll(ctx, in); err != nil {
		t.Fatalf("SaveAll error: %v", err)
	}

	out, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(out) != 2 || out[1].Frequency != reminders.FrequencyWeekly {
		t.Fatalf("round trip mismatch: %#v", out)
	}
}

func TestHealthRepo_TwoSnapshotPair(t *testing.T) {
	repo := NewHealthRepo(memory.NewStore())
	ctx := context.Background()

	// sin datos: record vacío, no error
	rec, err := repo.Get(ctx, "p1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if rec.Result != nil || rec.PreviousResult != nil {
		t.Fatalf("expected empty record, got %#v", rec)
	}

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rec = health.Record{
		Result:         &health.ScanResult{Score: 90, Status: health.StatusNormal, Analysis: "ok", Recommendations: []string{"keep diet"}, ScannedAt: at},
		PreviousResult: &health.ScanResult{Score: 75, Status: health.StatusCaution, Analysis: "meh", ScannedAt: at.Add(-24 * time.Hour)},
	}
	if err := repo.Save(ctx, "p1", rec); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	got, err := repo.Get(ctx, "p1")
	if err != nil {
		t.Fatalf("Get #2 error: %v", err)
	}
	if got.Result == nil || got.Result.Score != 90 || got.PreviousResult == nil || got.PreviousResult.Status != health.StatusCaution {
		t.Fatalf("round trip mismatch: %#v", got)
	}

	if err := repo.PurgeFor(ctx, "p1"); err != nil {
		t.Fatalf("PurgeFor error: %v", err)
	}
	got, _ = repo.Get(ctx, "p1")
	if got.Result != nil {
		t.Fatalf("expected purged record, got %#v", got)
	}
}
