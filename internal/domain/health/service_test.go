package health

import (
	"context"
	"errors"
	"testing"
	"time"

	"petpal-lite/internal/adapters/assistant/fake"
	"petpal-lite/internal/domain/pets"
	"petpal-lite/internal/ports/assistant"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byPet map[string]Record
}

func newTestRepo() *testRepo {
	return &testRepo{byPet: map[string]Record{}}
}

func (r *testRepo) Get(ctx context.Context, petID string) (Record, error) {
	return r.byPet[petID], nil
}

func (r *testRepo) Save(ctx context.Context, petID string, rec Record) error {
	r.byPet[petID] = rec
	return nil
}

func (r *testRepo) PurgeFor(ctx context.Context, petID string) error {
	delete(r.byPet, petID)
	return nil
}

type testSelection struct {
	id string
}

func (s *testSelection) SelectedID(ctx context.Context) string { return s.id }

type testPetSource struct {
	pet pets.Pet
}

func (s *testPetSource) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	if id != s.pet.ID {
		return pets.Pet{}, pets.ErrNotFound
	}
	return s.pet, nil
}

func newTestService(ai *fake.Assistant, sel *testSelection) (*Service, *testRepo) {
	repo := newTestRepo()
	ps := &testPetSource{pet: pets.Pet{ID: "pet-1", Name: "Milo", Species: pets.SpeciesDog}}
	return NewService(repo, ai, sel, ps), repo
}

// -------------------------
// Tests
// -------------------------

func TestService_Record_KeepsAtMostTwoSnapshots(t *testing.T) {
	svc, _ := newTestService(fake.New(), &testSelection{id: "pet-1"})

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	scan := func(score int, at time.Time) ScanResult {
		return ScanResult{Score: score, Status: StatusNormal, Analysis: "ok", ScannedAt: at}
	}

	if _, err := svc.Record(context.Background(), "pet-1", scan(70, base)); err != nil {
		t.Fatalf("Record #1 error: %v", err)
	}
	if _, err := svc.Record(context.Background(), "pet-1", scan(80, base.Add(time.Hour))); err != nil {
		t.Fatalf("Record #2 error: %v", err)
	}
	rec, err := svc.Record(context.Background(), "pet-1", scan(90, base.Add(2*time.Hour)))
	if err != nil {
		t.Fatalf("Record #3 error: %v", err)
	}

	// queda el tercero como actual, el segundo como anterior; el primero se fue
	if rec.Result == nil || rec.Result.Score != 90 {
		t.Fatalf("expected current score 90, got %#v", rec.Result)
	}
	if rec.PreviousResult == nil || rec.PreviousResult.Score != 80 {
		t.Fatalf("expected previous score 80, got %#v", rec.PreviousResult)
	}
}

func TestService_Record_ValidatesScoreAndStatus(t *testing.T) {
	svc, _ := newTestService(fake.New(), &testSelection{id: "pet-1"})

	if _, err := svc.Record(context.Background(), "pet-1", ScanResult{Score: 140, Status: StatusNormal}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for score > 100, got %v", err)
	}
	if _, err := svc.Record(context.Background(), "pet-1", ScanResult{Score: -1, Status: StatusNormal}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative score, got %v", err)
	}
	if _, err := svc.Record(context.Background(), "pet-1", ScanResult{Score: 50, Status: Status("Great")}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown status, got %v", err)
	}
}

func TestService_Analyze_RecordsReport(t *testing.T) {
	svc, repo := newTestService(fake.New(), &testSelection{id: "pet-1"})

	rec, err := svc.Analyze(context.Background(), "pet-1", []byte{0xFF, 0xD8}, "image/jpeg")
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}
	if rec.Result == nil || rec.Result.Score == 0 {
		t.Fatalf("expected recorded result, got %#v", rec.Result)
	}
	if repo.byPet["pet-1"].Result == nil {
		t.Fatalf("expected result persisted")
	}
}

func TestService_Analyze_UnknownStatusFallsBackToCaution(t *testing.T) {
	ai := fake.New()
	ai.AnalyzePhotoFn = func(ctx context.Context, species string, image []byte, mimeType string) (assistant.ScanReport, error) {
		return assistant.ScanReport{Score: 55, Status: "Weird", Analysis: "?"}, nil
	}
	svc, _ := newTestService(ai, &testSelection{id: "pet-1"})

	rec, err := svc.Analyze(context.Background(), "pet-1", []byte{1}, "image/png")
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}
	if rec.Result.Status != StatusCaution {
		t.Fatalf("expected caution fallback, got %s", rec.Result.Status)
	}
}

func TestService_Analyze_DiscardsStaleResult(t *testing.T) {
	sel := &testSelection{id: "pet-1"}
	ai := fake.New()
	ai.AnalyzePhotoFn = func(ctx context.Context, species string, image []byte, mimeType string) (assistant.ScanReport, error) {
		// el usuario cambió de mascota mientras el análisis estaba en vuelo
		sel.id = "pet-2"
		return assistant.ScanReport{Score: 90, Status: "Normal", Analysis: "ok"}, nil
	}
	svc, repo := newTestService(ai, sel)

	_, err := svc.Analyze(context.Background(), "pet-1", []byte{1}, "image/png")
	if !errors.Is(err, ErrStaleContext) {
		t.Fatalf("expected ErrStaleContext, got %v", err)
	}
	if repo.byPet["pet-1"].Result != nil {
		t.Fatalf("stale result must not be persisted")
	}
}

func TestService_Analyze_RequiresImage(t *testing.T) {
	svc, _ := newTestService(fake.New(), &testSelection{id: "pet-1"})

	if _, err := svc.Analyze(context.Background(), "pet-1", nil, "image/png"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty image, got %v", err)
	}
	if _, err := svc.Analyze(context.Background(), "pet-1", []byte{1}, " "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank mime type, got %v", err)
	}
}

func TestService_Simplify_RequiresText(t *testing.T) {
	svc, _ := newTestService(fake.New(), &testSelection{id: "pet-1"})

	if _, err := svc.Simplify(context.Background(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	out, err := svc.Simplify(context.Background(), "The dermal assessment indicates no anomalies.")
	if err != nil {
		t.Fatalf("Simplify error: %v", err)
	}
	if out == "" {
		t.Fatalf("expected simplified text")
	}
}

func TestService_PurgeFor_DropsBothSnapshots(t *testing.T) {
	svc, repo := newTestService(fake.New(), &testSelection{id: "pet-1"})

	if _, err := svc.Record(context.Background(), "pet-1", ScanResult{Score: 70, Status: StatusNormal}); err != nil {
		t.Fatalf("Record error: %v", err)
	}
	if err := svc.PurgeFor(context.Background(), "pet-1"); err != nil {
		t.Fatalf("PurgeFor error: %v", err)
	}
	if _, ok := repo.byPet["pet-1"]; ok {
		t.Fatalf("expected record removed")
	}
}
