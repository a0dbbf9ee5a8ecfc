package routines

import (
	"context"
	"errors"
	"testing"

	"petpal-lite/internal/adapters/assistant/fake"
	"petpal-lite/internal/domain/pets"
	"petpal-lite/internal/ports/assistant"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byPet map[string][]Item
}

func newTestRepo() *testRepo {
	return &testRepo{byPet: map[string][]Item{}}
}

func (r *testRepo) ListFor(ctx context.Context, petID string) ([]Item, error) {
	items := r.byPet[petID]
	out := make([]Item, len(items))
	copy(out, items)
	return out, nil
}

func (r *testRepo) SaveFor(ctx context.Context, petID string, items []Item) error {
	cp := make([]Item, len(items))
	copy(cp, items)
	r.byPet[petID] = cp
	return nil
}

func (r *testRepo) PurgeFor(ctx context.Context, petID string) error {
	delete(r.byPet, petID)
	return nil
}

// testSelection es el puntero de mascota activa, mutable desde el test.
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

func TestMergeGenerated_SkipsDuplicateActivityAtSameTime(t *testing.T) {
	existing := []Item{
		{ID: "a", Time: "07:00", Activity: "Breakfast", Icon: IconFood},
	}
	generated := []Item{
		{ID: "b", Time: "07:00", Activity: "breakfast", Icon: IconFood}, // dup, solo cambia el case
		{ID: "c", Time: "08:00", Activity: "Breakfast", Icon: IconFood}, // misma actividad, otra hora
		{ID: "d", Time: "07:00", Activity: "Morning Walk", Icon: IconWalk},
	}

	out := MergeGenerated(existing, generated)
	if len(out) != 3 {
		t.Fatalf("expected 3 items after merge, got %d: %#v", len(out), out)
	}
	for _, it := range out {
		if it.ID == "b" {
			t.Fatalf("duplicate candidate survived the merge")
		}
	}
}

func TestMergeGenerated_KeepsResultSortedByTime(t *testing.T) {
	existing := []Item{
		{ID: "a", Time: "19:00", Activity: "Dinner", Icon: IconFood},
	}
	generated := []Item{
		{ID: "b", Time: "07:00", Activity: "Breakfast", Icon: IconFood},
		{ID: "c", Time: "13:00", Activity: "Water", Icon: IconWater},
	}

	out := MergeGenerated(existing, generated)
	for i := 1; i < len(out); i++ {
		if out[i-1].Time > out[i].Time {
			t.Fatalf("merge result not sorted: %#v", out)
		}
	}
}

func TestNormalizeTime(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"07:30", "07:30", true},
		{"7:30 AM", "07:30", true},
		{"7:30PM", "19:30", true},
		{" 19:00 ", "19:00", true},
		{"25:00", "", false},
		{"mediodía", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := NormalizeTime(c.in)
		if ok != c.ok || got != c.want {
			t.Fatalf("NormalizeTime(%q) = %q,%v; want %q,%v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestService_Upsert_ValidatesAndSorts(t *testing.T) {
	svc, repo := newTestService(fake.New(), &testSelection{id: "pet-1"})

	if _, err := svc.Upsert(context.Background(), "pet-1", Item{Time: "late", Activity: "Dinner", Icon: IconFood}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad time, got %v", err)
	}
	if _, err := svc.Upsert(context.Background(), "pet-1", Item{Time: "19:00", Activity: "  ", Icon: IconFood}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank activity, got %v", err)
	}
	if _, err := svc.Upsert(context.Background(), "pet-1", Item{Time: "19:00", Activity: "Dinner", Icon: Icon("party")}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown icon, got %v", err)
	}

	if _, err := svc.Upsert(context.Background(), "pet-1", Item{Time: "7:00 PM", Activity: "Dinner", Icon: IconFood}); err != nil {
		t.Fatalf("Upsert #1 error: %v", err)
	}
	if _, err := svc.Upsert(context.Background(), "pet-1", Item{Time: "07:00", Activity: "Breakfast", Icon: IconFood}); err != nil {
		t.Fatalf("Upsert #2 error: %v", err)
	}

	items := repo.byPet["pet-1"]
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	// normalizado a 24h y ordenado
	if items[0].Time != "07:00" || items[1].Time != "19:00" {
		t.Fatalf("expected normalized sorted times, got %#v", items)
	}
}

func TestService_Upsert_ReplacesByID(t *testing.T) {
	svc, repo := newTestService(fake.New(), &testSelection{id: "pet-1"})

	it, err := svc.Upsert(context.Background(), "pet-1", Item{Time: "07:00", Activity: "Breakfast", Icon: IconFood})
	if err != nil {
		t.Fatalf("Upsert error: %v", err)
	}

	it.Activity = "Big Breakfast"
	if _, err := svc.Upsert(context.Background(), "pet-1", it); err != nil {
		t.Fatalf("Upsert replace error: %v", err)
	}

	items := repo.byPet["pet-1"]
	if len(items) != 1 || items[0].Activity != "Big Breakfast" {
		t.Fatalf("expected replaced item, got %#v", items)
	}
}

func TestService_GenerateFor_MergesSuggestions(t *testing.T) {
	ai := fake.New()
	ai.GenerateRoutineFn = func(ctx context.Context, p assistant.PetContext) ([]assistant.SuggestedItem, error) {
		return []assistant.SuggestedItem{
			{Time: "7:30 AM", Activity: "Breakfast", Icon: "food"},
			{Time: "soon", Activity: "Nap", Icon: "sleep"}, // horario ambiguo: fuera
			{Time: "13:00", Activity: "", Icon: "water"},   // sin actividad: fuera
			{Time: "20:00", Activity: "Dinner", Icon: "banquet"}, // ícono raro => food
		}, nil
	}

	svc, _ := newTestService(ai, &testSelection{id: "pet-1"})

	merged, err := svc.GenerateFor(context.Background(), "pet-1")
	if err != nil {
		t.Fatalf("GenerateFor error: %v", err)
	}
	if len(merged) != 2 {
		t.Fatalf("expected 2 valid candidates, got %#v", merged)
	}
	if merged[0].Time != "07:30" {
		t.Fatalf("expected am/pm time normalized, got %q", merged[0].Time)
	}
	if merged[1].Icon != IconFood {
		t.Fatalf("expected unknown icon to fall back to food, got %q", merged[1].Icon)
	}
}

func TestService_GenerateFor_DiscardsStaleResponse(t *testing.T) {
	sel := &testSelection{id: "pet-1"}
	ai := fake.New()
	ai.GenerateRoutineFn = func(ctx context.Context, p assistant.PetContext) ([]assistant.SuggestedItem, error) {
		// la selección cambia mientras la llamada está en vuelo
		sel.id = "pet-2"
		return []assistant.SuggestedItem{{Time: "07:00", Activity: "Breakfast", Icon: "food"}}, nil
	}

	svc, repo := newTestService(ai, sel)

	_, err := svc.GenerateFor(context.Background(), "pet-1")
	if !errors.Is(err, ErrStaleContext) {
		t.Fatalf("expected ErrStaleContext, got %v", err)
	}
	if len(repo.byPet["pet-1"]) != 0 {
		t.Fatalf("stale response must not be persisted, got %#v", repo.byPet["pet-1"])
	}
}

func TestService_GenerateFor_AssistantFailureLeavesStateUntouched(t *testing.T) {
	ai := fake.New()
	ai.GenerateRoutineFn = func(ctx context.Context, p assistant.PetContext) ([]assistant.SuggestedItem, error) {
		return nil, errors.New("model overloaded")
	}

	svc, repo := newTestService(ai, &testSelection{id: "pet-1"})
	if _, err := svc.Upsert(context.Background(), "pet-1", Item{Time: "07:00", Activity: "Breakfast", Icon: IconFood}); err != nil {
		t.Fatalf("Upsert error: %v", err)
	}

	if _, err := svc.GenerateFor(context.Background(), "pet-1"); err == nil {
		t.Fatalf("expected error from assistant")
	}
	if len(repo.byPet["pet-1"]) != 1 {
		t.Fatalf("existing routine must survive the failure, got %#v", repo.byPet["pet-1"])
	}
}

func TestService_Remove_NotFound(t *testing.T) {
	svc, _ := newTestService(fake.New(), &testSelection{id: "pet-1"})

	if err := svc.Remove(context.Background(), "pet-1", "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
