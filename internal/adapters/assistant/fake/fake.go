package fake

import (
	"context"
	"fmt"
	"sync"

	"petpal-lite/internal/ports/assistant"
)

// Assistant es el colaborador canned para modo dev (sin API key) y tests.
// Las respuestas son deterministas; los hooks permiten forzar errores o
// bloquear una llamada en vuelo desde un test.
type Assistant struct {
	mu sync.Mutex

	// Overrides opcionales. Nil => respuesta canned.
	GenerateRoutineFn func(ctx context.Context, p assistant.PetContext) ([]assistant.SuggestedItem, error)
	AnalyzePhotoFn    func(ctx context.Context, species string, image []byte, mimeType string) (assistant.ScanReport, error)
	AdviseFn          func(ctx context.Context, p assistant.PetContext, history []assistant.Turn, message string) (string, error)
}

func New() *Assistant {
	return &Assistant{}
}

func (a *Assistant) GenerateRoutine(ctx context.Context, p assistant.PetContext) ([]assistant.SuggestedItem, error) {
	a.mu.Lock()
	fn := a.GenerateRoutineFn
	a.mu.Unlock()
	if fn != nil {
		return fn(ctx, p)
	}

	return []assistant.SuggestedItem{
		{Time: "07:30", Activity: "Breakfast", Details: "Morning meal with fresh water", Icon: "food"},
		{Time: "08:00", Activity: "Morning Walk", Details: "20 minute walk around the block", Icon: "walk"},
		{Time: "13:00", Activity: "Water Refresh", Details: "Refill the water bowl", Icon: "water"},
		{Time: "19:00", Activity: "Dinner", Details: "Evening meal", Icon: "food"},
		{Time: "22:00", Activity: "Bedtime", Details: "Lights out", Icon: "sleep"},
	}, nil
}

func (a *Assistant) AnalyzePhoto(ctx context.Context, species string, image []byte, mimeType string) (assistant.ScanReport, error) {
	a.mu.Lock()
	fn := a.AnalyzePhotoFn
	a.mu.Unlock()
	if fn != nil {
		return fn(ctx, species, image, mimeType)
	}

	return assistant.ScanReport{
		Score:    88,
		Status:   "Normal",
		Analysis: fmt.Sprintf("The %s looks healthy: clear eyes, clean fur, no visible skin issues.", species),
		Recommendations: []string{
			"Keep the current diet",
			"Brush the coat twice a week",
		},
	}, nil
}

func (a *Assistant) Simplify(ctx context.Context, text string) (string, error) {
	return "In short: " + text, nil
}

func (a *Assistant) Advise(ctx context.Context, p assistant.PetContext, history []assistant.Turn, message string) (string, error) {
	a.mu.Lock()
	fn := a.AdviseFn
	a.mu.Unlock()
	if fn != nil {
		return fn(ctx, p, history, message)
	}

	return fmt.Sprintf("For %s I would suggest: keep an eye on it, and if it persists, visit your vet.", p.Name), nil
}

func (a *Assistant) FindNearbyVets(ctx context.Context, lat, lon float64) ([]assistant.Vet, error) {
	return []assistant.Vet{
		{Title: "Happy Paws Veterinary Clinic", URI: "https://maps.example.com/happy-paws"},
		{Title: "City Pet Hospital", URI: "https://maps.example.com/city-pet"},
	}, nil
}
