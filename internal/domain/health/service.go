package health

import (
	"context"
	"errors"
	"strings"
	"time"

	"petpal-lite/internal/domain/pets"
	"petpal-lite/internal/ports/assistant"
)

var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrStaleContext: el análisis terminó cuando la mascota seleccionada
	// ya era otra; el resultado no se aplica a nadie.
	ErrStaleContext = errors.New("stale scan result discarded")
)

type Selection interface {
	SelectedID(ctx context.Context) string
}

type PetSource interface {
	GetByID(ctx context.Context, id string) (pets.Pet, error)
}

type Service struct {
	repo      Repository
	assistant assistant.Assistant
	selection Selection
	petSource PetSource
	now       func() time.Time
}

func NewService(repo Repository, ai assistant.Assistant, sel Selection, ps PetSource) *Service {
	return &Service{
		repo:      repo,
		assistant: ai,
		selection: sel,
		petSource: ps,
		now:       time.Now,
	}
}

// Get devuelve el par actual/anterior de la mascota (vacío si nunca escaneó).
func (s *Service) Get(ctx context.Context, petID string) (Record, error) {
	return s.repo.Get(ctx, petID)
}

// Record instala un resultado nuevo: el actual pasa al slot anterior y
// el que estaba ahí se descarta. Nunca hay más de dos snapshots.
func (s *Service) Record(ctx context.Context, petID string, res ScanResult) (Record, error) {
	if res.Score < 0 || res.Score > 100 {
		return Record{}, ErrInvalidInput
	}
	if _, ok := ParseStatus(string(res.Status)); !ok {
		return Record{}, ErrInvalidInput
	}
	if res.ScannedAt.IsZero() {
		res.ScannedAt = s.now()
	}

	rec, err := s.repo.Get(ctx, petID)
	if err != nil {
		return Record{}, err
	}

	rec.PreviousResult = rec.Result
	rec.Result = &res

	if err := s.repo.Save(ctx, petID, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Analyze manda la foto al asistente y registra el resultado. Igual que
// la generación de rutinas: si la selección cambió mientras la llamada
// estaba en vuelo, el resultado se descarta.
func (s *Service) Analyze(ctx context.Context, petID string, image []byte, mimeType string) (Record, error) {
	if len(image) == 0 || strings.TrimSpace(mimeType) == "" {
		return Record{}, ErrInvalidInput
	}

	pet, err := s.petSource.GetByID(ctx, petID)
	if err != nil {
		return Record{}, err
	}

	token := s.selection.SelectedID(ctx)

	report, err := s.assistant.AnalyzePhoto(ctx, string(pet.Species), image, mimeType)
	if err != nil {
		return Record{}, err
	}

	if s.selection.SelectedID(ctx) != token {
		return Record{}, ErrStaleContext
	}

	status, ok := ParseStatus(report.Status)
	if !ok {
		status = StatusCaution
	}

	return s.Record(ctx, petID, ScanResult{
		Score:           report.Score,
		Status:          status,
		Analysis:        report.Analysis,
		Recommendations: report.Recommendations,
		ScannedAt:       s.now(),
	})
}

// Simplify reescribe el texto del análisis en lenguaje llano.
func (s *Service) Simplify(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrInvalidInput
	}
	return s.assistant.Simplify(ctx, text)
}

// PurgeFor borra ambos snapshots (cascade del registro).
func (s *Service) PurgeFor(ctx context.Context, petID string) error {
	return s.repo.PurgeFor(ctx, petID)
}
