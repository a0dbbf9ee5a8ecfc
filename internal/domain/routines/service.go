package routines

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/google/uuid"

	"petpal-lite/internal/domain/pets"
	"petpal-lite/internal/ports/assistant"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("routine item not found")

	// ErrStaleContext: la respuesta del asistente llegó cuando la mascota
	// seleccionada ya era otra. Se descarta sin persistir nada.
	ErrStaleContext = errors.New("stale assistant response discarded")
)

// Selection expone el id de la mascota activa; es el token de generación
// de las llamadas al asistente.
type Selection interface {
	SelectedID(ctx context.Context) string
}

// PetSource resuelve el perfil cuyos datos viajan en el prompt.
type PetSource interface {
	GetByID(ctx context.Context, id string) (pets.Pet, error)
}

type Service struct {
	repo      Repository
	assistant assistant.Assistant
	selection Selection
	petSource PetSource
}

func NewService(repo Repository, ai assistant.Assistant, sel Selection, ps PetSource) *Service {
	return &Service{
		repo:      repo,
		assistant: ai,
		selection: sel,
		petSource: ps,
	}
}

// ListFor devuelve la rutina ordenada por horario ascendente.
func (s *Service) ListFor(ctx context.Context, petID string) ([]Item, error) {
	items, err := s.repo.ListFor(ctx, petID)
	if err != nil {
		return nil, err
	}
	sortByTime(items)
	return items, nil
}

// Upsert inserta o reemplaza por id y deja la lista re-ordenada.
func (s *Service) Upsert(ctx context.Context, petID string, item Item) (Item, error) {
	normalized, ok := NormalizeTime(item.Time)
	if !ok {
		return Item{}, ErrInvalidInput
	}
	item.Time = normalized

	if strings.TrimSpace(item.Activity) == "" {
		return Item{}, ErrInvalidInput
	}
	item.Activity = strings.TrimSpace(item.Activity)

	if _, ok := ParseIcon(string(item.Icon)); !ok {
		return Item{}, ErrInvalidInput
	}

	if strings.TrimSpace(item.ID) == "" {
		item.ID = uuid.NewString()
	}

	items, err := s.repo.ListFor(ctx, petID)
	if err != nil {
		return Item{}, err
	}

	replaced := false
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, item)
	}

	sortByTime(items)
	if err := s.repo.SaveFor(ctx, petID, items); err != nil {
		return Item{}, err
	}
	return item, nil
}

func (s *Service) Remove(ctx context.Context, petID, itemID string) error {
	items, err := s.repo.ListFor(ctx, petID)
	if err != nil {
		return err
	}

	idx := -1
	for i := range items {
		if items[i].ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}

	items = append(items[:idx], items[idx+1:]...)
	return s.repo.SaveFor(ctx, petID, items)
}

// GenerateFor pide al asistente una rutina sugerida y la mezcla con la
// existente. Captura la mascota activa al despachar; si al volver la
// selección cambió, la respuesta se descarta (ErrStaleContext).
func (s *Service) GenerateFor(ctx context.Context, petID string) ([]Item, error) {
	pet, err := s.petSource.GetByID(ctx, petID)
	if err != nil {
		return nil, err
	}

	token := s.selection.SelectedID(ctx)

	suggested, err := s.assistant.GenerateRoutine(ctx, assistant.PetContext{
		Name:    pet.Name,
		Species: string(pet.Species),
		Breed:   pet.Breed,
		Age:     pet.Age,
		Weight:  pet.Weight,
	})
	if err != nil {
		return nil, err
	}

	if s.selection.SelectedID(ctx) != token {
		return nil, ErrStaleContext
	}

	generated := make([]Item, 0, len(suggested))
	for _, sg := range suggested {
		t, ok := NormalizeTime(sg.Time)
		if !ok {
			continue // horario ambiguo: el candidato se salta
		}
		icon, ok := ParseIcon(sg.Icon)
		if !ok {
			icon = IconFood
		}
		if strings.TrimSpace(sg.Activity) == "" {
			continue
		}
		generated = append(generated, Item{
			ID:       uuid.NewString(),
			Time:     t,
			Activity: strings.TrimSpace(sg.Activity),
			Details:  strings.TrimSpace(sg.Details),
			Icon:     icon,
		})
	}

	existing, err := s.repo.ListFor(ctx, petID)
	if err != nil {
		return nil, err
	}

	merged := MergeGenerated(existing, generated)
	if err := s.repo.SaveFor(ctx, petID, merged); err != nil {
		return nil, err
	}
	return merged, nil
}

// PurgeFor borra la rutina completa de la mascota (cascade del registro).
func (s *Service) PurgeFor(ctx context.Context, petID string) error {
	return s.repo.PurgeFor(ctx, petID)
}

// MergeGenerated combina sugerencias con la lista existente descartando
// duplicados: misma actividad (case-insensitive) en el mismo horario.
// Actividades distintas a la misma hora, o la misma a otra hora, entran.
func MergeGenerated(existing, generated []Item) []Item {
	type key struct {
		activity string
		time     string
	}

	seen := make(map[key]struct{}, len(existing))
	for _, it := range existing {
		seen[key{strings.ToLower(it.Activity), it.Time}] = struct{}{}
	}

	out := make([]Item, 0, len(existing)+len(generated))
	out = append(out, existing...)

	for _, g := range generated {
		k := key{strings.ToLower(g.Activity), g.Time}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, g)
	}

	sortByTime(out)
	return out
}

func sortByTime(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Time < items[j].Time
	})
}
