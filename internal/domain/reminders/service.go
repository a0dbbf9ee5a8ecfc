package reminders

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("reminder not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListFor devuelve los recordatorios de la mascota, por fecha ascendente.
func (s *Service) ListFor(ctx context.Context, petID string) ([]Reminder, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Reminder, 0)
	for _, r := range all {
		if r.PetID == petID {
			out = append(out, r)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out, nil
}

// Upsert inserta o reemplaza por id.
func (s *Service) Upsert(ctx context.Context, r Reminder) (Reminder, error) {
	if strings.TrimSpace(r.PetID) == "" || strings.TrimSpace(r.Title) == "" {
		return Reminder{}, ErrInvalidInput
	}
	if _, err := time.Parse(DateLayout, r.Date); err != nil {
		return Reminder{}, ErrInvalidInput
	}
	if _, ok := ParseFrequency(string(r.Frequency)); !ok {
		return Reminder{}, ErrInvalidInput
	}
	r.Title = strings.TrimSpace(r.Title)

	if strings.TrimSpace(r.ID) == "" {
		r.ID = uuid.NewString()
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return Reminder{}, err
	}

	replaced := false
	for i := range all {
		if all[i].ID == r.ID {
			all[i] = r
			replaced = true
			break
		}
	}
	if !replaced {
		all = append(all, r)
	}

	if err := s.repo.SaveAll(ctx, all); err != nil {
		return Reminder{}, err
	}
	return r, nil
}

func (s *Service) Remove(ctx context.Context, id string) error {
	all, err := s.repo.List(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i := range all {
		if all[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}

	all = append(all[:idx], all[idx+1:]...)
	return s.repo.SaveAll(ctx, all)
}

// PurgeFor borra los recordatorios de la mascota. La app original no lo
// hacía al eliminar el perfil; acá el cascade es regla explícita.
func (s *Service) PurgeFor(ctx context.Context, petID string) error {
	all, err := s.repo.List(ctx)
	if err != nil {
		return err
	}

	kept := make([]Reminder, 0, len(all))
	for _, r := range all {
		if r.PetID != petID {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(all) {
		return nil
	}
	return s.repo.SaveAll(ctx, kept)
}

// DueOn devuelve los recordatorios que aplican el día dado.
// Evaluación pura: no muta estado (el timer puede repetirla sin drama).
func (s *Service) DueOn(ctx context.Context, today time.Time) ([]Reminder, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	due := make([]Reminder, 0)
	for _, r := range all {
		if IsDue(r, today) {
			due = append(due, r)
		}
	}
	return due, nil
}
