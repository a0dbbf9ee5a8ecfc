package pets

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
)

// Purger limpia los registros dependientes de una mascota (rutinas,
// historial de salud, recordatorios). Implementado por los otros ledgers;
// se cablea en el router para no acoplar paquetes de dominio entre sí.
type Purger interface {
	PurgeFor(ctx context.Context, petID string) error
}

type Service struct {
	repo Repository
	now  func() time.Time

	mu        sync.Mutex
	purgers   []Purger
	listeners []func(petID string)
}

func NewService(repo Repository, purgers ...Purger) *Service {
	return &Service{
		repo:    repo,
		purgers: purgers,
		now:     time.Now,
	}
}

// RegisterPurgers suma cascades después de construir el service (los
// otros ledgers se crean apuntando a este, así que se cablean al final).
func (s *Service) RegisterPurgers(purgers ...Purger) {
	s.mu.Lock()
	s.purgers = append(s.purgers, purgers...)
	s.mu.Unlock()
}

// OnSelectionChange registra un callback que se dispara cada vez que
// cambia la mascota seleccionada (incluye pasar a "ninguna", petID == "").
func (s *Service) OnSelectionChange(fn func(petID string)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

func (s *Service) notifySelection(petID string) {
	s.mu.Lock()
	ls := make([]func(string), len(s.listeners))
	copy(ls, s.listeners)
	s.mu.Unlock()

	for _, fn := range ls {
		fn(petID)
	}
}

type CreateInput struct {
	Name            string
	Species         Species
	Breed           string
	Age             string
	Weight          string
	Birthday        *time.Time
	Avatar          string
	VaccinationInfo string
}

// Add registra una mascota nueva. Si no había ninguna seleccionada,
// la nueva queda como actual.
func (s *Service) Add(ctx context.Context, in CreateInput) (Pet, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, ErrInvalidInput
	}
	if _, ok := ParseSpecies(string(in.Species)); !ok {
		return Pet{}, ErrInvalidInput
	}

	list, err := s.repo.List(ctx)
	if err != nil {
		return Pet{}, err
	}

	now := s.now()
	p := Pet{
		ID:              uuid.NewString(),
		Name:            strings.TrimSpace(in.Name),
		Species:         in.Species,
		Breed:           strings.TrimSpace(in.Breed),
		Age:             strings.TrimSpace(in.Age),
		Weight:          strings.TrimSpace(in.Weight),
		Birthday:        in.Birthday,
		Avatar:          strings.TrimSpace(in.Avatar),
		VaccinationInfo: strings.TrimSpace(in.VaccinationInfo),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	list = append(list, p)
	if err := s.repo.SaveAll(ctx, list); err != nil {
		return Pet{}, err
	}

	selected, err := s.repo.SelectedID(ctx)
	if err != nil {
		return Pet{}, err
	}
	if selected == "" {
		if err := s.repo.SaveSelectedID(ctx, p.ID); err != nil {
			return Pet{}, err
		}
		s.notifySelection(p.ID)
	}

	return p, nil
}

type UpdateInput struct {
	Name            string
	Species         Species
	Breed           string
	Age             string
	Weight          string
	Birthday        *time.Time
	Avatar          string
	VaccinationInfo string
}

// Update reemplaza el perfil con el id dado. Si no existe, ErrNotFound
// (comando explícito con resultado, nada de no-ops silenciosos).
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Pet, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, ErrInvalidInput
	}
	if _, ok := ParseSpecies(string(in.Species)); !ok {
		return Pet{}, ErrInvalidInput
	}

	list, err := s.repo.List(ctx)
	if err != nil {
		return Pet{}, err
	}

	for i, p := range list {
		if p.ID != id {
			continue
		}

		p.Name = strings.TrimSpace(in.Name)
		p.Species = in.Species
		p.Breed = strings.TrimSpace(in.Breed)
		p.Age = strings.TrimSpace(in.Age)
		p.Weight = strings.TrimSpace(in.Weight)
		p.Birthday = in.Birthday
		p.Avatar = strings.TrimSpace(in.Avatar)
		p.VaccinationInfo = strings.TrimSpace(in.VaccinationInfo)
		p.UpdatedAt = s.now()

		list[i] = p
		if err := s.repo.SaveAll(ctx, list); err != nil {
			return Pet{}, err
		}
		return p, nil
	}

	return Pet{}, ErrNotFound
}

// Delete borra la mascota y sus registros dependientes (cascade).
// Si era la seleccionada, pasa a la primera que quede, o a ninguna.
func (s *Service) Delete(ctx context.Context, id string) error {
	list, err := s.repo.List(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i, p := range list {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}

	list = append(list[:idx], list[idx+1:]...)
	if err := s.repo.SaveAll(ctx, list); err != nil {
		return err
	}

	// Cascade sobre rutinas, salud y recordatorios. El gap de los
	// recordatorios en la app original era un bug; acá la regla es pareja.
	s.mu.Lock()
	purgers := make([]Purger, len(s.purgers))
	copy(purgers, s.purgers)
	s.mu.Unlock()

	for _, purger := range purgers {
		if err := purger.PurgeFor(ctx, id); err != nil {
			return err
		}
	}

	selected, err := s.repo.SelectedID(ctx)
	if err != nil {
		return err
	}
	if selected == id {
		if len(list) > 0 {
			if err := s.repo.SaveSelectedID(ctx, list[0].ID); err != nil {
				return err
			}
			s.notifySelection(list[0].ID)
		} else {
			if err := s.repo.ClearSelectedID(ctx); err != nil {
				return err
			}
			s.notifySelection("")
		}
	}

	return nil
}

// Select marca la mascota actual. El id tiene que existir: el invariante
// es que el puntero nunca quede colgando.
func (s *Service) Select(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.SaveSelectedID(ctx, id); err != nil {
		return err
	}
	s.notifySelection(id)
	return nil
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return Pet{}, err
	}
	for _, p := range list {
		if p.ID == id {
			return p, nil
		}
	}
	return Pet{}, ErrNotFound
}

// Current devuelve la mascota seleccionada, si hay.
func (s *Service) Current(ctx context.Context) (Pet, bool, error) {
	id, err := s.repo.SelectedID(ctx)
	if err != nil {
		return Pet{}, false, err
	}
	if id == "" {
		return Pet{}, false, nil
	}
	p, err := s.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Pet{}, false, nil
		}
		return Pet{}, false, err
	}
	return p, true, nil
}

// SelectedID devuelve el id actual o "". Sirve como token de generación
// para descartar respuestas del asistente que llegan tarde.
func (s *Service) SelectedID(ctx context.Context) string {
	id, err := s.repo.SelectedID(ctx)
	if err != nil {
		return ""
	}
	return id
}
