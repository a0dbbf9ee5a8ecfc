package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"petpal-lite/internal/domain/pets"
	"petpal-lite/internal/ports/assistant"
)

var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrStaleContext: la respuesta llegó con otra mascota ya activa;
	// se descarta para no atribuirle consejos ajenos.
	ErrStaleContext = errors.New("stale chat reply discarded")

	// ErrBusy: ya hay un mensaje en vuelo para esa mascota.
	ErrBusy = errors.New("a message is already being processed")
)

// Message es un turno de la conversación. Efímero: vive en memoria y se
// pierde al cambiar de mascota o reiniciar el proceso.
type Message struct {
	Role assistant.Role
	Text string
	At   time.Time
}

type Selection interface {
	SelectedID(ctx context.Context) string
}

type PetSource interface {
	GetByID(ctx context.Context, id string) (pets.Pet, error)
}

type Service struct {
	assistant assistant.Assistant
	selection Selection
	petSource PetSource
	now       func() time.Time

	mu       sync.Mutex
	byPet    map[string][]Message
	inFlight map[string]bool // bloquea reenvíos mientras hay una llamada en vuelo
}

func NewService(ai assistant.Assistant, sel Selection, ps PetSource) *Service {
	return &Service{
		assistant: ai,
		selection: sel,
		petSource: ps,
		now:       time.Now,
		byPet:     make(map[string][]Message),
		inFlight:  make(map[string]bool),
	}
}

// History devuelve la conversación actual con la mascota.
func (s *Service) History(petID string) []Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := s.byPet[petID]
	out := make([]Message, len(msgs))
	copy(out, msgs)
	return out
}

// Send manda el mensaje al asistente con el perfil y los turnos previos.
// Una sola llamada en vuelo por mascota; la respuesta se descarta si la
// selección cambió mientras tanto.
func (s *Service) Send(ctx context.Context, petID, message string) (Message, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return Message{}, ErrInvalidInput
	}

	pet, err := s.petSource.GetByID(ctx, petID)
	if err != nil {
		return Message{}, err
	}

	s.mu.Lock()
	if s.inFlight[petID] {
		s.mu.Unlock()
		return Message{}, ErrBusy
	}
	s.inFlight[petID] = true

	history := make([]assistant.Turn, 0, len(s.byPet[petID]))
	for _, m := range s.byPet[petID] {
		history = append(history, assistant.Turn{Role: m.Role, Text: m.Text})
	}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inFlight, petID)
		s.mu.Unlock()
	}()

	token := s.selection.SelectedID(ctx)

	reply, err := s.assistant.Advise(ctx, assistant.PetContext{
		Name:    pet.Name,
		Species: string(pet.Species),
		Breed:   pet.Breed,
		Age:     pet.Age,
		Weight:  pet.Weight,
	}, history, message)
	if err != nil {
		return Message{}, err
	}

	if s.selection.SelectedID(ctx) != token {
		return Message{}, ErrStaleContext
	}

	now := s.now()
	userMsg := Message{Role: assistant.RoleUser, Text: message, At: now}
	modelMsg := Message{Role: assistant.RoleModel, Text: reply, At: now}

	s.mu.Lock()
	s.byPet[petID] = append(s.byPet[petID], userMsg, modelMsg)
	s.mu.Unlock()

	return modelMsg, nil
}

// Clear borra la conversación de una mascota.
func (s *Service) Clear(petID string) {
	s.mu.Lock()
	delete(s.byPet, petID)
	s.mu.Unlock()
}

// OnSelectionChange limpia todas las conversaciones: el chat es por
// contexto de mascota y no sobrevive al cambio de selección.
func (s *Service) OnSelectionChange(string) {
	s.mu.Lock()
	s.byPet = make(map[string][]Message)
	s.mu.Unlock()
}
