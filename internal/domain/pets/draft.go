package pets

import (
	"errors"
	"sync"
)

var (
	ErrNoDraft       = errors.New("no draft in progress")
	ErrDraftNotReady = errors.New("species not chosen yet")
)

// DraftState modela el alta en dos pasos: primero se elige la especie,
// después se completan los datos del perfil.
type DraftState string

const (
	DraftSelectingSpecies DraftState = "selecting_species"
	DraftEditingDetails   DraftState = "editing_details"
)

// DraftFlow es la máquina de estados del alta. Una sola en vuelo por
// proceso (app de un solo usuario); arrancar de nuevo descarta la anterior.
type DraftFlow struct {
	mu      sync.Mutex
	active  bool
	state   DraftState
	species Species
}

func NewDraftFlow() *DraftFlow {
	return &DraftFlow{}
}

// Start arranca (o reinicia) el flujo en la selección de especie.
func (f *DraftFlow) Start() DraftState {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.active = true
	f.state = DraftSelectingSpecies
	f.species = ""
	return f.state
}

// ChooseSpecies fija la especie y avanza a la edición de detalles.
func (f *DraftFlow) ChooseSpecies(sp Species) error {
	if _, ok := ParseSpecies(string(sp)); !ok {
		return ErrInvalidInput
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.active {
		return ErrNoDraft
	}
	f.species = sp
	f.state = DraftEditingDetails
	return nil
}

// Back vuelve a la selección de especie sin descartar el flujo.
func (f *DraftFlow) Back() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.active {
		return ErrNoDraft
	}
	f.state = DraftSelectingSpecies
	f.species = ""
	return nil
}

// State devuelve el estado actual (y si hay flujo activo).
func (f *DraftFlow) State() (DraftState, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state, f.active
}

// Finish cierra el flujo y devuelve la especie elegida.
// Solo válido desde EditingDetails.
func (f *DraftFlow) Finish() (Species, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.active {
		return "", ErrNoDraft
	}
	if f.state != DraftEditingDetails || f.species == "" {
		return "", ErrDraftNotReady
	}

	sp := f.species
	f.active = false
	f.state = ""
	f.species = ""
	return sp, nil
}

// Cancel descarta el flujo en curso.
func (f *DraftFlow) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.active = false
	f.state = ""
	f.species = ""
}
