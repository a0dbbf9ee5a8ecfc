package view

import (
	"context"
	"errors"
	"sync"
)

var ErrUnknownScreen = errors.New("unknown screen")

// Screen nombra las pantallas de la app.
// @Enum Home, Routine, Chat, Health, Community, Profile
type Screen string

const (
	ScreenHome      Screen = "Home"
	ScreenRoutine   Screen = "Routine"
	ScreenChat      Screen = "Chat"
	ScreenHealth    Screen = "Health"
	ScreenCommunity Screen = "Community"
	ScreenProfile   Screen = "Profile"
)

func ParseScreen(s string) (Screen, bool) {
	switch Screen(s) {
	case ScreenHome, ScreenRoutine, ScreenChat, ScreenHealth, ScreenCommunity, ScreenProfile:
		return Screen(s), true
	default:
		return "", false
	}
}

type Selection interface {
	SelectedID(ctx context.Context) string
}

// Controller decide qué pantalla se muestra. Regla única: sin mascota
// seleccionada, siempre Profile (el usuario va primero a crear el perfil).
// Estado inicial Home; no hay estado terminal.
type Controller struct {
	selection Selection

	mu     sync.Mutex
	active Screen
}

func NewController(sel Selection) *Controller {
	return &Controller{
		selection: sel,
		active:    ScreenHome,
	}
}

// Select pide una pantalla y devuelve la efectivamente aplicada
// (Profile si el fallback manda).
func (c *Controller) Select(ctx context.Context, s Screen) (Screen, error) {
	if _, ok := ParseScreen(string(s)); !ok {
		return "", ErrUnknownScreen
	}

	c.mu.Lock()
	c.active = s
	c.mu.Unlock()

	return c.Current(ctx), nil
}

// Current re-evalúa el fallback en cada lectura: si la última mascota
// se borró, la vista cae a Profile al instante.
func (c *Controller) Current(ctx context.Context) Screen {
	if c.selection.SelectedID(ctx) == "" {
		return ScreenProfile
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}
