package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("key not found")
)

// Claves lógicas del almacén. Cada clave guarda la colección completa
// como un único blob JSON (sin escrituras parciales, sin versionado).
const (
	KeyPets         = "pets"
	KeyCurrentPetID = "currentPetId"
	KeyRoutines     = "routines"
	KeyHealthData   = "healthData"
	KeyReminders    = "reminders"
)

// Store es el adaptador de persistencia clave-valor.
// Las implementaciones viven en internal/adapters/storage.
type Store interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

// ReadJSON decodifica el blob de key en out.
// Si la clave no existe, deja out con su zero value (el "default" del caller).
// JSON corrupto se reporta como error en vez de reventar el parseo aguas arriba.
func ReadJSON(ctx context.Context, s Store, key string, out any) error {
	raw, err := s.Read(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("kv: corrupt value for %q: %w", key, err)
	}
	return nil
}

// WriteJSON serializa v y reemplaza el blob completo de key.
func WriteJSON(ctx context.Context, s Store, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("kv: marshal %q: %w", key, err)
	}
	return s.Write(ctx, key, b)
}
