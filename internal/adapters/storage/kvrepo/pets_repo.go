// Package kvrepo implementa los repositorios de dominio sobre el
// kv.Store: cada colección se lee y escribe como un blob JSON completo,
// igual que hacía la app con el storage del navegador.
package kvrepo

import (
	"context"
	"time"

	"petpal-lite/internal/domain/pets"
	"petpal-lite/internal/ports/kv"
)

type PetsRepo struct {
	store kv.Store
}

func NewPetsRepo(store kv.Store) *PetsRepo {
	return &PetsRepo{store: store}
}

// petRecord es la forma persistida (birthday como ISO string, igual que
// el JSON original; se rehidrata al leer).
type petRecord struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Species         string     `json:"species"`
	Breed           string     `json:"breed"`
	Age             string     `json:"age"`
	Weight          string     `json:"weight"`
	Birthday        *time.Time `json:"birthday,omitempty"`
	Avatar          string     `json:"avatar"`
	VaccinationInfo string     `json:"vaccinationInfo"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	var records []petRecord
	if err := kv.ReadJSON(ctx, r.store, kv.KeyPets, &records); err != nil {
		return nil, err
	}

	out := make([]pets.Pet, 0, len(records))
	for _, rec := range records {
		out = append(out, pets.Pet{
			ID:              rec.ID,
			Name:            rec.Name,
			Species:         pets.Species(rec.Species),
			Breed:           rec.Breed,
			Age:             rec.Age,
			Weight:          rec.Weight,
			Birthday:        rec.Birthday,
			Avatar:          rec.Avatar,
			VaccinationInfo: rec.VaccinationInfo,
			CreatedAt:       rec.CreatedAt,
			UpdatedAt:       rec.UpdatedAt,
		})
	}
	return out, nil
}

func (r *PetsRepo) SaveAll(ctx context.Context, list []pets.Pet) error {
	records := make([]petRecord, 0, len(list))
	for _, p := range list {
		records = append(records, petRecord{
			ID:              p.ID,
			Name:            p.Name,
			Species:         string(p.Species),
			Breed:           p.Breed,
			Age:             p.Age,
			Weight:          p.Weight,
			Birthday:        p.Birthday,
			Avatar:          p.Avatar,
			VaccinationInfo: p.VaccinationInfo,
			CreatedAt:       p.CreatedAt,
			UpdatedAt:       p.UpdatedAt,
		})
	}
	return kv.WriteJSON(ctx, r.store, kv.KeyPets, records)
}

func (r *PetsRepo) SelectedID(ctx context.Context) (string, error) {
	var id string
	if err := kv.ReadJSON(ctx, r.store, kv.KeyCurrentPetID, &id); err != nil {
		return "", err
	}
	return id, nil
}

func (r *PetsRepo) SaveSelectedID(ctx context.Context, id string) error {
	return kv.WriteJSON(ctx, r.store, kv.KeyCurrentPetID, id)
}

// ClearSelectedID elimina la clave (ausente = sin selección, igual que
// el removeItem original).
func (r *PetsRepo) ClearSelectedID(ctx context.Context) error {
	return r.store.Remove(ctx, kv.KeyCurrentPetID)
}
