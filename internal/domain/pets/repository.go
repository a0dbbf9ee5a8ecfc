package pets

import "context"

// Repository persiste el registro completo y el puntero de selección.
// La colección se guarda como un único blob (clave "pets"); el puntero
// va aparte (clave "currentPetId", ausente = ninguna seleccionada).
type Repository interface {
	List(ctx context.Context) ([]Pet, error)
	SaveAll(ctx context.Context, list []Pet) error

	SelectedID(ctx context.Context) (string, error) // "" si no hay selección
	SaveSelectedID(ctx context.Context, id string) error
	ClearSelectedID(ctx context.Context) error
}
