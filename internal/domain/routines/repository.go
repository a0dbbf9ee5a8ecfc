package routines

import "context"

// Repository persiste la rutina por mascota. Todo vive bajo la clave
// "routines" (map de pet id a lista); cada guardado reemplaza la lista
// completa de esa mascota.
type Repository interface {
	ListFor(ctx context.Context, petID string) ([]Item, error)
	SaveFor(ctx context.Context, petID string, items []Item) error
	PurgeFor(ctx context.Context, petID string) error
}
