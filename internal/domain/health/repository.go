package health

import "context"

// Repository persiste los records por mascota bajo la clave "healthData"
// (map de pet id a par actual/anterior).
type Repository interface {
	Get(ctx context.Context, petID string) (Record, error)
	Save(ctx context.Context, petID string, rec Record) error
	PurgeFor(ctx context.Context, petID string) error
}
