package reminders

import "context"

// Repository persiste la colección plana completa (clave "reminders").
type Repository interface {
	List(ctx context.Context) ([]Reminder, error)
	SaveAll(ctx context.Context, list []Reminder) error
}
