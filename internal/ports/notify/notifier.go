package notify

import "context"

// Notification es el aviso agrupado de recordatorios vencidos:
// un solo mensaje con todos los títulos y los nombres (sin repetir)
// de las mascotas afectadas.
type Notification struct {
	PetNames []string
	Titles   []string
}

type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}
