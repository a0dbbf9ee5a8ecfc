package jobs

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"petpal-lite/internal/domain/pets"
	"petpal-lite/internal/domain/reminders"
	"petpal-lite/internal/ports/notify"
)

const DefaultInterval = time.Hour

// PetNamer resuelve el nombre de la mascota para el aviso agrupado.
type PetNamer interface {
	GetByID(ctx context.Context, id string) (pets.Pet, error)
}

// Worker evalúa los recordatorios vencidos cada Interval y levanta una
// única notificación agrupada. La evaluación es idempotente: repetirla
// no muta estado, a lo sumo vuelve a avisar.
type Worker struct {
	Reminders *reminders.Service
	Pets      PetNamer
	Notifier  notify.Notifier
	Interval  time.Duration
	Log       *zap.Logger

	now func() time.Time
}

func (w *Worker) Run(ctx context.Context) {
	interval := w.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	log := w.Log
	if log == nil {
		log = zap.NewNop()
	}

	// primer chequeo al arrancar, igual que la app original
	if err := w.CheckOnce(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Warn("reminder check failed", zap.Error(err))
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.CheckOnce(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Warn("reminder check failed", zap.Error(err))
			}
		}
	}
}

// CheckOnce junta los vencidos de hoy y, si hay, notifica una sola vez
// con todos los títulos y los nombres (sin repetir) de las mascotas.
func (w *Worker) CheckOnce(ctx context.Context) error {
	nowFn := w.now
	if nowFn == nil {
		nowFn = time.Now
	}

	due, err := w.Reminders.DueOn(ctx, nowFn())
	if err != nil {
		return err
	}
	if len(due) == 0 {
		return nil
	}

	titles := make([]string, 0, len(due))
	names := make([]string, 0, len(due))
	seen := make(map[string]struct{})

	for _, r := range due {
		titles = append(titles, r.Title)

		name := "your pet"
		if p, err := w.Pets.GetByID(ctx, r.PetID); err == nil {
			name = p.Name
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	return w.Notifier.Notify(ctx, notify.Notification{
		PetNames: names,
		Titles:   titles,
	})
}
