package notify

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"petpal-lite/internal/ports/notify"
)

// LogNotifier escribe la notificación agrupada en el log.
// Es el reemplazo server-side de la Notification API del navegador.
type LogNotifier struct {
	log *zap.Logger
}

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(ctx context.Context, note notify.Notification) error {
	n.log.Info("reminder due",
		zap.String("pets", strings.Join(note.PetNames, ", ")),
		zap.String("tasks", strings.Join(note.Titles, ", ")),
	)
	return nil
}
