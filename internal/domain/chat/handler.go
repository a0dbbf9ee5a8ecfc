package chat

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"petpal-lite/internal/domain/pets"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets/{petID}/chat", func(cr chi.Router) {
		cr.Get("/", historyHandler(svc))
		cr.Post("/", sendHandler(svc))
		cr.Delete("/", clearHandler(svc))
	})
}

type messagePayload struct {
	Role string    `json:"role"`
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

func historyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		msgs := svc.History(chi.URLParam(r, "petID"))
		out := make([]messagePayload, 0, len(msgs))
		for _, m := range msgs {
			out = append(out, messagePayload{Role: string(m.Role), Text: m.Text, At: m.At})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func sendHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		reply, err := svc.Send(r.Context(), chi.URLParam(r, "petID"), req.Message)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, messagePayload{Role: string(reply.Role), Text: reply.Text, At: reply.At})
	}
}

func clearHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.Clear(chi.URLParam(r, "petID"))
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, pets.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrStaleContext), errors.Is(err, ErrBusy):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "chat failed", http.StatusBadGateway)
	}
}

// writeJSON se repite en los handlers de cada módulo a propósito:
// todavía no amerita un helper compartido.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
