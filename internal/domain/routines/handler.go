package routines

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"petpal-lite/internal/domain/pets"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets/{petID}/routine", func(rr chi.Router) {
		rr.Get("/", listRoutineHandler(svc))
		rr.Put("/", upsertItemHandler(svc))
		rr.Post("/generate", generateRoutineHandler(svc))
		rr.Delete("/{itemID}", removeItemHandler(svc))
	})
}

type itemPayload struct {
	ID       string `json:"id"`
	Time     string `json:"time"`
	Activity string `json:"activity"`
	Details  string `json:"details"`
	Icon     string `json:"icon"`
}

func listRoutineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListFor(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toItemResponses(items))
	}
}

func upsertItemHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req itemPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		item, err := svc.Upsert(r.Context(), chi.URLParam(r, "petID"), Item{
			ID:       req.ID,
			Time:     req.Time,
			Activity: req.Activity,
			Details:  req.Details,
			Icon:     Icon(req.Icon),
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, item2payload(item))
	}
}

func removeItemHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := svc.Remove(r.Context(), chi.URLParam(r, "petID"), chi.URLParam(r, "itemID"))
		if err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// generateRoutineHandler mezcla la rutina sugerida por el asistente.
// 409 si la respuesta llegó con otra mascota ya seleccionada.
func generateRoutineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		merged, err := svc.GenerateFor(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toItemResponses(merged))
	}
}

func toItemResponses(items []Item) []itemPayload {
	out := make([]itemPayload, 0, len(items))
	for _, it := range items {
		out = append(out, item2payload(it))
	}
	return out
}

func item2payload(it Item) itemPayload {
	return itemPayload{
		ID:       it.ID,
		Time:     it.Time,
		Activity: it.Activity,
		Details:  it.Details,
		Icon:     string(it.Icon),
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound), errors.Is(err, pets.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrStaleContext):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		// fallas del asistente incluidas: se avisa y no se toca el estado
		http.Error(w, "routine generation failed", http.StatusBadGateway)
	}
}

// writeJSON se repite en los handlers de cada módulo a propósito:
// todavía no amerita un helper compartido.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
