package reminders

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/reminders", func(rr chi.Router) {
		rr.Get("/", listRemindersHandler(svc))
		rr.Post("/", upsertReminderHandler(svc))
		rr.Get("/due", dueRemindersHandler(svc))
		rr.Put("/{reminderID}", updateReminderHandler(svc))
		rr.Delete("/{reminderID}", removeReminderHandler(svc))
	})
}

type reminderPayload struct {
	ID        string `json:"id"`
	PetID     string `json:"pet_id"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Frequency string `json:"frequency"`
}

func listRemindersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := strings.TrimSpace(r.URL.Query().Get("petId"))
		if petID == "" {
			http.Error(w, "petId query param required", http.StatusBadRequest)
			return
		}

		items, err := svc.ListFor(r.Context(), petID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toPayloads(items))
	}
}

func upsertReminderHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reminderPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		rem, err := svc.Upsert(r.Context(), fromPayload(req))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toPayload(rem))
	}
}

func updateReminderHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reminderPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		req.ID = chi.URLParam(r, "reminderID")

		rem, err := svc.Upsert(r.Context(), fromPayload(req))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPayload(rem))
	}
}

func removeReminderHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Remove(r.Context(), chi.URLParam(r, "reminderID")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func dueRemindersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		due, err := svc.DueOn(r.Context(), time.Now())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toPayloads(due))
	}
}

func fromPayload(p reminderPayload) Reminder {
	return Reminder{
		ID:        p.ID,
		PetID:     p.PetID,
		Title:     p.Title,
		Date:      p.Date,
		Time:      p.Time,
		Frequency: Frequency(p.Frequency),
	}
}

func toPayload(r Reminder) reminderPayload {
	return reminderPayload{
		ID:        r.ID,
		PetID:     r.PetID,
		Title:     r.Title,
		Date:      r.Date,
		Time:      r.Time,
		Frequency: string(r.Frequency),
	}
}

func toPayloads(list []Reminder) []reminderPayload {
	out := make([]reminderPayload, 0, len(list))
	for _, r := range list {
		out = append(out, toPayload(r))
	}
	return out
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// writeJSON se repite en los handlers de cada módulo a propósito:
// todavía no amerita un helper compartido.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
