package health

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"petpal-lite/internal/domain/pets"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets/{petID}/healthscan", func(hr chi.Router) {
		hr.Get("/", getRecordHandler(svc))
		hr.Post("/", scanHandler(svc))
	})
	r.Post("/simplify", simplifyHandler(svc))
}

type scanResultPayload struct {
	Score           int       `json:"score"`
	Status          string    `json:"status"`
	Analysis        string    `json:"analysis"`
	Recommendations []string  `json:"recommendations"`
	ScannedAt       time.Time `json:"scanned_at"`
}

type recordResponse struct {
	Result         *scanResultPayload `json:"result"`
	PreviousResult *scanResultPayload `json:"previous_result"`
}

func getRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := svc.Get(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toRecordResponse(rec))
	}
}

// scanHandler recibe la foto en base64 y devuelve el record actualizado.
func scanHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ImageBase64 string `json:"image_base64"`
			MimeType    string `json:"mime_type"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		image, err := base64.StdEncoding.DecodeString(req.ImageBase64)
		if err != nil {
			http.Error(w, "image_base64 must be valid base64", http.StatusBadRequest)
			return
		}

		rec, err := svc.Analyze(r.Context(), chi.URLParam(r, "petID"), image, req.MimeType)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toRecordResponse(rec))
	}
}

func simplifyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		simple, err := svc.Simplify(r.Context(), req.Text)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"text": simple})
	}
}

func toRecordResponse(rec Record) recordResponse {
	return recordResponse{
		Result:         toScanPayload(rec.Result),
		PreviousResult: toScanPayload(rec.PreviousResult),
	}
}

func toScanPayload(res *ScanResult) *scanResultPayload {
	if res == nil {
		return nil
	}
	return &scanResultPayload{
		Score:           res.Score,
		Status:          string(res.Status),
		Analysis:        res.Analysis,
		Recommendations: res.Recommendations,
		ScannedAt:       res.ScannedAt,
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, pets.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrStaleContext):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "health scan failed", http.StatusBadGateway)
	}
}

// writeJSON se repite en los handlers de cada módulo a propósito:
// todavía no amerita un helper compartido.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
