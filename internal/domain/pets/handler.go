package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, draft *DraftFlow) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc))
		pr.Get("/", listPetsHandler(svc))

		// Puntero de selección
		pr.Get("/current", getCurrentPetHandler(svc))
		pr.Put("/current", selectPetHandler(svc))

		// Alta en dos pasos (especie -> detalles)
		pr.Route("/draft", func(dr chi.Router) {
			dr.Post("/", startDraftHandler(draft))
			dr.Get("/", getDraftHandler(draft))
			dr.Put("/species", chooseSpeciesHandler(draft))
			dr.Post("/back", draftBackHandler(draft))
			dr.Post("/details", completeDraftHandler(svc, draft))
			dr.Delete("/", cancelDraftHandler(draft))
		})

		pr.Get("/{petID}", getPetHandler(svc))
		pr.Put("/{petID}", updatePetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))
	})
}

type petPayload struct {
	Name            string `json:"name"`
	Species         string `json:"species"`
	Breed           string `json:"breed"`
	Age             string `json:"age"`
	Weight          string `json:"weight"`
	Birthday        string `json:"birthday"` // YYYY-MM-DD opcional
	Avatar          string `json:"avatar"`
	VaccinationInfo string `json:"vaccination_info"`
}

type petResponse struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Species         string     `json:"species"`
	Breed           string     `json:"breed"`
	Age             string     `json:"age"`
	Weight          string     `json:"weight"`
	Birthday        *time.Time `json:"birthday,omitempty"`
	Avatar          string     `json:"avatar"`
	VaccinationInfo string     `json:"vaccination_info"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (p petPayload) birthday() (*time.Time, error) {
	if strings.TrimSpace(p.Birthday) == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", p.Birthday)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// createPetHandler crea una mascota directo, sin pasar por el draft.
// @Summary Registrar mascota
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req petPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		bd, err := req.birthday()
		if err != nil {
			http.Error(w, "birthday must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		p, err := svc.Add(r.Context(), CreateInput{
			Name:            req.Name,
			Species:         Species(req.Species),
			Breed:           req.Breed,
			Age:             req.Age,
			Weight:          req.Weight,
			Birthday:        bd,
			Avatar:          req.Avatar,
			VaccinationInfo: req.VaccinationInfo,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req petPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		bd, err := req.birthday()
		if err != nil {
			http.Error(w, "birthday must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		p, err := svc.Update(r.Context(), chi.URLParam(r, "petID"), UpdateInput{
			Name:            req.Name,
			Species:         Species(req.Species),
			Breed:           req.Breed,
			Age:             req.Age,
			Weight:          req.Weight,
			Birthday:        bd,
			Avatar:          req.Avatar,
			VaccinationInfo: req.VaccinationInfo,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "petID")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func getCurrentPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok, err := svc.Current(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if !ok {
			http.Error(w, "no pet selected", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func selectPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID string `json:"id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if err := svc.Select(r.Context(), req.ID); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type draftResponse struct {
	State   string `json:"state"`
	Species string `json:"species,omitempty"`
}

func startDraftHandler(draft *DraftFlow) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := draft.Start()
		writeJSON(w, http.StatusCreated, draftResponse{State: string(state)})
	}
}

func getDraftHandler(draft *DraftFlow) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, active := draft.State()
		if !active {
			http.Error(w, "no draft in progress", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, draftResponse{State: string(state)})
	}
}

func chooseSpeciesHandler(draft *DraftFlow) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Species string `json:"species"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if err := draft.ChooseSpecies(Species(req.Species)); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, draftResponse{State: string(DraftEditingDetails), Species: req.Species})
	}
}

func draftBackHandler(draft *DraftFlow) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := draft.Back(); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, draftResponse{State: string(DraftSelectingSpecies)})
	}
}

// completeDraftHandler cierra el flujo: toma la especie elegida en el
// paso anterior y crea la mascota con los detalles del body.
func completeDraftHandler(svc *Service, draft *DraftFlow) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req petPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		bd, err := req.birthday()
		if err != nil {
			http.Error(w, "birthday must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		sp, err := draft.Finish()
		if err != nil {
			writeError(w, err)
			return
		}

		p, err := svc.Add(r.Context(), CreateInput{
			Name:            req.Name,
			Species:         sp,
			Breed:           req.Breed,
			Age:             req.Age,
			Weight:          req.Weight,
			Birthday:        bd,
			Avatar:          req.Avatar,
			VaccinationInfo: req.VaccinationInfo,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

func cancelDraftHandler(draft *DraftFlow) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		draft.Cancel()
		w.WriteHeader(http.StatusNoContent)
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:              p.ID,
		Name:            p.Name,
		Species:         string(p.Species),
		Breed:           p.Breed,
		Age:             p.Age,
		Weight:          p.Weight,
		Birthday:        p.Birthday,
		Avatar:          p.Avatar,
		VaccinationInfo: p.VaccinationInfo,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrDraftNotReady), errors.Is(err, ErrNoDraft):
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
