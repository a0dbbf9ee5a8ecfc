package community

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/community", func(cr chi.Router) {
		cr.Get("/posts", listPostsHandler(svc))
		cr.Post("/posts", addPostHandler(svc))
		cr.Post("/posts/{postID}/like", likeHandler(svc, true))
		cr.Post("/posts/{postID}/unlike", likeHandler(svc, false))
		cr.Get("/vets", nearbyVetsHandler(svc))
	})
}

type postPayload struct {
	ID      int    `json:"id"`
	Author  string `json:"author"`
	Avatar  string `json:"avatar"`
	Image   string `json:"image"`
	Caption string `json:"caption"`
	Likes   int    `json:"likes"`
}

func listPostsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts := svc.List()
		out := make([]postPayload, 0, len(posts))
		for _, p := range posts {
			out = append(out, postPayload(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func addPostHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req postPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Add(req.Author, req.Avatar, req.Image, req.Caption)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, postPayload(p))
	}
}

func likeHandler(svc *Service, like bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "postID"))
		if err != nil {
			http.Error(w, "invalid post id", http.StatusBadRequest)
			return
		}

		var p Post
		if like {
			p, err = svc.Like(id)
		} else {
			p, err = svc.Unlike(id)
		}
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, postPayload(p))
	}
}

// nearbyVetsHandler exige lat/lon por query. Sin coordenadas => 400
// (geolocalización denegada del lado del cliente).
func nearbyVetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lat, errLat := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
		lon, errLon := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
		if errLat != nil || errLon != nil {
			http.Error(w, "lat and lon query params required", http.StatusBadRequest)
			return
		}

		vets, err := svc.NearbyVets(r.Context(), lat, lon)
		if err != nil {
			http.Error(w, "vet search failed", http.StatusBadGateway)
			return
		}
		writeJSON(w, http.StatusOK, vets)
	}
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
