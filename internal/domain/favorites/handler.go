package favorites

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"pet-haven/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/me/favorites", func(fr chi.Router) {
		fr.Get("/", listFavoritesHandler(svc))
		fr.Put("/{petID}", addFavoriteHandler(svc))
		fr.Delete("/{petID}", removeFavoriteHandler(svc))
	})
}

type favoritesResponse struct {
	PetIDs []int64 `json:"pet_ids"`
}

func listFavoritesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		ids, err := svc.List(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if ids == nil {
			ids = []int64{}
		}

		writeJSON(w, http.StatusOK, favoritesResponse{PetIDs: ids})
	}
}

func addFavoriteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		petID, ok := petIDParam(r)
		if !ok {
			http.Error(w, "invalid pet id", http.StatusBadRequest)
			return
		}

		if err := svc.Add(r.Context(), claims.UserID, petID); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func removeFavoriteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		petID, ok := petIDParam(r)
		if !ok {
			http.Error(w, "invalid pet id", http.StatusBadRequest)
			return
		}

		if err := svc.Remove(r.Context(), claims.UserID, petID); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func petIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "petID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
