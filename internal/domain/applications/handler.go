package applications

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"pet-haven/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/applications", submitApplicationHandler(svc))
}

type submitApplicationRequest struct {
	PetID       int64  `json:"pet_id"`
	Message     string `json:"message"`
	ContactInfo string `json:"contact_info"`
}

type applicationResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	PetID       int64     `json:"pet_id"`
	Message     string    `json:"message"`
	ContactInfo string    `json:"contact_info"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func submitApplicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req submitApplicationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.Submit(r.Context(), claims.UserID, SubmitInput{
			PetID:       req.PetID,
			Message:     req.Message,
			ContactInfo: req.ContactInfo,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrPetNotFound):
				http.Error(w, "pet not found", http.StatusNotFound)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, applicationResponse{
			ID:          a.ID,
			UserID:      a.UserID,
			PetID:       a.PetID,
			Message:     a.Message,
			ContactInfo: a.ContactInfo,
			Status:      string(a.Status),
			CreatedAt:   a.CreatedAt,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
