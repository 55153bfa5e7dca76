package posts

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-haven/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/posts", func(pr chi.Router) {
		pr.Get("/", listPostsHandler(svc))
		pr.Post("/", publishPostHandler(svc))
		pr.Delete("/{postID}", deletePostHandler(svc))
	})
}

type publishPostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type postResponse struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    string    `json:"user_id"`
	UserEmail string    `json:"user_email"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
}

func listPostsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]postResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPostResponse(p))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func publishPostHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req publishPostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Publish(r.Context(), claims.UserID, claims.Email, req.Title, req.Content)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toPostResponse(p))
	}
}

func deletePostHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
		if err != nil || id <= 0 {
			http.Error(w, "invalid post id", http.StatusBadRequest)
			return
		}

		if err := svc.Delete(r.Context(), id, claims.UserID); err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "post not found", http.StatusNotFound)
			case errors.Is(err, ErrForbidden):
				http.Error(w, "forbidden", http.StatusForbidden)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func toPostResponse(p Post) postResponse {
	return postResponse{
		ID:        p.ID,
		CreatedAt: p.CreatedAt,
		UserID:    p.UserID,
		UserEmail: p.UserEmail,
		Title:     p.Title,
		Content:   p.Content,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
