package pets

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
	r.Route("/pets", func(pr chi.Router) {
		// Catálogo público, orden id asc
		pr.Get("/", listPetsHandler(svc))

		pr.Post("/", publishPetHandler(svc))
		pr.Put("/{petID}", updatePetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))
	})
}

type petRequest struct {
	Name        string   `json:"name"`
	Species     string   `json:"species"`
	Breed       string   `json:"breed"`
	Age         string   `json:"age"`
	ImageURL    string   `json:"image"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Contact     string   `json:"contact"`
}

type petResponse struct {
	ID          int64     `json:"id"`
	OwnerUserID string    `json:"owner_id,omitempty"`
	Name        string    `json:"name"`
	Species     string    `json:"species"`
	Breed       string    `json:"breed"`
	Age         string    `json:"age"`
	ImageURL    string    `json:"image"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	Contact     string    `json:"contact,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// listPetsHandler godoc
// @Summary Listar el catálogo de adopción
// @Description Devuelve todas las publicaciones ordenadas por id ascendente. Público, no requiere sesión.
// @Tags pets
// @Produce json
// @Success 200 {array} petResponse
// @Failure 500 {string} string "internal error"
// @Router /pets [get]
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

// publishPetHandler godoc
// @Summary Publicar una mascota en adopción
// @Description Crea la publicación a nombre del usuario autenticado. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags pets
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body petRequest true "Datos de la publicación; species debe ser dog, cat o rabbit"
// @Success 201 {object} petResponse
// @Failure 400 {string} string "invalid json / campos faltantes / especie inválida"
// @Failure 401 {string} string "unauthorized"
// @Router /pets [post]
func publishPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req petRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Publish(r.Context(), claims.UserID, toPublishInput(req))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// updatePetHandler godoc
// @Summary Editar una publicación propia
// @Description Reemplazo completo de los campos editables. Solo el dueño; las mascotas del catálogo demo (sin dueño) no se editan. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path int true "ID de la publicación"
// @Param payload body petRequest true "Datos completos de la publicación"
// @Success 200 {object} petResponse
// @Failure 400 {string} string "invalid json / campos faltantes"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [put]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id, ok := petIDParam(r)
		if !ok {
			http.Error(w, "invalid pet id", http.StatusBadRequest)
			return
		}

		var req petRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Update(r.Context(), id, claims.UserID, toPublishInput(req))
		if err != nil {
			writePetError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// deletePetHandler godoc
// @Summary Retirar una publicación propia
// @Description Borra la publicación. Solo el dueño; el catálogo demo no se borra. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags pets
// @Param petID path int true "ID de la publicación"
// @Success 204 {string} string "sin contenido"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id, ok := petIDParam(r)
		if !ok {
			http.Error(w, "invalid pet id", http.StatusBadRequest)
			return
		}

		if err := svc.Delete(r.Context(), id, claims.UserID); err != nil {
			writePetError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func writePetError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "pet not found", http.StatusNotFound)
	case errors.Is(err, ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func petIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "petID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func toPublishInput(req petRequest) PublishInput {
	return PublishInput{
		Name:        req.Name,
		Species:     req.Species,
		Breed:       req.Breed,
		Age:         req.Age,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		Tags:        req.Tags,
		Contact:     req.Contact,
	}
}

func toPetResponse(p Pet) petResponse {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return petResponse{
		ID:          p.ID,
		OwnerUserID: p.OwnerUserID,
		Name:        p.Name,
		Species:     string(p.Species),
		Breed:       p.Breed,
		Age:         p.Age,
		ImageURL:    p.ImageURL,
		Description: p.Description,
		Tags:        tags,
		Contact:     p.Contact,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// writeJSON está duplicado en los handlers de cada módulo a propósito,
// igual que en el resto del proyecto: todavía no amerita un helper común.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
