// Package accounts expone las operaciones de cuenta delegadas al proveedor
// de identidad externo. Este servicio no guarda credenciales: solo reenvía.
package accounts

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"pet-haven/internal/middleware"
	"pet-haven/internal/platform/httpclient"
	"pet-haven/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, authn auth.Authenticator) {
	r.Route("/auth", func(ar chi.Router) {
		ar.Post("/signup", signUpHandler(authn))
		ar.Post("/signin", signInHandler(authn))
		ar.Post("/signout", signOutHandler(authn))
		ar.Get("/session", sessionHandler())
	})
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type sessionResponse struct {
	AccessToken string        `json:"access_token,omitempty"`
	User        *userResponse `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func signUpHandler(authn auth.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if authn == nil {
			writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "auth service not configured"})
			return
		}

		req, ok := decodeCredentials(w, r)
		if !ok {
			return
		}

		if err := authn.SignUp(r.Context(), req.Email, req.Password); err != nil {
			writeAuthError(w, err)
			return
		}

		// El proveedor exige verificación por email antes del primer sign-in.
		writeJSON(w, http.StatusOK, messageResponse{
			Message: "registered; verify your email, then sign in",
		})
	}
}

func signInHandler(authn auth.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if authn == nil {
			writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "auth service not configured"})
			return
		}

		req, ok := decodeCredentials(w, r)
		if !ok {
			return
		}

		s, err := authn.SignIn(r.Context(), req.Email, req.Password)
		if err != nil {
			writeAuthError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, sessionResponse{
			AccessToken: s.AccessToken,
			User:        &userResponse{ID: s.UserID, Email: s.Email},
		})
	}
}

func signOutHandler(authn auth.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if authn == nil {
			writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "auth service not configured"})
			return
		}

		token := middleware.BearerToken(r.Header.Get("Authorization"))
		if token == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		// El sign-out del proveedor es best-effort: la sesión local ya murió.
		_ = authn.SignOut(r.Context(), token)

		w.WriteHeader(http.StatusNoContent)
	}
}

func sessionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			writeJSON(w, http.StatusOK, sessionResponse{User: nil})
			return
		}

		writeJSON(w, http.StatusOK, sessionResponse{
			User: &userResponse{ID: claims.UserID, Email: claims.Email},
		})
	}
}

func decodeCredentials(w http.ResponseWriter, r *http.Request) (credentialsRequest, bool) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
		return credentialsRequest{}, false
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "email and password are required"})
		return credentialsRequest{}, false
	}
	return req, true
}

// writeAuthError traduce errores del proveedor a un mensaje inline para el form.
func writeAuthError(w http.ResponseWriter, err error) {
	var httpErr *httpclient.HTTPError
	if errors.As(err, &httpErr) {
		status := http.StatusBadGateway
		switch httpErr.StatusCode {
		case http.StatusBadRequest, http.StatusUnprocessableEntity, http.StatusConflict:
			status = http.StatusBadRequest
		case http.StatusUnauthorized, http.StatusForbidden:
			status = http.StatusUnauthorized
		}
		writeJSON(w, status, errorResponse{Error: httpErr.Message()})
		return
	}

	writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
