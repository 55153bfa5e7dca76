// Package gotrue habla con un proveedor de identidad hosteado compatible con
// la API GoTrue (signup / password grant / logout / user).
package gotrue

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pet-haven/internal/platform/httpclient"
	"pet-haven/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("gotrue client not configured")
	ErrUnauthorized  = errors.New("gotrue unauthorized")
	ErrUpstream      = errors.New("gotrue upstream error")
)

// Config del cliente. BaseURL es la URL del proyecto (sin /auth/v1);
// APIKey es la anon key pública del proyecto.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type Client struct {
	hc     *httpclient.Client
	apiKey string
}

func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	apiKey := strings.TrimSpace(cfg.APIKey)
	if baseURL == "" || apiKey == "" {
		// Cliente inerte: IsConfigured() == false, toda operación devuelve ErrNotConfigured.
		return &Client{}, nil
	}

	hc, err := httpclient.NewWithBaseURL(baseURL, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	hc.SetDefaultHeader("apikey", apiKey)

	return &Client{hc: hc, apiKey: apiKey}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.hc != nil
}

type userPayload struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type tokenPayload struct {
	AccessToken string      `json:"access_token"`
	User        userPayload `json:"user"`
}

// SignUp registra la cuenta. No inicia sesión: el proveedor manda el email de
// verificación y el usuario debe hacer SignIn después.
func (c *Client) SignUp(ctx context.Context, email, password string) error {
	if !c.IsConfigured() {
		return ErrNotConfigured
	}

	in := map[string]string{"email": email, "password": password}
	if err := c.hc.DoJSON(ctx, http.MethodPost, "/auth/v1/signup", nil, in, nil); err != nil {
		return wrapUpstream(err)
	}
	return nil
}

func (c *Client) SignIn(ctx context.Context, email, password string) (auth.Session, error) {
	if !c.IsConfigured() {
		return auth.Session{}, ErrNotConfigured
	}

	in := map[string]string{"email": email, "password": password}
	var out tokenPayload
	if err := c.hc.DoJSON(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", nil, in, &out); err != nil {
		return auth.Session{}, wrapUpstream(err)
	}

	if strings.TrimSpace(out.AccessToken) == "" || strings.TrimSpace(out.User.ID) == "" {
		return auth.Session{}, fmt.Errorf("%w: token response missing fields", ErrUpstream)
	}

	return auth.Session{
		AccessToken: out.AccessToken,
		UserID:      out.User.ID,
		Email:       strings.TrimSpace(out.User.Email),
	}, nil
}

func (c *Client) SignOut(ctx context.Context, token string) error {
	if !c.IsConfigured() {
		return ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrUnauthorized
	}

	headers := map[string]string{"Authorization": "Bearer " + token}
	if err := c.hc.DoJSON(ctx, http.MethodPost, "/auth/v1/logout", headers, nil, nil); err != nil {
		return wrapUpstream(err)
	}
	return nil
}

// User recupera los claims del dueño del token.
func (c *Client) User(ctx context.Context, token string) (auth.Claims, error) {
	if !c.IsConfigured() {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrUnauthorized
	}

	headers := map[string]string{"Authorization": "Bearer " + token}
	var out userPayload
	if err := c.hc.DoJSON(ctx, http.MethodGet, "/auth/v1/user", headers, nil, &out); err != nil {
		return auth.Claims{}, wrapUpstream(err)
	}

	out.ID = strings.TrimSpace(out.ID)
	if out.ID == "" {
		return auth.Claims{}, fmt.Errorf("%w: response missing user id", ErrUpstream)
	}

	return auth.Claims{
		UserID: out.ID,
		Email:  strings.TrimSpace(out.Email),
	}, nil
}

// wrapUpstream conserva el *HTTPError (los handlers extraen el mensaje inline)
// pero clasifica los 401/403 como no autorizado.
func wrapUpstream(err error) error {
	var httpErr *httpclient.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.StatusCode == http.StatusUnauthorized || httpErr.StatusCode == http.StatusForbidden {
			return fmt.Errorf("%w: %w", ErrUnauthorized, err)
		}
		return err
	}
	return fmt.Errorf("%w: %v", ErrUpstream, err)
}
