// Package client es el gateway de datos remoto: una fachada stateless sobre
// la API. No guarda sesión; las operaciones autenticadas reciben el token.
// Sin configurar (sin URL / API key) degrada: el catálogo cae al seed de
// solo lectura y toda escritura devuelve ErrNotConfigured.
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"pet-haven/internal/domain/pets"
	"pet-haven/internal/domain/posts"
	"pet-haven/internal/platform/httpclient"
	"pet-haven/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("backend not configured")
)

// RemoteError envuelve cualquier fallo de una operación remota con un mensaje
// legible para mostrar inline en el form que originó la llamada.
type RemoteError struct {
	Op      string
	Message string
	Err     error
}

func (e *RemoteError) Error() string {
	return e.Op + ": " + e.Message
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// ConfigFromEnv lee PETHAVEN_API_URL y PETHAVEN_API_KEY.
func ConfigFromEnv() Config {
	return Config{
		BaseURL: strings.TrimSpace(os.Getenv("PETHAVEN_API_URL")),
		APIKey:  strings.TrimSpace(os.Getenv("PETHAVEN_API_KEY")),
	}
}

type Gateway struct {
	hc *httpclient.Client
}

// New crea el gateway. Con config incompleta devuelve un gateway inerte
// (IsConfigured() == false), nunca error: el modo demo es un estado válido.
func New(cfg Config) *Gateway {
	if strings.TrimSpace(cfg.BaseURL) == "" || strings.TrimSpace(cfg.APIKey) == "" {
		return &Gateway{}
	}

	hc, err := httpclient.NewWithBaseURL(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return &Gateway{}
	}
	hc.SetDefaultHeader("X-Api-Key", cfg.APIKey)

	return &Gateway{hc: hc}
}

func (g *Gateway) IsConfigured() bool {
	return g != nil && g.hc != nil
}

// ---- auth ----

func (g *Gateway) SignUp(ctx context.Context, email, password string) error {
	if !g.IsConfigured() {
		return ErrNotConfigured
	}

	in := map[string]string{"email": email, "password": password}
	if err := g.hc.DoJSON(ctx, http.MethodPost, "/auth/signup", nil, in, nil); err != nil {
		return remoteError("sign up", err)
	}
	return nil
}

func (g *Gateway) SignIn(ctx context.Context, email, password string) (auth.Session, error) {
	if !g.IsConfigured() {
		return auth.Session{}, ErrNotConfigured
	}

	in := map[string]string{"email": email, "password": password}
	var out sessionPayload
	if err := g.hc.DoJSON(ctx, http.MethodPost, "/auth/signin", nil, in, &out); err != nil {
		return auth.Session{}, remoteError("sign in", err)
	}
	if out.User == nil || out.AccessToken == "" {
		return auth.Session{}, remoteError("sign in", errors.New("empty session in response"))
	}

	return auth.Session{
		AccessToken: out.AccessToken,
		UserID:      out.User.ID,
		Email:       out.User.Email,
	}, nil
}

func (g *Gateway) SignOut(ctx context.Context, token string) error {
	if !g.IsConfigured() {
		return ErrNotConfigured
	}
	if err := g.hc.DoJSON(ctx, http.MethodPost, "/auth/signout", bearer(token), nil, nil); err != nil {
		return remoteError("sign out", err)
	}
	return nil
}

// Session consulta la sesión actual; sin token válido devuelve nil.
func (g *Gateway) Session(ctx context.Context, token string) (*auth.Claims, error) {
	if !g.IsConfigured() {
		return nil, ErrNotConfigured
	}

	var out sessionPayload
	if err := g.hc.DoJSON(ctx, http.MethodGet, "/auth/session", bearer(token), nil, &out); err != nil {
		return nil, remoteError("session", err)
	}
	if out.User == nil {
		return nil, nil
	}
	return &auth.Claims{UserID: out.User.ID, Email: out.User.Email}, nil
}

// ---- pets ----

type PetInput struct {
	Name        string
	Species     string
	Breed       string
	Age         string
	ImageURL    string
	Description string
	Tags        []string
	Contact     string
}

// ListPets devuelve el catálogo (orden id asc). Sin backend configurado
// cae al catálogo seed, de solo lectura.
func (g *Gateway) ListPets(ctx context.Context) ([]pets.Pet, error) {
	if !g.IsConfigured() {
		return pets.Seed(), nil
	}

	var out []petPayload
	if err := g.hc.DoJSON(ctx, http.MethodGet, "/pets", nil, nil, &out); err != nil {
		return nil, remoteError("list pets", err)
	}

	list := make([]pets.Pet, 0, len(out))
	for _, p := range out {
		list = append(list, p.toDomain())
	}
	return list, nil
}

func (g *Gateway) InsertPet(ctx context.Context, token string, in PetInput) (pets.Pet, error) {
	if !g.IsConfigured() {
		return pets.Pet{}, ErrNotConfigured
	}

	var out petPayload
	if err := g.hc.DoJSON(ctx, http.MethodPost, "/pets", bearer(token), toPetPayload(in), &out); err != nil {
		return pets.Pet{}, remoteError("publish pet", err)
	}
	return out.toDomain(), nil
}

func (g *Gateway) UpdatePet(ctx context.Context, token string, id int64, in PetInput) (pets.Pet, error) {
	if !g.IsConfigured() {
		return pets.Pet{}, ErrNotConfigured
	}

	var out petPayload
	path := fmt.Sprintf("/pets/%d", id)
	if err := g.hc.DoJSON(ctx, http.MethodPut, path, bearer(token), toPetPayload(in), &out); err != nil {
		return pets.Pet{}, remoteError("update pet", err)
	}
	return out.toDomain(), nil
}

func (g *Gateway) DeletePet(ctx context.Context, token string, id int64) error {
	if !g.IsConfigured() {
		return ErrNotConfigured
	}

	path := fmt.Sprintf("/pets/%d", id)
	if err := g.hc.DoJSON(ctx, http.MethodDelete, path, bearer(token), nil, nil); err != nil {
		return remoteError("delete pet", err)
	}
	return nil
}

// ---- favorites ----

func (g *Gateway) ListFavorites(ctx context.Context, token string) ([]int64, error) {
	if !g.IsConfigured() {
		return nil, ErrNotConfigured
	}

	var out struct {
		PetIDs []int64 `json:"pet_ids"`
	}
	if err := g.hc.DoJSON(ctx, http.MethodGet, "/me/favorites", bearer(token), nil, &out); err != nil {
		return nil, remoteError("list favorites", err)
	}
	return out.PetIDs, nil
}

func (g *Gateway) InsertFavorite(ctx context.Context, token string, petID int64) error {
	if !g.IsConfigured() {
		return ErrNotConfigured
	}

	path := fmt.Sprintf("/me/favorites/%d", petID)
	if err := g.hc.DoJSON(ctx, http.MethodPut, path, bearer(token), nil, nil); err != nil {
		return remoteError("add favorite", err)
	}
	return nil
}

func (g *Gateway) DeleteFavorite(ctx context.Context, token string, petID int64) error {
	if !g.IsConfigured() {
		return ErrNotConfigured
	}

	path := fmt.Sprintf("/me/favorites/%d", petID)
	if err := g.hc.DoJSON(ctx, http.MethodDelete, path, bearer(token), nil, nil); err != nil {
		return remoteError("remove favorite", err)
	}
	return nil
}

// ---- applications ----

type ApplicationInput struct {
	PetID       int64
	Message     string
	ContactInfo string
}

func (g *Gateway) InsertApplication(ctx context.Context, token string, in ApplicationInput) error {
	if !g.IsConfigured() {
		return ErrNotConfigured
	}

	body := map[string]any{
		"pet_id":       in.PetID,
		"message":      in.Message,
		"contact_info": in.ContactInfo,
	}
	if err := g.hc.DoJSON(ctx, http.MethodPost, "/applications", bearer(token), body, nil); err != nil {
		return remoteError("submit application", err)
	}
	return nil
}

// ---- community posts ----

// ListPosts devuelve los posts newest-first; el orden lo produce el backend.
func (g *Gateway) ListPosts(ctx context.Context) ([]posts.Post, error) {
	if !g.IsConfigured() {
		return nil, ErrNotConfigured
	}

	var out []postPayload
	if err := g.hc.DoJSON(ctx, http.MethodGet, "/posts", nil, nil, &out); err != nil {
		return nil, remoteError("list posts", err)
	}

	list := make([]posts.Post, 0, len(out))
	for _, p := range out {
		list = append(list, p.toDomain())
	}
	return list, nil
}

func (g *Gateway) InsertPost(ctx context.Context, token, title, content string) (posts.Post, error) {
	if !g.IsConfigured() {
		return posts.Post{}, ErrNotConfigured
	}

	body := map[string]string{"title": title, "content": content}
	var out postPayload
	if err := g.hc.DoJSON(ctx, http.MethodPost, "/posts", bearer(token), body, &out); err != nil {
		return posts.Post{}, remoteError("publish post", err)
	}
	return out.toDomain(), nil
}

func (g *Gateway) DeletePost(ctx context.Context, token string, id int64) error {
	if !g.IsConfigured() {
		return ErrNotConfigured
	}

	path := fmt.Sprintf("/posts/%d", id)
	if err := g.hc.DoJSON(ctx, http.MethodDelete, path, bearer(token), nil, nil); err != nil {
		return remoteError("delete post", err)
	}
	return nil
}

// ---- helpers ----

func bearer(token string) map[string]string {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	return map[string]string{"Authorization": "Bearer " + token}
}

func remoteError(op string, err error) error {
	var httpErr *httpclient.HTTPError
	if errors.As(err, &httpErr) {
		return &RemoteError{Op: op, Message: httpErr.Message(), Err: err}
	}
	return &RemoteError{Op: op, Message: err.Error(), Err: err}
}
