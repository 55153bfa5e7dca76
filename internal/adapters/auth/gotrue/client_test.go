package gotrue

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSinConfigurar(t *testing.T) {
	c, err := NewClient(Config{})
	require.NoError(t, err)
	require.False(t, c.IsConfigured())

	ctx := context.Background()
	assert.ErrorIs(t, c.SignUp(ctx, "a@b.com", "x"), ErrNotConfigured)
	_, err = c.SignIn(ctx, "a@b.com", "x")
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = c.User(ctx, "tok")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSignInPasswordGrant(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/v1/token", r.URL.Path)
		require.Equal(t, "password", r.URL.Query().Get("grant_type"))
		require.Equal(t, "anon-key", r.Header.Get("apikey"))

		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in["password"] != "secret123" {
			http.Error(w, `{"error_description":"Invalid login credentials"}`, http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok-abc","user":{"id":"user-1","email":"ana@example.com"}}`))
	}))
	defer ts.Close()

	c, err := NewClient(Config{BaseURL: ts.URL, APIKey: "anon-key"})
	require.NoError(t, err)

	sess, err := c.SignIn(context.Background(), "ana@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", sess.AccessToken)
	assert.Equal(t, "user-1", sess.UserID)
	assert.Equal(t, "ana@example.com", sess.Email)

	_, err = c.SignIn(context.Background(), "ana@example.com", "mala")
	require.Error(t, err)
}

func TestSignInRespuestaIncompleta(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":""}`))
	}))
	defer ts.Close()

	c, err := NewClient(Config{BaseURL: ts.URL, APIKey: "anon-key"})
	require.NoError(t, err)

	_, err = c.SignIn(context.Background(), "ana@example.com", "secret123")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestUserClasifica401(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/v1/user", r.URL.Path)
		if r.Header.Get("Authorization") != "Bearer tok-ok" {
			http.Error(w, `{"msg":"invalid JWT"}`, http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"user-1","email":"ana@example.com"}`))
	}))
	defer ts.Close()

	c, err := NewClient(Config{BaseURL: ts.URL, APIKey: "anon-key"})
	require.NoError(t, err)

	claims, err := c.User(context.Background(), "tok-ok")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)

	_, err = c.User(context.Background(), "tok-malo")
	assert.ErrorIs(t, err, ErrUnauthorized)

	// token vacío ni siquiera llega a la red
	_, err = c.User(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestVerifierDelegaEnUser(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"user-9","email":"leo@example.com"}`))
	}))
	defer ts.Close()

	c, err := NewClient(Config{BaseURL: ts.URL, APIKey: "anon-key"})
	require.NoError(t, err)

	v := NewVerifier(c)
	claims, err := v.Verify(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "user-9", claims.UserID)
	assert.Equal(t, "leo@example.com", claims.Email)

	_, err = v.Verify(context.Background(), "")
	assert.ErrorIs(t, err, ErrTokenEmpty)
}
