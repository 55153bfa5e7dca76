package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatewaySinConfigurarEsModoDemo(t *testing.T) {
	g := New(Config{})
	ctx := context.Background()

	require.False(t, g.IsConfigured())

	// catálogo cae al seed de solo lectura
	list, err := g.ListPets(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, list)
	assert.Equal(t, "贝拉 (Bella)", list[0].Name)

	// toda escritura avisa que no hay backend
	assert.ErrorIs(t, g.SignUp(ctx, "a@b.com", "secret"), ErrNotConfigured)
	_, err = g.SignIn(ctx, "a@b.com", "secret")
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = g.InsertPet(ctx, "tok", PetInput{})
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.ErrorIs(t, g.InsertFavorite(ctx, "tok", 1), ErrNotConfigured)
	assert.ErrorIs(t, g.InsertApplication(ctx, "tok", ApplicationInput{}), ErrNotConfigured)
	_, err = g.ListPosts(ctx)
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = g.Session(ctx, "tok")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestGatewaySession(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Header.Get("Authorization") == "Bearer tok-abc" {
			_, _ = w.Write([]byte(`{"user":{"id":"user-1","email":"ana@example.com"}}`))
			return
		}
		// token vencido o ausente: sesión anónima, no error
		_, _ = w.Write([]byte(`{"user":null}`))
	}))
	defer ts.Close()

	g := New(Config{BaseURL: ts.URL, APIKey: "anon-key"})
	ctx := context.Background()

	claims, err := g.Session(ctx, "tok-abc")
	require.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)

	claims, err = g.Session(ctx, "tok-viejo")
	require.NoError(t, err)
	assert.Nil(t, claims)
}

func TestGatewayMandaAPIKeyYBearer(t *testing.T) {
	var gotAPIKey, gotAuth, gotPath string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("X-Api-Key")
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"pet_ids":[2,5]}`))
	}))
	defer ts.Close()

	g := New(Config{BaseURL: ts.URL, APIKey: "anon-key"})
	require.True(t, g.IsConfigured())

	ids, err := g.ListFavorites(context.Background(), "tok-123")
	require.NoError(t, err)

	assert.Equal(t, []int64{2, 5}, ids)
	assert.Equal(t, "anon-key", gotAPIKey)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "/me/favorites", gotPath)
}

func TestGatewaySignIn(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in["email"] != "ana@example.com" {
			http.Error(w, `{"error":"invalid credentials"}`, http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok-abc","user":{"id":"user-1","email":"ana@example.com"}}`))
	}))
	defer ts.Close()

	g := New(Config{BaseURL: ts.URL, APIKey: "anon-key"})
	ctx := context.Background()

	sess, err := g.SignIn(ctx, "ana@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", sess.AccessToken)
	assert.Equal(t, "user-1", sess.UserID)
	assert.Equal(t, "ana@example.com", sess.Email)

	_, err = g.SignIn(ctx, "mala@example.com", "secret123")
	require.Error(t, err)
	var rerr *RemoteError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "invalid credentials", rerr.Message, "el mensaje del backend viaja al form")
}

func TestGatewayListPets(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":1,"name":"贝拉","species":"dog","tags":["友好"]},
			{"id":2,"owner_id":"user-1","name":"露娜","species":"cat","tags":[]}
		]`))
	}))
	defer ts.Close()

	g := New(Config{BaseURL: ts.URL, APIKey: "anon-key"})

	list, err := g.ListPets(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "贝拉", list[0].Name)
	assert.Equal(t, []string{"友好"}, list[0].Tags)
	assert.Equal(t, "user-1", list[1].OwnerUserID)
	assert.Equal(t, "cat", string(list[1].Species))
}

func TestGatewayErrorRemotoConservaElStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer ts.Close()

	g := New(Config{BaseURL: ts.URL, APIKey: "anon-key"})

	err := g.DeletePet(context.Background(), "tok", 3)
	require.Error(t, err)

	var rerr *RemoteError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "delete pet", rerr.Op)
}
