package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFavGateway registra las llamadas y permite forzar fallos remotos.
type fakeFavGateway struct {
	listIDs []int64
	listErr error
	insErr  error
	delErr  error

	inserts []int64
	deletes []int64
	lists   int
}

func (f *fakeFavGateway) ListFavorites(_ context.Context, _ string) ([]int64, error) {
	f.lists++
	return f.listIDs, f.listErr
}

func (f *fakeFavGateway) InsertFavorite(_ context.Context, _ string, petID int64) error {
	f.inserts = append(f.inserts, petID)
	return f.insErr
}

func (f *fakeFavGateway) DeleteFavorite(_ context.Context, _ string, petID int64) error {
	f.deletes = append(f.deletes, petID)
	return f.delErr
}

func loggedIn() *SessionStore {
	st := NewSessionStore()
	st.Set(Session{Token: "tok", UserID: "user-1", Email: "ana@example.com"})
	return st
}

func TestToggleAnonimoPideAuth(t *testing.T) {
	gw := &fakeFavGateway{}
	c := NewFavoritesController(gw, NewSessionStore())

	_, err := c.Toggle(context.Background(), 3)

	require.ErrorIs(t, err, ErrAuthRequired)
	assert.Empty(t, gw.inserts, "no debe haber llamada remota sin sesión")
	assert.Empty(t, gw.deletes)
	assert.False(t, c.Set().Has(3), "no debe mutar el set local")
}

func TestToggleAgregaYQuita(t *testing.T) {
	gw := &fakeFavGateway{}
	c := NewFavoritesController(gw, loggedIn())
	ctx := context.Background()

	fav, err := c.Toggle(ctx, 3)
	require.NoError(t, err)
	assert.True(t, fav)
	assert.True(t, c.Set().Has(3))

	fav, err = c.Toggle(ctx, 3)
	require.NoError(t, err)
	assert.False(t, fav)
	assert.False(t, c.Set().Has(3))

	// exactamente una llamada remota por toggle
	assert.Equal(t, []int64{3}, gw.inserts)
	assert.Equal(t, []int64{3}, gw.deletes)
}

func TestToggleRevierteSiInsertFalla(t *testing.T) {
	gw := &fakeFavGateway{insErr: errors.New("backend caído")}
	c := NewFavoritesController(gw, loggedIn())

	fav, err := c.Toggle(context.Background(), 5)

	require.Error(t, err)
	assert.False(t, fav, "el estado final reportado debe ser el revertido")
	assert.False(t, c.Set().Has(5), "el fallo remoto revierte la mutación local")
}

func TestToggleRevierteSiDeleteFalla(t *testing.T) {
	gw := &fakeFavGateway{delErr: errors.New("backend caído")}
	c := NewFavoritesController(gw, loggedIn())
	c.Set().Replace([]int64{5})

	fav, err := c.Toggle(context.Background(), 5)

	require.Error(t, err)
	assert.True(t, fav)
	assert.True(t, c.Set().Has(5), "sigue siendo favorito tras revertir")
}

func TestRefreshAnonimoLimpia(t *testing.T) {
	gw := &fakeFavGateway{listIDs: []int64{1, 2}}
	c := NewFavoritesController(gw, NewSessionStore())
	c.Set().Replace([]int64{9})

	require.NoError(t, c.Refresh(context.Background()))

	assert.Zero(t, c.Set().Len())
	assert.Zero(t, gw.lists, "anónimo no consulta el backend")
}

func TestRefreshReemplazaElSet(t *testing.T) {
	gw := &fakeFavGateway{listIDs: []int64{2, 4}}
	c := NewFavoritesController(gw, loggedIn())
	c.Set().Replace([]int64{9})

	require.NoError(t, c.Refresh(context.Background()))

	assert.Equal(t, []int64{2, 4}, c.Set().IDs())
}

func TestLogoutLimpiaElSet(t *testing.T) {
	sess := loggedIn()
	c := NewFavoritesController(&fakeFavGateway{}, sess)
	c.Set().Replace([]int64{1, 2})

	sess.Clear()

	assert.Zero(t, c.Set().Len(), "el set muere con la sesión")
}

func TestFavoriteSetIDsOrdenados(t *testing.T) {
	s := NewFavoriteSet()
	s.Replace([]int64{7, 1, 4})

	assert.Equal(t, []int64{1, 4, 7}, s.IDs())
}
