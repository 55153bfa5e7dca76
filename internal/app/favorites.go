package app

import (
	"context"
	"errors"
	"sort"
	"sync"
)

var (
	// ErrAuthRequired indica que la acción necesita sesión; el caller debe
	// abrir el overlay de autenticación en vez de mutar nada.
	ErrAuthRequired = errors.New("authentication required")
)

// FavoriteSet es el conjunto de pet ids favoritos de la sesión actual.
// Es la fuente de verdad para el render.
type FavoriteSet struct {
	mu  sync.RWMutex
	ids map[int64]struct{}
}

func NewFavoriteSet() *FavoriteSet {
	return &FavoriteSet{ids: make(map[int64]struct{})}
}

// Replace reemplaza el set entero (al hacer login).
func (s *FavoriteSet) Replace(ids []int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ids = make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
}

func (s *FavoriteSet) Clear() {
	s.Replace(nil)
}

func (s *FavoriteSet) Has(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.ids[id]
	return ok
}

func (s *FavoriteSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}

func (s *FavoriteSet) IDs() []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]int64, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (s *FavoriteSet) add(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids[id] = struct{}{}
}

func (s *FavoriteSet) remove(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.ids, id)
}

// favoritesGateway es lo que el controller necesita del gateway remoto.
type favoritesGateway interface {
	ListFavorites(ctx context.Context, token string) ([]int64, error)
	InsertFavorite(ctx context.Context, token string, petID int64) error
	DeleteFavorite(ctx context.Context, token string, petID int64) error
}

// FavoritesController aplica el toggle optimista: muta el set local antes de
// la llamada remota y, si esta falla, revierte y devuelve el error.
type FavoritesController struct {
	gw   favoritesGateway
	set  *FavoriteSet
	sess *SessionStore
}

func NewFavoritesController(gw favoritesGateway, sess *SessionStore) *FavoritesController {
	c := &FavoritesController{
		gw:   gw,
		set:  NewFavoriteSet(),
		sess: sess,
	}

	// al cerrar sesión el set muere con ella; al iniciar, el caller hace Refresh
	sess.OnChange(func(s Session) {
		if !s.Authenticated() {
			c.set.Clear()
		}
	})

	return c
}

func (c *FavoritesController) Set() *FavoriteSet {
	return c.set
}

// Refresh reemplaza el set entero desde el backend. Sesión anónima => limpia.
func (c *FavoritesController) Refresh(ctx context.Context) error {
	s := c.sess.Current()
	if !s.Authenticated() {
		c.set.Clear()
		return nil
	}

	ids, err := c.gw.ListFavorites(ctx, s.Token)
	if err != nil {
		return err
	}
	c.set.Replace(ids)
	return nil
}

// Toggle invierte la membresía de petID. Devuelve el estado final (favorito o
// no). Exactamente una llamada remota por toggle; el error remoto revierte la
// mutación local.
func (c *FavoritesController) Toggle(ctx context.Context, petID int64) (bool, error) {
	s := c.sess.Current()
	if !s.Authenticated() {
		return false, ErrAuthRequired
	}

	if c.set.Has(petID) {
		// quitar: optimista primero
		c.set.remove(petID)
		if err := c.gw.DeleteFavorite(ctx, s.Token, petID); err != nil {
			c.set.add(petID)
			return true, err
		}
		return false, nil
	}

	c.set.add(petID)
	if err := c.gw.InsertFavorite(ctx, s.Token, petID); err != nil {
		c.set.remove(petID)
		return false, err
	}
	return true, nil
}
