package memory

import (
	"context"
	"sort"
	"sync"

	"pet-haven/internal/domain/favorites"
)

type favoriteRepo struct {
	mu     sync.RWMutex
	byUser map[string]map[int64]favorites.Favorite
}

func NewFavoriteRepo() favorites.Repository {
	return &favoriteRepo{
		byUser: make(map[string]map[int64]favorites.Favorite),
	}
}

func (r *favoriteRepo) ListPetIDs(ctx context.Context, userID string) ([]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]int64, 0, len(r.byUser[userID]))
	for petID := range r.byUser[userID] {
		out = append(out, petID)
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

func (r *favoriteRepo) Add(ctx context.Context, f favorites.Favorite) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.byUser[f.UserID]
	if !ok {
		set = make(map[int64]favorites.Favorite)
		r.byUser[f.UserID] = set
	}
	if _, exists := set[f.PetID]; exists {
		// par único: re-insertar es no-op
		return nil
	}
	set[f.PetID] = f
	return nil
}

func (r *favoriteRepo) Remove(ctx context.Context, userID string, petID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byUser[userID], petID)
	return nil
}
