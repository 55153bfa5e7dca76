package memory

import (
	"context"
	"sort"
	"sync"

	"pet-haven/internal/domain/posts"
)

type postRepo struct {
	mu     sync.RWMutex
	byID   map[int64]posts.Post
	nextID int64
}

func NewPostRepo() posts.Repository {
	return &postRepo{
		byID:   make(map[int64]posts.Post),
		nextID: 1,
	}
}

func (r *postRepo) Create(ctx context.Context, p posts.Post) (posts.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = r.nextID
	r.nextID++
	r.byID[p.ID] = p
	return p, nil
}

func (r *postRepo) GetByID(ctx context.Context, id int64) (posts.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return posts.Post{}, posts.ErrNotFound
	}
	return p, nil
}

func (r *postRepo) List(ctx context.Context) ([]posts.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]posts.Post, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}

	// Más nuevos primero; desempate por id para orden estable.
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

func (r *postRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return posts.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
