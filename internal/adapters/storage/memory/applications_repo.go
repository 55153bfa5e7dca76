package memory

import (
	"context"
	"errors"
	"sync"

	"pet-haven/internal/domain/applications"
)

type applicationRepo struct {
	mu   sync.RWMutex
	byID map[string]applications.Application
}

func NewApplicationRepo() applications.Repository {
	return &applicationRepo{
		byID: make(map[string]applications.Application),
	}
}

func (r *applicationRepo) Create(ctx context.Context, a applications.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a.ID == "" {
		return errors.New("application id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("application already exists")
	}
	r.byID[a.ID] = a
	return nil
}
