package favorites

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) List(ctx context.Context, userID string) ([]int64, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListPetIDs(ctx, userID)
}

func (s *Service) Add(ctx context.Context, userID string, petID int64) error {
	if strings.TrimSpace(userID) == "" || petID <= 0 {
		return ErrInvalidInput
	}
	return s.repo.Add(ctx, Favorite{
		UserID:    userID,
		PetID:     petID,
		CreatedAt: s.now(),
	})
}

func (s *Service) Remove(ctx context.Context, userID string, petID int64) error {
	if strings.TrimSpace(userID) == "" || petID <= 0 {
		return ErrInvalidInput
	}
	return s.repo.Remove(ctx, userID, petID)
}
