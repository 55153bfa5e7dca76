package posts

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
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

func (s *Service) List(ctx context.Context) ([]Post, error) {
	return s.repo.List(ctx)
}

// Publish crea un post atribuido a (userID, email). El email queda congelado
// como etiqueta de autor.
func (s *Service) Publish(ctx context.Context, userID, email, title, content string) (Post, error) {
	if strings.TrimSpace(userID) == "" {
		return Post{}, ErrInvalidInput
	}
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return Post{}, ErrInvalidInput
	}

	p := Post{
		CreatedAt: s.now(),
		UserID:    userID,
		UserEmail: strings.TrimSpace(email),
		Title:     strings.TrimSpace(title),
		Content:   strings.TrimSpace(content),
	}

	return s.repo.Create(ctx, p)
}

// Delete solo lo permite el autor.
func (s *Service) Delete(ctx context.Context, id int64, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return ErrInvalidInput
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current.UserID != userID {
		return ErrForbidden
	}

	return s.repo.Delete(ctx, id)
}
