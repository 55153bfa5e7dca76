package applications

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrPetNotFound  = errors.New("pet not found")
)

// PetChecker evita el import del módulo pets completo: solo necesitamos saber
// si la mascota existe.
type PetChecker interface {
	Exists(ctx context.Context, petID int64) (bool, error)
}

type Service struct {
	repo Repository
	pets PetChecker
	now  func() time.Time
}

func NewService(repo Repository, pets PetChecker) *Service {
	return &Service{
		repo: repo,
		pets: pets,
		now:  time.Now,
	}
}

type SubmitInput struct {
	PetID       int64
	Message     string
	ContactInfo string
}

func (s *Service) Submit(ctx context.Context, userID string, in SubmitInput) (Application, error) {
	if strings.TrimSpace(userID) == "" {
		return Application{}, ErrInvalidInput
	}
	if in.PetID <= 0 {
		return Application{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Message) == "" || strings.TrimSpace(in.ContactInfo) == "" {
		return Application{}, ErrInvalidInput
	}

	if s.pets != nil {
		ok, err := s.pets.Exists(ctx, in.PetID)
		if err != nil {
			return Application{}, err
		}
		if !ok {
			return Application{}, ErrPetNotFound
		}
	}

	a := Application{
		ID:          uuid.NewString(),
		UserID:      userID,
		PetID:       in.PetID,
		Message:     strings.TrimSpace(in.Message),
		ContactInfo: strings.TrimSpace(in.ContactInfo),
		Status:      StatusPending,
		CreatedAt:   s.now(),
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Application{}, err
	}
	return a, nil
}
