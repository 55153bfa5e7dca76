package pets

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

type PublishInput struct {
	Name        string
	Species     string
	Breed       string
	Age         string
	ImageURL    string
	Description string
	Tags        []string
	Contact     string
}

func (in PublishInput) validate() (Species, error) {
	for _, field := range []string{in.Name, in.Breed, in.Age, in.ImageURL, in.Description, in.Contact} {
		if strings.TrimSpace(field) == "" {
			return "", ErrInvalidInput
		}
	}
	sp, ok := ParseSpecies(strings.TrimSpace(in.Species))
	if !ok {
		return "", ErrInvalidInput
	}
	return sp, nil
}

func (s *Service) Publish(ctx context.Context, ownerUserID string, in PublishInput) (Pet, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Pet{}, ErrInvalidInput
	}
	sp, err := in.validate()
	if err != nil {
		return Pet{}, err
	}

	now := s.now()
	p := Pet{
		OwnerUserID: ownerUserID,
		Name:        strings.TrimSpace(in.Name),
		Species:     sp,
		Breed:       strings.TrimSpace(in.Breed),
		Age:         strings.TrimSpace(in.Age),
		ImageURL:    strings.TrimSpace(in.ImageURL),
		Description: strings.TrimSpace(in.Description),
		Tags:        NormalizeTags(in.Tags),
		Contact:     strings.TrimSpace(in.Contact),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return s.repo.Create(ctx, p)
}

// Update reemplaza todos los campos editables. Solo el dueño puede editar;
// los datos seed (sin dueño) no se editan nunca.
func (s *Service) Update(ctx context.Context, id int64, userID string, in PublishInput) (Pet, error) {
	if strings.TrimSpace(userID) == "" {
		return Pet{}, ErrInvalidInput
	}
	sp, err := in.validate()
	if err != nil {
		return Pet{}, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}
	if current.OwnerUserID == "" || current.OwnerUserID != userID {
		return Pet{}, ErrForbidden
	}

	current.Name = strings.TrimSpace(in.Name)
	current.Species = sp
	current.Breed = strings.TrimSpace(in.Breed)
	current.Age = strings.TrimSpace(in.Age)
	current.ImageURL = strings.TrimSpace(in.ImageURL)
	current.Description = strings.TrimSpace(in.Description)
	current.Tags = NormalizeTags(in.Tags)
	current.Contact = strings.TrimSpace(in.Contact)
	current.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, current); err != nil {
		return Pet{}, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, id int64, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return ErrInvalidInput
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current.OwnerUserID == "" || current.OwnerUserID != userID {
		return ErrForbidden
	}

	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

// NormalizeTags recorta espacios y descarta entradas vacías, preservando el orden.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		out = append(out, t)
	}
	return out
}
