package client

import (
	"time"

	"pet-haven/internal/domain/pets"
	"pet-haven/internal/domain/posts"
)

// Shapes del wire de la API; espejo de los responses de los handlers.

type userPayload struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type sessionPayload struct {
	AccessToken string       `json:"access_token"`
	User        *userPayload `json:"user"`
}

type petPayload struct {
	ID          int64     `json:"id"`
	OwnerUserID string    `json:"owner_id"`
	Name        string    `json:"name"`
	Species     string    `json:"species"`
	Breed       string    `json:"breed"`
	Age         string    `json:"age"`
	ImageURL    string    `json:"image"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	Contact     string    `json:"contact"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (p petPayload) toDomain() pets.Pet {
	return pets.Pet{
		ID:          p.ID,
		OwnerUserID: p.OwnerUserID,
		Name:        p.Name,
		Species:     pets.Species(p.Species),
		Breed:       p.Breed,
		Age:         p.Age,
		ImageURL:    p.ImageURL,
		Description: p.Description,
		Tags:        p.Tags,
		Contact:     p.Contact,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toPetPayload(in PetInput) map[string]any {
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	return map[string]any{
		"name":        in.Name,
		"species":     in.Species,
		"breed":       in.Breed,
		"age":         in.Age,
		"image":       in.ImageURL,
		"description": in.Description,
		"tags":        tags,
		"contact":     in.Contact,
	}
}

type postPayload struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    string    `json:"user_id"`
	UserEmail string    `json:"user_email"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
}

func (p postPayload) toDomain() posts.Post {
	return posts.Post{
		ID:        p.ID,
		CreatedAt: p.CreatedAt,
		UserID:    p.UserID,
		UserEmail: p.UserEmail,
		Title:     p.Title,
		Content:   p.Content,
	}
}
