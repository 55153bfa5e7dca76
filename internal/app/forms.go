package app

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// AdoptionForm es el formulario de solicitud de adopción.
type AdoptionForm struct {
	ContactInfo string `validate:"required"`
	Message     string `validate:"required"`
}

func (f AdoptionForm) Validate() error {
	return validate.Struct(f)
}

// PetForm es el formulario de publicación/edición de mascota. Tags viaja
// como texto separado por comas y se normaliza con SplitTags al enviar.
type PetForm struct {
	Name        string `validate:"required"`
	Species     string `validate:"required,oneof=dog cat rabbit"`
	Breed       string `validate:"required"`
	Age         string `validate:"required"`
	ImageURL    string `validate:"required"`
	Description string `validate:"required"`
	Tags        string
	Contact     string `validate:"required"`
}

func (f PetForm) Validate() error {
	return validate.Struct(f)
}

// PostForm es el formulario del tablón comunitario.
type PostForm struct {
	Title   string `validate:"required"`
	Content string `validate:"required"`
}

func (f PostForm) Validate() error {
	return validate.Struct(f)
}

// SplitTags parte el campo de tags por comas, recorta espacios y descarta
// entradas vacías, preservando el orden de escritura.
func SplitTags(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
