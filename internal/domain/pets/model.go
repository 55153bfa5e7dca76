package pets

import "time"

// Species define las categorías del catálogo.
// @Enum dog, cat, rabbit
type Species string

const (
	SpeciesDog    Species = "dog"
	SpeciesCat    Species = "cat"
	SpeciesRabbit Species = "rabbit"
)

// ParseSpecies valida una especie de entrada.
func ParseSpecies(s string) (Species, bool) {
	switch Species(s) {
	case SpeciesDog, SpeciesCat, SpeciesRabbit:
		return Species(s), true
	default:
		return "", false
	}
}

// Label devuelve la etiqueta de UI de la especie.
func (s Species) Label() string {
	switch s {
	case SpeciesDog:
		return "狗狗"
	case SpeciesCat:
		return "猫咪"
	case SpeciesRabbit:
		return "小兔"
	default:
		return string(s)
	}
}

// Pet representa una publicación de adopción.
// OwnerUserID vacío => dato seed/demo, sin dueño editable.
type Pet struct {
	ID          int64
	OwnerUserID string

	Name        string
	Species     Species
	Breed       string
	Age         string // etiqueta libre: "2 岁", "6 个月"
	ImageURL    string
	Description string
	Tags        []string
	Contact     string

	CreatedAt time.Time
	UpdatedAt time.Time
}
