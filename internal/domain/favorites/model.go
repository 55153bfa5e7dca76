package favorites

import "time"

// Favorite es la relación (usuario, mascota). Existencia == favorito.
// El par es único; insertar dos veces es un no-op.
type Favorite struct {
	UserID    string
	PetID     int64
	CreatedAt time.Time
}
