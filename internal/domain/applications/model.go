package applications

import "time"

type Status string

const (
	// StatusPending es el único estado que produce esta capa.
	// Las transiciones posteriores las gestiona el personal, fuera de este servicio.
	StatusPending Status = "pending"
)

// Application es una solicitud de adopción. Se crea una vez y no se edita ni
// borra desde la UI.
type Application struct {
	ID          string
	UserID      string
	PetID       int64
	Message     string
	ContactInfo string
	Status      Status
	CreatedAt   time.Time
}
