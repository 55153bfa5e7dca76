package favorites

import "context"

type Repository interface {
	// ListPetIDs devuelve los pet ids favoritos del usuario, orden id asc.
	ListPetIDs(ctx context.Context, userID string) ([]int64, error)
	// Add es idempotente: si el par ya existe no hace nada.
	Add(ctx context.Context, f Favorite) error
	// Remove es idempotente: borrar un par inexistente no es error.
	Remove(ctx context.Context, userID string, petID int64) error
}
