package pets

import "context"

type Repository interface {
	// Create asigna el ID y devuelve la publicación persistida.
	Create(ctx context.Context, p Pet) (Pet, error)
	Update(ctx context.Context, p Pet) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (Pet, error)
	// List devuelve el catálogo completo ordenado por id ascendente.
	List(ctx context.Context) ([]Pet, error)
}
