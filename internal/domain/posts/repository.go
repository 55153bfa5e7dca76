package posts

import "context"

type Repository interface {
	// Create asigna el ID y devuelve el post persistido.
	Create(ctx context.Context, p Post) (Post, error)
	GetByID(ctx context.Context, id int64) (Post, error)
	// List devuelve todos los posts ordenados por created_at descendente.
	// El orden lo produce el storage, no el caller.
	List(ctx context.Context) ([]Post, error)
	Delete(ctx context.Context, id int64) error
}
