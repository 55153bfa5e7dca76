package auth

import "context"

// Authenticator agrupa las operaciones de cuenta delegadas al proveedor externo.
// SignUp NO inicia sesión: el usuario debe verificar su email y luego hacer SignIn.
type Authenticator interface {
	SignUp(ctx context.Context, email, password string) error
	SignIn(ctx context.Context, email, password string) (Session, error)
	SignOut(ctx context.Context, token string) error
}
