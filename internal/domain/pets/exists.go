package pets

import (
	"context"
	"errors"
)

// Exists expone la existencia de una mascota sin acoplar al modelo completo.
// Lo consumen otros módulos (applications) para evitar ciclos de imports.
// Solo el not-found del repo se traduce a "no existe"; cualquier otro fallo
// (DB caída, timeout) se propaga tal cual.
func (s *Service) Exists(ctx context.Context, petID int64) (bool, error) {
	_, err := s.repo.GetByID(ctx, petID)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}
