package postgres

import (
	"context"
	"database/sql"

	"pet-haven/internal/domain/applications"
)

type ApplicationsRepo struct {
	db *sql.DB
}

func NewApplicationsRepo(db *sql.DB) *ApplicationsRepo {
	return &ApplicationsRepo{db: db}
}

func (r *ApplicationsRepo) Create(ctx context.Context, a applications.Application) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO applications (
			id, user_id, pet_id,
			message, contact_info, status,
			created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		a.ID,
		a.UserID,
		a.PetID,
		a.Message,
		a.ContactInfo,
		string(a.Status),
		a.CreatedAt,
	)
	return err
}
