package postgres

import (
	"context"
	"database/sql"

	"pet-haven/internal/domain/favorites"
)

type FavoritesRepo struct {
	db *sql.DB
}

func NewFavoritesRepo(db *sql.DB) *FavoritesRepo {
	return &FavoritesRepo{db: db}
}

func (r *FavoritesRepo) ListPetIDs(ctx context.Context, userID string) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT pet_id
		FROM favorites
		WHERE user_id = $1
		ORDER BY pet_id ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}

	return out, rows.Err()
}

func (r *FavoritesRepo) Add(ctx context.Context, f favorites.Favorite) error {
	// (user_id, pet_id) es unique; ON CONFLICT hace el insert idempotente
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO favorites (user_id, pet_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, pet_id) DO NOTHING
	`, f.UserID, f.PetID, f.CreatedAt)
	return err
}

func (r *FavoritesRepo) Remove(ctx context.Context, userID string, petID int64) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM favorites
		WHERE user_id = $1 AND pet_id = $2
	`, userID, petID)
	return err
}
