package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"pet-haven/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO pets (
			owner_user_id,
			name, species, breed, age,
			image_url, description, tags, contact,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING id
	`,
		nullOwner(p.OwnerUserID),
		p.Name,
		string(p.Species),
		p.Breed,
		p.Age,
		p.ImageURL,
		p.Description,
		tagsJSON(p.Tags),
		p.Contact,
		p.CreatedAt,
		p.UpdatedAt,
	)

	if err := row.Scan(&p.ID); err != nil {
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			name = $2,
			species = $3,
			breed = $4,
			age = $5,
			image_url = $6,
			description = $7,
			tags = $8,
			contact = $9,
			updated_at = $10
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		string(p.Species),
		p.Breed,
		p.Age,
		p.ImageURL,
		p.Description,
		tagsJSON(p.Tags),
		p.Contact,
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, owner_user_id,
			name, species, breed, age,
			image_url, description, tags, contact,
			created_at, updated_at
		FROM pets
		WHERE id = $1
	`, id)

	p, err := scanPet(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, owner_user_id,
			name, species, breed, age,
			image_url, description, tags, contact,
			created_at, updated_at
		FROM pets
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPet(row rowScanner) (pets.Pet, error) {
	var p pets.Pet
	var owner sql.NullString
	var species string
	var rawTags []byte

	if err := row.Scan(
		&p.ID,
		&owner,
		&p.Name,
		&species,
		&p.Breed,
		&p.Age,
		&p.ImageURL,
		&p.Description,
		&rawTags,
		&p.Contact,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return pets.Pet{}, err
	}

	if owner.Valid {
		p.OwnerUserID = owner.String
	}
	p.Species = pets.Species(species)
	if len(rawTags) > 0 {
		_ = json.Unmarshal(rawTags, &p.Tags)
	}

	return p, nil
}

// tags va como JSONB; más simple que pelear con arrays de Postgres vía database/sql
func tagsJSON(tags []string) []byte {
	if tags == nil {
		tags = []string{}
	}
	b, _ := json.Marshal(tags)
	return b
}

func nullOwner(ownerUserID string) sql.NullString {
	if ownerUserID == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: ownerUserID, Valid: true}
}
