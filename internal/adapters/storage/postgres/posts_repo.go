package postgres

import (
	"context"
	"database/sql"

	"pet-haven/internal/domain/posts"
)

type PostsRepo struct {
	db *sql.DB
}

func NewPostsRepo(db *sql.DB) *PostsRepo {
	return &PostsRepo{db: db}
}

func (r *PostsRepo) Create(ctx context.Context, p posts.Post) (posts.Post, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO community_posts (created_at, user_id, user_email, title, content)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`,
		p.CreatedAt,
		p.UserID,
		p.UserEmail,
		p.Title,
		p.Content,
	)

	if err := row.Scan(&p.ID); err != nil {
		return posts.Post{}, err
	}
	return p, nil
}

func (r *PostsRepo) GetByID(ctx context.Context, id int64) (posts.Post, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, created_at, user_id, user_email, title, content
		FROM community_posts
		WHERE id = $1
	`, id)

	var p posts.Post
	if err := row.Scan(&p.ID, &p.CreatedAt, &p.UserID, &p.UserEmail, &p.Title, &p.Content); err != nil {
		if err == sql.ErrNoRows {
			return posts.Post{}, posts.ErrNotFound
		}
		return posts.Post{}, err
	}
	return p, nil
}

func (r *PostsRepo) List(ctx context.Context) ([]posts.Post, error) {
	// el orden newest-first es parte del contrato del repo
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, created_at, user_id, user_email, title, content
		FROM community_posts
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]posts.Post, 0)
	for rows.Next() {
		var p posts.Post
		if err := rows.Scan(&p.ID, &p.CreatedAt, &p.UserID, &p.UserEmail, &p.Title, &p.Content); err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

func (r *PostsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM community_posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return posts.ErrNotFound
	}
	return nil
}
