package postgres

import (
	"context"
	"encoding/json"

	"github.com/aussiebroadwan/devconnector/internal/devconnector/domain"
	"github.com/aussiebroadwan/devconnector/internal/devconnector/store"
)

type postsRepo struct {
	q querier
}

func scanPost(row interface{ Scan(...any) error }) (domain.Post, error) {
	var doc string
	if err := row.Scan(&doc); err != nil {
		return domain.Post{}, mapNotFound(err)
	}

	var p domain.Post
	if err := json.Unmarshal([]byte(doc), &p); err != nil {
		return domain.Post{}, err
	}
	p.Normalize()
	return p, nil
}

func (r *postsRepo) GetPostByID(ctx context.Context, id string) (domain.Post, error) {
	return scanPost(r.q.QueryRowContext(ctx, `SELECT doc::text FROM posts WHERE id = $1`, id))
}

func (r *postsRepo) ListPosts(ctx context.Context) ([]domain.Post, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT doc::text FROM posts ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *postsRepo) CreatePost(ctx context.Context, p domain.Post) error {
	p.Normalize()
	doc, err := json.Marshal(p)
	if err != nil {
		return err
	}

	_, err = r.q.ExecContext(ctx,
		`INSERT INTO posts (id, user_id, doc, created_at) VALUES ($1, $2, $3::jsonb, $4)`,
		p.ID, p.UserID, string(doc), p.CreatedAt,
	)
	if isUniqueViolation(err) {
		return store.ErrAlreadyExists
	}
	return err
}

func (r *postsRepo) SavePost(ctx context.Context, p domain.Post) error {
	p.Normalize()
	doc, err := json.Marshal(p)
	if err != nil {
		return err
	}

	res, err := r.q.ExecContext(ctx, `UPDATE posts SET doc = $1::jsonb WHERE id = $2`, string(doc), p.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *postsRepo) DeletePost(ctx context.Context, id string) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	return err
}

func (r *postsRepo) DeletePostsByUserID(ctx context.Context, userID string) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM posts WHERE user_id = $1`, userID)
	return err
}
