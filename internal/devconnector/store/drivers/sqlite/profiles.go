package sqlite

import (
	"context"
	"encoding/json"
	"time"

	"github.com/aussiebroadwan/devconnector/internal/devconnector/domain"
	"github.com/aussiebroadwan/devconnector/internal/devconnector/store"
)

type profilesRepo struct {
	q querier
}

const selectProfile = `SELECT p.doc, u.id, u.name, u.avatar FROM profiles p JOIN users u ON u.id = p.user_id`

func scanProfile(row interface{ Scan(...any) error }) (domain.Profile, error) {
	var (
		doc   string
		owner domain.Owner
	)
	if err := row.Scan(&doc, &owner.ID, &owner.Name, &owner.Avatar); err != nil {
		return domain.Profile{}, mapNotFound(err)
	}

	var p domain.Profile
	if err := json.Unmarshal([]byte(doc), &p); err != nil {
		return domain.Profile{}, err
	}
	p.Owner = owner
	p.Normalize()
	return p, nil
}

func (r *profilesRepo) GetProfileByUserID(ctx context.Context, userID string) (domain.Profile, error) {
	return scanProfile(r.q.QueryRowContext(ctx, selectProfile+` WHERE p.user_id = ?`, userID))
}

func (r *profilesRepo) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	rows, err := r.q.QueryContext(ctx, selectProfile+` ORDER BY p.created_at ASC, p.id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Profile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// SaveProfile upserts on user_id. An existing row keeps its id and date.
func (r *profilesRepo) SaveProfile(ctx context.Context, p domain.Profile) error {
	p.Normalize()
	doc, err := json.Marshal(p)
	if err != nil {
		return err
	}

	_, err = r.q.ExecContext(ctx, `
		INSERT INTO profiles (id, user_id, doc, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			doc = json_set(excluded.doc,
				'$.id', json_extract(profiles.doc, '$.id'),
				'$.date', json_extract(profiles.doc, '$.date')),
			updated_at = excluded.updated_at`,
		p.ID, p.UserID, string(doc), toMillis(p.CreatedAt), toMillis(time.Now()),
	)
	if isUniqueViolation(err) {
		return store.ErrAlreadyExists
	}
	return err
}

func (r *profilesRepo) DeleteProfileByUserID(ctx context.Context, userID string) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM profiles WHERE user_id = ?`, userID)
	return err
}
