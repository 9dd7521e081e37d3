package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/vidya/internal/learner"
)

// ProfileRepo persists the whole learner record under one key.
// Writes are last-writer-wins for the entire record; there is no
// field-level merge.
type ProfileRepo interface {
	// Save stores the serialized profile, replacing any previous record.
	Save(ctx context.Context, key string, p *learner.Profile) error

	// Load returns the profile stored under key, or (nil, nil) when no
	// record exists.
	Load(ctx context.Context, key string) (*learner.Profile, error)

	// Delete removes the record. Used by explicit logout only.
	Delete(ctx context.Context, key string) error
}

type profileRepo struct {
	db *sql.DB
}

func (r *profileRepo) Save(ctx context.Context, key string, p *learner.Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO profiles (key, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		key, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (r *profileRepo) Load(ctx context.Context, key string) (*learner.Profile, error) {
	var data string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM profiles WHERE key = ?`, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	var p learner.Profile
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &p, nil
}

func (r *profileRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}
