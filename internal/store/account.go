package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Account is a locally registered learner: a mobile number, a hashed
// secret, and the key of the profile record it owns.
type Account struct {
	Mobile     string
	SecretHash string
	ProfileKey string
	CreatedAt  time.Time
}

// ErrAccountExists is returned when registering an already-known mobile.
var ErrAccountExists = errors.New("account already exists")

// AccountRepo manages the registered-accounts table.
type AccountRepo interface {
	// Create inserts a new account. Returns ErrAccountExists when the
	// mobile number is already registered.
	Create(ctx context.Context, a Account) error

	// ByMobile returns the account, or (nil, nil) when not registered.
	ByMobile(ctx context.Context, mobile string) (*Account, error)
}

type accountRepo struct {
	db *sql.DB
}

func (r *accountRepo) Create(ctx context.Context, a Account) error {
	existing, err := r.ByMobile(ctx, a.Mobile)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrAccountExists
	}

	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO accounts (mobile, secret_hash, profile_key, created_at) VALUES (?, ?, ?, ?)`,
		a.Mobile, a.SecretHash, a.ProfileKey, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("create account: %w", err)
	}
	return nil
}

func (r *accountRepo) ByMobile(ctx context.Context, mobile string) (*Account, error) {
	var a Account
	err := r.db.QueryRowContext(ctx,
		`SELECT mobile, secret_hash, profile_key, created_at FROM accounts WHERE mobile = ?`,
		mobile).Scan(&a.Mobile, &a.SecretHash, &a.ProfileKey, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query account: %w", err)
	}
	return &a, nil
}
