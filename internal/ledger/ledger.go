// Package ledger owns profile persistence during a session. State
// lives in memory and is committed whole after every mutation; each
// commit counts as one locally owned change awaiting remote sync.
package ledger

import (
	"context"
	"fmt"

	"github.com/abhisek/vidya/internal/learner"
	"github.com/abhisek/vidya/internal/store"
)

// Ledger commits learner profiles to the store.
type Ledger struct {
	profiles store.ProfileRepo
	key      string
}

// New creates a ledger for the profile stored under key.
func New(profiles store.ProfileRepo, key string) *Ledger {
	return &Ledger{profiles: profiles, key: key}
}

// Load returns the stored profile, or (nil, nil) when none exists.
func (l *Ledger) Load(ctx context.Context) (*learner.Profile, error) {
	return l.profiles.Load(ctx, l.key)
}

// LoadOrCreate returns the stored profile, creating and committing a
// fresh one when none exists.
func (l *Ledger) LoadOrCreate(ctx context.Context, name, grade string) (*learner.Profile, error) {
	p, err := l.profiles.Load(ctx, l.key)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	p = learner.New(name, grade)
	if err := l.Commit(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Commit bumps the pending-sync counter and persists the whole record.
// The counter is bumped before the write and is not rolled back on
// failure: the in-memory state has already diverged from storage, which
// is exactly what the counter reports.
func (l *Ledger) Commit(ctx context.Context, p *learner.Profile) error {
	p.PendingSyncCount++
	if err := l.profiles.Save(ctx, l.key, p); err != nil {
		return fmt.Errorf("commit profile: %w", err)
	}
	return nil
}

// Clear deletes the stored record. Used by the reset command.
func (l *Ledger) Clear(ctx context.Context) error {
	return l.profiles.Delete(ctx, l.key)
}
