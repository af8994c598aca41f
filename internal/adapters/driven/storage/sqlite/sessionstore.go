package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/oatfield-labs/octoview-cli/internal/core/domain"
	"github.com/oatfield-labs/octoview-cli/internal/core/ports/driven"
)

// Ensure sessionStore implements the interface.
var _ driven.SessionStore = (*sessionStore)(nil)

// sessionStore persists the single local session.
type sessionStore struct {
	store *Store
}

// SessionStore returns a SessionStore interface backed by this store.
func (s *Store) SessionStore() driven.SessionStore {
	return &sessionStore{store: s}
}

// Save stores the session, replacing any existing one. The table never
// holds more than one row.
func (s *sessionStore) Save(ctx context.Context, session domain.Session) error {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM session"); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	_, err = tx.ExecContext(ctx,
		"INSERT INTO session (id, token, login, created_at) VALUES (?, ?, ?, ?)",
		session.ID, session.Token, session.Login, session.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("saving session: %w", err)
	}

	return tx.Commit()
}

// Get returns the stored session, or domain.ErrNoSession.
func (s *sessionStore) Get(ctx context.Context) (*domain.Session, error) {
	row := s.store.db.QueryRowContext(ctx,
		"SELECT id, token, login, created_at FROM session LIMIT 1")

	var session domain.Session
	err := row.Scan(&session.ID, &session.Token, &session.Login, &session.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("reading session: %w", err)
	}
	return &session, nil
}

// Delete removes the stored session.
func (s *sessionStore) Delete(ctx context.Context) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM session"); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}
