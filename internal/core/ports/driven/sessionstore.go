package driven

import (
	"context"

	"github.com/oatfield-labs/octoview-cli/internal/core/domain"
)

// SessionStore persists the single local session. At most one session exists
// at a time; saving replaces any previous one.
type SessionStore interface {
	// Save stores the session, replacing an existing one.
	Save(ctx context.Context, session domain.Session) error

	// Get returns the stored session, or domain.ErrNoSession if none exists.
	Get(ctx context.Context) (*domain.Session, error)

	// Delete removes the stored session. Deleting when none exists is not
	// an error.
	Delete(ctx context.Context) error
}
