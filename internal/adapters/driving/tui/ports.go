// Package tui provides the interactive terminal user interface for
// octoview. It implements a driving adapter following hexagonal
// architecture principles.
package tui

import (
	"errors"

	"github.com/oatfield-labs/octoview-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Browse constructs the feed pagers and serves profile lookups.
	Browse driving.BrowseService

	// Auth reads the session and serves the authenticated profile.
	Auth driving.AuthService
}

// Errors for missing ports.
var (
	ErrMissingBrowseService = errors.New("tui: browse service is required")
	ErrMissingAuthService   = errors.New("tui: auth service is required")
)

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Browse == nil {
		return ErrMissingBrowseService
	}
	if p.Auth == nil {
		return ErrMissingAuthService
	}
	return nil
}
