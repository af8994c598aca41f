// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/oatfield-labs/octoview-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewPopular is the popular repositories list.
	ViewPopular ViewType = iota
	// ViewSearch is the repository search view.
	ViewSearch
	// ViewUserRepos lists a user's repositories.
	ViewUserRepos
	// ViewIssues lists issues for one repository.
	ViewIssues
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewPopular:
		return "popular"
	case ViewSearch:
		return "search"
	case ViewUserRepos:
		return "user_repos"
	case ViewIssues:
		return "issues"
	default:
		return "unknown"
	}
}

// FeedUpdated signals that a pager finished a load (success or failure);
// the view re-renders from the feed state.
type FeedUpdated struct {
	View ViewType
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// RepoSelected asks for the issues view of the selected repository.
type RepoSelected struct {
	Owner string
	Repo  string
}

// OwnerSelected asks for the repositories view of the selected owner.
type OwnerSelected struct {
	Login string
}

// ProfileLoaded carries a user profile fetch result.
type ProfileLoaded struct {
	User *domain.User
	Err  error
}

// SessionLoaded carries the stored session (nil when logged out).
type SessionLoaded struct {
	Session *domain.Session
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}
