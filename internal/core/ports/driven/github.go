package driven

import (
	"context"

	"github.com/oatfield-labs/octoview-cli/internal/core/domain"
)

// The GitHub API surface is split into narrow capability interfaces, one per
// consumer, rather than a single wide client interface. Each list call
// fetches exactly one page; walking pages is the feed's job, not the
// client's.

// RepoSearcher searches repositories. Used by the popular and search feeds.
type RepoSearcher interface {
	// SearchRepos runs a repository search query and returns one page of
	// results. sort is a search sort field ("stars", "updated") or empty
	// for best-match ordering.
	SearchRepos(ctx context.Context, query, sort string, page domain.PageRequest) ([]domain.Repository, error)
}

// RepoLister lists a user's repositories. Used by the user-repos feed.
type RepoLister interface {
	// ListUserRepos returns one page of the given user's repositories,
	// most recently updated first.
	ListUserRepos(ctx context.Context, login string, page domain.PageRequest) ([]domain.Repository, error)
}

// IssueLister lists repository issues. Used by the issues feed.
type IssueLister interface {
	// ListIssues returns one page of issues for owner/repo filtered by
	// state.
	ListIssues(ctx context.Context, owner, repo string, state domain.IssueState, page domain.PageRequest) ([]domain.Issue, error)
}

// UserReader fetches user profiles.
type UserReader interface {
	// GetUser fetches the profile for a login.
	GetUser(ctx context.Context, login string) (*domain.User, error)

	// GetAuthenticatedUser fetches the profile of the token's owner.
	GetAuthenticatedUser(ctx context.Context) (*domain.User, error)
}
