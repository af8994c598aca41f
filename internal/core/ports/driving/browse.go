package driving

import (
	"context"

	"github.com/oatfield-labs/octoview-cli/internal/core/domain"
)

// Pager drives one paginated list screen. All methods are synchronous; the
// caller decides whether to run them on a background goroutine (the TUI
// wraps them in commands, the CLI calls them inline). The guard conditions
// live in the state machine: a disallowed transition returns false and
// performs no IO.
type Pager[T any] interface {
	// Feed exposes the underlying feed state for rendering.
	Feed() *domain.Feed[T]

	// LoadInitial performs the first page load. Returns false if the feed
	// is not in a state that allows it.
	LoadInitial(ctx context.Context) bool

	// LoadMore fetches and appends the next page. Returns false when the
	// guard blocks it (already loading, exhausted, or nothing loaded yet).
	LoadMore(ctx context.Context) bool

	// Refresh reloads from page one, replacing the collection on success.
	Refresh(ctx context.Context) bool

	// Retry re-runs the load that failed, without moving the cursor.
	Retry(ctx context.Context) bool
}

// BrowseService constructs the four feed instantiations and serves profile
// lookups. Each call returns a fresh pager; the caller owns its lifecycle.
type BrowseService interface {
	// PopularRepos is the popular-repositories feed: a star-floor search
	// ordered by stargazer count.
	PopularRepos() Pager[domain.Repository]

	// SearchRepos is the repository-search feed for a user query.
	SearchRepos(query string) Pager[domain.Repository]

	// UserRepos is the feed of a user's repositories.
	UserRepos(login string) Pager[domain.Repository]

	// RepoIssues is the issues feed for one repository.
	RepoIssues(owner, repo string, state domain.IssueState) Pager[domain.Issue]

	// UserProfile fetches a user profile (not paginated).
	UserProfile(ctx context.Context, login string) (*domain.User, error)
}
