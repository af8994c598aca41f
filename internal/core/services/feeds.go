package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/oatfield-labs/octoview-cli/internal/core/domain"
	"github.com/oatfield-labs/octoview-cli/internal/core/ports/driven"
	"github.com/oatfield-labs/octoview-cli/internal/core/ports/driving"
	"github.com/oatfield-labs/octoview-cli/internal/logger"
)

// Ensure BrowseService implements the interface.
var _ driving.BrowseService = (*BrowseService)(nil)

// FeedSource fetches one page of items for a feed.
type FeedSource[T any] func(ctx context.Context, page domain.PageRequest) ([]T, error)

// pager binds a feed state machine to a page source. A mutex keeps the state
// consistent when loads are issued from different goroutines; it does not
// serialise overlapping refresh/load-more requests beyond what the feed's
// own guards do, so a refresh racing a load-more resolves last-write-wins.
type pager[T any] struct {
	mu     sync.Mutex
	feed   *domain.Feed[T]
	source FeedSource[T]
	name   string
}

// NewPager creates a pager over the given source. The name is used only in
// verbose logs.
func NewPager[T any](name string, pageSize int, source FeedSource[T]) driving.Pager[T] {
	return &pager[T]{
		feed:   domain.NewFeed[T](pageSize),
		source: source,
		name:   name,
	}
}

func (p *pager[T]) Feed() *domain.Feed[T] { return p.feed }

func (p *pager[T]) LoadInitial(ctx context.Context) bool {
	p.mu.Lock()
	page, ok := p.feed.BeginInitial()
	p.mu.Unlock()
	if !ok {
		return false
	}
	p.fetch(ctx, page)
	return true
}

func (p *pager[T]) LoadMore(ctx context.Context) bool {
	p.mu.Lock()
	page, ok := p.feed.BeginLoadMore()
	p.mu.Unlock()
	if !ok {
		logger.Debug("feed %s: load-more blocked by guard", p.name)
		return false
	}
	p.fetch(ctx, page)
	return true
}

func (p *pager[T]) Refresh(ctx context.Context) bool {
	p.mu.Lock()
	page, ok := p.feed.BeginRefresh()
	p.mu.Unlock()
	if !ok {
		return false
	}
	p.fetch(ctx, page)
	return true
}

func (p *pager[T]) Retry(ctx context.Context) bool {
	p.mu.Lock()
	page, ok := p.feed.Retry()
	p.mu.Unlock()
	if !ok {
		return false
	}
	p.fetch(ctx, page)
	return true
}

// fetch runs the page request and applies the outcome to the feed.
func (p *pager[T]) fetch(ctx context.Context, page domain.PageRequest) {
	items, err := p.source(ctx, page)
	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		logger.Debug("feed %s: page %d failed: %v", p.name, page.Number, err)
		p.feed.Fail(err)
		return
	}
	logger.Debug("feed %s: page %d loaded, %d items", p.name, page.Number, len(items))
	p.feed.Complete(items)
}

// BrowseService builds the four feed instantiations. Each pager is a fresh
// state machine; screens own their pagers for the life of a view.
type BrowseService struct {
	searcher driven.RepoSearcher
	repos    driven.RepoLister
	issues   driven.IssueLister
	users    driven.UserReader

	pageSize int
	minStars int
}

// BrowseOption configures a BrowseService.
type BrowseOption func(*BrowseService)

// WithPageSize sets the per-page size for all feeds.
func WithPageSize(n int) BrowseOption {
	return func(s *BrowseService) { s.pageSize = n }
}

// WithMinStars sets the star floor for the popular feed query.
func WithMinStars(n int) BrowseOption {
	return func(s *BrowseService) { s.minStars = n }
}

// defaultMinStars is the star floor for the popular feed when unconfigured.
const defaultMinStars = 1000

// NewBrowseService creates a browse service over the GitHub capability ports.
func NewBrowseService(
	searcher driven.RepoSearcher,
	repos driven.RepoLister,
	issues driven.IssueLister,
	users driven.UserReader,
	opts ...BrowseOption,
) *BrowseService {
	s := &BrowseService{
		searcher: searcher,
		repos:    repos,
		issues:   issues,
		users:    users,
		pageSize: domain.DefaultPageSize,
		minStars: defaultMinStars,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PopularRepos returns the popular-repositories feed: a star-floor search
// ordered by stargazer count.
func (s *BrowseService) PopularRepos() driving.Pager[domain.Repository] {
	query := fmt.Sprintf("stars:>=%d", s.minStars)
	return NewPager("popular", s.pageSize, func(ctx context.Context, page domain.PageRequest) ([]domain.Repository, error) {
		return s.searcher.SearchRepos(ctx, query, "stars", page)
	})
}

// SearchRepos returns the repository-search feed for a query.
func (s *BrowseService) SearchRepos(query string) driving.Pager[domain.Repository] {
	return NewPager("search", s.pageSize, func(ctx context.Context, page domain.PageRequest) ([]domain.Repository, error) {
		return s.searcher.SearchRepos(ctx, query, "", page)
	})
}

// UserRepos returns the feed of a user's repositories.
func (s *BrowseService) UserRepos(login string) driving.Pager[domain.Repository] {
	return NewPager("user_repos", s.pageSize, func(ctx context.Context, page domain.PageRequest) ([]domain.Repository, error) {
		return s.repos.ListUserRepos(ctx, login, page)
	})
}

// RepoIssues returns the issues feed for one repository.
func (s *BrowseService) RepoIssues(owner, repo string, state domain.IssueState) driving.Pager[domain.Issue] {
	if !state.Valid() {
		state = domain.IssueOpen
	}
	return NewPager("issues", s.pageSize, func(ctx context.Context, page domain.PageRequest) ([]domain.Issue, error) {
		return s.issues.ListIssues(ctx, owner, repo, state, page)
	})
}

// UserProfile fetches a user profile.
func (s *BrowseService) UserProfile(ctx context.Context, login string) (*domain.User, error) {
	if login == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.users.GetUser(ctx, login)
}
