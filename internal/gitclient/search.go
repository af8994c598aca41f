package gitclient

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v80/github"

	"github.com/oatfield-labs/octoview-cli/internal/core/domain"
)

// SearchRepos runs a repository search query and returns one page of
// results. sort is a search sort field ("stars", "updated") or empty for
// best-match ordering.
func (c *Client) SearchRepos(ctx context.Context, query, sort string, page domain.PageRequest) ([]domain.Repository, error) {
	if query == "" {
		return nil, domain.ErrInvalidInput
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	opts := &gh.SearchOptions{
		Sort:        sort,
		Order:       "desc",
		ListOptions: gh.ListOptions{Page: page.Number, PerPage: page.Size},
	}

	result, resp, err := c.gh.Search.Repositories(ctx, query, opts)
	if err != nil {
		return nil, c.wrapError(err, "search repos")
	}

	repos := mapRepositories(result.Repositories)
	c.finishResponse(resp, "search repos", len(repos), page.Size)
	return repos, nil
}
