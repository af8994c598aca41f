package gitclient

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v80/github"

	"github.com/oatfield-labs/octoview-cli/internal/core/domain"
)

// ListUserRepos returns one page of the given user's repositories, most
// recently updated first.
func (c *Client) ListUserRepos(ctx context.Context, login string, page domain.PageRequest) ([]domain.Repository, error) {
	if login == "" {
		return nil, domain.ErrInvalidInput
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	opts := &gh.RepositoryListByUserOptions{
		Sort:        "updated",
		Direction:   "desc",
		ListOptions: gh.ListOptions{Page: page.Number, PerPage: page.Size},
	}

	repos, resp, err := c.gh.Repositories.ListByUser(ctx, login, opts)
	if err != nil {
		return nil, c.wrapError(err, "list user repos")
	}

	mapped := mapRepositories(repos)
	c.finishResponse(resp, "list user repos", len(mapped), page.Size)
	return mapped, nil
}
