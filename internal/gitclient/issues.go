package gitclient

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v80/github"

	"github.com/oatfield-labs/octoview-cli/internal/core/domain"
)

// ListIssues returns one page of issues for owner/repo filtered by state.
// The endpoint also reports pull requests as issues; they are kept so page
// sizes stay exact for the feed's end-of-data heuristic.
func (c *Client) ListIssues(ctx context.Context, owner, repo string, state domain.IssueState, page domain.PageRequest) ([]domain.Issue, error) {
	if owner == "" || repo == "" {
		return nil, domain.ErrInvalidInput
	}
	if !state.Valid() {
		state = domain.IssueOpen
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	opts := &gh.IssueListByRepoOptions{
		State:       string(state),
		Sort:        "updated",
		Direction:   "desc",
		ListOptions: gh.ListOptions{Page: page.Number, PerPage: page.Size},
	}

	issues, resp, err := c.gh.Issues.ListByRepo(ctx, owner, repo, opts)
	if err != nil {
		return nil, c.wrapError(err, "list issues")
	}

	mapped := mapIssues(issues)
	c.finishResponse(resp, "list issues", len(mapped), page.Size)
	return mapped, nil
}
