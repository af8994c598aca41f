package gitclient

import (
	"context"
	"fmt"

	"github.com/oatfield-labs/octoview-cli/internal/core/domain"
)

// GetUser fetches the profile for a login.
func (c *Client) GetUser(ctx context.Context, login string) (*domain.User, error) {
	if login == "" {
		return nil, domain.ErrInvalidInput
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	user, resp, err := c.gh.Users.Get(ctx, login)
	if err != nil {
		return nil, c.wrapError(err, "get user")
	}

	c.finishResponse(resp, "get user", 0, 0)
	return mapUser(user), nil
}

// GetAuthenticatedUser fetches the profile of the token's owner.
func (c *Client) GetAuthenticatedUser(ctx context.Context) (*domain.User, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	user, resp, err := c.gh.Users.Get(ctx, "")
	if err != nil {
		return nil, c.wrapError(err, "get authenticated user")
	}

	c.finishResponse(resp, "get authenticated user", 0, 0)
	return mapUser(user), nil
}
