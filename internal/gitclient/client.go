package gitclient

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/oatfield-labs/octoview-cli/internal/core/ports/driven"
	"github.com/oatfield-labs/octoview-cli/internal/logger"
)

// Client satisfies every GitHub capability port.
var (
	_ driven.RepoSearcher = (*Client)(nil)
	_ driven.RepoLister   = (*Client)(nil)
	_ driven.IssueLister  = (*Client)(nil)
	_ driven.UserReader   = (*Client)(nil)
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// Client wraps the go-github client behind the capability ports. A client
// built with an empty token serves the public endpoints only.
type Client struct {
	gh      *gh.Client
	limiter *RateLimiter
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL (tests, GitHub Enterprise).
// The URL must end in a slash for go-github's relative resolution; one is
// appended if missing.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		if u, err := url.Parse(base); err == nil {
			c.gh.BaseURL = u
		}
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.gh = gh.NewClient(hc)
	}
}

// New creates a GitHub client. With a non-empty token all requests carry it
// as a bearer credential; an empty token yields an anonymous client for the
// public endpoints.
func New(ctx context.Context, token string, opts ...Option) *Client {
	var hc *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		hc = oauth2.NewClient(ctx, ts)
	} else {
		hc = &http.Client{}
	}
	hc.Timeout = DefaultTimeout

	c := &Client{
		gh:      gh.NewClient(hc),
		limiter: NewRateLimiter(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RateLimiter returns the rate limiter for external inspection.
func (c *Client) RateLimiter() *RateLimiter {
	return c.limiter
}

// finishResponse updates the rate limiter from response headers and logs
// when the page-size exhaustion heuristic disagrees with the Link header.
// got/want describe the fetched page; pass want=0 to skip the check.
func (c *Client) finishResponse(resp *gh.Response, op string, got, want int) {
	if resp == nil || resp.Response == nil {
		return
	}
	c.limiter.UpdateFromResponse(resp.Response)

	if want > 0 && got < want && HasNextPage(resp.Header.Get("Link")) {
		// Short page but the server says more exist. The feed will treat
		// this as end-of-data; surface the discrepancy in verbose mode.
		logger.Warn("%s: short page (%d of %d) but Link header reports a next page", op, got, want)
	}
}
