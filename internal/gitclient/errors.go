package gitclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	gh "github.com/google/go-github/v80/github"

	"github.com/oatfield-labs/octoview-cli/internal/core/domain"
)

// APIError represents a non-2xx GitHub API response. Permanent for the
// request as issued.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github: API error %d: %s", e.StatusCode, e.Message)
}

// ErrorClass implements domain.Classified.
func (e *APIError) ErrorClass() domain.ErrorClass {
	if e.StatusCode == 401 {
		return domain.ClassAuth
	}
	return domain.ClassAPI
}

// RateLimitError represents a rate limit exceeded error with reset time.
type RateLimitError struct {
	ResetAt   time.Time
	Remaining int
	Limit     int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("github: rate limit exceeded, resets at %s", e.ResetAt.Format(time.RFC3339))
}

// ErrorClass implements domain.Classified. Rate limiting clears on its own,
// so it counts as transient.
func (e *RateLimitError) ErrorClass() domain.ErrorClass {
	return domain.ClassTransport
}

// TransportError is a network-level failure before any response arrived.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("github: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ErrorClass implements domain.Classified.
func (e *TransportError) ErrorClass() domain.ErrorClass {
	return domain.ClassTransport
}

// DecodeError is a malformed response body.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("github: %s: decode response: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ErrorClass implements domain.Classified.
func (e *DecodeError) ErrorClass() domain.ErrorClass {
	return domain.ClassDecode
}

// IsNotFound checks if the error indicates a resource was not found.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}

// IsUnauthorized checks if the error indicates an authentication failure.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 401
}

// IsRateLimited checks if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	var rlErr *RateLimitError
	return errors.As(err, &rlErr)
}

// wrapError converts go-github errors to our error types.
func (c *Client) wrapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return &RateLimitError{
			ResetAt:   c.limiter.ResetTime(),
			Remaining: c.limiter.Remaining(),
			Limit:     c.limiter.Limit(),
		}
	}

	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) {
		apiErr := &APIError{
			StatusCode: ghErr.Response.StatusCode,
			Message:    ghErr.Message,
		}
		if ghErr.Response.Request != nil && ghErr.Response.Request.URL != nil {
			apiErr.URL = ghErr.Response.Request.URL.String()
		}
		return apiErr
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &TransportError{Op: operation, Err: err}
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return &DecodeError{Op: operation, Err: err}
	}

	return &TransportError{Op: operation, Err: err}
}
