package domain

import (
	"context"
	"errors"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotAuthenticated indicates an operation requires a session token
	// and none is stored. Surfaced before any network call is made.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoSession indicates no session row exists in the store.
	ErrNoSession = errors.New("no session")
)

// ErrorClass is a coarse failure taxonomy. The UI flattens every failure to
// a message string, but the class is kept so tests and callers can tell a
// transient transport fault from a permanent API rejection.
type ErrorClass int

const (
	// ClassUnknown is an unclassified failure.
	ClassUnknown ErrorClass = iota

	// ClassAuth is a missing or rejected credential.
	ClassAuth

	// ClassTransport is a network-level fault: connection refused, reset,
	// timeout. Transient; the same request may succeed on retry.
	ClassTransport

	// ClassAPI is a non-2xx response from the remote API. Permanent for the
	// request as issued.
	ClassAPI

	// ClassDecode is a malformed response body.
	ClassDecode
)

// String returns the class name.
func (c ErrorClass) String() string {
	switch c {
	case ClassAuth:
		return "auth"
	case ClassTransport:
		return "transport"
	case ClassAPI:
		return "api"
	case ClassDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Transient reports whether a retry of the identical request could succeed.
func (c ErrorClass) Transient() bool {
	return c == ClassTransport || c == ClassUnknown
}

// Classified is implemented by infrastructure errors that know their class.
type Classified interface {
	error
	ErrorClass() ErrorClass
}

// Classify maps an error onto the failure taxonomy. Errors that implement
// Classified report their own class; everything else defaults to transport,
// the conservative (retryable) choice.
func Classify(err error) ErrorClass {
	if err == nil {
		return ClassUnknown
	}
	if errors.Is(err, ErrNotAuthenticated) {
		return ClassAuth
	}
	var c Classified
	if errors.As(err, &c) {
		return c.ErrorClass()
	}
	return ClassTransport
}

// FailureMessage reduces an error to the single human-readable string shown
// in the UI.
func FailureMessage(err error) string {
	if err == nil {
		return ""
	}
	switch {
	case errors.Is(err, ErrNotAuthenticated):
		return "Not authenticated"
	case errors.Is(err, context.DeadlineExceeded):
		return "Request timed out"
	case errors.Is(err, context.Canceled):
		return "Request cancelled"
	}
	var c Classified
	if errors.As(err, &c) {
		return c.Error()
	}
	return err.Error()
}
