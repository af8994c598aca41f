package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type classifiedErr struct {
	msg   string
	class ErrorClass
}

func (e *classifiedErr) Error() string          { return e.msg }
func (e *classifiedErr) ErrorClass() ErrorClass { return e.class }

func TestErrorClass_String(t *testing.T) {
	tests := []struct {
		class    ErrorClass
		expected string
	}{
		{ClassUnknown, "unknown"},
		{ClassAuth, "auth"},
		{ClassTransport, "transport"},
		{ClassAPI, "api"},
		{ClassDecode, "decode"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.class.String())
		})
	}
}

func TestErrorClass_Transient(t *testing.T) {
	assert.True(t, ClassTransport.Transient())
	assert.True(t, ClassUnknown.Transient())
	assert.False(t, ClassAuth.Transient())
	assert.False(t, ClassAPI.Transient())
	assert.False(t, ClassDecode.Transient())
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorClass
	}{
		{"nil", nil, ClassUnknown},
		{"not authenticated", ErrNotAuthenticated, ClassAuth},
		{"wrapped not authenticated", fmt.Errorf("load: %w", ErrNotAuthenticated), ClassAuth},
		{"classified api", &classifiedErr{"403 forbidden", ClassAPI}, ClassAPI},
		{"classified decode", &classifiedErr{"bad json", ClassDecode}, ClassDecode},
		{"wrapped classified", fmt.Errorf("fetch: %w", &classifiedErr{"503", ClassAPI}), ClassAPI},
		{"plain error defaults to transport", errors.New("connection refused"), ClassTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.err))
		})
	}
}

func TestFailureMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil", nil, ""},
		{"not authenticated", ErrNotAuthenticated, "Not authenticated"},
		{"deadline", context.DeadlineExceeded, "Request timed out"},
		{"wrapped deadline", fmt.Errorf("search: %w", context.DeadlineExceeded), "Request timed out"},
		{"cancelled", context.Canceled, "Request cancelled"},
		{"classified uses its own message", fmt.Errorf("outer: %w", &classifiedErr{"rate limited until 12:00", ClassAPI}), "rate limited until 12:00"},
		{"plain error", errors.New("dial tcp: refused"), "dial tcp: refused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FailureMessage(tt.err))
		})
	}
}
