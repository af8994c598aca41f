package gitclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNextLink(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{
			name:     "empty header",
			header:   "",
			expected: "",
		},
		{
			name:     "next and last",
			header:   `<https://api.github.com/search/repositories?page=2>; rel="next", <https://api.github.com/search/repositories?page=34>; rel="last"`,
			expected: "https://api.github.com/search/repositories?page=2",
		},
		{
			name:     "last page",
			header:   `<https://api.github.com/search/repositories?page=33>; rel="prev", <https://api.github.com/search/repositories?page=1>; rel="first"`,
			expected: "",
		},
		{
			name:     "next only",
			header:   `<https://api.github.com/user/repos?page=5>; rel="next"`,
			expected: "https://api.github.com/user/repos?page=5",
		},
		{
			name:     "malformed entry ignored",
			header:   `garbage, <https://api.github.com/x?page=2>; rel="next"`,
			expected: "https://api.github.com/x?page=2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseNextLink(tt.header))
		})
	}
}

func TestHasNextPage(t *testing.T) {
	assert.True(t, HasNextPage(`<https://api.github.com/x?page=2>; rel="next"`))
	assert.False(t, HasNextPage(`<https://api.github.com/x?page=1>; rel="first"`))
	assert.False(t, HasNextPage(""))
}
