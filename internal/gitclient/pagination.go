package gitclient

import (
	"regexp"
	"strings"
)

// linkRegex matches Link header entries: <url>; rel="type".
var linkRegex = regexp.MustCompile(`<([^>]+)>;\s*rel="([^"]+)"`)

// ParseNextLink extracts the "next" URL from a Link header.
// Returns empty string if no next link is found.
func ParseNextLink(linkHeader string) string {
	if linkHeader == "" {
		return ""
	}

	parts := strings.Split(linkHeader, ",")
	for _, part := range parts {
		matches := linkRegex.FindStringSubmatch(strings.TrimSpace(part))
		if len(matches) == 3 && matches[2] == "next" {
			return matches[1]
		}
	}

	return ""
}

// HasNextPage checks if there is a next page available.
func HasNextPage(linkHeader string) bool {
	return ParseNextLink(linkHeader) != ""
}
