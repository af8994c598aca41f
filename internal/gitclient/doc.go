// Package gitclient adapts the GitHub REST API (via go-github) to the
// narrow capability ports the core services consume. Every list method
// fetches exactly one page; pagination policy lives in the feed state
// machine, not here.
package gitclient
