// Package domain holds the core types of octoview: the feed state machine
// that drives every paginated list screen, the GitHub records those lists
// display, the session that proves authentication, and the failure taxonomy.
// The package is pure: no IO, no dependencies on adapters.
package domain
