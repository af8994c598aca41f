package domain

import "time"

// Repository is a GitHub repository record as shown in list views.
type Repository struct {
	// ID is the numeric GitHub repository ID.
	ID int64

	// Owner is the login of the owning user or organisation.
	Owner string

	// Name is the repository name without the owner.
	Name string

	// FullName is "owner/name".
	FullName string

	// Description is the short repository description, possibly empty.
	Description string

	// Language is the primary language, possibly empty.
	Language string

	// Stars is the stargazer count.
	Stars int

	// Forks is the fork count.
	Forks int

	// OpenIssues is the open issue count (includes open PRs, as reported
	// by the API).
	OpenIssues int

	// Fork reports whether this repository is itself a fork.
	Fork bool

	// HTMLURL is the web URL of the repository.
	HTMLURL string

	// UpdatedAt is the last update timestamp.
	UpdatedAt time.Time
}
