package domain

import "time"

// IssueState filters issue list requests.
type IssueState string

const (
	IssueOpen   IssueState = "open"
	IssueClosed IssueState = "closed"
	IssueAll    IssueState = "all"
)

// Valid reports whether the state is one of the accepted filter values.
func (s IssueState) Valid() bool {
	switch s {
	case IssueOpen, IssueClosed, IssueAll:
		return true
	default:
		return false
	}
}

// Issue is a GitHub issue record as shown in list views.
type Issue struct {
	// Number is the issue number within its repository.
	Number int

	// Title is the issue title.
	Title string

	// State is "open" or "closed".
	State string

	// Author is the login of the issue creator.
	Author string

	// Labels holds the label names.
	Labels []string

	// Comments is the comment count.
	Comments int

	// HTMLURL is the web URL of the issue.
	HTMLURL string

	// CreatedAt is the creation timestamp.
	CreatedAt time.Time

	// UpdatedAt is the last activity timestamp.
	UpdatedAt time.Time
}
