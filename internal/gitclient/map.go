package gitclient

import (
	gh "github.com/google/go-github/v80/github"

	"github.com/oatfield-labs/octoview-cli/internal/core/domain"
)

// Mapping from go-github response types to domain records. Only the fields
// the list screens render are carried over.

func mapRepository(r *gh.Repository) domain.Repository {
	repo := domain.Repository{
		ID:          r.GetID(),
		Name:        r.GetName(),
		FullName:    r.GetFullName(),
		Description: r.GetDescription(),
		Language:    r.GetLanguage(),
		Stars:       r.GetStargazersCount(),
		Forks:       r.GetForksCount(),
		OpenIssues:  r.GetOpenIssuesCount(),
		Fork:        r.GetFork(),
		HTMLURL:     r.GetHTMLURL(),
		UpdatedAt:   r.GetUpdatedAt().Time,
	}
	if owner := r.GetOwner(); owner != nil {
		repo.Owner = owner.GetLogin()
	}
	return repo
}

func mapRepositories(repos []*gh.Repository) []domain.Repository {
	out := make([]domain.Repository, 0, len(repos))
	for _, r := range repos {
		if r == nil {
			continue
		}
		out = append(out, mapRepository(r))
	}
	return out
}

func mapIssue(i *gh.Issue) domain.Issue {
	issue := domain.Issue{
		Number:    i.GetNumber(),
		Title:     i.GetTitle(),
		State:     i.GetState(),
		Comments:  i.GetComments(),
		HTMLURL:   i.GetHTMLURL(),
		CreatedAt: i.GetCreatedAt().Time,
		UpdatedAt: i.GetUpdatedAt().Time,
	}
	if user := i.GetUser(); user != nil {
		issue.Author = user.GetLogin()
	}
	for _, l := range i.Labels {
		if l != nil {
			issue.Labels = append(issue.Labels, l.GetName())
		}
	}
	return issue
}

func mapIssues(issues []*gh.Issue) []domain.Issue {
	out := make([]domain.Issue, 0, len(issues))
	for _, i := range issues {
		if i == nil {
			continue
		}
		out = append(out, mapIssue(i))
	}
	return out
}

func mapUser(u *gh.User) *domain.User {
	return &domain.User{
		Login:       u.GetLogin(),
		Name:        u.GetName(),
		Bio:         u.GetBio(),
		Company:     u.GetCompany(),
		Location:    u.GetLocation(),
		AvatarURL:   u.GetAvatarURL(),
		HTMLURL:     u.GetHTMLURL(),
		PublicRepos: u.GetPublicRepos(),
		Followers:   u.GetFollowers(),
		Following:   u.GetFollowing(),
	}
}
