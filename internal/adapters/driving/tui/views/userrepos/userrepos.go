// Package userrepos provides the view for one user's repositories, with a
// profile header above the feed.
package userrepos

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/oatfield-labs/octoview-cli/internal/adapters/driving/tui/messages"
	"github.com/oatfield-labs/octoview-cli/internal/adapters/driving/tui/styles"
	"github.com/oatfield-labs/octoview-cli/internal/adapters/driving/tui/views/repolist"
	"github.com/oatfield-labs/octoview-cli/internal/core/domain"
	"github.com/oatfield-labs/octoview-cli/internal/core/ports/driving"
)

const profileTimeout = 15 * time.Second

// View shows a profile header and the user's repository feed. The header
// loads independently of the list; either can fail without taking the
// other down.
type View struct {
	styles *styles.Styles
	browse driving.BrowseService

	login      string
	list       *repolist.View
	profile    *domain.User
	profileErr error
}

// NewView creates the user-repositories view. SetLogin must be called
// before the view is shown.
func NewView(s *styles.Styles, browse driving.BrowseService) *View {
	return &View{
		styles: s,
		browse: browse,
	}
}

// Login returns the login the view is currently showing.
func (v *View) Login() string {
	return v.login
}

// Selected returns the repository under the cursor.
func (v *View) Selected() (domain.Repository, bool) {
	if v.list == nil {
		return domain.Repository{}, false
	}
	return v.list.Selected()
}

// SetLogin points the view at a user, resetting the feed and the profile
// header, and returns the commands that load both.
func (v *View) SetLogin(login string) tea.Cmd {
	v.login = login
	v.profile = nil
	v.profileErr = nil

	listCmd := tea.Cmd(nil)
	if v.list == nil {
		v.list = repolist.NewView(v.styles, messages.ViewUserRepos, login, v.browse.UserRepos(login))
		listCmd = v.list.Init()
	} else {
		listCmd = v.list.SetPager(v.browse.UserRepos(login))
	}
	return tea.Batch(listCmd, v.loadProfile(login))
}

func (v *View) loadProfile(login string) tea.Cmd {
	browse := v.browse
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), profileTimeout)
		defer cancel()
		user, err := browse.UserProfile(ctx, login)
		return messages.ProfileLoaded{User: user, Err: err}
	}
}

// Init is a no-op; SetLogin returns the loading commands.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the user-repositories view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if p, ok := msg.(messages.ProfileLoaded); ok {
		v.profile = p.User
		v.profileErr = p.Err
		return v, nil
	}
	if v.list == nil {
		return v, nil
	}
	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// View renders the profile header and the repository list.
func (v *View) View() string {
	out := v.renderHeader()
	if v.list != nil {
		out += v.list.View()
	}
	return out
}

func (v *View) renderHeader() string {
	switch {
	case v.profile != nil:
		name := v.profile.Login
		if v.profile.Name != "" {
			name = fmt.Sprintf("%s (%s)", v.profile.Name, v.profile.Login)
		}
		out := v.styles.Title.Render(name) + "\n"
		if v.profile.Bio != "" {
			out += v.styles.Normal.Render(v.profile.Bio) + "\n"
		}
		out += v.styles.Muted.Render(fmt.Sprintf(
			"%d repos · %d followers · %d following",
			v.profile.PublicRepos, v.profile.Followers, v.profile.Following,
		)) + "\n\n"
		return out
	case v.profileErr != nil:
		// Header failures stay out of the way; the list is the point.
		return v.styles.Muted.Render(
			fmt.Sprintf("%s — profile unavailable: %s", v.login, domain.FailureMessage(v.profileErr)),
		) + "\n\n"
	default:
		return v.styles.Muted.Render(v.login) + "\n\n"
	}
}
