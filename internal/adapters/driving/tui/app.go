package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/oatfield-labs/octoview-cli/internal/adapters/driving/tui/messages"
	"github.com/oatfield-labs/octoview-cli/internal/adapters/driving/tui/styles"
	"github.com/oatfield-labs/octoview-cli/internal/adapters/driving/tui/views/issuelist"
	"github.com/oatfield-labs/octoview-cli/internal/adapters/driving/tui/views/repolist"
	"github.com/oatfield-labs/octoview-cli/internal/adapters/driving/tui/views/search"
	"github.com/oatfield-labs/octoview-cli/internal/adapters/driving/tui/views/userrepos"
	"github.com/oatfield-labs/octoview-cli/internal/core/domain"
	"github.com/oatfield-labs/octoview-cli/internal/logger"
)

const sessionTimeout = 5 * time.Second

// App is the root Bubbletea model. It owns the four screens, routes
// messages to them, and keeps a navigation stack so Esc walks back the
// way the user came.
type App struct {
	ports  *Ports
	styles *styles.Styles
	err    error

	width  int
	height int

	active messages.ViewType
	back   []messages.ViewType

	popular   *repolist.View
	search    *search.View
	userRepos *userrepos.View
	issues    *issuelist.View

	session *domain.Session
}

// NewApp creates the root TUI model.
func NewApp(ports *Ports) *App {
	app := &App{
		ports:  ports,
		styles: styles.NewStyles(styles.DefaultTheme()),
		active: messages.ViewPopular,
	}
	if err := ports.Validate(); err != nil {
		app.err = err
		return app
	}

	app.popular = repolist.NewView(app.styles, messages.ViewPopular, "Popular repositories", ports.Browse.PopularRepos())
	app.search = search.NewView(app.styles, ports.Browse)
	app.userRepos = userrepos.NewView(app.styles, ports.Browse)
	app.issues = issuelist.NewView(app.styles, ports.Browse)
	return app
}

// Init loads the popular feed and the stored session.
func (a *App) Init() tea.Cmd {
	if a.err != nil {
		return tea.Quit
	}
	return tea.Batch(a.popular.Init(), a.loadSession())
}

func (a *App) loadSession() tea.Cmd {
	auth := a.ports.Auth
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), sessionTimeout)
		defer cancel()
		session, err := auth.Session(ctx)
		if err != nil {
			if !errors.Is(err, domain.ErrNoSession) {
				logger.Warn("load session: %v", err)
			}
			return messages.SessionLoaded{}
		}
		return messages.SessionLoaded{Session: session}
	}
}

// Update routes messages through the application.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.err != nil {
		return a, tea.Quit
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Every view keeps its own copy of the dimensions.
		return a, a.broadcast(msg)

	case messages.SessionLoaded:
		a.session = msg.Session
		return a, nil

	case messages.RepoSelected:
		a.push(messages.ViewIssues)
		return a, a.issues.SetRepo(msg.Owner, msg.Repo)

	case messages.OwnerSelected:
		a.push(messages.ViewUserRepos)
		return a, a.userRepos.SetLogin(msg.Login)

	case messages.ViewChanged:
		a.push(msg.View)
		return a, nil

	case messages.FeedUpdated:
		return a, a.route(msg.View, msg)

	case messages.ProfileLoaded:
		return a, a.route(messages.ViewUserRepos, msg)

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	// Spinner ticks and anything else go to the active view.
	return a, a.route(a.active, msg)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	// While the search input has focus, letters are text, not shortcuts.
	typing := a.active == messages.ViewSearch && a.search.Typing()
	if typing && msg.String() == "esc" && a.search.Query() == "" {
		// Nothing to fall back to within the view; leave it instead.
		a.pop()
		return a, nil
	}
	if !typing {
		switch msg.String() {
		case "q":
			return a, tea.Quit
		case "esc":
			a.pop()
			return a, nil
		case "tab":
			if a.active == messages.ViewPopular {
				a.push(messages.ViewSearch)
			} else if a.active == messages.ViewSearch {
				a.pop()
			}
			return a, nil
		case "/":
			if a.active == messages.ViewPopular {
				a.push(messages.ViewSearch)
				return a, nil
			}
		case "enter":
			if repo, ok := a.selectedRepo(); ok {
				return a, func() tea.Msg {
					return messages.RepoSelected{Owner: repo.Owner, Repo: repo.Name}
				}
			}
		case "o":
			if repo, ok := a.selectedRepo(); ok {
				return a, func() tea.Msg {
					return messages.OwnerSelected{Login: repo.Owner}
				}
			}
		}
	}

	return a, a.route(a.active, msg)
}

// selectedRepo returns the repository under the cursor on whichever
// repository screen is active.
func (a *App) selectedRepo() (domain.Repository, bool) {
	switch a.active {
	case messages.ViewPopular:
		return a.popular.Selected()
	case messages.ViewSearch:
		return a.search.Selected()
	case messages.ViewUserRepos:
		return a.userRepos.Selected()
	default:
		return domain.Repository{}, false
	}
}

// route delivers a message to the view owning the given screen.
func (a *App) route(view messages.ViewType, msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch view {
	case messages.ViewPopular:
		a.popular, cmd = a.popular.Update(msg)
	case messages.ViewSearch:
		a.search, cmd = a.search.Update(msg)
	case messages.ViewUserRepos:
		a.userRepos, cmd = a.userRepos.Update(msg)
	case messages.ViewIssues:
		a.issues, cmd = a.issues.Update(msg)
	}
	return cmd
}

func (a *App) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, view := range []messages.ViewType{
		messages.ViewPopular, messages.ViewSearch, messages.ViewUserRepos, messages.ViewIssues,
	} {
		if cmd := a.route(view, msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

func (a *App) push(view messages.ViewType) {
	if view == a.active {
		return
	}
	a.back = append(a.back, a.active)
	a.active = view
}

func (a *App) pop() {
	if len(a.back) == 0 {
		return
	}
	a.active = a.back[len(a.back)-1]
	a.back = a.back[:len(a.back)-1]
}

// View renders the active screen over the status bar.
func (a *App) View() string {
	if a.err != nil {
		return a.styles.Error.Render(a.err.Error()) + "\n"
	}

	var body string
	switch a.active {
	case messages.ViewPopular:
		body = a.popular.View()
	case messages.ViewSearch:
		body = a.search.View()
	case messages.ViewUserRepos:
		body = a.userRepos.View()
	case messages.ViewIssues:
		body = a.issues.View()
	}

	return body + "\n" + a.statusBar()
}

func (a *App) statusBar() string {
	who := "not logged in"
	if a.session != nil {
		who = "@" + a.session.Login
	}
	left := fmt.Sprintf("octoview · %s · %s", a.active, who)
	help := a.helpLine()

	bar := left
	if help != "" {
		bar += "   " + a.styles.Help.Render(help)
	}
	if a.width > 0 {
		return a.styles.StatusBar.Width(a.width).Render(bar)
	}
	return a.styles.StatusBar.Render(bar)
}

func (a *App) helpLine() string {
	switch a.active {
	case messages.ViewSearch:
		if a.search.Typing() {
			return "enter search · esc cancel"
		}
		return "↑/↓ move · enter issues · o owner · / new search · r refresh · esc back · q quit"
	case messages.ViewIssues:
		return "↑/↓ move · s state filter · r refresh · esc back · q quit"
	default:
		return "↑/↓ move · enter issues · o owner · tab search · r refresh · q quit"
	}
}
