// Package search provides the repository search view: a query input above
// a repository feed.
package search

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/oatfield-labs/octoview-cli/internal/adapters/driving/tui/messages"
	"github.com/oatfield-labs/octoview-cli/internal/adapters/driving/tui/styles"
	"github.com/oatfield-labs/octoview-cli/internal/adapters/driving/tui/views/repolist"
	"github.com/oatfield-labs/octoview-cli/internal/core/domain"
	"github.com/oatfield-labs/octoview-cli/internal/core/ports/driving"
)

// View is the search screen. Until a query is submitted the input has
// focus; afterwards the result list does, and "/" returns to the input.
type View struct {
	styles *styles.Styles
	browse driving.BrowseService

	input   textinput.Model
	results *repolist.View
	typing  bool
	query   string
}

// NewView creates the search view.
func NewView(s *styles.Styles, browse driving.BrowseService) *View {
	ti := textinput.New()
	ti.Placeholder = "Search repositories..."
	ti.CharLimit = 200
	ti.Focus()

	return &View{
		styles: s,
		browse: browse,
		input:  ti,
		typing: true,
	}
}

// Init focuses the input.
func (v *View) Init() tea.Cmd {
	return textinput.Blink
}

// Selected returns the repository under the cursor in the results.
func (v *View) Selected() (domain.Repository, bool) {
	if v.results == nil {
		return domain.Repository{}, false
	}
	return v.results.Selected()
}

// Query returns the last submitted query, empty before the first search.
func (v *View) Query() string {
	return v.query
}

// Typing reports whether the query input has focus (the app must not treat
// letter keys as shortcuts then).
func (v *View) Typing() bool {
	return v.typing
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && v.typing {
		switch key.String() {
		case "enter":
			query := v.input.Value()
			if query == "" {
				return v, nil
			}
			v.query = query
			v.typing = false
			v.input.Blur()
			// A new query is a new feed; the old one is dropped whole.
			if v.results == nil {
				v.results = repolist.NewView(v.styles, messages.ViewSearch, "Search: "+query, v.browse.SearchRepos(query))
				return v, v.results.Init()
			}
			return v, v.results.SetPager(v.browse.SearchRepos(query))
		case "esc":
			if v.query != "" {
				v.typing = false
				v.input.Blur()
			}
			return v, nil
		default:
			var cmd tea.Cmd
			v.input, cmd = v.input.Update(msg)
			return v, cmd
		}
	}

	if key, ok := msg.(tea.KeyMsg); ok && !v.typing && key.String() == "/" {
		v.typing = true
		v.input.Focus()
		v.input.SetValue("")
		return v, textinput.Blink
	}

	// Non-key traffic (blink, spinner ticks, feed updates, resizes) feeds
	// both halves of the view.
	var cmds []tea.Cmd
	if _, isKey := msg.(tea.KeyMsg); !isKey && v.typing {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	if v.results != nil {
		var cmd tea.Cmd
		v.results, cmd = v.results.Update(msg)
		cmds = append(cmds, cmd)
	}
	return v, tea.Batch(cmds...)
}

// View renders the search screen.
func (v *View) View() string {
	out := v.styles.Title.Render("Search repositories") + "\n\n"
	out += v.input.View() + "\n\n"

	if v.results != nil && !v.typing {
		out += v.results.View()
	} else if v.query == "" {
		out += v.styles.Muted.Render("Type a query and press Enter.")
	}
	return out
}
