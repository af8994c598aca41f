// Package issuelist provides the issues list view for one repository.
package issuelist

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/oatfield-labs/octoview-cli/internal/adapters/driving/tui/messages"
	"github.com/oatfield-labs/octoview-cli/internal/adapters/driving/tui/styles"
	"github.com/oatfield-labs/octoview-cli/internal/core/domain"
	"github.com/oatfield-labs/octoview-cli/internal/core/ports/driving"
)

// loadMoreThreshold is how close to the end the selection must be before
// the next page is requested.
const loadMoreThreshold = 5

// View is a scrollable issues feed for one repository.
type View struct {
	styles *styles.Styles
	browse driving.BrowseService

	pager driving.Pager[domain.Issue]
	owner string
	repo  string
	state domain.IssueState

	selected     int
	scrollOffset int
	width        int
	height       int
	spin         spinner.Model
}

// NewView creates an empty issues view; SetRepo binds it to a repository.
func NewView(s *styles.Styles, browse driving.BrowseService) *View {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return &View{
		styles: s,
		browse: browse,
		state:  domain.IssueOpen,
	}
}

// SetRepo points the view at a repository and starts the initial load.
func (v *View) SetRepo(owner, repo string) tea.Cmd {
	v.owner = owner
	v.repo = repo
	v.state = domain.IssueOpen
	return v.resetPager()
}

// resetPager builds a fresh pager for the current repo and state filter.
func (v *View) resetPager() tea.Cmd {
	v.pager = v.browse.RepoIssues(v.owner, v.repo, v.state)
	v.selected = 0
	v.scrollOffset = 0
	pager := v.pager
	return tea.Batch(func() tea.Msg {
		pager.LoadInitial(context.Background())
		return messages.FeedUpdated{View: messages.ViewIssues}
	}, v.spin.Tick)
}

// Init is a no-op; loading starts when SetRepo is called.
func (v *View) Init() tea.Cmd {
	return nil
}

func (v *View) loadMore() tea.Cmd {
	pager := v.pager
	return func() tea.Msg {
		if !pager.LoadMore(context.Background()) {
			return nil
		}
		return messages.FeedUpdated{View: messages.ViewIssues}
	}
}

func (v *View) refresh() tea.Cmd {
	pager := v.pager
	return func() tea.Msg {
		if !pager.Refresh(context.Background()) {
			return nil
		}
		return messages.FeedUpdated{View: messages.ViewIssues}
	}
}

func (v *View) retry() tea.Cmd {
	pager := v.pager
	return func() tea.Msg {
		if !pager.Retry(context.Background()) {
			return nil
		}
		return messages.FeedUpdated{View: messages.ViewIssues}
	}
}

// Update handles messages for the issues view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case spinner.TickMsg:
		if v.pager == nil || !v.pager.Feed().Loading() {
			return v, nil
		}
		var cmd tea.Cmd
		v.spin, cmd = v.spin.Update(msg)
		return v, cmd

	case messages.FeedUpdated:
		if msg.View != messages.ViewIssues || v.pager == nil {
			return v, nil
		}
		if n := v.pager.Feed().Len(); v.selected >= n && n > 0 {
			v.selected = n - 1
			v.adjustScroll()
		}
		if v.pager.Feed().Loading() {
			return v, v.spin.Tick
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.pager == nil {
		return v, nil
	}
	feed := v.pager.Feed()
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
			v.adjustScroll()
		}
	case "down", "j":
		if v.selected < feed.Len()-1 {
			v.selected++
			v.adjustScroll()
		}
		if feed.Len()-v.selected <= loadMoreThreshold {
			return v, tea.Batch(v.loadMore(), v.spin.Tick)
		}
	case "r":
		return v, tea.Batch(v.refresh(), v.spin.Tick)
	case "R":
		if feed.Phase() == domain.FeedFailed {
			return v, tea.Batch(v.retry(), v.spin.Tick)
		}
	case "s":
		// Cycle the state filter; a new filter is a new feed.
		switch v.state {
		case domain.IssueOpen:
			v.state = domain.IssueClosed
		case domain.IssueClosed:
			v.state = domain.IssueAll
		default:
			v.state = domain.IssueOpen
		}
		return v, v.resetPager()
	}
	return v, nil
}

func (v *View) visibleRows() int {
	rows := v.height - 6
	if rows < 3 {
		rows = 3
	}
	return rows
}

func (v *View) adjustScroll() {
	rows := v.visibleRows()
	if v.selected < v.scrollOffset {
		v.scrollOffset = v.selected
	}
	if v.selected >= v.scrollOffset+rows {
		v.scrollOffset = v.selected - rows + 1
	}
}

// View renders the issues list.
func (v *View) View() string {
	title := fmt.Sprintf("%s/%s issues (%s)", v.owner, v.repo, v.state)
	out := v.styles.Title.Render(title) + "\n\n"

	if v.pager == nil {
		return out + v.styles.Muted.Render("No repository selected.")
	}

	feed := v.pager.Feed()
	switch feed.Phase() {
	case domain.FeedEmpty, domain.FeedInitialLoading:
		return out + v.spin.View() + v.styles.Muted.Render(" Loading...")
	case domain.FeedFailed:
		if feed.Len() == 0 {
			return out + v.styles.Error.Render("Error: "+feed.Failure().Message) + "\n\n" +
				v.styles.Help.Render("R to retry")
		}
	}

	items := feed.Items()
	rows := v.visibleRows()
	end := v.scrollOffset + rows
	if end > len(items) {
		end = len(items)
	}

	for i := v.scrollOffset; i < end; i++ {
		out += v.renderIssue(items[i], i == v.selected) + "\n"
	}

	out += "\n" + v.statusLine(feed)
	return out
}

func (v *View) renderIssue(i domain.Issue, selected bool) string {
	cursor := "  "
	style := v.styles.Normal
	if selected {
		cursor = "> "
		style = v.styles.Selected
	}

	line := fmt.Sprintf("%s#%-5d %s", cursor, i.Number, i.Title)
	meta := fmt.Sprintf("  %s", i.Author)
	if i.Comments > 0 {
		meta += fmt.Sprintf("  %d comments", i.Comments)
	}
	return style.Render(line) + v.styles.Muted.Render(meta)
}

func (v *View) statusLine(feed *domain.Feed[domain.Issue]) string {
	switch feed.Phase() {
	case domain.FeedLoadingMore:
		return v.spin.View() + v.styles.Muted.Render(" Loading more...")
	case domain.FeedRefreshing:
		return v.spin.View() + v.styles.Muted.Render(" Refreshing...")
	case domain.FeedFailed:
		return v.styles.Banner.Render(feed.Failure().Message + "  (R to retry)")
	}
	if feed.Exhausted() {
		return v.styles.Muted.Render(fmt.Sprintf("%d issues — end of list", feed.Len()))
	}
	return v.styles.Muted.Render(fmt.Sprintf("%d issues", feed.Len()))
}
