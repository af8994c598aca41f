// Package repolist provides the repository list component shared by the
// popular, search, and user-repos screens. It renders a repository feed and
// drives its pager: initial load on show, load-more as the selection nears
// the end, refresh and retry on demand.
package repolist

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

// View is a scrollable repository feed.
type View struct {
	styles *styles.Styles
	pager  driving.Pager[domain.Repository]
	viewID messages.ViewType
	title  string

	selected     int
	scrollOffset int
	width        int
	height       int
	spin         spinner.Model
}

// NewView creates a repository list over the given pager.
func NewView(s *styles.Styles, viewID messages.ViewType, title string, pager driving.Pager[domain.Repository]) *View {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return &View{
		styles: s,
		pager:  pager,
		viewID: viewID,
		title:  title,
		spin:   sp,
	}
}

// SetPager swaps in a fresh pager (a new search query, a different user)
// and resets the cursor. Returns the command that starts its initial load.
func (v *View) SetPager(pager driving.Pager[domain.Repository]) tea.Cmd {
	v.pager = pager
	v.selected = 0
	v.scrollOffset = 0
	return tea.Batch(v.loadInitial(), v.spin.Tick)
}

// Init starts the initial load.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.loadInitial(), v.spin.Tick)
}

// Selected returns the repository under the cursor.
func (v *View) Selected() (domain.Repository, bool) {
	items := v.pager.Feed().Items()
	if v.selected < 0 || v.selected >= len(items) {
		return domain.Repository{}, false
	}
	return items[v.selected], true
}

// Feed exposes the feed for the status bar.
func (v *View) Feed() *domain.Feed[domain.Repository] {
	return v.pager.Feed()
}

func (v *View) loadInitial() tea.Cmd {
	pager := v.pager
	return func() tea.Msg {
		pager.LoadInitial(context.Background())
		return messages.FeedUpdated{View: v.viewID}
	}
}

func (v *View) loadMore() tea.Cmd {
	pager := v.pager
	return func() tea.Msg {
		if !pager.LoadMore(context.Background()) {
			return nil
		}
		return messages.FeedUpdated{View: v.viewID}
	}
}

func (v *View) refresh() tea.Cmd {
	pager := v.pager
	return func() tea.Msg {
		if !pager.Refresh(context.Background()) {
			return nil
		}
		return messages.FeedUpdated{View: v.viewID}
	}
}

func (v *View) retry() tea.Cmd {
	pager := v.pager
	return func() tea.Msg {
		if !pager.Retry(context.Background()) {
			return nil
		}
		return messages.FeedUpdated{View: v.viewID}
	}
}

// Update handles messages for the list.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case spinner.TickMsg:
		if !v.pager.Feed().Loading() {
			return v, nil
		}
		var cmd tea.Cmd
		v.spin, cmd = v.spin.Update(msg)
		return v, cmd

	case messages.FeedUpdated:
		if msg.View != v.viewID {
			return v, nil
		}
		v.clampSelection()
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
		// Nearing the end of what is loaded triggers the next page; the
		// pager's guard makes this a no-op while loading or exhausted.
		if feed.Len()-v.selected <= loadMoreThreshold {
			return v, tea.Batch(v.loadMore(), v.spin.Tick)
		}
	case "r":
		return v, tea.Batch(v.refresh(), v.spin.Tick)
	case "R":
		if feed.Phase() == domain.FeedFailed {
			return v, tea.Batch(v.retry(), v.spin.Tick)
		}
	}
	return v, nil
}

// clampSelection keeps the cursor inside the collection after a refresh
// shrank it.
func (v *View) clampSelection() {
	if n := v.pager.Feed().Len(); v.selected >= n && n > 0 {
		v.selected = n - 1
		v.adjustScroll()
	}
}

func (v *View) visibleRows() int {
	rows := v.height - 6 // title, status, banner allowance
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

// View renders the list.
func (v *View) View() string {
	feed := v.pager.Feed()
	out := v.styles.Title.Render(v.title) + "\n\n"

	switch feed.Phase() {
	case domain.FeedEmpty, domain.FeedInitialLoading:
		return out + v.spin.View() + v.styles.Muted.Render(" Loading...")
	case domain.FeedFailed:
		if feed.Len() == 0 {
			failure := feed.Failure()
			return out + v.styles.Error.Render("Error: "+failure.Message) + "\n\n" +
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
		out += v.renderRepo(items[i], i == v.selected) + "\n"
	}

	out += "\n" + v.statusLine(feed)
	return out
}

func (v *View) renderRepo(r domain.Repository, selected bool) string {
	cursor := "  "
	style := v.styles.Normal
	if selected {
		cursor = "> "
		style = v.styles.Selected
	}

	line := fmt.Sprintf("%s%s", cursor, r.FullName)
	meta := fmt.Sprintf("  ★ %d", r.Stars)
	if r.Language != "" {
		meta += "  " + r.Language
	}
	return style.Render(line) + v.styles.Muted.Render(meta)
}

// statusLine reports loading, errors, and exhaustion below the list.
func (v *View) statusLine(feed *domain.Feed[domain.Repository]) string {
	switch feed.Phase() {
	case domain.FeedLoadingMore:
		return v.spin.View() + v.styles.Muted.Render(" Loading more...")
	case domain.FeedRefreshing:
		return v.spin.View() + v.styles.Muted.Render(" Refreshing...")
	case domain.FeedFailed:
		// Items are still on screen; show the failure as a banner.
		return v.styles.Banner.Render(feed.Failure().Message + "  (R to retry)")
	}
	if feed.Exhausted() {
		return v.styles.Muted.Render(fmt.Sprintf("%d repositories — end of list", feed.Len()))
	}
	return v.styles.Muted.Render(fmt.Sprintf("%d repositories", feed.Len()))
}
