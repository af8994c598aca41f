package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/oatfield-labs/octoview-cli/internal/adapters/driving/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface.

Controls:
  ↑/k, ↓/j - Navigate lists (scrolling near the end loads the next page)
  Enter    - Open / Select
  r        - Refresh the current list
  Esc      - Back
  q        - Quit`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(_ *cobra.Command, _ []string) error {
	if browseService == nil || authService == nil {
		return errors.New("services not configured")
	}

	app := tui.NewApp(&tui.Ports{
		Browse: browseService,
		Auth:   authService,
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run TUI: %w", err)
	}
	return nil
}
