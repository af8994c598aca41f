// Package cli implements the cobra command tree: login/logout/whoami for
// the session, the four list commands, and the TUI launcher.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/oatfield-labs/octoview-cli/internal/core/ports/driven"
	"github.com/oatfield-labs/octoview-cli/internal/core/ports/driving"
	"github.com/oatfield-labs/octoview-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services wired in by main before Execute runs.
var (
	browseService driving.BrowseService
	authService   driving.AuthService
	configStore   driven.ConfigStore
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "octoview",
	Short: "Browse GitHub repositories, issues, and profiles from the terminal",
	Long: `octoview is a terminal client for browsing GitHub: popular repositories,
repository search, a user's repositories, and repository issues, with
OAuth login for authenticated requests.

Run without arguments to launch the interactive TUI.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowse(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// Ports aggregates the services the CLI drives.
type Ports struct {
	Browse driving.BrowseService
	Auth   driving.AuthService
	Config driven.ConfigStore
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute wires the services and runs the command tree.
func Execute(ports Ports) error {
	browseService = ports.Browse
	authService = ports.Auth
	configStore = ports.Config
	return rootCmd.Execute()
}
