package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oatfield-labs/octoview-cli/internal/core/domain"
)

var (
	issuesPages int
	issuesJSON  bool
	issuesState string
)

var issuesCmd = &cobra.Command{
	Use:   "issues [owner/repo]",
	Short: "List issues for a repository",
	Long:  `Lists issues for the given repository, most recently updated first.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runIssues,
}

func init() {
	issuesCmd.Flags().IntVarP(&issuesPages, "pages", "p", 1, "number of pages to fetch")
	issuesCmd.Flags().BoolVar(&issuesJSON, "json", false, "output results as JSON")
	issuesCmd.Flags().StringVar(&issuesState, "state", "open", "issue state filter (open, closed, all)")
	rootCmd.AddCommand(issuesCmd)
}

func runIssues(cmd *cobra.Command, args []string) error {
	if browseService == nil {
		return errors.New("browse service not configured")
	}

	owner, repo, ok := strings.Cut(args[0], "/")
	if !ok || owner == "" || repo == "" {
		return fmt.Errorf("expected owner/repo, got %q", args[0])
	}

	state := domain.IssueState(issuesState)
	if !state.Valid() {
		return fmt.Errorf("invalid state %q (want open, closed, or all)", issuesState)
	}

	issues, err := collectPages(context.Background(), browseService.RepoIssues(owner, repo, state), issuesPages)
	if err != nil {
		return fmt.Errorf("list issues: %w", err)
	}

	if issuesJSON {
		return outputJSON(cmd, issues)
	}
	outputIssueTable(cmd, issues)
	return nil
}
