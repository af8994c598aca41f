package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	searchPages int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search repositories",
	Long:  `Searches GitHub repositories for the given query.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchPages, "pages", "p", 1, "number of pages to fetch")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if browseService == nil {
		return errors.New("browse service not configured")
	}

	repos, err := collectPages(context.Background(), browseService.SearchRepos(args[0]), searchPages)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputJSON(cmd, repos)
	}
	outputRepoTable(cmd, repos)
	return nil
}
