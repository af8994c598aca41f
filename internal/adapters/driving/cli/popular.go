package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	popularPages int
	popularJSON  bool
)

var popularCmd = &cobra.Command{
	Use:   "popular",
	Short: "List popular repositories",
	Long:  `Lists repositories above the configured star floor, ordered by stargazer count.`,
	Args:  cobra.NoArgs,
	RunE:  runPopular,
}

func init() {
	popularCmd.Flags().IntVarP(&popularPages, "pages", "p", 1, "number of pages to fetch")
	popularCmd.Flags().BoolVar(&popularJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(popularCmd)
}

func runPopular(cmd *cobra.Command, _ []string) error {
	if browseService == nil {
		return errors.New("browse service not configured")
	}

	repos, err := collectPages(context.Background(), browseService.PopularRepos(), popularPages)
	if err != nil {
		return fmt.Errorf("popular repos: %w", err)
	}

	if popularJSON {
		return outputJSON(cmd, repos)
	}
	outputRepoTable(cmd, repos)
	return nil
}
