package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/oatfield-labs/octoview-cli/internal/core/domain"
	"github.com/oatfield-labs/octoview-cli/internal/core/ports/driving"
)

// collectPages drives a pager through the initial load plus up to pages-1
// load-more rounds, stopping early on exhaustion. The CLI has no scroll
// position, so the page count stands in for the "near the end" trigger.
func collectPages[T any](ctx context.Context, pager driving.Pager[T], pages int) ([]T, error) {
	if pages < 1 {
		pages = 1
	}

	pager.LoadInitial(ctx)
	if err := feedError(pager.Feed()); err != nil {
		return nil, err
	}

	for i := 1; i < pages; i++ {
		if !pager.LoadMore(ctx) {
			break
		}
		if err := feedError(pager.Feed()); err != nil {
			// Keep what loaded before the failure; report it alongside.
			return pager.Feed().Items(), err
		}
	}

	return pager.Feed().Items(), nil
}

// feedError converts a failed feed into an error.
func feedError[T any](feed *domain.Feed[T]) error {
	if failure := feed.Failure(); failure != nil {
		return errors.New(failure.Message)
	}
	return nil
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputRepoTable(cmd *cobra.Command, repos []domain.Repository) {
	if len(repos) == 0 {
		cmd.Println("No repositories found.")
		return
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "REPOSITORY\tSTARS\tLANGUAGE\tDESCRIPTION")
	for _, r := range repos {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", r.FullName, r.Stars, r.Language, truncate(r.Description, 60))
	}
	w.Flush()
}

func outputIssueTable(cmd *cobra.Command, issues []domain.Issue) {
	if len(issues) == 0 {
		cmd.Println("No issues found.")
		return
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NUMBER\tSTATE\tAUTHOR\tCOMMENTS\tTITLE")
	for _, i := range issues {
		fmt.Fprintf(w, "#%d\t%s\t%s\t%d\t%s\n", i.Number, i.State, i.Author, i.Comments, truncate(i.Title, 70))
	}
	w.Flush()
}

func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
