package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oatfield-labs/octoview-cli/internal/core/domain"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the authenticated user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if authService == nil {
			return errors.New("auth service not configured")
		}

		user, err := authService.CurrentUser(context.Background())
		if errors.Is(err, domain.ErrNotAuthenticated) {
			return errors.New("not logged in; run 'octoview login'")
		}
		if err != nil {
			return fmt.Errorf("fetch profile: %w", err)
		}

		cmd.Printf("%s", user.Login)
		if user.Name != "" {
			cmd.Printf(" (%s)", user.Name)
		}
		cmd.Println()
		cmd.Printf("%d public repos, %d followers, following %d\n",
			user.PublicRepos, user.Followers, user.Following)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
