package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	reposPages   int
	reposJSON    bool
	reposProfile bool
)

var reposCmd = &cobra.Command{
	Use:   "repos [login]",
	Short: "List a user's repositories",
	Long:  `Lists the repositories of the given GitHub user, most recently updated first.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runRepos,
}

func init() {
	reposCmd.Flags().IntVarP(&reposPages, "pages", "p", 1, "number of pages to fetch")
	reposCmd.Flags().BoolVar(&reposJSON, "json", false, "output results as JSON")
	reposCmd.Flags().BoolVar(&reposProfile, "profile", false, "print the user's profile header first")
	rootCmd.AddCommand(reposCmd)
}

func runRepos(cmd *cobra.Command, args []string) error {
	if browseService == nil {
		return errors.New("browse service not configured")
	}
	login := args[0]
	ctx := context.Background()

	if reposProfile {
		user, err := browseService.UserProfile(ctx, login)
		if err != nil {
			return fmt.Errorf("fetch profile: %w", err)
		}
		cmd.Printf("%s", user.Login)
		if user.Name != "" {
			cmd.Printf(" (%s)", user.Name)
		}
		cmd.Printf(" — %d public repos, %d followers\n", user.PublicRepos, user.Followers)
		if user.Bio != "" {
			cmd.Println(user.Bio)
		}
		cmd.Println()
	}

	repos, err := collectPages(ctx, browseService.UserRepos(login), reposPages)
	if err != nil {
		return fmt.Errorf("list repos: %w", err)
	}

	if reposJSON {
		return outputJSON(cmd, repos)
	}
	outputRepoTable(cmd, repos)
	return nil
}
