package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Destroy the stored session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if authService == nil {
			return errors.New("auth service not configured")
		}
		if err := authService.Logout(context.Background()); err != nil {
			return err
		}
		cmd.Println("Logged out")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
