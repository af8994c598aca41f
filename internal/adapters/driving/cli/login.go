package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	drivingoauth "github.com/oatfield-labs/octoview-cli/internal/adapters/driving/oauth"
	"github.com/oatfield-labs/octoview-cli/internal/core/ports/driven"
	"github.com/oatfield-labs/octoview-cli/internal/core/services"
)

// loginTimeout bounds the wait for the browser round trip.
const loginTimeout = 3 * time.Minute

var (
	loginClientID     string
	loginClientSecret string
	loginNoBrowser    bool
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to GitHub via OAuth",
	Long: `Runs the OAuth authorization-code flow against GitHub.

A local callback server receives the redirect, the code is exchanged for an
access token, and the token is stored until you run 'octoview logout'.

The OAuth app client ID and secret are read from the config file; on first
login you are prompted for them (create an OAuth app at
github.com/settings/developers with callback URL http://localhost).`,
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().StringVar(&loginClientID, "client-id", "", "OAuth app client ID (stored in config)")
	loginCmd.Flags().StringVar(&loginClientSecret, "client-secret", "", "OAuth app client secret (stored in config)")
	loginCmd.Flags().BoolVar(&loginNoBrowser, "no-browser", false, "print the authorization URL instead of opening a browser")
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, _ []string) error {
	if authService == nil || configStore == nil {
		return errors.New("auth service not configured")
	}
	ctx := context.Background()

	if err := ensureOAuthApp(cmd); err != nil {
		return err
	}

	state := uuid.NewString()
	verifier, err := services.GenerateCodeVerifier()
	if err != nil {
		return fmt.Errorf("generate code verifier: %w", err)
	}
	challenge := services.GenerateCodeChallenge(verifier)

	server := drivingoauth.NewCallbackServer(0, state)
	if err := server.Start(); err != nil {
		return fmt.Errorf("start callback server: %w", err)
	}
	defer server.Stop()

	redirectURI := server.RedirectURI()
	authURL := authService.AuthorizeURL(redirectURI, state, challenge)

	if loginNoBrowser {
		cmd.Printf("Open this URL in your browser:\n\n  %s\n\n", authURL)
	} else {
		cmd.Println("Opening your browser to authorize octoview...")
		if err := browser.OpenURL(authURL); err != nil {
			cmd.Printf("Could not open a browser. Open this URL manually:\n\n  %s\n\n", authURL)
		}
	}

	cmd.Println("Waiting for authorization...")
	code, err := server.WaitForCode(loginTimeout)
	if err != nil {
		return fmt.Errorf("authorization failed: %w", err)
	}

	session, err := authService.ExchangeCode(ctx, code, redirectURI, verifier)
	if err != nil {
		return fmt.Errorf("token exchange failed: %w", err)
	}

	if session.Login != "" {
		cmd.Printf("Logged in as %s\n", session.Login)
	} else {
		cmd.Println("Logged in")
	}
	return nil
}

// ensureOAuthApp makes sure a client ID and secret are configured, taking
// them from flags or prompting interactively. The secret prompt does not
// echo.
func ensureOAuthApp(cmd *cobra.Command) error {
	if loginClientID != "" {
		if err := configStore.Set(driven.ConfigClientID, loginClientID); err != nil {
			return err
		}
	}
	if loginClientSecret != "" {
		if err := configStore.Set(driven.ConfigClientSecret, loginClientSecret); err != nil {
			return err
		}
	}

	if configStore.GetString(driven.ConfigClientID) == "" {
		cmd.Print("OAuth app client ID: ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("read client ID: %w", err)
		}
		id := strings.TrimSpace(line)
		if id == "" {
			return errors.New("client ID is required")
		}
		if err := configStore.Set(driven.ConfigClientID, id); err != nil {
			return err
		}
	}

	if configStore.GetString(driven.ConfigClientSecret) == "" {
		cmd.Print("OAuth app client secret: ")
		secret, err := term.ReadPassword(int(os.Stdin.Fd()))
		cmd.Println()
		if err != nil {
			return fmt.Errorf("read client secret: %w", err)
		}
		if len(secret) == 0 {
			return errors.New("client secret is required")
		}
		if err := configStore.Set(driven.ConfigClientSecret, string(secret)); err != nil {
			return err
		}
	}

	return nil
}
