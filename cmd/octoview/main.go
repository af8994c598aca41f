// Command octoview is a terminal client for browsing GitHub.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/oatfield-labs/octoview-cli/internal/adapters/driven/config/file"
	"github.com/oatfield-labs/octoview-cli/internal/adapters/driven/oauth"
	"github.com/oatfield-labs/octoview-cli/internal/adapters/driven/storage/sqlite"
	"github.com/oatfield-labs/octoview-cli/internal/adapters/driving/cli"
	"github.com/oatfield-labs/octoview-cli/internal/core/domain"
	"github.com/oatfield-labs/octoview-cli/internal/core/ports/driven"
	"github.com/oatfield-labs/octoview-cli/internal/core/services"
	"github.com/oatfield-labs/octoview-cli/internal/gitclient"
	"github.com/oatfield-labs/octoview-cli/internal/logger"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	config, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("init config: %w", err)
	}
	stopWatch, err := config.Watch(func() {
		logger.Info("configuration reloaded from %s", config.Path())
	})
	if err != nil {
		logger.Warn("config watch unavailable: %v", err)
	} else {
		defer stopWatch()
	}

	store, err := sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}
	defer store.Close()
	sessions := store.SessionStore()

	// An existing session makes every request authenticated; without one
	// the client runs anonymously against the public endpoints.
	var token string
	if session, err := sessions.Get(ctx); err == nil {
		token = session.Token
	} else if !errors.Is(err, domain.ErrNoSession) {
		logger.Warn("read session: %v", err)
	}

	var clientOpts []gitclient.Option
	if base := config.GetString(driven.ConfigAPIBaseURL); base != "" {
		clientOpts = append(clientOpts, gitclient.WithBaseURL(base))
	}
	client := gitclient.New(ctx, token, clientOpts...)

	var browseOpts []services.BrowseOption
	if n := config.GetInt(driven.ConfigPageSize); n > 0 {
		browseOpts = append(browseOpts, services.WithPageSize(n))
	}
	if n := config.GetInt(driven.ConfigMinStars); n > 0 {
		browseOpts = append(browseOpts, services.WithMinStars(n))
	}
	browse := services.NewBrowseService(client, client, client, client, browseOpts...)

	auth := services.NewAuthService(
		config,
		oauth.NewExchanger(config),
		sessions,
		func(token string) driven.UserReader {
			return gitclient.New(ctx, token, clientOpts...)
		},
	)

	cli.SetVersion(version)
	return cli.Execute(cli.Ports{
		Browse: browse,
		Auth:   auth,
		Config: config,
	})
}
