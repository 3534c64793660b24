package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/lofibeats/spotlink/internal/player"
	"github.com/lofibeats/spotlink/internal/shared"
	"github.com/lofibeats/spotlink/internal/spotify"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	if level, err := log.ParseLevel(config.Logging.Level); err == nil {
		shared.SetLogLevel(logger, level)
	}

	pool := player.NewPool()
	creds := config.Credentials.Spotify
	if creds.ClientID != "" && creds.ClientSecret != "" {
		session := config.Transport.Client()
		client, err := spotify.New(creds.ClientID, creds.ClientSecret,
			spotify.WithHTTPClient(session),
			spotify.WithLogger(shared.WithLogger(logger, "component", "spotify")),
		)
		if err != nil {
			logger.Fatalf("failed to build spotify client: %v", err)
		}
		pool.Add(player.NewNode(client, session))
	}

	runner := NewRunner(RunnerOpts{
		Config: config,
		Pool:   pool,
		Logger: logger,
	})

	app := &cli.Command{
		Name:     "spotlink",
		Usage:    "Resolve Spotify links into playable track metadata",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
