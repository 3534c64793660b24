package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/lofibeats/spotlink/internal/player"
	"github.com/lofibeats/spotlink/internal/shared"
	"github.com/lofibeats/spotlink/internal/spotify"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config *shared.Config
	pool   *player.Pool
	logger *log.Logger
	output io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config *shared.Config
	Pool   *player.Pool
	Logger *log.Logger
	Output io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Pool == nil {
		opts.Pool = player.NewPool()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		config: opts.Config,
		pool:   opts.Pool,
		logger: opts.Logger,
		output: opts.Output,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		initCommand, decodeCommand, resolveCommand, tracksCommand, recommendCommand, browseCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// client returns the Spotify client of the pool's connected node.
func (r *Runner) client() (*spotify.Client, error) {
	node, err := r.pool.ConnectedNode()
	if err != nil {
		return nil, fmt.Errorf("%w: configure credentials.spotify in config.toml", shared.ErrMissingCredentials)
	}
	client := node.Spotify()
	if client == nil {
		return nil, fmt.Errorf("%w: connected node has no spotify client", shared.ErrMissingCredentials)
	}
	return client, nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// parseSearchType maps a --type flag value to a [spotify.SearchType].
func parseSearchType(value string) (spotify.SearchType, error) {
	switch value {
	case "track":
		return spotify.SearchTypeTrack, nil
	case "album":
		return spotify.SearchTypeAlbum, nil
	case "playlist":
		return spotify.SearchTypePlaylist, nil
	default:
		return 0, fmt.Errorf("%w: type must be track, album or playlist, got %q", shared.ErrInvalidFlag, value)
	}
}
