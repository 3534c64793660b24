package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lofibeats/spotlink/internal/formatter"
	"github.com/lofibeats/spotlink/internal/shared"
	"github.com/lofibeats/spotlink/internal/spotify"
	"github.com/lofibeats/spotlink/internal/ui"
	"github.com/urfave/cli/v3"
)

// stringArg reads the parsed value of the named positional argument.
func stringArg(cmd *cli.Command, name string) string {
	for _, arg := range cmd.Arguments {
		sa, ok := arg.(*cli.StringArg)
		if !ok || sa.Name != name {
			continue
		}
		if sa.Values != nil && len(*sa.Values) > 0 {
			return (*sa.Values)[0]
		}
		return sa.Value
	}
	return ""
}

// Init writes a starter configuration file.
func (r *Runner) Init(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")
	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}
	r.logger.Infof("created %s", path)
	return r.writePlain("Wrote starter configuration to %s\n", path)
}

// Decode classifies a Spotify URL and prints its entity type and ID.
func (r *Runner) Decode(ctx context.Context, cmd *cli.Command) error {
	url := stringArg(cmd, "url")
	if url == "" {
		return fmt.Errorf("%w: url", shared.ErrMissingArgument)
	}

	decoded, ok := spotify.DecodeURL(url)
	if !ok {
		return fmt.Errorf("%w: not a spotify URL: %s", shared.ErrInvalidArgument, url)
	}

	return r.writeJSON(map[string]string{
		"type": decoded.Type.String(),
		"id":   decoded.ID,
	}, cmd.Bool("pretty"))
}

// Resolve resolves a query into tracks and renders them.
func (r *Runner) Resolve(ctx context.Context, cmd *cli.Command) error {
	query := stringArg(cmd, "query")
	if query == "" {
		return fmt.Errorf("%w: query", shared.ErrMissingArgument)
	}

	typ, err := parseSearchType(cmd.String("type"))
	if err != nil {
		return err
	}

	client, err := r.client()
	if err != nil {
		return err
	}

	r.logger.Infof("resolving %s as %s", query, typ)

	tracks, err := client.Search(ctx, query, typ)
	if err != nil {
		return err
	}

	format := cmd.String("format")
	pretty := cmd.Bool("pretty")

	if output := cmd.String("output"); output != "" {
		if err := formatter.WriteFile(output, format, query, tracks, pretty); err != nil {
			return err
		}
		return r.writePlain("Wrote %d tracks to %s\n", len(tracks), output)
	}

	data, err := formatter.Render(format, query, tracks, pretty)
	if err != nil {
		return err
	}
	return r.writePlain("%s", data)
}

// Tracks streams an album or playlist through the track iterator.
func (r *Runner) Tracks(ctx context.Context, cmd *cli.Command) error {
	query := stringArg(cmd, "query")
	if query == "" {
		return fmt.Errorf("%w: query", shared.ErrMissingArgument)
	}

	typ, err := parseSearchType(cmd.String("type"))
	if err != nil {
		return err
	}

	client, err := r.client()
	if err != nil {
		return err
	}

	it, err := client.Iterate(query, typ, int(cmd.Int("limit")))
	if err != nil {
		return err
	}

	count := 0
	for it.Next(ctx) {
		track := it.Track()
		count++
		artist := "Unknown Artist"
		if len(track.Artists) > 0 {
			artist = track.Artists[0]
		}
		if err := r.writePlain("%d. %s - %s [%s]\n", count, artist, track.Name, shared.FormatDuration(track.Duration)); err != nil {
			return err
		}
	}
	if err := it.Err(); err != nil {
		return err
	}

	r.logger.Infof("streamed %d tracks", count)
	return nil
}

// Recommend fetches recommendations for the given seed track IDs.
func (r *Runner) Recommend(ctx context.Context, cmd *cli.Command) error {
	seeds := cmd.StringSlice("seed")
	if len(seeds) == 0 {
		return fmt.Errorf("%w: at least one --seed is required", shared.ErrMissingArgument)
	}
	if len(seeds) > spotify.SeedWindowSize {
		return fmt.Errorf("%w: at most %d seeds are allowed", shared.ErrInvalidFlag, spotify.SeedWindowSize)
	}

	client, err := r.client()
	if err != nil {
		return err
	}

	tracks, err := client.Recommendations(ctx, seeds)
	if err != nil {
		return err
	}

	data, err := formatter.Render(cmd.String("format"), "Recommendations", tracks, cmd.Bool("pretty"))
	if err != nil {
		return err
	}
	return r.writePlain("%s", data)
}

// Browse launches the interactive track browser.
func (r *Runner) Browse(ctx context.Context, cmd *cli.Command) error {
	query := stringArg(cmd, "query")
	if query == "" {
		return fmt.Errorf("%w: query", shared.ErrMissingArgument)
	}

	typ, err := parseSearchType(cmd.String("type"))
	if err != nil {
		return err
	}

	client, err := r.client()
	if err != nil {
		return err
	}

	model := ui.NewModel(ctx, client, query, typ, int(cmd.Int("limit")))
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
