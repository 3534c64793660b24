// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// initCommand writes a starter configuration file.
func initCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create a starter config.toml",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path for the configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Init,
	}
}

// decodeCommand classifies a Spotify URL without touching the network.
func decodeCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "decode",
		Usage: "Decode a Spotify URL into its entity type and ID",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "url",
				Max:  1,
			},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
				Value: true,
			},
		},
		Action: r.Decode,
	}
}

// resolveCommand resolves a query into tracks and prints them.
func resolveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "resolve",
		Aliases: []string{"res"},
		Usage:   "Resolve a Spotify URL or ID into track metadata",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "query",
				Max:  1,
			},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Usage:   "Entity type when the query is a bare ID (track, album, playlist)",
				Value:   "track",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format (json, csv, markdown, text)",
				Value:   "text",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print JSON output",
				Value: true,
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write output to a file instead of stdout",
			},
		},
		Action: r.Resolve,
	}
}

// tracksCommand streams an album or playlist through the track iterator.
func tracksCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "tracks",
		Usage: "Stream the tracks of a playlist or album",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "query",
				Max:  1,
			},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Usage:   "Entity type when the query is a bare ID (album, playlist)",
				Value:   "playlist",
			},
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Usage:   "Maximum number of tracks to stream (0 for all)",
			},
		},
		Action: r.Tracks,
	}
}

// recommendCommand fetches recommendations for seed track IDs.
func recommendCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "recommend",
		Aliases: []string{"rec"},
		Usage:   "Fetch recommended tracks for up to five seed track IDs",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "seed",
				Aliases: []string{"s"},
				Usage:   "Seed track ID (repeatable, max 5)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format (json, csv, markdown, text)",
				Value:   "text",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print JSON output",
				Value: true,
			},
		},
		Action: r.Recommend,
	}
}

// browseCommand launches the interactive track browser.
func browseCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "browse",
		Aliases: []string{"ui"},
		Usage:   "Browse a playlist or album in an interactive TUI",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "query",
				Max:  1,
			},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Usage:   "Entity type when the query is a bare ID (album, playlist)",
				Value:   "playlist",
			},
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Usage:   "Maximum number of tracks to load (0 for all)",
			},
		},
		Action: r.Browse,
	}
}
