// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// lookupFlags are the three mutually exclusive playlist reference modes.
func lookupFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "name",
			Aliases: []string{"n"},
			Usage:   "Playlist name (exact, case-insensitive)",
		},
		&cli.StringFlag{
			Name:  "owner",
			Usage: "Owner ID to disambiguate a name lookup",
		},
		&cli.StringFlag{
			Name:    "url",
			Aliases: []string{"u"},
			Usage:   "Playlist link or spotify:playlist: URI",
		},
		&cli.StringFlag{
			Name:    "id",
			Aliases: []string{"i"},
			Usage:   "Playlist ID",
		},
	}
}

// exportCommand exports a playlist's tracks to CSV.
func exportCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export a playlist's tracks to a semicolon-delimited CSV",
		Flags: append(lookupFlags(),
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   "Output directory (defaults to export.directory from config)",
			},
		),
		Action: r.Export,
	}
}

// trackCommand looks up the earliest album release for a single track.
func trackCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "track",
		Usage: "Find the earliest album release for a track",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "track",
				Aliases:  []string{"t"},
				Usage:    "Track name",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "artist",
				Aliases:  []string{"a"},
				Usage:    "Artist name",
				Required: true,
			},
			&cli.IntFlag{
				Name:    "year",
				Aliases: []string{"y"},
				Usage:   "Only consider albums released strictly before this year",
			},
		},
		Action: r.Track,
	}
}

// enrichCommand batch-enriches a CSV of tracks with original-album data.
func enrichCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "enrich",
		Usage: "Enrich a CSV of tracks with original-album data",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "input"},
			&cli.StringArg{Name: "output"},
		},
		Action: r.Enrich,
	}
}

// createCommand creates a playlist from a CSV of track IDs.
func createCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Create a playlist from a CSV of track IDs",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "input"},
			&cli.StringArg{Name: "playlist-name"},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "private",
				Usage: "Create the playlist as private",
			},
		},
		Action: r.Create,
	}
}
