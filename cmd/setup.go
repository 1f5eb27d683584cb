package main

import (
	"context"
	"fmt"
	"os"

	"cratedig/internal/shared"
	"cratedig/internal/ui"

	"github.com/urfave/cli/v3"
)

// setupCommand writes a starter config file.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Create a starter config.toml to fill in with credentials",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Setup,
	}
}

// Setup creates a config file from the embedded template. An existing file
// is never overwritten.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")

	if _, err := os.Stat(path); err == nil {
		r.writePlain("%s\n", ui.Dim(fmt.Sprintf("config already exists at %s, leaving it alone", path)))
		return nil
	}

	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.writePlain("%s\n", ui.OK(fmt.Sprintf("✓ wrote %s", path)))
	r.writePlain("%s\n", ui.Dim("fill in credentials.spotify, or set SPOTIFY_ID and SPOTIFY_SECRET"))
	return nil
}
