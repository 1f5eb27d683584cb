package main

import (
	"context"
	"os"

	"cratedig/internal/shared"

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
	config.ApplyEnv()

	runner := NewRunner(RunnerOpts{
		Config: config,
		Logger: logger,
	})

	if err := newApp(runner).Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("%v", err)
	}
}

// newApp assembles the top-level command tree.
func newApp(runner *Runner) *cli.Command {
	return &cli.Command{
		Name:     "cratedig",
		Usage:    "Export Spotify playlists and dig up original album releases",
		Version:  "1.0.0",
		Commands: runner.register(),
	}
}
