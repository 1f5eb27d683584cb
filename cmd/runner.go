package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"cratedig/internal/resolve"
	"cratedig/internal/services"
	"cratedig/internal/shared"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config   *shared.Config
	spotify  services.Service
	logger   *log.Logger
	output   io.Writer
	prompter resolve.Prompter
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config   *shared.Config
	Spotify  services.Service
	Logger   *log.Logger
	Output   io.Writer
	Prompter resolve.Prompter
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Prompter == nil {
		opts.Prompter = resolve.HuhPrompter{}
	}

	return &Runner{
		config:   opts.Config,
		spotify:  opts.Spotify,
		logger:   opts.Logger,
		output:   opts.Output,
		prompter: opts.Prompter,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		exportCommand, trackCommand, enrichCommand, createCommand, setupCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// service returns an authenticated client-credentials Spotify service,
// validating credentials before any network access.
func (r *Runner) service(ctx context.Context) (services.Service, error) {
	svc := r.spotify
	if svc == nil {
		if err := r.config.Validate(); err != nil {
			return nil, err
		}
		created, err := services.NewSpotifyService(r.config.Credentials.Spotify)
		if err != nil {
			return nil, err
		}
		svc = created
	}

	if err := svc.Authenticate(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
