package main

import (
	"context"
	"fmt"
	"time"

	"cratedig/internal/formatter"
	"cratedig/internal/server"
	"cratedig/internal/services"
	"cratedig/internal/shared"
	"cratedig/internal/tasks"
	"cratedig/internal/ui"

	"github.com/urfave/cli/v3"
)

// chunkDelay is the pause between chunk submissions when adding tracks.
const chunkDelay = 100 * time.Millisecond

// Create reads track IDs from an input CSV, runs the OAuth flow for write
// access, creates the playlist, and adds the tracks in bounded chunks.
func (r *Runner) Create(ctx context.Context, cmd *cli.Command) error {
	input := cmd.StringArg("input")
	name := cmd.StringArg("playlist-name")
	if input == "" || name == "" {
		return fmt.Errorf("%w: usage: cratedig create <input.csv> <playlist name> [--private]", shared.ErrValidation)
	}

	rows, err := formatter.ReadInputCSV(input)
	if err != nil {
		return err
	}

	if err := r.config.Validate(); err != nil {
		return err
	}

	svc := r.spotify
	if svc == nil {
		spotify, err := services.NewSpotifyService(r.config.Credentials.Spotify)
		if err != nil {
			return err
		}

		flow := server.NewFlow(r.config.Server.Host, r.config.Server.Port, r.logger)
		token, err := flow.Authorize(ctx, spotify.OAuthConfig())
		if err != nil {
			return err
		}
		spotify.UseToken(token)
		svc = spotify
	}

	writer := tasks.NewWriter(svc, shared.NewPacer(chunkDelay), r.logger)

	playlist, err := writer.CreatePlaylist(ctx, name, !cmd.Bool("private"))
	if err != nil {
		return err
	}
	r.writePlain("%s\n", ui.Title(fmt.Sprintf("Created playlist %q (%s)", playlist.Name, ui.Visibility(playlist.Public))))

	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.TrackID
	}

	result, err := writer.AddTracks(ctx, playlist.ID, ids, nil)
	if err != nil {
		return err
	}

	r.writePlain("%s\n", ui.OK(fmt.Sprintf("✓ %d tracks added", result.Successful)))
	if result.Failed > 0 {
		r.writePlain("%s\n", ui.Err(fmt.Sprintf("✗ %d tracks failed", result.Failed)))
	}
	if result.Skipped > 0 {
		r.writePlain("%s\n", ui.Dim(fmt.Sprintf("%d rows had no track ID and were skipped", result.Skipped)))
	}
	return nil
}
