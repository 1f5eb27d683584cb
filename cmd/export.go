package main

import (
	"context"
	"fmt"

	"cratedig/internal/formatter"
	"cratedig/internal/models"
	"cratedig/internal/resolve"
	"cratedig/internal/services"
	"cratedig/internal/shared"
	"cratedig/internal/tasks"
	"cratedig/internal/ui"

	"github.com/charmbracelet/huh/spinner"
	"github.com/urfave/cli/v3"
	"golang.org/x/text/language"
)

// resolvePlaylist applies the mutually exclusive lookup flags.
func (r *Runner) resolvePlaylist(ctx context.Context, cmd *cli.Command, svc services.Service) (*models.Playlist, error) {
	name, owner := cmd.String("name"), cmd.String("owner")
	url := cmd.String("url")
	id := cmd.String("id")

	set := 0
	for _, v := range []string{name, url, id} {
		if v != "" {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("%w: specify exactly one of --name, --url, or --id", shared.ErrValidation)
	}

	resolver := resolve.New(svc, r.prompter, r.logger)
	switch {
	case name != "":
		return resolver.ByName(ctx, name, owner)
	case url != "":
		return resolver.ByURL(ctx, url)
	default:
		return resolver.ByID(ctx, id)
	}
}

// Export resolves a playlist, collects its tracks, and writes them to a
// collision-safe CSV file.
func (r *Runner) Export(ctx context.Context, cmd *cli.Command) error {
	svc, err := r.service(ctx)
	if err != nil {
		return err
	}

	playlist, err := r.resolvePlaylist(ctx, cmd, svc)
	if err != nil {
		return err
	}

	dir := cmd.String("dir")
	if dir == "" {
		dir = r.config.Export.Directory
	}
	if dir == "" {
		dir = "."
	}

	collector := tasks.NewCollector(svc, r.logger)

	var tracks []models.Track
	var collectErr error
	ran := false
	collect := func() {
		ran = true
		tracks, collectErr = collector.Collect(ctx, playlist.ID, nil)
	}
	if err := spinner.New().Title(fmt.Sprintf("Fetching %d tracks...", playlist.TrackCount)).Action(collect).Run(); err != nil && !ran {
		collect()
	}
	if collectErr != nil {
		return collectErr
	}

	path := formatter.ExportPath(dir, playlist.Name)
	if err := formatter.New(language.English).WriteExportCSV(path, tracks); err != nil {
		return err
	}

	r.writePlain("%s\n", ui.Title(fmt.Sprintf("Exported %q by %s", playlist.Name, playlist.OwnerName)))
	r.writePlain("%s\n", ui.OK(fmt.Sprintf("✓ %d tracks written to %s", len(tracks), path)))
	if dropped := playlist.TrackCount - len(tracks); dropped > 0 {
		r.writePlain("%s\n", ui.Dim(fmt.Sprintf("%d unavailable tracks were skipped", dropped)))
	}
	return nil
}
