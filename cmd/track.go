package main

import (
	"context"
	"fmt"

	"cratedig/internal/models"
	"cratedig/internal/tasks"
	"cratedig/internal/ui"

	"github.com/urfave/cli/v3"
)

// Track looks up the earliest qualifying album release for one track and
// prints the full candidate table with the chosen release marked.
func (r *Runner) Track(ctx context.Context, cmd *cli.Command) error {
	svc, err := r.service(ctx)
	if err != nil {
		return err
	}

	trackName := cmd.String("track")
	artistName := cmd.String("artist")
	year := int(cmd.Int("year"))

	finder := tasks.NewFinder(svc)
	candidates, err := finder.Search(ctx, trackName, artistName)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		r.writePlain("%s\n", ui.Err(fmt.Sprintf("No matches for %q by %q", trackName, artistName)))
		return nil
	}

	albums := tasks.FilterByType(candidates, "Album")
	albums = tasks.FilterBeforeYear(albums, year)

	var chosen *models.AlbumCandidate
	if len(albums) > 0 {
		chosen = &albums[0]
	}

	r.writePlain("%s\n", ui.Title(fmt.Sprintf("%d releases of %q by %q:", len(candidates), trackName, artistName)))
	r.writePlain("%s", ui.RenderCandidateAlbums(candidates, chosen))

	if chosen == nil {
		if year > 0 {
			r.writePlainln("%s", ui.Err(fmt.Sprintf("No regular album released before %d", year)))
		} else {
			r.writePlainln("%s", ui.Err("No regular album release found"))
		}
		return nil
	}

	r.writePlainln("%s", ui.OK(fmt.Sprintf("Earliest album: %s (%s)", chosen.AlbumName, chosen.ReleaseDate)))
	return nil
}
