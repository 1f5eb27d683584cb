package tasks

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"cratedig/internal/models"
	"cratedig/internal/shared"

	"github.com/charmbracelet/log"
)

// progressEvery is how often the enricher reports row progress.
const progressEvery = 10

// Enricher drives the album finder across many input rows, preserving row
// count and order while tolerating per-row failures.
type Enricher struct {
	finder *Finder
	pacer  shared.Pacer
	logger *log.Logger
}

// NewEnricher creates an Enricher. A nil pacer disables inter-row delays.
func NewEnricher(finder *Finder, pacer shared.Pacer, logger *log.Logger) *Enricher {
	if pacer == nil {
		pacer = shared.NopPacer{}
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Enricher{finder: finder, pacer: pacer, logger: logger}
}

// Run enriches every input row with original-album data. Each row reaches a
// terminal state in one step:
//
//   - rows missing a track name, artist name, or parsable release year emit
//     empty enrichment without a remote call
//   - remote errors for one row downgrade to empty enrichment for that row
//     only; the batch never aborts for a single row
//   - auth failures and cancellation abort the whole batch
//
// The output always has exactly one row per input row, in input order, with
// the original fields untouched.
func (e *Enricher) Run(ctx context.Context, rows []models.InputRow, progress chan<- ProgressUpdate) ([]models.EnrichedRow, error) {
	out := make([]models.EnrichedRow, 0, len(rows))
	found := 0

	for i, row := range rows {
		enriched := models.EnrichedRow{InputRow: row}

		if year, ok := validateRow(row); ok {
			if err := e.pacer.Wait(ctx); err != nil {
				return nil, err
			}

			candidate, err := e.finder.FindEarliestBeforeYear(ctx, row.TrackName, row.ArtistName, year)
			switch {
			case errors.Is(err, shared.ErrAuthFailed):
				return nil, err
			case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
				return nil, err
			case err != nil:
				e.logger.Warn("row enrichment failed", "row", i+1, "track", row.TrackName, "err", err)
			case candidate != nil:
				enriched.NewTrackName = candidate.TrackName
				enriched.NewAlbumName = candidate.AlbumName
				enriched.NewAlbumYear = strconv.Itoa(candidate.ReleaseYear)
				enriched.NewTrackID = candidate.TrackID
				found++
			}
		}

		out = append(out, enriched)

		if (i+1)%progressEvery == 0 || i == len(rows)-1 {
			notify(progress, enrichRowUpdate(i+1, len(rows), found))
		}
	}

	return out, nil
}

// validateRow checks the presence of a track name, artist name, and a
// parsable positive integer release year.
func validateRow(row models.InputRow) (int, bool) {
	if strings.TrimSpace(row.TrackName) == "" || strings.TrimSpace(row.ArtistName) == "" {
		return 0, false
	}
	year, err := strconv.Atoi(strings.TrimSpace(row.ReleaseYear))
	if err != nil || year <= 0 {
		return 0, false
	}
	return year, true
}
