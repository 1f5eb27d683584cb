package tasks

import (
	"context"

	"cratedig/internal/models"
	"cratedig/internal/services"
	"cratedig/internal/shared"

	"github.com/charmbracelet/log"
)

// pageSize is the fixed per-request item limit for playlist track pages.
const pageSize = 50

// Collector flattens a playlist's paginated track collection into a single
// in-memory sequence.
type Collector struct {
	svc    services.Service
	logger *log.Logger
}

// NewCollector creates a Collector.
func NewCollector(svc services.Service, logger *log.Logger) *Collector {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Collector{svc: svc, logger: logger}
}

// Collect pages through the playlist's tracks sequentially. The first page
// establishes the authoritative total; fetching continues while
// offset < total. Entries without a track ID are dropped silently (removed
// or region-blocked tracks), so the emitted sequence may be shorter than
// the playlist's reported total.
func (c *Collector) Collect(ctx context.Context, playlistID string, progress chan<- ProgressUpdate) ([]models.Track, error) {
	var tracks []models.Track
	offset := 0
	total := 0

	for {
		page, err := c.svc.PlaylistTracks(ctx, playlistID, offset, pageSize)
		if err != nil {
			return nil, err
		}

		if offset == 0 {
			total = page.Total
			tracks = make([]models.Track, 0, total)
		}

		for _, track := range page.Items {
			if track.ID == "" {
				continue
			}
			tracks = append(tracks, track)
		}

		offset += pageSize
		if offset >= total {
			break
		}
		notify(progress, collectPageUpdate(offset, total))
	}

	if dropped := total - len(tracks); dropped > 0 {
		c.logger.Debug("dropped unavailable tracks", "playlist", playlistID, "dropped", dropped)
	}
	return tracks, nil
}
