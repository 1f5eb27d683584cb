package tasks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cratedig/internal/models"
	"cratedig/internal/services"
	"cratedig/internal/shared"

	"github.com/charmbracelet/log"
)

// addChunkSize is the remote per-request cap on track URIs.
const addChunkSize = 100

// Writer creates playlists and adds tracks in size-bounded batches.
type Writer struct {
	svc    services.Service
	pacer  shared.Pacer
	logger *log.Logger
	now    func() time.Time
}

// NewWriter creates a Writer. A nil pacer disables inter-chunk delays.
func NewWriter(svc services.Service, pacer shared.Pacer, logger *log.Logger) *Writer {
	if pacer == nil {
		pacer = shared.NopPacer{}
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Writer{svc: svc, pacer: pacer, logger: logger, now: time.Now}
}

// CreatePlaylist creates a playlist for the authenticated user with a
// creation-date stamp in the description. Collaborative is always false.
func (w *Writer) CreatePlaylist(ctx context.Context, name string, public bool) (*models.Playlist, error) {
	user, err := w.svc.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	description := fmt.Sprintf("Created by cratedig on %s", w.now().Format("2006-01-02"))
	playlist, err := w.svc.CreatePlaylist(ctx, user.ID, name, description, public)
	if err != nil {
		return nil, err
	}

	w.logger.Info("created playlist", "name", playlist.Name, "id", playlist.ID, "public", playlist.Public)
	return playlist, nil
}

// AddTracks adds candidate track IDs to a playlist.
//
// Structurally invalid IDs (empty or blank) are counted as skipped and never
// sent. Valid IDs are chunked into groups of at most 100 and submitted as
// spotify:track:<id> URIs. A chunk the remote rejects counts its entire size
// as failed; the granularity of failure is the chunk, and the overall add
// never aborts because of one. Successful + Failed + Skipped == len(ids).
func (w *Writer) AddTracks(ctx context.Context, playlistID string, ids []string, progress chan<- ProgressUpdate) (models.BatchAddResult, error) {
	var result models.BatchAddResult

	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		if strings.TrimSpace(id) == "" {
			result.Skipped++
			continue
		}
		valid = append(valid, strings.TrimSpace(id))
	}

	for start := 0; start < len(valid); start += addChunkSize {
		end := min(start+addChunkSize, len(valid))
		chunk := valid[start:end]

		if err := w.pacer.Wait(ctx); err != nil {
			return result, err
		}

		uris := make([]string, len(chunk))
		for i, id := range chunk {
			uris[i] = "spotify:track:" + id
		}

		if err := w.svc.AddTracks(ctx, playlistID, uris); err != nil {
			result.Failed += len(chunk)
			w.logger.Warn("chunk rejected", "playlist", playlistID, "size", len(chunk), "err", err)
		} else {
			result.Successful += len(chunk)
		}

		notify(progress, addChunkUpdate(end, len(valid)))
	}

	return result, nil
}
