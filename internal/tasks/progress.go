package tasks

import "fmt"

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
}

// Operation phase enumeration
type Phase int

const (
	CollectTracks Phase = iota
	EnrichRows
	CreatePlaylist
	AddTracks
)

func (p Phase) String() string {
	switch p {
	case CollectTracks:
		return "collect_tracks"
	case EnrichRows:
		return "enrich_rows"
	case CreatePlaylist:
		return "create_playlist"
	case AddTracks:
		return "add_tracks"
	default:
		return ""
	}
}

// notify sends a progress update through the channel without blocking.
// A full or nil channel drops the update rather than stalling the operation.
func notify(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

func collectPageUpdate(offset, total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   CollectTracks,
		Step:    offset,
		Total:   total,
		Message: fmt.Sprintf("Fetched tracks %d of %d...", offset, total),
	}
}

func enrichRowUpdate(row, total, found int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   EnrichRows,
		Step:    row,
		Total:   total,
		Message: fmt.Sprintf("Processed %d/%d rows, %d original albums found", row, total, found),
	}
}

func addChunkUpdate(done, total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   AddTracks,
		Step:    done,
		Total:   total,
		Message: fmt.Sprintf("Added %d of %d tracks...", done, total),
	}
}
