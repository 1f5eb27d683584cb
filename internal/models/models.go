package models

// Playlist represents a Spotify playlist. Identity is the ID; instances are
// fetched fresh per invocation and never mutated locally.
type Playlist struct {
	ID          string
	Name        string
	OwnerID     string
	OwnerName   string
	Public      bool
	TrackCount  int
	Description string
	Followers   int
}

// Album represents the album a track appears on.
type Album struct {
	ID          string
	Name        string
	Type        string // album, single, compilation
	ReleaseDate string // raw date string, precision varies (YYYY, YYYY-MM, YYYY-MM-DD)
}

// Track represents a single recording with metadata.
//
// Popularity is nil when the API omitted it; a track fetched from a playlist
// page may legitimately have an empty ID (removed or region-blocked) and is
// filtered out during collection.
type Track struct {
	ID         string
	Name       string
	Artists    []string
	Album      Album
	DurationMS int
	Popularity *int
}

// TrackPage is one page of a playlist's track collection.
type TrackPage struct {
	Items []Track
	Total int
}

// User represents the authenticated Spotify user profile.
type User struct {
	ID          string
	DisplayName string
}

// AlbumCandidate describes one album appearance of a searched track.
// Derived per search and discarded afterwards.
type AlbumCandidate struct {
	TrackName   string
	AlbumName   string
	AlbumID     string
	AlbumType   string // normalized: "Album", "Single", "Compilation", "Unknown"
	ReleaseDate string // display string, "Unknown" when unparsable
	ReleaseYear int    // 0 = unknown, never satisfies a before-year filter
	Artists     []string
	TrackID     string
}

// InputRow is one row of an enrichment or creation input CSV. Fields stay
// strings so the original values survive byte-for-byte into the output.
type InputRow struct {
	TrackName   string
	ArtistName  string
	ReleaseYear string
	TrackID     string
}

// EnrichedRow is an InputRow plus the discovered original-album fields.
// All four new fields default to empty when no candidate was found.
type EnrichedRow struct {
	InputRow
	NewTrackName string
	NewAlbumName string
	NewAlbumYear string
	NewTrackID   string
}

// BatchAddResult partitions the outcome of adding candidate track IDs to a
// playlist. Successful + Failed + Skipped always equals the input length.
type BatchAddResult struct {
	Successful int // confirmed additions
	Failed     int // accepted IDs the remote rejected (counted per chunk)
	Skipped    int // structurally invalid IDs, never sent
}

// Total returns the number of IDs accounted for.
func (r BatchAddResult) Total() int {
	return r.Successful + r.Failed + r.Skipped
}
