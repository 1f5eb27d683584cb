// package services defines interface Service for interacting with the Spotify Web API
package services

import (
	"context"

	"cratedig/internal/models"
)

// Service defines the operations the resolver and task engines need from the
// playlist API. The concrete implementation is [SpotifyService]; tests
// substitute a mock.
type Service interface {
	// Authenticate obtains a bearer token via the client-credentials grant.
	Authenticate(ctx context.Context) error

	// CurrentUser retrieves the authenticated user's profile.
	// Requires a user-authorized token, not a client-credentials one.
	CurrentUser(ctx context.Context) (*models.User, error)

	// SearchPlaylists searches playlists by free-form query.
	SearchPlaylists(ctx context.Context, query string, limit int) ([]models.Playlist, error)

	// GetPlaylist retrieves a playlist by ID. A 404 surfaces as a
	// not-found error for the caller to translate.
	GetPlaylist(ctx context.Context, playlistID string) (*models.Playlist, error)

	// PlaylistTracks retrieves one page of a playlist's tracks with a
	// minimal field projection.
	PlaylistTracks(ctx context.Context, playlistID string, offset, limit int) (*models.TrackPage, error)

	// SearchTracks searches tracks by the exact-field query syntax
	// (track:"..." artist:"...").
	SearchTracks(ctx context.Context, query string, limit int) ([]models.Track, error)

	// CreatePlaylist creates a playlist owned by userID.
	CreatePlaylist(ctx context.Context, userID, name, description string, public bool) (*models.Playlist, error)

	// AddTracks adds up to 100 track URIs to a playlist in one request.
	AddTracks(ctx context.Context, playlistID string, uris []string) error

	// Name returns the service name for display.
	Name() string
}
