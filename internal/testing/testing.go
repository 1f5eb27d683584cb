// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"net/http"

	"cratedig/internal/models"
)

// MockService is a configurable test double for [services.Service].
// Unset function fields return zero values.
type MockService struct {
	AuthenticateFunc    func(ctx context.Context) error
	CurrentUserFunc     func(ctx context.Context) (*models.User, error)
	SearchPlaylistsFunc func(ctx context.Context, query string, limit int) ([]models.Playlist, error)
	GetPlaylistFunc     func(ctx context.Context, playlistID string) (*models.Playlist, error)
	PlaylistTracksFunc  func(ctx context.Context, playlistID string, offset, limit int) (*models.TrackPage, error)
	SearchTracksFunc    func(ctx context.Context, query string, limit int) ([]models.Track, error)
	CreatePlaylistFunc  func(ctx context.Context, userID, name, description string, public bool) (*models.Playlist, error)
	AddTracksFunc       func(ctx context.Context, playlistID string, uris []string) error
}

func (m *MockService) Authenticate(ctx context.Context) error {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx)
	}
	return nil
}

func (m *MockService) CurrentUser(ctx context.Context) (*models.User, error) {
	if m.CurrentUserFunc != nil {
		return m.CurrentUserFunc(ctx)
	}
	return &models.User{ID: "mockuser", DisplayName: "Mock User"}, nil
}

func (m *MockService) SearchPlaylists(ctx context.Context, query string, limit int) ([]models.Playlist, error) {
	if m.SearchPlaylistsFunc != nil {
		return m.SearchPlaylistsFunc(ctx, query, limit)
	}
	return []models.Playlist{}, nil
}

func (m *MockService) GetPlaylist(ctx context.Context, playlistID string) (*models.Playlist, error) {
	if m.GetPlaylistFunc != nil {
		return m.GetPlaylistFunc(ctx, playlistID)
	}
	return nil, nil
}

func (m *MockService) PlaylistTracks(ctx context.Context, playlistID string, offset, limit int) (*models.TrackPage, error) {
	if m.PlaylistTracksFunc != nil {
		return m.PlaylistTracksFunc(ctx, playlistID, offset, limit)
	}
	return &models.TrackPage{}, nil
}

func (m *MockService) SearchTracks(ctx context.Context, query string, limit int) ([]models.Track, error) {
	if m.SearchTracksFunc != nil {
		return m.SearchTracksFunc(ctx, query, limit)
	}
	return []models.Track{}, nil
}

func (m *MockService) CreatePlaylist(ctx context.Context, userID, name, description string, public bool) (*models.Playlist, error) {
	if m.CreatePlaylistFunc != nil {
		return m.CreatePlaylistFunc(ctx, userID, name, description, public)
	}
	return &models.Playlist{ID: "created", Name: name, Public: public}, nil
}

func (m *MockService) AddTracks(ctx context.Context, playlistID string, uris []string) error {
	if m.AddTracksFunc != nil {
		return m.AddTracksFunc(ctx, playlistID, uris)
	}
	return nil
}

func (m *MockService) Name() string { return "mock" }

// RoundTripFunc adapts a function to [http.RoundTripper] for stubbing
// HTTP responses in client tests.
type RoundTripFunc func(*http.Request) (*http.Response, error)

func (f RoundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}
