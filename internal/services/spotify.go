// Spotify API implementation of [Service]
//
// Spotify API response types based on https://developer.spotify.com/documentation/web-api/reference/
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"cratedig/internal/models"
	"cratedig/internal/shared"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	spotifyAuthURL  = "https://accounts.spotify.com/authorize"
	spotifyTokenURL = "https://accounts.spotify.com/api/token"
	spotifyBaseURL  = "https://api.spotify.com/v1"
)

// trackFields is the minimal field projection requested for playlist pages,
// bounding payload size to what the collector and exporter consume.
const trackFields = "total,items(track(id,name,duration_ms,popularity,artists(name),album(id,name,album_type,release_date)))"

type followers struct {
	Total int `json:"total"`
}

// SpotifyUser represents a Spotify user profile.
type SpotifyUser struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	Followers   followers `json:"followers"`
}

// SpotifyArtist represents a Spotify artist.
type SpotifyArtist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SpotifyAlbum represents a Spotify album.
type SpotifyAlbum struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	AlbumType   string `json:"album_type"`
	ReleaseDate string `json:"release_date"`
}

// SpotifyTrack represents a Spotify track.
//
// Popularity is a pointer so a projection that omits it is distinguishable
// from a popularity of zero.
type SpotifyTrack struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Artists    []SpotifyArtist `json:"artists"`
	Album      SpotifyAlbum    `json:"album"`
	DurationMS int             `json:"duration_ms"`
	Popularity *int            `json:"popularity"`
	URI        string          `json:"uri"`
}

// Owner represents a playlist owner. display_name may be absent.
type Owner struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

type playlistTracksRef struct {
	Total int `json:"total"`
}

// SpotifyPlaylist represents a Spotify playlist.
type SpotifyPlaylist struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Owner       Owner             `json:"owner"`
	Public      bool              `json:"public"`
	Tracks      playlistTracksRef `json:"tracks"`
	Followers   followers         `json:"followers"`
	URI         string            `json:"uri"`
}

// playlistTrackItem wraps a track within a playlist page. Track is a pointer
// because removed or region-blocked entries come back as JSON null.
type playlistTrackItem struct {
	Track *SpotifyTrack `json:"track"`
}

// SpotifyPagedTracks represents one page of a playlist's tracks.
type SpotifyPagedTracks struct {
	Total  int                 `json:"total"`
	Offset int                 `json:"offset"`
	Items  []playlistTrackItem `json:"items"`
}

// searchResponse wraps /search results. Items use pointers because Spotify
// intersperses null entries in search result pages.
type searchResponse struct {
	Playlists struct {
		Items []*SpotifyPlaylist `json:"items"`
	} `json:"playlists"`
	Tracks struct {
		Items []*SpotifyTrack `json:"items"`
	} `json:"tracks"`
}

// errorResponse is the standard Spotify error envelope.
type errorResponse struct {
	Error struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}

// SpotifyService implements [Service] against the Spotify Web API.
//
// Tokens are single-use per invocation: a 401 mid-operation surfaces as an
// auth failure and the whole operation aborts. There is no refresh or retry.
type SpotifyService struct {
	clientID     string
	clientSecret string
	redirectURI  string
	token        *oauth2.Token
	httpClient   *http.Client
	baseURL      string
	tokenURL     string
}

// NewSpotifyService creates a new Spotify service with the given credentials.
// Absent credentials are a fatal precondition, reported before any network access.
func NewSpotifyService(cfg shared.SpotifyConfig) (*SpotifyService, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, fmt.Errorf("%w: spotify client_id and client_secret are required", shared.ErrMissingCredentials)
	}

	return &SpotifyService{
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		redirectURI:  cfg.RedirectURI,
		httpClient:   http.DefaultClient,
		baseURL:      spotifyBaseURL,
		tokenURL:     spotifyTokenURL,
	}, nil
}

func (s *SpotifyService) Name() string {
	return "Spotify"
}

// Authenticate exchanges the client credentials for a bearer token.
//
// A non-2xx exchange response or a 2xx response without a token surfaces as
// an auth failure carrying the remote status and message; a transport
// failure surfaces as a network error.
func (s *SpotifyService) Authenticate(ctx context.Context) error {
	conf := &clientcredentials.Config{
		ClientID:     s.clientID,
		ClientSecret: s.clientSecret,
		TokenURL:     s.tokenURL,
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)
	token, err := conf.Token(ctx)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			return fmt.Errorf("%w: credential exchange returned status %d: %s",
				shared.ErrAuthFailed, retrieveErr.Response.StatusCode, string(retrieveErr.Body))
		}
		// The oauth2 package wraps transport failures opaquely, so match
		// both the unwrapped error and its fetch-failure message.
		var urlErr *url.Error
		if errors.As(err, &urlErr) || strings.Contains(err.Error(), "cannot fetch token") {
			return fmt.Errorf("%w: credential exchange: %v", shared.ErrNetwork, err)
		}
		return fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}

	s.token = token
	return nil
}

// UseToken installs a token obtained elsewhere (the OAuth authorization-code
// flow) instead of performing a client-credentials exchange.
func (s *SpotifyService) UseToken(token *oauth2.Token) {
	s.token = token
}

// OAuthConfig returns the authorization-code flow configuration used by the
// loopback OAuth collaborator for playlist creation.
func (s *SpotifyService) OAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     s.clientID,
		ClientSecret: s.clientSecret,
		RedirectURL:  s.redirectURI,
		Scopes: []string{
			"playlist-modify-public",
			"playlist-modify-private",
		},
		Endpoint: oauth2.Endpoint{
			AuthURL:  spotifyAuthURL,
			TokenURL: s.tokenURL,
		},
	}
}

// do performs an authenticated request against the API.
//
// Error translation: transport failure → network error, 401 → auth failure,
// 404 → not found, any other non-2xx → [shared.APIError] with the remote
// status and message verbatim.
func (s *SpotifyService) do(ctx context.Context, method, path string, query url.Values, body, result any) error {
	if s.token == nil {
		return fmt.Errorf("%w: not authenticated, call Authenticate first", shared.ErrAuthFailed)
	}

	apiURL := s.baseURL + path
	if len(query) > 0 {
		apiURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, apiURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.token.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrNetwork, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%w: token rejected (status 401)", shared.ErrAuthFailed)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", shared.ErrNotFound, path)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		apiErr := &shared.APIError{Status: resp.StatusCode}
		var envelope errorResponse
		if data, readErr := io.ReadAll(resp.Body); readErr == nil {
			if json.Unmarshal(data, &envelope) == nil {
				apiErr.Message = envelope.Error.Message
			}
		}
		return apiErr
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// CurrentUser retrieves the authenticated user's profile.
func (s *SpotifyService) CurrentUser(ctx context.Context) (*models.User, error) {
	var user SpotifyUser
	if err := s.do(ctx, http.MethodGet, "/me", nil, nil, &user); err != nil {
		return nil, err
	}
	name := user.DisplayName
	if name == "" {
		name = user.ID
	}
	return &models.User{ID: user.ID, DisplayName: name}, nil
}

// SearchPlaylists searches playlists by free-form query. Null result entries
// are dropped.
func (s *SpotifyService) SearchPlaylists(ctx context.Context, query string, limit int) ([]models.Playlist, error) {
	if limit <= 0 || limit > 50 {
		limit = 50
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("type", "playlist")
	params.Set("limit", fmt.Sprintf("%d", limit))

	var response searchResponse
	if err := s.do(ctx, http.MethodGet, "/search", params, nil, &response); err != nil {
		return nil, err
	}

	playlists := make([]models.Playlist, 0, len(response.Playlists.Items))
	for _, sp := range response.Playlists.Items {
		if sp == nil {
			continue
		}
		playlists = append(playlists, toPlaylist(sp))
	}
	return playlists, nil
}

// GetPlaylist retrieves a playlist by ID.
func (s *SpotifyService) GetPlaylist(ctx context.Context, playlistID string) (*models.Playlist, error) {
	var sp SpotifyPlaylist
	if err := s.do(ctx, http.MethodGet, "/playlists/"+playlistID, nil, nil, &sp); err != nil {
		return nil, err
	}
	playlist := toPlaylist(&sp)
	return &playlist, nil
}

// PlaylistTracks retrieves one page of a playlist's tracks. Entries whose
// track object is null are dropped here; entries with an empty ID are left
// for the collector to filter.
func (s *SpotifyService) PlaylistTracks(ctx context.Context, playlistID string, offset, limit int) (*models.TrackPage, error) {
	if limit <= 0 || limit > 50 {
		limit = 50
	}

	params := url.Values{}
	params.Set("offset", fmt.Sprintf("%d", offset))
	params.Set("limit", fmt.Sprintf("%d", limit))
	params.Set("fields", trackFields)

	var response SpotifyPagedTracks
	if err := s.do(ctx, http.MethodGet, "/playlists/"+playlistID+"/tracks", params, nil, &response); err != nil {
		return nil, err
	}

	page := &models.TrackPage{Total: response.Total, Items: make([]models.Track, 0, len(response.Items))}
	for _, item := range response.Items {
		if item.Track == nil {
			continue
		}
		page.Items = append(page.Items, toTrack(item.Track))
	}
	return page, nil
}

// SearchTracks searches tracks by query.
func (s *SpotifyService) SearchTracks(ctx context.Context, query string, limit int) ([]models.Track, error) {
	if limit <= 0 || limit > 50 {
		limit = 50
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("type", "track")
	params.Set("limit", fmt.Sprintf("%d", limit))

	var response searchResponse
	if err := s.do(ctx, http.MethodGet, "/search", params, nil, &response); err != nil {
		return nil, err
	}

	tracks := make([]models.Track, 0, len(response.Tracks.Items))
	for _, st := range response.Tracks.Items {
		if st == nil {
			continue
		}
		tracks = append(tracks, toTrack(st))
	}
	return tracks, nil
}

// CreatePlaylist creates a playlist for userID. The collaborative flag is
// always false.
func (s *SpotifyService) CreatePlaylist(ctx context.Context, userID, name, description string, public bool) (*models.Playlist, error) {
	body := map[string]any{
		"name":          name,
		"description":   description,
		"public":        public,
		"collaborative": false,
	}

	var sp SpotifyPlaylist
	if err := s.do(ctx, http.MethodPost, "/users/"+userID+"/playlists", nil, body, &sp); err != nil {
		return nil, err
	}
	playlist := toPlaylist(&sp)
	return &playlist, nil
}

// AddTracks adds up to 100 track URIs to a playlist in a single request.
func (s *SpotifyService) AddTracks(ctx context.Context, playlistID string, uris []string) error {
	if len(uris) == 0 {
		return nil
	}
	if len(uris) > 100 {
		return fmt.Errorf("%w: at most 100 URIs per request, got %d", shared.ErrValidation, len(uris))
	}

	body := map[string]any{"uris": uris}
	return s.do(ctx, http.MethodPost, "/playlists/"+playlistID+"/tracks", nil, body, nil)
}

func toPlaylist(sp *SpotifyPlaylist) models.Playlist {
	ownerName := sp.Owner.DisplayName
	if ownerName == "" {
		ownerName = sp.Owner.ID
	}
	if ownerName == "" {
		ownerName = "Unknown"
	}

	return models.Playlist{
		ID:          sp.ID,
		Name:        sp.Name,
		OwnerID:     sp.Owner.ID,
		OwnerName:   ownerName,
		Public:      sp.Public,
		TrackCount:  sp.Tracks.Total,
		Description: sp.Description,
		Followers:   sp.Followers.Total,
	}
}

func toTrack(st *SpotifyTrack) models.Track {
	artists := make([]string, 0, len(st.Artists))
	for _, a := range st.Artists {
		if a.Name != "" {
			artists = append(artists, a.Name)
		}
	}

	return models.Track{
		ID:         st.ID,
		Name:       st.Name,
		Artists:    artists,
		Album:      models.Album{ID: st.Album.ID, Name: st.Album.Name, Type: st.Album.AlbumType, ReleaseDate: st.Album.ReleaseDate},
		DurationMS: st.DurationMS,
		Popularity: st.Popularity,
	}
}
