// package resolve turns a playlist reference (name+owner, URL, or ID) into
// exactly one playlist, disambiguating multiple name matches through an
// injected [Prompter].
package resolve

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"cratedig/internal/models"
	"cratedig/internal/services"
	"cratedig/internal/shared"

	"github.com/charmbracelet/log"
)

var (
	webURLPattern = regexp.MustCompile(`^https?://open\.spotify\.com/playlist/([A-Za-z0-9]+)(?:[?#].*)?$`)
	uriPattern    = regexp.MustCompile(`^spotify:playlist:([A-Za-z0-9]+)$`)
)

// searchLimit bounds name-search result pages; exact-name filtering happens
// locally afterwards.
const searchLimit = 50

// Resolver resolves one playlist per invocation. The three modes are
// mutually exclusive; callers pick exactly one.
type Resolver struct {
	svc      services.Service
	prompter Prompter
	logger   *log.Logger
}

// New creates a Resolver. A nil prompter fails fast on ambiguous matches.
func New(svc services.Service, prompter Prompter, logger *log.Logger) *Resolver {
	if prompter == nil {
		prompter = FailFast{}
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Resolver{svc: svc, prompter: prompter, logger: logger}
}

// ByName resolves a playlist by exact, case-insensitive name match, with an
// optional exact owner-ID filter. Substring matches never qualify. Zero
// matches is a domain not-found error, never a crash; multiple matches go
// through the prompter for an explicit selection.
func (r *Resolver) ByName(ctx context.Context, name, owner string) (*models.Playlist, error) {
	query := fmt.Sprintf("%q", name)
	if owner != "" {
		query += " owner:" + owner
	}

	results, err := r.svc.SearchPlaylists(ctx, query, searchLimit)
	if err != nil {
		return nil, err
	}

	var matches []models.Playlist
	for _, pl := range results {
		if !strings.EqualFold(pl.Name, name) {
			continue
		}
		if owner != "" && !strings.EqualFold(pl.OwnerID, owner) {
			continue
		}
		matches = append(matches, pl)
	}

	switch len(matches) {
	case 0:
		if owner != "" {
			return nil, fmt.Errorf("%w: no playlist found with name %q owned by %q", shared.ErrNotFound, name, owner)
		}
		return nil, fmt.Errorf("%w: no playlist found with name %q", shared.ErrNotFound, name)
	case 1:
		return &matches[0], nil
	}

	r.logger.Debug("ambiguous playlist name", "name", name, "matches", len(matches))

	idx, err := r.prompter.Pick(matches)
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(matches) {
		return nil, fmt.Errorf("%w: selection %d out of range 1-%d", shared.ErrValidation, idx+1, len(matches))
	}
	return &matches[idx], nil
}

// ByURL resolves a playlist from either the open.spotify.com web link or the
// spotify:playlist: URI form, then delegates to ByID.
func (r *Resolver) ByURL(ctx context.Context, raw string) (*models.Playlist, error) {
	id, err := ParsePlaylistURL(raw)
	if err != nil {
		return nil, err
	}
	return r.ByID(ctx, id)
}

// ByID fetches a playlist directly. A 404 is translated to the domain
// not-found condition.
func (r *Resolver) ByID(ctx context.Context, id string) (*models.Playlist, error) {
	playlist, err := r.svc.GetPlaylist(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, fmt.Errorf("%w: playlist %q not found or not public", shared.ErrNotFound, id)
		}
		return nil, err
	}
	return playlist, nil
}

// ParsePlaylistURL extracts the playlist ID from a web link
// (https://open.spotify.com/playlist/<id>) or URI (spotify:playlist:<id>).
func ParsePlaylistURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)

	if m := webURLPattern.FindStringSubmatch(raw); m != nil {
		return m[1], nil
	}
	if m := uriPattern.FindStringSubmatch(raw); m != nil {
		return m[1], nil
	}

	return "", fmt.Errorf("%w: %q is not a playlist link or URI", shared.ErrInvalidURL, raw)
}
