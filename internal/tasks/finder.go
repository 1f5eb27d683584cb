package tasks

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"cratedig/internal/models"
	"cratedig/internal/services"
)

// searchLimit caps track search result pages. Candidates beyond this are
// assumed to be worse matches than anything the local filter keeps.
const searchLimit = 50

// albumTypeAlbum is the normalized type that qualifies as a regular album.
const albumTypeAlbum = "Album"

// Finder searches a track's album appearances and selects the earliest
// qualifying release.
type Finder struct {
	svc services.Service
}

// NewFinder creates a Finder.
func NewFinder(svc services.Service) *Finder {
	return &Finder{svc: svc}
}

// Search issues an exact-field track search and re-filters the results
// locally: the track name must contain the queried name and at least one
// artist must contain the queried artist, both case-insensitive substring
// matches. Track search is deliberately permissive where playlist
// resolution is exact.
func (f *Finder) Search(ctx context.Context, trackName, artistName string) ([]models.AlbumCandidate, error) {
	query := fmt.Sprintf("track:%q artist:%q", trackName, artistName)

	tracks, err := f.svc.SearchTracks(ctx, query, searchLimit)
	if err != nil {
		return nil, err
	}

	wantTrack := strings.ToLower(trackName)
	wantArtist := strings.ToLower(artistName)

	var candidates []models.AlbumCandidate
	for _, track := range tracks {
		if !strings.Contains(strings.ToLower(track.Name), wantTrack) {
			continue
		}
		if !artistListContains(track.Artists, wantArtist) {
			continue
		}

		year := ParseReleaseYear(track.Album.ReleaseDate)
		display := track.Album.ReleaseDate
		if year == 0 {
			display = "Unknown"
		}

		candidates = append(candidates, models.AlbumCandidate{
			TrackName:   track.Name,
			AlbumName:   track.Album.Name,
			AlbumID:     track.Album.ID,
			AlbumType:   NormalizeAlbumType(track.Album.Type),
			ReleaseDate: display,
			ReleaseYear: year,
			Artists:     track.Artists,
			TrackID:     track.ID,
		})
	}

	SortCandidates(candidates)
	return candidates, nil
}

// FindEarliestBeforeYear returns the earliest regular-album candidate
// released strictly before year, or nil when none qualifies.
func (f *Finder) FindEarliestBeforeYear(ctx context.Context, trackName, artistName string, year int) (*models.AlbumCandidate, error) {
	candidates, err := f.Search(ctx, trackName, artistName)
	if err != nil {
		return nil, err
	}

	candidates = FilterByType(candidates, albumTypeAlbum)
	candidates = FilterBeforeYear(candidates, year)
	if len(candidates) == 0 {
		return nil, nil
	}
	return &candidates[0], nil
}

func artistListContains(artists []string, want string) bool {
	for _, a := range artists {
		if strings.Contains(strings.ToLower(a), want) {
			return true
		}
	}
	return false
}

// NormalizeAlbumType capitalizes the first letter of the remote-provided
// type string; an empty type yields "Unknown".
func NormalizeAlbumType(albumType string) string {
	if albumType == "" {
		return "Unknown"
	}
	return strings.ToUpper(albumType[:1]) + strings.ToLower(albumType[1:])
}

// ParseReleaseYear extracts the calendar year from a Spotify release date,
// which may carry day, month, or year precision. Unparsable or absent dates
// yield 0, which never satisfies a before-year filter downstream.
func ParseReleaseYear(date string) int {
	for _, layout := range []string{"2006-01-02", "2006-01", "2006"} {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Year()
		}
	}
	return 0
}

// SortCandidates orders candidates by ascending release year, breaking ties
// by case-insensitive album name. The sort is stable; "earliest" everywhere
// means the first element after this ordering.
func SortCandidates(candidates []models.AlbumCandidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].ReleaseYear != candidates[j].ReleaseYear {
			return candidates[i].ReleaseYear < candidates[j].ReleaseYear
		}
		return strings.ToLower(candidates[i].AlbumName) < strings.ToLower(candidates[j].AlbumName)
	})
}

// FilterByType keeps candidates whose normalized album type matches,
// case-insensitively. An empty type filter keeps everything.
func FilterByType(candidates []models.AlbumCandidate, albumType string) []models.AlbumCandidate {
	if albumType == "" {
		return candidates
	}
	var out []models.AlbumCandidate
	for _, c := range candidates {
		if strings.EqualFold(c.AlbumType, albumType) {
			out = append(out, c)
		}
	}
	return out
}

// FilterBeforeYear keeps candidates with a known release year strictly less
// than year. Year 0 (unknown) never qualifies. A year of 0 as the bound
// disables the filter.
func FilterBeforeYear(candidates []models.AlbumCandidate, year int) []models.AlbumCandidate {
	if year == 0 {
		return candidates
	}
	var out []models.AlbumCandidate
	for _, c := range candidates {
		if c.ReleaseYear > 0 && c.ReleaseYear < year {
			out = append(out, c)
		}
	}
	return out
}
