// package formatter provides the CSV export/import adapters: field mapping,
// the `;`-delimited CRLF encoding, and filename collision avoidance.
package formatter

import (
	"fmt"
	"strings"
	"time"

	"cratedig/internal/models"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Sentinels for absent metadata in export rows.
const (
	unknownArtist = "Unknown Artist"
	unknownAlbum  = "Unknown Album"
)

// ExportHeader is the column set of a playlist export.
var ExportHeader = []string{
	"Track Name", "Artist Name", "Album Name", "Album Year",
	"Track Duration", "Track Popularity", "Spotify Track ID",
}

// InputHeader is the required column set of an enrichment/creation input.
var InputHeader = []string{"Track Name", "Artist Name", "Release Year", "Spotify Track ID"}

// EnrichedHeader is InputHeader plus the four discovered columns.
var EnrichedHeader = []string{
	"Track Name", "Artist Name", "Release Year", "Spotify Track ID",
	"New Track Name", "New Album Name", "New Album Release Year", "New Track Spotify ID",
}

// Formatter turns tracks into export rows. The printer makes popularity a
// locale-aware number string with grouping separators.
type Formatter struct {
	printer *message.Printer
}

// New creates a Formatter for the given locale tag.
func New(tag language.Tag) *Formatter {
	return &Formatter{printer: message.NewPrinter(tag)}
}

// ExportRow maps a track to the export column set, substituting sentinels
// for missing metadata.
func (f *Formatter) ExportRow(track models.Track) []string {
	artist := strings.Join(track.Artists, ", ")
	if artist == "" {
		artist = unknownArtist
	}

	album := track.Album.Name
	if album == "" {
		album = unknownAlbum
	}

	year := ""
	if y := releaseYear(track.Album.ReleaseDate); y > 0 {
		year = fmt.Sprintf("%d", y)
	}

	return []string{
		track.Name,
		artist,
		album,
		year,
		FormatDuration(track.DurationMS),
		f.FormatPopularity(track.Popularity),
		track.ID,
	}
}

// EnrichedRow maps an enriched row to the enrichment column set. The first
// four columns are the input fields, passed through untouched.
func EnrichedRow(row models.EnrichedRow) []string {
	return []string{
		row.TrackName,
		row.ArtistName,
		row.ReleaseYear,
		row.TrackID,
		row.NewTrackName,
		row.NewAlbumName,
		row.NewAlbumYear,
		row.NewTrackID,
	}
}

// FormatDuration renders milliseconds as minutes:seconds with the seconds
// zero-padded to two digits (233000 → "3:53").
func FormatDuration(ms int) string {
	totalSeconds := ms / 1000
	return fmt.Sprintf("%d:%02d", totalSeconds/60, totalSeconds%60)
}

// FormatPopularity renders popularity with the locale's grouping separators
// and at most two fractional digits. Missing popularity is an empty string.
func (f *Formatter) FormatPopularity(popularity *int) string {
	if popularity == nil {
		return ""
	}
	return f.printer.Sprint(number.Decimal(*popularity, number.MaxFractionDigits(2)))
}

// releaseYear parses the calendar year of a release date string, which may
// carry day, month, or year precision; 0 when unparsable or absent.
func releaseYear(date string) int {
	for _, layout := range []string{"2006-01-02", "2006-01", "2006"} {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Year()
		}
	}
	return 0
}
