// package ui renders candidate tables and summaries with [lipgloss] styles
package ui

import (
	"fmt"
	"strings"

	"cratedig/internal/models"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#1DB954")).Bold(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
)

// Title styles a heading line.
func Title(s string) string { return titleStyle.Render(s) }

// OK styles a success line.
func OK(s string) string { return okStyle.Render(s) }

// Err styles a failure line.
func Err(s string) string { return errStyle.Render(s) }

// Dim styles secondary detail text.
func Dim(s string) string { return dimStyle.Render(s) }

// Visibility renders a playlist's public flag for display.
func Visibility(public bool) string {
	if public {
		return "public"
	}
	return "private"
}

// CandidateLine renders one disambiguation candidate as a single line with
// its 1-based index, owner, track count, visibility, and follower count.
func CandidateLine(n int, pl models.Playlist) string {
	return fmt.Sprintf("%d. %s — %s (%d tracks, %s, %d followers)",
		n, pl.Name, pl.OwnerName, pl.TrackCount, Visibility(pl.Public), pl.Followers)
}

// RenderCandidates renders the full numbered candidate table, including
// descriptions where present.
func RenderCandidates(candidates []models.Playlist) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%d playlists match:", len(candidates))))
	b.WriteString("\n")
	for i, pl := range candidates {
		b.WriteString(CandidateLine(i+1, pl))
		b.WriteString("\n")
		if pl.Description != "" {
			b.WriteString("   " + dimStyle.Render(pl.Description))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// RenderCandidateAlbums renders album search results as a numbered table,
// marking the chosen candidate.
func RenderCandidateAlbums(candidates []models.AlbumCandidate, chosen *models.AlbumCandidate) string {
	var b strings.Builder
	for i, c := range candidates {
		line := fmt.Sprintf("%d. %s — %s [%s, %s]", i+1, c.AlbumName, strings.Join(c.Artists, ", "), c.AlbumType, c.ReleaseDate)
		if chosen != nil && c.AlbumID == chosen.AlbumID && c.TrackID == chosen.TrackID {
			line = okStyle.Render(line + "  ← earliest")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
