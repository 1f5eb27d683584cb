package formatter

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cratedig/internal/models"
	"cratedig/internal/shared"

	"golang.org/x/text/language"
)

func TestWriteExportCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.csv")

	tracks := []models.Track{
		{
			ID: "abc123", Name: "Yesterday", Artists: []string{"The Beatles"},
			Album:      models.Album{Name: "Help!", ReleaseDate: "1965-08-06"},
			DurationMS: 125000, Popularity: intptr(82),
		},
	}

	if err := New(language.English).WriteExportCSV(path, tracks); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	t.Run("Semicolon Delimited", func(t *testing.T) {
		if !strings.Contains(content, "Track Name;Artist Name;Album Name") {
			t.Errorf("expected `;`-delimited header, got %q", content)
		}
	})

	t.Run("CRLF Line Endings", func(t *testing.T) {
		if !strings.Contains(content, "\r\n") {
			t.Error("expected CRLF line endings")
		}
	})

	t.Run("One Line Per Track Plus Header", func(t *testing.T) {
		lines := strings.Split(strings.TrimRight(content, "\r\n"), "\r\n")
		if len(lines) != len(tracks)+1 {
			t.Errorf("expected %d lines, got %d", len(tracks)+1, len(lines))
		}
	})
}

func TestWriteEnrichedCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enriched.csv")

	rows := []models.EnrichedRow{
		{
			InputRow:     models.InputRow{TrackName: "Yesterday", ArtistName: "The Beatles", ReleaseYear: "1970", TrackID: "abc123"},
			NewTrackName: "Yesterday", NewAlbumName: "Help!", NewAlbumYear: "1965", NewTrackID: "orig1",
		},
		{
			InputRow: models.InputRow{TrackName: "Unmatched", ArtistName: "Nobody", ReleaseYear: "1999", TrackID: ""},
		},
	}

	if err := WriteEnrichedCSV(path, rows); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\r\n"), "\r\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if want := strings.Join(EnrichedHeader, ";"); lines[0] != want {
		t.Errorf("header %q, want %q", lines[0], want)
	}
	if lines[2] != "Unmatched;Nobody;1999;;;;;" {
		t.Errorf("unmatched row should keep empty discovered columns, got %q", lines[2])
	}
}

func TestReadInputCSV(t *testing.T) {
	write := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "input.csv")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	t.Run("Reads A Valid File", func(t *testing.T) {
		path := write(t, strings.Join([]string{
			"Track Name;Artist Name;Release Year;Spotify Track ID",
			"Yesterday;The Beatles;1970;abc123",
			"Something;;not-a-year;",
		}, "\r\n"))

		rows, err := ReadInputCSV(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(rows))
		}
		if rows[0].TrackName != "Yesterday" || rows[0].TrackID != "abc123" {
			t.Errorf("unexpected first row %+v", rows[0])
		}
		if rows[1].ArtistName != "" || rows[1].ReleaseYear != "not-a-year" {
			t.Errorf("malformed fields must be preserved as-is, got %+v", rows[1])
		}
	})

	t.Run("Header Is Case Insensitive", func(t *testing.T) {
		path := write(t, "track name;ARTIST NAME;Release Year;spotify track id\r\nYesterday;The Beatles;1970;abc123\r\n")
		if _, err := ReadInputCSV(path); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("Rejects A Wrong Header", func(t *testing.T) {
		path := write(t, "Song;Band;Year;ID\r\nYesterday;The Beatles;1970;abc123\r\n")
		if _, err := ReadInputCSV(path); !errors.Is(err, shared.ErrValidation) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("Rejects A Wrong Column Count", func(t *testing.T) {
		path := write(t, "Track Name;Artist Name;Release Year\r\nYesterday;The Beatles;1970\r\n")
		if _, err := ReadInputCSV(path); !errors.Is(err, shared.ErrValidation) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("Rejects An Empty File", func(t *testing.T) {
		path := write(t, "")
		if _, err := ReadInputCSV(path); !errors.Is(err, shared.ErrValidation) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("Missing File Is Not A Validation Error", func(t *testing.T) {
		_, err := ReadInputCSV(filepath.Join(t.TempDir(), "missing.csv"))
		if err == nil {
			t.Fatal("expected error")
		}
		if errors.Is(err, shared.ErrValidation) {
			t.Error("a missing file should surface as an IO error, not a schema error")
		}
	})
}
