package formatter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	names := []struct {
		name string
		in   string
		want string
	}{
		{"Plain Name", "My Playlist", "My_Playlist"},
		{"Illegal Characters Stripped", `Road <Trip>: "Best/Of" |2024?*`, "Road_Trip_BestOf_2024"},
		{"Whitespace Runs Collapse", "lots   of\t\tspace", "lots_of_space"},
		{"Underscore Runs Collapse", "already__under___scored", "already_under_scored"},
		{"Leading And Trailing Trimmed", "  _padded_  ", "padded"},
		{"Empty Falls Back", "", "playlist"},
		{"Only Illegal Falls Back", `<>:"/\|?*`, "playlist"},
	}

	for _, n := range names {
		t.Run(n.name, func(t *testing.T) {
			if got := SanitizeFilename(n.in); got != n.want {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", n.in, got, n.want)
			}
		})
	}

	t.Run("Caps At One Hundred Runes", func(t *testing.T) {
		long := strings.Repeat("é", 150)
		got := SanitizeFilename(long)
		if runes := []rune(got); len(runes) != 100 {
			t.Errorf("expected 100 runes, got %d", len(runes))
		}
	})
}

func TestExportPath(t *testing.T) {
	t.Run("First Export Uses The Plain Name", func(t *testing.T) {
		dir := t.TempDir()
		got := ExportPath(dir, "My Playlist")
		if want := filepath.Join(dir, "My_Playlist.csv"); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("Collisions Get Numeric Suffixes", func(t *testing.T) {
		dir := t.TempDir()
		for _, name := range []string{"My_Playlist.csv", "My_Playlist_1.csv"} {
			if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
				t.Fatal(err)
			}
		}

		got := ExportPath(dir, "My Playlist")
		if want := filepath.Join(dir, "My_Playlist_2.csv"); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})
}
