package tasks

import (
	"context"
	"strings"
	"testing"

	"cratedig/internal/models"
	th "cratedig/internal/testing"
)

func TestNormalizeAlbumType(t *testing.T) {
	cases := map[string]string{
		"album":       "Album",
		"single":      "Single",
		"COMPILATION": "Compilation",
		"":            "Unknown",
	}
	for in, want := range cases {
		if got := NormalizeAlbumType(in); got != want {
			t.Errorf("NormalizeAlbumType(%q) = %q, expected %q", in, got, want)
		}
	}
}

func TestParseReleaseYear(t *testing.T) {
	cases := map[string]int{
		"1965-08-06": 1965,
		"1971-05":    1971,
		"1982":       1982,
		"not-a-date": 0,
		"":           0,
	}
	for in, want := range cases {
		if got := ParseReleaseYear(in); got != want {
			t.Errorf("ParseReleaseYear(%q) = %d, expected %d", in, got, want)
		}
	}
}

func TestSortCandidates(t *testing.T) {
	candidates := []models.AlbumCandidate{
		{AlbumName: "Zebra", ReleaseYear: 1970},
		{AlbumName: "apple", ReleaseYear: 1970},
		{AlbumName: "Late", ReleaseYear: 1990},
		{AlbumName: "Early", ReleaseYear: 1960},
		{AlbumName: "Banana", ReleaseYear: 1970},
	}

	SortCandidates(candidates)

	for i := 1; i < len(candidates); i++ {
		prev, cur := candidates[i-1], candidates[i]
		if prev.ReleaseYear > cur.ReleaseYear {
			t.Fatalf("years out of order at %d: %d > %d", i, prev.ReleaseYear, cur.ReleaseYear)
		}
		if prev.ReleaseYear == cur.ReleaseYear &&
			strings.ToLower(prev.AlbumName) > strings.ToLower(cur.AlbumName) {
			t.Fatalf("names out of order at %d: %s > %s", i, prev.AlbumName, cur.AlbumName)
		}
	}

	if candidates[0].AlbumName != "Early" {
		t.Errorf("expected earliest year first, got %s", candidates[0].AlbumName)
	}
	if candidates[1].AlbumName != "apple" {
		t.Errorf("expected case-insensitive name tiebreak, got %s", candidates[1].AlbumName)
	}
}

func TestFilters(t *testing.T) {
	candidates := []models.AlbumCandidate{
		{AlbumName: "LP", AlbumType: "Album", ReleaseYear: 1965},
		{AlbumName: "Greatest Hits", AlbumType: "Compilation", ReleaseYear: 1968},
		{AlbumName: "Reissue", AlbumType: "Album", ReleaseYear: 1990},
		{AlbumName: "Mystery", AlbumType: "Album", ReleaseYear: 0},
	}

	t.Run("FilterByType", func(t *testing.T) {
		albums := FilterByType(candidates, "album")
		if len(albums) != 3 {
			t.Fatalf("expected 3 albums, got %d", len(albums))
		}
		for _, c := range albums {
			if c.AlbumType != "Album" {
				t.Errorf("unexpected type %s", c.AlbumType)
			}
		}
	})

	t.Run("FilterBeforeYear", func(t *testing.T) {
		early := FilterBeforeYear(candidates, 1970)
		if len(early) != 2 {
			t.Fatalf("expected 2 candidates before 1970, got %d", len(early))
		}
		for _, c := range early {
			if c.ReleaseYear == 0 || c.ReleaseYear >= 1970 {
				t.Errorf("candidate %s with year %d should not pass", c.AlbumName, c.ReleaseYear)
			}
		}
	})

	t.Run("Zero Bound Disables Filter", func(t *testing.T) {
		if got := FilterBeforeYear(candidates, 0); len(got) != len(candidates) {
			t.Errorf("expected all candidates, got %d", len(got))
		}
	})
}

func TestFinder(t *testing.T) {
	searchResults := []models.Track{
		{
			ID: "t1", Name: "Yesterday", Artists: []string{"The Beatles"},
			Album: models.Album{ID: "a1", Name: "Help!", Type: "album", ReleaseDate: "1965-08-06"},
		},
		{
			ID: "t2", Name: "Yesterday", Artists: []string{"The Beatles"},
			Album: models.Album{ID: "a2", Name: "Hits Collection", Type: "compilation", ReleaseDate: "1968-01-01"},
		},
		{
			ID: "t3", Name: "Yesterday Once More", Artists: []string{"Carpenters"},
			Album: models.Album{ID: "a3", Name: "Now & Then", Type: "album", ReleaseDate: "1973-05-01"},
		},
	}

	newFinder := func() (*Finder, *string) {
		var gotQuery string
		svc := &th.MockService{
			SearchTracksFunc: func(ctx context.Context, query string, limit int) ([]models.Track, error) {
				gotQuery = query
				return searchResults, nil
			},
		}
		return NewFinder(svc), &gotQuery
	}

	t.Run("Search", func(t *testing.T) {
		finder, gotQuery := newFinder()
		candidates, err := finder.Search(context.Background(), "Yesterday", "The Beatles")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if !strings.Contains(*gotQuery, `track:"Yesterday"`) || !strings.Contains(*gotQuery, `artist:"The Beatles"`) {
			t.Errorf("expected exact-field query syntax, got %q", *gotQuery)
		}

		// t3 fails the artist substring filter; t1 and t2 pass.
		if len(candidates) != 2 {
			t.Fatalf("expected 2 candidates, got %d", len(candidates))
		}
		if candidates[0].AlbumName != "Help!" {
			t.Errorf("expected sorted output with Help! first, got %s", candidates[0].AlbumName)
		}
		if candidates[1].AlbumType != "Compilation" {
			t.Errorf("expected normalized type, got %s", candidates[1].AlbumType)
		}
	})

	t.Run("Substring Match Is Permissive", func(t *testing.T) {
		finder, _ := newFinder()
		// Partial track and artist names still match, unlike playlist
		// resolution which is exact.
		candidates, err := finder.Search(context.Background(), "yester", "beatles")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(candidates) != 2 {
			t.Errorf("expected permissive substring matching, got %d candidates", len(candidates))
		}
	})

	t.Run("FindEarliestBeforeYear", func(t *testing.T) {
		finder, _ := newFinder()
		candidate, err := finder.FindEarliestBeforeYear(context.Background(), "Yesterday", "The Beatles", 1970)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if candidate == nil {
			t.Fatal("expected a candidate")
		}
		// The 1968 compilation is excluded by the type filter; the 1965
		// regular album qualifies because 1965 < 1970.
		if candidate.ReleaseYear != 1965 || candidate.AlbumName != "Help!" {
			t.Errorf("expected 1965 Help!, got %d %s", candidate.ReleaseYear, candidate.AlbumName)
		}
	})

	t.Run("No Candidate Before Year", func(t *testing.T) {
		finder, _ := newFinder()
		candidate, err := finder.FindEarliestBeforeYear(context.Background(), "Yesterday", "The Beatles", 1960)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if candidate != nil {
			t.Errorf("expected no candidate, got %+v", candidate)
		}
	})

	t.Run("Unknown Year Never Qualifies", func(t *testing.T) {
		svc := &th.MockService{
			SearchTracksFunc: func(ctx context.Context, query string, limit int) ([]models.Track, error) {
				return []models.Track{{
					ID: "t1", Name: "Mystery", Artists: []string{"Nobody"},
					Album: models.Album{Name: "Undated", Type: "album", ReleaseDate: ""},
				}}, nil
			},
		}

		candidate, err := NewFinder(svc).FindEarliestBeforeYear(context.Background(), "Mystery", "Nobody", 2100)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if candidate != nil {
			t.Errorf("year 0 must never satisfy a before-year filter, got %+v", candidate)
		}
	})

	t.Run("Unparsable Date Display", func(t *testing.T) {
		svc := &th.MockService{
			SearchTracksFunc: func(ctx context.Context, query string, limit int) ([]models.Track, error) {
				return []models.Track{{
					ID: "t1", Name: "Mystery", Artists: []string{"Nobody"},
					Album: models.Album{Name: "Undated", Type: "album", ReleaseDate: "someday"},
				}}, nil
			},
		}

		candidates, err := NewFinder(svc).Search(context.Background(), "Mystery", "Nobody")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(candidates) != 1 {
			t.Fatalf("expected 1 candidate, got %d", len(candidates))
		}
		if candidates[0].ReleaseDate != "Unknown" || candidates[0].ReleaseYear != 0 {
			t.Errorf("expected Unknown/0, got %s/%d", candidates[0].ReleaseDate, candidates[0].ReleaseYear)
		}
	})
}
