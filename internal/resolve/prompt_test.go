package resolve

import (
	"errors"
	"strings"
	"testing"

	"cratedig/internal/models"
	"cratedig/internal/shared"
)

func TestNumericPrompter(t *testing.T) {
	candidates := []models.Playlist{
		{ID: "p1", Name: "Mix", OwnerName: "alice"},
		{ID: "p2", Name: "Mix", OwnerName: "bob"},
		{ID: "p3", Name: "Mix", OwnerName: "carol"},
	}

	pick := func(input string) (int, error) {
		var out strings.Builder
		p := NumericPrompter{R: strings.NewReader(input), W: &out}
		return p.Pick(candidates)
	}

	t.Run("Valid Selection", func(t *testing.T) {
		idx, err := pick("2\n")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if idx != 1 {
			t.Errorf("1-based selection 2 should map to index 1, got %d", idx)
		}
	})

	t.Run("Non-Numeric", func(t *testing.T) {
		if _, err := pick("two\n"); !errors.Is(err, shared.ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("Out Of Range", func(t *testing.T) {
		for _, input := range []string{"0\n", "4\n", "-1\n"} {
			if _, err := pick(input); !errors.Is(err, shared.ErrValidation) {
				t.Errorf("expected ErrValidation for %q, got %v", strings.TrimSpace(input), err)
			}
		}
	})

	t.Run("Empty Input", func(t *testing.T) {
		if _, err := pick(""); !errors.Is(err, shared.ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("Prints Candidate Table", func(t *testing.T) {
		var out strings.Builder
		p := NumericPrompter{R: strings.NewReader("1\n"), W: &out}
		if _, err := p.Pick(candidates); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		for _, owner := range []string{"alice", "bob", "carol"} {
			if !strings.Contains(out.String(), owner) {
				t.Errorf("expected candidate table to include %s", owner)
			}
		}
	})
}

func TestStrategies(t *testing.T) {
	candidates := []models.Playlist{{ID: "p1"}, {ID: "p2"}}

	t.Run("PickFirst", func(t *testing.T) {
		idx, err := PickFirst{}.Pick(candidates)
		if err != nil || idx != 0 {
			t.Errorf("expected index 0, got %d (%v)", idx, err)
		}
	})

	t.Run("FailFast", func(t *testing.T) {
		if _, err := (FailFast{}).Pick(candidates); !errors.Is(err, shared.ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
	})
}
