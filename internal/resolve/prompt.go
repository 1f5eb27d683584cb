package resolve

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cratedig/internal/models"
	"cratedig/internal/shared"
	"cratedig/internal/ui"

	"github.com/charmbracelet/huh"
)

// Prompter selects one playlist from an ambiguous set of candidates.
// Pick returns the zero-based index of the chosen candidate.
//
// The resolver injects this so interactive selection is replaceable by a
// non-interactive strategy in tests and scripts.
type Prompter interface {
	Pick(candidates []models.Playlist) (int, error)
}

// HuhPrompter presents candidates as an interactive select form.
type HuhPrompter struct{}

func (HuhPrompter) Pick(candidates []models.Playlist) (int, error) {
	options := make([]huh.Option[int], len(candidates))
	for i, pl := range candidates {
		options[i] = huh.NewOption(ui.CandidateLine(i+1, pl), i)
	}

	var choice int
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[int]().
			Title(fmt.Sprintf("%d playlists match, pick one:", len(candidates))).
			Options(options...).
			Value(&choice),
	))

	if err := form.Run(); err != nil {
		return 0, fmt.Errorf("%w: selection aborted: %v", shared.ErrValidation, err)
	}
	return choice, nil
}

// NumericPrompter prints a numbered candidate table to w and reads a 1-based
// selection from r. A non-numeric or out-of-range answer is a validation
// error; it never silently defaults.
type NumericPrompter struct {
	R io.Reader
	W io.Writer
}

func (p NumericPrompter) Pick(candidates []models.Playlist) (int, error) {
	fmt.Fprint(p.W, ui.RenderCandidates(candidates))
	fmt.Fprintf(p.W, "Select a playlist [1-%d]: ", len(candidates))

	line, err := bufio.NewReader(p.R).ReadString('\n')
	if err != nil && line == "" {
		return 0, fmt.Errorf("%w: no selection given", shared.ErrValidation)
	}

	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%w: selection %q is not a number", shared.ErrValidation, strings.TrimSpace(line))
	}
	if n < 1 || n > len(candidates) {
		return 0, fmt.Errorf("%w: selection %d out of range 1-%d", shared.ErrValidation, n, len(candidates))
	}
	return n - 1, nil
}

// PickFirst always selects the first candidate.
type PickFirst struct{}

func (PickFirst) Pick(candidates []models.Playlist) (int, error) {
	return 0, nil
}

// FailFast refuses ambiguous matches outright.
type FailFast struct{}

func (FailFast) Pick(candidates []models.Playlist) (int, error) {
	return 0, fmt.Errorf("%w: %d playlists match, narrow the search with an owner", shared.ErrValidation, len(candidates))
}
