package formatter

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// maxFilenameLength caps the sanitized base name.
const maxFilenameLength = 100

var (
	illegalChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	runsPattern  = regexp.MustCompile(`[\s_]+`)
)

// SanitizeFilename strips characters illegal on common filesystems,
// collapses whitespace and underscore runs to a single underscore, and caps
// the length at 100 runes.
func SanitizeFilename(name string) string {
	name = illegalChars.ReplaceAllString(name, "")
	name = runsPattern.ReplaceAllString(strings.TrimSpace(name), "_")
	name = strings.Trim(name, "_")

	if runes := []rune(name); len(runes) > maxFilenameLength {
		name = string(runes[:maxFilenameLength])
	}
	if name == "" {
		name = "playlist"
	}
	return name
}

// ExportPath returns a collision-free CSV path for a playlist name in dir:
// <name>.csv if unused, otherwise <name>_1.csv, <name>_2.csv, and so on.
// An existing export is never overwritten.
func ExportPath(dir, playlistName string) string {
	base := SanitizeFilename(playlistName)

	path := filepath.Join(dir, base+".csv")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}

	for i := 1; ; i++ {
		path = filepath.Join(dir, fmt.Sprintf("%s_%d.csv", base, i))
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path
		}
	}
}
