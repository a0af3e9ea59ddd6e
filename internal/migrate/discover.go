package migrate

import (
	"fmt"
	"os"
	"strings"
)

const (
	sourceExt      = ".ts"
	fixtureMarker  = "test"
	outputFileMode = 0644
)

var excludedFiles = map[string]bool{
	"index.ts": true,
	"utils.ts": true,
}

// IsCandidate reports whether a directory entry name looks like a theme source.
func IsCandidate(name string) bool {
	if !strings.HasSuffix(name, sourceExt) {
		return false
	}
	if excludedFiles[name] {
		return false
	}
	return !strings.Contains(name, fixtureMarker)
}

// Discover lists candidate theme files in dir, in directory listing order.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceDir, err)
	}

	var files []string
	for _, entry := range entries {
		if IsCandidate(entry.Name()) {
			files = append(files, entry.Name())
		}
	}

	return files, nil
}
