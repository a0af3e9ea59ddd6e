package migrate

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCandidate(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"solarized.ts", true},
		{"one-dark.ts", true},
		{"index.ts", false},
		{"utils.ts", false},
		{"theme.test.ts", false},
		{"latest.ts", false},
		{"Test.ts", true},
		{"solarized.tsx", false},
		{"solarized.js", false},
		{"README.md", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCandidate(tt.name))
		})
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"nord.ts", "dracula.ts", "index.ts", "utils.ts", "nord.test.ts", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0644))
	}

	files, err := Discover(dir)
	require.NoError(t, err)

	sort.Strings(files)
	assert.Equal(t, []string{"dracula.ts", "nord.ts"}, files)
}

func TestDiscover_MissingDir(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, ErrSourceDir)
}
