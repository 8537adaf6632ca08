package testutil

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
)

// LeagueResults is the five-match fixture whose standings are
// Tarantulas 6, Lions 5, FC Awesome 1, Snakes 1, Grouches 0.
var LeagueResults = []string{
	"Lions 3, Snakes 3",
	"Tarantulas 1, FC Awesome 0",
	"Lions 1, FC Awesome 1",
	"Tarantulas 3, Snakes 1",
	"Lions 4, Grouches 0",
}

// ResultsFile joins lines into file contents with a trailing newline.
func ResultsFile(lines ...string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// MemFs returns an in-memory filesystem holding the given files.
func MemFs(t testing.TB, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, body := range files {
		if err := afero.WriteFile(fs, name, []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return fs
}
