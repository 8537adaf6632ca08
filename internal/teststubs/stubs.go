package teststubs

import (
	"context"
	"sync"

	"github.com/preston-bernstein/league-standings/internal/domain/standings"
)

// StubRunner is a test double for shell.Runner.
type StubRunner struct {
	Entries []standings.RankedEntry
	Err     error

	mu    sync.Mutex
	paths []string
}

// Run returns the configured entries and error while recording the requested path.
func (s *StubRunner) Run(ctx context.Context, path string) ([]standings.RankedEntry, error) {
	_ = ctx
	s.mu.Lock()
	s.paths = append(s.paths, path)
	s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Entries, nil
}

// Paths returns the paths passed to Run, in call order.
func (s *StubRunner) Paths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.paths...)
}
