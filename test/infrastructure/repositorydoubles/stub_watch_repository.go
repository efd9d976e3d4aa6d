//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/buildsrcversions/internal/domain/repositories"
)

// StubWatchRepository fires onChange a fixed number of times, then returns.
type StubWatchRepository struct {
	Changes      int
	WatchErr     error
	WatchedPaths []string
}

var _ repositories.WatchRepository = (*StubWatchRepository)(nil)

func (s *StubWatchRepository) Watch(_ context.Context, path string, onChange func()) error {
	s.WatchedPaths = append(s.WatchedPaths, path)
	for range s.Changes {
		onChange()
	}
	return s.WatchErr
}
