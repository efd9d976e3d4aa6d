//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/buildsrcversions/internal/domain/repositories"
)

// StubProjectRepository returns a fixed project root.
type StubProjectRepository struct {
	RootDir   string
	RootErr   error
	RootCalls []string
}

var _ repositories.ProjectRepository = (*StubProjectRepository)(nil)

func (s *StubProjectRepository) Root(dir string) (string, error) {
	s.RootCalls = append(s.RootCalls, dir)
	return s.RootDir, s.RootErr
}
