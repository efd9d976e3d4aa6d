//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/buildsrcversions/internal/domain/repositories"
)

// SpyArtifactRepository keeps artifacts in memory and records writes.
type SpyArtifactRepository struct {
	Files    map[string]string
	ReadErr  error
	WriteErr error
	Writes   []WriteCall
}

// WriteCall records a single invocation of Write.
type WriteCall struct {
	Path    string
	Content string
}

var _ repositories.ArtifactRepository = (*SpyArtifactRepository)(nil)

// NewSpyArtifactRepository creates a spy preloaded with files.
func NewSpyArtifactRepository(files map[string]string) *SpyArtifactRepository {
	if files == nil {
		files = make(map[string]string)
	}
	return &SpyArtifactRepository{Files: files}
}

func (s *SpyArtifactRepository) Read(path string) (string, bool, error) {
	if s.ReadErr != nil {
		return "", false, s.ReadErr
	}
	content, ok := s.Files[path]
	return content, ok, nil
}

func (s *SpyArtifactRepository) Write(path, content string) (bool, error) {
	s.Writes = append(s.Writes, WriteCall{Path: path, Content: content})
	if s.WriteErr != nil {
		return false, s.WriteErr
	}
	changed := s.Files[path] != content
	s.Files[path] = content
	return changed, nil
}
