package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/buildsrcversions/internal/domain/repositories"
)

const (
	dirFileMode      = 0o755
	artifactFileMode = 0o644
)

// ArtifactRepository stores generated artifacts on the local filesystem.
type ArtifactRepository struct{}

// NewArtifactRepository creates a filesystem artifact store.
func NewArtifactRepository() repositories.ArtifactRepository {
	return &ArtifactRepository{}
}

// Read returns the artifact content, or false when the file does not exist.
func (r *ArtifactRepository) Read(path string) (string, bool, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the project settings
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %q: %w", path, err)
	}
	return string(data), true, nil
}

// Write stores content unless the file already holds the same bytes.
func (r *ArtifactRepository) Write(path, content string) (bool, error) {
	previous, exists, err := r.Read(path)
	if err != nil {
		return false, err
	}
	digest := xxhash.Sum64String(content)
	if exists && xxhash.Sum64String(previous) == digest {
		logger.Debugf("%s is up to date (%016x)", path, digest)
		return false, nil
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(path), dirFileMode); mkdirErr != nil {
		return false, fmt.Errorf("failed to create directory for %q: %w", path, mkdirErr)
	}
	if writeErr := os.WriteFile(path, []byte(content), artifactFileMode); writeErr != nil {
		return false, fmt.Errorf("failed to write %q: %w", path, writeErr)
	}
	return true, nil
}
