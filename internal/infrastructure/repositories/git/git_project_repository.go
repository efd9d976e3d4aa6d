package git

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/buildsrcversions/internal/domain/repositories"
)

var (
	settingsScripts = []string{"settings.gradle.kts", "settings.gradle"}
	buildScripts    = []string{"build.gradle.kts", "build.gradle"}
)

// ProjectRepository resolves the project root as the nearest Gradle project
// directory at or above the given one. The search never leaves the enclosing
// Git worktree; the worktree root is used when no Gradle script is found.
type ProjectRepository struct{}

// NewProjectRepository creates a Git-aware project locator.
func NewProjectRepository() repositories.ProjectRepository {
	return &ProjectRepository{}
}

// Root returns the Gradle project directory containing dir. A directory with
// a settings script wins over one that only has a build script.
func (r *ProjectRepository) Root(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}

	boundary, err := worktreeRoot(absDir)
	if err != nil {
		return "", err
	}

	build := ""
	for current := absDir; ; {
		if containsAny(current, settingsScripts) {
			return current, nil
		}
		if build == "" && containsAny(current, buildScripts) {
			build = current
		}
		parent := filepath.Dir(current)
		if current == boundary || parent == current {
			break
		}
		current = parent
	}

	switch {
	case build != "":
		return build, nil
	case boundary != "":
		return boundary, nil
	default:
		logger.Debugf("No Gradle script found above %s, using it as project root", absDir)
		return absDir, nil
	}
}

// worktreeRoot returns the top of the Git worktree containing dir, or "" when
// there is none.
func worktreeRoot(dir string) (string, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, gogit.ErrRepositoryNotExists) {
		logger.Debugf("%s is not inside a Git repository", dir)
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to open Git repository at %q: %w", dir, err)
	}

	worktree, err := repo.Worktree()
	if errors.Is(err, gogit.ErrIsBareRepository) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read Git worktree: %w", err)
	}
	return filepath.Clean(worktree.Filesystem.Root()), nil
}

func containsAny(dir string, names []string) bool {
	for _, name := range names {
		if info, err := os.Stat(filepath.Join(dir, name)); err == nil && !info.IsDir() {
			return true
		}
	}
	return false
}
