package commands

import (
	"fmt"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/buildsrcversions/internal/domain/entities"
	"github.com/rios0rios0/buildsrcversions/internal/domain/repositories"
)

// ProjectOptions locate the project and its configuration.
type ProjectOptions struct {
	ProjectDir string // Any directory inside the project, defaults to "."
	ConfigPath string // Explicit config file, auto-detected when empty
}

// project is a resolved project root with its settings.
type project struct {
	Root     string
	Settings *entities.Settings
}

// resolveProject finds the project root and loads its settings, falling back to
// the defaults when no configuration file exists.
func resolveProject(projectRepo repositories.ProjectRepository, opts ProjectOptions) (*project, error) {
	dir := opts.ProjectDir
	if dir == "" {
		dir = "."
	}

	root, err := projectRepo.Root(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to locate project root: %w", err)
	}
	logger.Debugf("Project root: %s", root)

	cfgPath := opts.ConfigPath
	if cfgPath == "" {
		found, findErr := entities.FindConfigFile(root)
		if findErr != nil {
			logger.Debugf("No config file found, using defaults (see %s)",
				entities.DefaultSettings().Docs.Issue(entities.IssueConfiguration))
			return &project{Root: root, Settings: entities.DefaultSettings()}, nil
		}
		cfgPath = found
	}

	logger.Infof("Using config file: %s", cfgPath)
	settings, err := entities.NewSettings(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &project{Root: root, Settings: settings}, nil
}

// path resolves a settings path against the project root.
func (p *project) path(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(p.Root, rel)
}
