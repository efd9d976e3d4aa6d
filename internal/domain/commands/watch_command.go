package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/buildsrcversions/internal/domain/repositories"
)

// Watch is the interface for the watch command.
type Watch interface {
	Execute(ctx context.Context, opts GenerateOptions) error
}

// WatchCommand regenerates the artifacts each time the dependency report changes.
type WatchCommand struct {
	generate    Generate
	watchRepo   repositories.WatchRepository
	projectRepo repositories.ProjectRepository
}

// NewWatchCommand creates a new WatchCommand.
func NewWatchCommand(
	generate Generate,
	watchRepo repositories.WatchRepository,
	projectRepo repositories.ProjectRepository,
) *WatchCommand {
	return &WatchCommand{
		generate:    generate,
		watchRepo:   watchRepo,
		projectRepo: projectRepo,
	}
}

// Execute generates once, then again after every report change until ctx is
// cancelled. Generation failures are logged and do not stop the watch.
func (it *WatchCommand) Execute(ctx context.Context, opts GenerateOptions) error {
	proj, err := resolveProject(it.projectRepo, opts.ProjectOptions)
	if err != nil {
		return err
	}

	// later runs must not search again from a different working directory
	opts.ProjectDir = proj.Root

	regenerate := func() {
		if genErr := it.generate.Execute(ctx, opts); genErr != nil {
			logger.Errorf("Generation failed: %v", genErr)
		}
	}

	regenerate()
	return it.watchRepo.Watch(ctx, proj.path(proj.Settings.ReportPath), regenerate)
}
