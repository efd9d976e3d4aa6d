package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/buildsrcversions/internal/domain/entities"
	"github.com/rios0rios0/buildsrcversions/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/buildsrcversions/internal/infrastructure/repositories"
)

// List is the interface for the list command.
type List interface {
	Execute(ctx context.Context, opts ListOptions) ([]entities.AnnotatedEntry, error)
}

// ListOptions holds runtime options for the list command.
type ListOptions struct {
	ProjectOptions
	OutdatedOnly bool
	Verbose      bool
}

// ListCommand reads the report and returns every dependency with its
// identifier and stability verdicts, without writing anything.
type ListCommand struct {
	reportRegistry *infraRepos.ReportRegistry
	artifactRepo   repositories.ArtifactRepository
	projectRepo    repositories.ProjectRepository
}

// NewListCommand creates a new ListCommand.
func NewListCommand(
	reportRegistry *infraRepos.ReportRegistry,
	artifactRepo repositories.ArtifactRepository,
	projectRepo repositories.ProjectRepository,
) *ListCommand {
	return &ListCommand{
		reportRegistry: reportRegistry,
		artifactRepo:   artifactRepo,
		projectRepo:    projectRepo,
	}
}

// Execute returns the dependencies in identifier order.
func (it *ListCommand) Execute(_ context.Context, opts ListOptions) ([]entities.AnnotatedEntry, error) {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	proj, err := resolveProject(it.projectRepo, opts.ProjectOptions)
	if err != nil {
		return nil, err
	}

	graph, err := loadGraph(it.reportRegistry, it.artifactRepo, proj)
	if err != nil {
		return nil, err
	}

	if opts.OutdatedOnly {
		return graph.Outdated(), nil
	}
	return graph.Entries, nil
}
