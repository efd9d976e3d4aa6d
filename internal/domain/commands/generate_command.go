package commands

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/buildsrcversions/internal/domain/entities"
	"github.com/rios0rios0/buildsrcversions/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/buildsrcversions/internal/infrastructure/repositories"
)

// Generate is the interface for the generate command.
type Generate interface {
	Execute(ctx context.Context, opts GenerateOptions) error
}

// GenerateOptions holds runtime options for one generation run.
type GenerateOptions struct {
	ProjectOptions
	DryRun  bool
	Verbose bool
	Init    bool // Append a marker block when versions-only markers are missing
}

// GenerateCommand turns the dependency report into the Libs and Versions
// artifacts, or refreshes the marker region of an existing file in
// versions-only mode.
type GenerateCommand struct {
	reportRegistry   *infraRepos.ReportRegistry
	languageRegistry *infraRepos.LanguageRegistry
	artifactRepo     repositories.ArtifactRepository
	projectRepo      repositories.ProjectRepository
}

// NewGenerateCommand creates a new GenerateCommand.
func NewGenerateCommand(
	reportRegistry *infraRepos.ReportRegistry,
	languageRegistry *infraRepos.LanguageRegistry,
	artifactRepo repositories.ArtifactRepository,
	projectRepo repositories.ProjectRepository,
) *GenerateCommand {
	return &GenerateCommand{
		reportRegistry:   reportRegistry,
		languageRegistry: languageRegistry,
		artifactRepo:     artifactRepo,
		projectRepo:      projectRepo,
	}
}

// Execute runs one generation.
func (it *GenerateCommand) Execute(_ context.Context, opts GenerateOptions) error {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	proj, err := resolveProject(it.projectRepo, opts.ProjectOptions)
	if err != nil {
		return err
	}

	graph, err := loadGraph(it.reportRegistry, it.artifactRepo, proj)
	if err != nil {
		return err
	}
	logger.Infof("Read %d dependencies (%d with updates)", len(graph.Entries), len(graph.Outdated()))

	if proj.Settings.VersionsOnly() {
		return it.generateVersionsOnly(proj, graph, opts)
	}
	return it.generateSeparateFiles(proj, graph, opts)
}

func (it *GenerateCommand) generateSeparateFiles(
	proj *project,
	graph *entities.AnnotatedGraph,
	opts GenerateOptions,
) error {
	settings := proj.Settings
	language, err := it.languageRegistry.Get(settings.Language)
	if err != nil {
		return err
	}
	renderer := entities.NewArtifactRenderer(settings, language)

	libs, err := renderer.RenderLibs(graph)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", settings.LibsName, err)
	}
	versions, err := renderer.RenderVersions(graph)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", settings.VersionsName, err)
	}

	outputDir := proj.path(settings.OutputDir)
	artifacts := []struct {
		path    string
		content string
	}{
		{filepath.Join(outputDir, settings.LibsName+"."+language.FileExtension()), libs},
		{filepath.Join(outputDir, settings.VersionsName+"."+language.FileExtension()), versions},
	}
	for _, artifact := range artifacts {
		if writeErr := it.write(artifact.path, artifact.content, opts.DryRun); writeErr != nil {
			return writeErr
		}
	}
	return nil
}

func (it *GenerateCommand) generateVersionsOnly(
	proj *project,
	graph *entities.AnnotatedGraph,
	opts GenerateOptions,
) error {
	settings := proj.Settings
	language, err := it.languageRegistry.Get(settings.VersionsOnlyMode)
	if err != nil {
		return err
	}
	renderer := entities.NewArtifactRenderer(settings, language)

	target := proj.path(settings.VersionsOnlyFile)
	previous, _, err := it.artifactRepo.Read(target)
	if err != nil {
		return err
	}

	content, err := renderer.RenderVersionsOnly(previous, graph)
	if errors.Is(err, entities.ErrMissingMarker) && opts.Init {
		logger.Infof("Adding a %s block to %s", settings.Markers.Start, target)
		newline := entities.LineEnding(previous)
		content = appendBlock(previous, renderer.InitialVersionsOnlyBlock(graph, newline), newline)
		err = nil
	}
	if err != nil {
		return fmt.Errorf(
			"cannot refresh %s: %w (run with --init to add the block, see %s)",
			target, err, settings.Docs.Issue(entities.IssueVersionsOnly),
		)
	}

	return it.write(target, content, opts.DryRun)
}

func (it *GenerateCommand) write(path, content string, dryRun bool) error {
	if dryRun {
		logger.Infof("[dry-run] Would write %s (%d bytes)", path, len(content))
		logger.Debugf("[dry-run] %s:\n%s", path, content)
		return nil
	}

	changed, err := it.artifactRepo.Write(path, content)
	if err != nil {
		return err
	}
	if changed {
		logger.Infof("Updated %s", path)
	} else {
		logger.Infof("%s is up to date", path)
	}
	return nil
}

// loadGraph reads, parses and annotates the dependency report of the project.
func loadGraph(
	reportRegistry *infraRepos.ReportRegistry,
	artifactRepo repositories.ArtifactRepository,
	proj *project,
) (*entities.AnnotatedGraph, error) {
	codec, err := reportRegistry.Get(proj.Settings.ReportSchema)
	if err != nil {
		return nil, err
	}

	reportPath := proj.path(proj.Settings.ReportPath)
	data, exists, err := artifactRepo.Read(reportPath)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf(
			"dependency report not found at %s; run `./gradlew dependencyUpdates -DoutputFormatter=json` first",
			reportPath,
		)
	}

	graph, err := codec.Parse([]byte(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", reportPath, err)
	}
	return entities.Annotate(graph, proj.Settings), nil
}

// appendBlock adds block at the end of content, separated by a blank line.
func appendBlock(content, block, newline string) string {
	if content == "" {
		return block
	}
	if !strings.HasSuffix(content, "\n") {
		content += newline
	}
	return content + newline + block
}
