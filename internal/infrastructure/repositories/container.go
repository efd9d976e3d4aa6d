package repositories

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/buildsrcversions/internal/domain/entities"
	domainRepos "github.com/rios0rios0/buildsrcversions/internal/domain/repositories"
	fsRepo "github.com/rios0rios0/buildsrcversions/internal/infrastructure/repositories/filesystem"
	gitRepo "github.com/rios0rios0/buildsrcversions/internal/infrastructure/repositories/git"
	groovyRepo "github.com/rios0rios0/buildsrcversions/internal/infrastructure/repositories/groovy"
	ktRepo "github.com/rios0rios0/buildsrcversions/internal/infrastructure/repositories/kotlin"
	propsRepo "github.com/rios0rios0/buildsrcversions/internal/infrastructure/repositories/properties"
	reportRepo "github.com/rios0rios0/buildsrcversions/internal/infrastructure/repositories/report"
	watchRepo "github.com/rios0rios0/buildsrcversions/internal/infrastructure/repositories/watcher"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register report registry with all schema codecs
	if err := container.Provide(func() *ReportRegistry {
		reg := NewReportRegistry()
		reg.Register(entities.SchemaBenmanes, reportRepo.NewBenmanesReportRepository)
		reg.Register(entities.SchemaFlat, reportRepo.NewFlatReportRepository)
		return reg
	}); err != nil {
		return err
	}

	// Register language registry with all target languages
	if err := container.Provide(func() *LanguageRegistry {
		reg := NewLanguageRegistry()
		reg.Register(ktRepo.NewLanguageRepository())
		reg.Register(groovyRepo.NewLanguageRepository())
		reg.Register(propsRepo.NewLanguageRepository())
		return reg
	}); err != nil {
		return err
	}

	// Bind filesystem-facing repositories
	if err := container.Provide(func() domainRepos.ArtifactRepository {
		return fsRepo.NewArtifactRepository()
	}); err != nil {
		return err
	}
	if err := container.Provide(func() domainRepos.ProjectRepository {
		return gitRepo.NewProjectRepository()
	}); err != nil {
		return err
	}
	if err := container.Provide(func() domainRepos.WatchRepository {
		return watchRepo.NewWatchRepository()
	}); err != nil {
		return err
	}

	return nil
}
