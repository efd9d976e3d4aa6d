//go:build unit

package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"github.com/rios0rios0/buildsrcversions/internal/domain/entities"
	domainRepos "github.com/rios0rios0/buildsrcversions/internal/domain/repositories"
	"github.com/rios0rios0/buildsrcversions/internal/infrastructure/repositories"
	"github.com/rios0rios0/buildsrcversions/internal/infrastructure/repositories/kotlin"
	"github.com/rios0rios0/buildsrcversions/internal/infrastructure/repositories/report"
)

func TestReportRegistry(t *testing.T) {
	t.Parallel()

	t.Run("should build the codec registered for a schema", func(t *testing.T) {
		t.Parallel()

		// given
		registry := repositories.NewReportRegistry()
		registry.Register(entities.SchemaFlat, report.NewFlatReportRepository)

		// when
		codec, err := registry.Get(entities.SchemaFlat)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.SchemaFlat, codec.Schema())
		assert.Equal(t, []string{entities.SchemaFlat}, registry.Names())
	})

	t.Run("should reject an unknown schema", func(t *testing.T) {
		t.Parallel()

		// given
		registry := repositories.NewReportRegistry()
		registry.Register(entities.SchemaFlat, report.NewFlatReportRepository)

		// when
		_, err := registry.Get("xml")

		// then
		require.ErrorIs(t, err, entities.ErrUnsupportedSchema)
		assert.Contains(t, err.Error(), "flat")
	})
}

func TestLanguageRegistry(t *testing.T) {
	t.Parallel()

	t.Run("should look languages up by name", func(t *testing.T) {
		t.Parallel()

		// given
		registry := repositories.NewLanguageRegistry()
		registry.Register(kotlin.NewLanguageRepository())

		// when
		found, err := registry.Get(entities.LanguageKotlin)
		_, missingErr := registry.Get("scala")

		// then
		require.NoError(t, err)
		assert.Equal(t, "kt", found.FileExtension())
		assert.ErrorIs(t, missingErr, entities.ErrUnsupportedLanguage)
		assert.Equal(t, []string{entities.LanguageKotlin}, registry.Names())
	})
}

func TestRegisterProviders(t *testing.T) {
	t.Parallel()

	t.Run("should provide every registry and repository", func(t *testing.T) {
		t.Parallel()

		// given
		container := dig.New()

		// when
		err := repositories.RegisterProviders(container)

		// then
		require.NoError(t, err)
		invokeErr := container.Invoke(func(
			reports *repositories.ReportRegistry,
			languages *repositories.LanguageRegistry,
			_ domainRepos.ArtifactRepository,
			_ domainRepos.ProjectRepository,
			_ domainRepos.WatchRepository,
		) {
			assert.Equal(t, []string{entities.SchemaBenmanes, entities.SchemaFlat}, reports.Names())
			assert.Equal(t,
				[]string{entities.LanguageGroovy, entities.LanguageKotlin, entities.LanguageProperties},
				languages.Names(),
			)
		})
		require.NoError(t, invokeErr)
	})
}
