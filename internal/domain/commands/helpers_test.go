//go:build unit

package commands_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/buildsrcversions/internal/domain/entities"
	infraRepos "github.com/rios0rios0/buildsrcversions/internal/infrastructure/repositories"
	"github.com/rios0rios0/buildsrcversions/internal/infrastructure/repositories/groovy"
	"github.com/rios0rios0/buildsrcversions/internal/infrastructure/repositories/kotlin"
	"github.com/rios0rios0/buildsrcversions/internal/infrastructure/repositories/properties"
	"github.com/rios0rios0/buildsrcversions/internal/infrastructure/repositories/report"
)

const sampleReport = `{
  "current": {"dependencies": [
    {"group": "com.squareup.okhttp3", "name": "okhttp", "version": "4.2.2"}
  ]},
  "outdated": {"dependencies": [
    {"group": "org.jetbrains.kotlin", "name": "kotlin-stdlib", "version": "1.3.50", "available": {"release": "1.3.61"}},
    {"group": "androidx.core", "name": "core", "version": "1.1.0", "available": {"milestone": "1.2.0-rc01"}}
  ]},
  "gradle": {"running": {"version": "5.6.4"}, "current": {"version": "6.0.1"}}
}`

// newProject creates a project root holding a config file with the given content.
func newProject(t *testing.T, config string) string {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".buildsrcversions.yaml"), []byte(config), 0o600))
	return root
}

func reportPath(root string) string {
	return filepath.Join(root, "build", "dependencyUpdates", "report.json")
}

func newReportRegistry() *infraRepos.ReportRegistry {
	registry := infraRepos.NewReportRegistry()
	registry.Register(entities.SchemaBenmanes, report.NewBenmanesReportRepository)
	registry.Register(entities.SchemaFlat, report.NewFlatReportRepository)
	return registry
}

func newLanguageRegistry() *infraRepos.LanguageRegistry {
	registry := infraRepos.NewLanguageRegistry()
	registry.Register(kotlin.NewLanguageRepository())
	registry.Register(groovy.NewLanguageRepository())
	registry.Register(properties.NewLanguageRepository())
	return registry
}
