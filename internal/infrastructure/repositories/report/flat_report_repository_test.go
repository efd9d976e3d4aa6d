//go:build unit

package report_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/buildsrcversions/internal/domain/entities"
	"github.com/rios0rios0/buildsrcversions/internal/infrastructure/repositories/report"
)

func TestFlatReportRepository_Parse(t *testing.T) {
	t.Parallel()

	t.Run("should read an object report", func(t *testing.T) {
		t.Parallel()

		// given
		data := `{
			"gradleCurrentVersion": "5.6.4",
			"gradleLatestVersion": "6.0.1",
			"dependencies": [
				{"group": "org.jetbrains.kotlin", "module": "kotlin-stdlib", "currentVersion": "1.3.50", "availableVersion": "1.3.61"},
				{"group": " androidx.core ", "name": "core", "version": "1.1.0", "projectUrl": "https://developer.android.com/jetpack/androidx"}
			]
		}`
		repo := report.NewFlatReportRepository()

		// when
		graph, err := repo.Parse([]byte(data))

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.SchemaFlat, repo.Schema())
		assert.Equal(t, "5.6.4", graph.GradleCurrentVersion())
		assert.Equal(t, "6.0.1", graph.GradleLatestVersion())
		assert.Equal(t, []entities.DependencyEntry{
			{
				Coordinate: entities.Coordinate{Group: "org.jetbrains.kotlin", Module: "kotlin-stdlib"},
				Versions:   entities.VersionInfo{Current: "1.3.50", Available: "1.3.61"},
			},
			{
				Coordinate: entities.Coordinate{Group: "androidx.core", Module: "core"},
				Versions:   entities.VersionInfo{Current: "1.1.0"},
				ProjectURL: "https://developer.android.com/jetpack/androidx",
			},
		}, graph.Entries())
	})

	t.Run("should read a bare array of dependencies", func(t *testing.T) {
		t.Parallel()

		// given
		data := `[{"group": "a", "module": "b", "currentVersion": "1"}]`

		// when
		graph, err := report.NewFlatReportRepository().Parse([]byte(data))

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, graph.Len())
		assert.Empty(t, graph.GradleCurrentVersion())
	})

	t.Run("should read a YAML report", func(t *testing.T) {
		t.Parallel()

		// given
		data := `
gradleCurrentVersion: "5.6.4"
dependencies:
  - group: io.reactivex.rxjava2
    module: rxjava
    currentVersion: 2.2.10
    availableVersion: 2.2.16
`

		// when
		graph, err := report.NewFlatReportRepository().Parse([]byte(data))

		// then
		require.NoError(t, err)
		require.Equal(t, 1, graph.Len())
		assert.Equal(t, "io.reactivex.rxjava2:rxjava:2.2.10", graph.Entries()[0].Notation())
		assert.Equal(t, "2.2.16", graph.Entries()[0].Versions.Available)
	})

	t.Run("should accept an empty dependency list", func(t *testing.T) {
		t.Parallel()

		// when
		graph, err := report.NewFlatReportRepository().Parse([]byte(`{"dependencies": []}`))

		// then
		require.NoError(t, err)
		assert.Zero(t, graph.Len())
	})

	t.Run("should reject malformed documents", func(t *testing.T) {
		t.Parallel()

		cases := map[string]string{
			"empty":       "",
			"broken json": `[{"group": "a"`,
			"wrong shape": `{"dependencies": {"group": "a"}}`,
			"scalar root": "42",
		}

		for name, data := range cases {
			// when
			_, err := report.NewFlatReportRepository().Parse([]byte(data))

			// then
			assert.ErrorIs(t, err, entities.ErrMalformedReport, name)
		}
	})

	t.Run("should reject entries missing a required field", func(t *testing.T) {
		t.Parallel()

		cases := map[string]struct {
			data  string
			field string
		}{
			"group":   {data: `[{"module": "b", "currentVersion": "1"}]`, field: "group"},
			"module":  {data: `[{"group": "a", "currentVersion": "1"}]`, field: "module"},
			"version": {data: `[{"group": "a", "module": "b", "currentVersion": ""}]`, field: "currentVersion"},
		}

		for name, tc := range cases {
			// when
			_, err := report.NewFlatReportRepository().Parse([]byte(tc.data))

			// then
			var schemaErr *entities.SchemaError
			require.True(t, errors.As(err, &schemaErr), name)
			assert.Equal(t, tc.field, schemaErr.Field, name)
			assert.Equal(t, 0, schemaErr.Index, name)
			assert.Empty(t, schemaErr.Section, name)
		}
	})

	t.Run("should reject duplicate coordinates", func(t *testing.T) {
		t.Parallel()

		// given
		data := `[
			{"group": "a", "module": "b", "currentVersion": "1"},
			{"group": "a", "module": "c", "currentVersion": "1"},
			{"group": "a", "name": "b", "version": "2"}
		]`

		// when
		_, err := report.NewFlatReportRepository().Parse([]byte(data))

		// then
		var dupErr *entities.DuplicateCoordinateError
		require.True(t, errors.As(err, &dupErr))
		assert.Equal(t, 0, dupErr.FirstIndex)
		assert.Equal(t, 2, dupErr.Index)
	})
}
