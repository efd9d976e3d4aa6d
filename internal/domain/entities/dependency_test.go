//go:build unit

package entities_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/buildsrcversions/internal/domain/entities"
	builders "github.com/rios0rios0/buildsrcversions/test/domain/entitybuilders"
)

func TestNewDependencyGraph(t *testing.T) {
	t.Parallel()

	t.Run("should keep entries in report order", func(t *testing.T) {
		t.Parallel()

		// given
		first := builders.NewDependencyEntryBuilder().WithModule("zeta").BuildEntry()
		second := builders.NewDependencyEntryBuilder().WithModule("alpha").BuildEntry()

		// when
		graph, err := entities.NewDependencyGraph([]entities.DependencyEntry{first, second}, "5.6", "6.0")

		// then
		require.NoError(t, err)
		assert.Equal(t, []entities.DependencyEntry{first, second}, graph.Entries())
		assert.Equal(t, "5.6", graph.GradleCurrentVersion())
		assert.Equal(t, "6.0", graph.GradleLatestVersion())
	})

	t.Run("should reject duplicate coordinates", func(t *testing.T) {
		t.Parallel()

		// given
		entry := builders.NewDependencyEntryBuilder().WithGroup("io.ktor").WithModule("ktor-client").BuildEntry()
		other := builders.NewDependencyEntryBuilder().WithModule("other").BuildEntry()
		duplicate := builders.NewDependencyEntryBuilder().
			WithGroup("io.ktor").WithModule("ktor-client").WithCurrent("2.0.0").BuildEntry()

		// when
		graph, err := entities.NewDependencyGraph([]entities.DependencyEntry{entry, other, duplicate}, "", "")

		// then
		require.Error(t, err)
		assert.Nil(t, graph)
		assert.ErrorIs(t, err, entities.ErrDuplicateCoordinate)
		var dupErr *entities.DuplicateCoordinateError
		require.True(t, errors.As(err, &dupErr))
		assert.Equal(t, 0, dupErr.FirstIndex)
		assert.Equal(t, 2, dupErr.Index)
		assert.Contains(t, err.Error(), "io.ktor:ktor-client")
	})

	t.Run("should not be affected by changes to the input or output slices", func(t *testing.T) {
		t.Parallel()

		// given
		entries := []entities.DependencyEntry{builders.NewDependencyEntryBuilder().BuildEntry()}
		graph, err := entities.NewDependencyGraph(entries, "", "")
		require.NoError(t, err)

		// when
		entries[0].Versions.Current = "9.9.9"
		graph.Entries()[0].Versions.Current = "8.8.8"

		// then
		assert.Equal(t, "1.0.0", graph.Entries()[0].Versions.Current)
	})
}

func TestDependencyEntry(t *testing.T) {
	t.Parallel()

	t.Run("should build the full notation", func(t *testing.T) {
		t.Parallel()

		// given
		entry := builders.NewDependencyEntryBuilder().
			WithGroup("org.jetbrains.kotlin").WithModule("kotlin-stdlib").WithCurrent("1.3.50").BuildEntry()

		// when
		notation := entry.Notation()

		// then
		assert.Equal(t, "org.jetbrains.kotlin:kotlin-stdlib:1.3.50", notation)
	})

	t.Run("should classify current and available versions", func(t *testing.T) {
		t.Parallel()

		// given
		entry := builders.NewDependencyEntryBuilder().WithCurrent("1.0-rc1").WithAvailable("1.1-beta").BuildEntry()
		noUpdate := builders.NewDependencyEntryBuilder().WithCurrent("1.0").BuildEntry()

		// then
		assert.True(t, entry.CurrentIsNonStable())
		assert.True(t, entry.AvailableIsNonStable())
		assert.False(t, noUpdate.CurrentIsNonStable())
		assert.False(t, noUpdate.AvailableIsNonStable())
		assert.False(t, noUpdate.Versions.HasUpdate())
	})

	t.Run("should list outdated entries in report order", func(t *testing.T) {
		t.Parallel()

		// given
		graph := builders.NewDependencyGraphBuilder().
			WithEntry(builders.NewDependencyEntryBuilder().WithModule("b").WithAvailable("2.0").BuildEntry()).
			WithEntry(builders.NewDependencyEntryBuilder().WithModule("c").BuildEntry()).
			WithEntry(builders.NewDependencyEntryBuilder().WithModule("a").WithAvailable("3.0").BuildEntry()).
			BuildGraph()

		// when
		outdated := graph.Outdated()

		// then
		require.Len(t, outdated, 2)
		assert.Equal(t, "b", outdated[0].Coordinate.Module)
		assert.Equal(t, "a", outdated[1].Coordinate.Module)
	})
}
