//go:build unit

package properties_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/buildsrcversions/internal/domain/entities"
	"github.com/rios0rios0/buildsrcversions/internal/infrastructure/repositories/properties"
)

func TestLanguageRepository(t *testing.T) {
	t.Parallel()

	t.Run("should render version properties", func(t *testing.T) {
		t.Parallel()

		// given
		repo := properties.NewLanguageRepository()

		// then
		assert.Equal(t, entities.LanguageProperties, repo.Name())
		assert.Equal(t, "properties", repo.FileExtension())
		assert.Equal(t, "version.okhttp=4.2.2", repo.Assignment("okhttp", "4.2.2"))
		assert.Equal(t, `version.odd=a\\b\nc`, repo.Assignment("odd", "a\\b\nc"))
		assert.Equal(t, "# </buildSrcVersions>", repo.LineComment("</buildSrcVersions>"))
	})

	t.Run("should not offer constants holders", func(t *testing.T) {
		t.Parallel()

		// when
		_, ok := properties.NewLanguageRepository().(entities.HolderSyntax)

		// then
		assert.False(t, ok)
	})
}
