//go:build unit

package kotlin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/buildsrcversions/internal/domain/entities"
	"github.com/rios0rios0/buildsrcversions/internal/infrastructure/repositories/kotlin"
)

func TestLanguageRepository(t *testing.T) {
	t.Parallel()

	t.Run("should describe the language", func(t *testing.T) {
		t.Parallel()

		// given
		repo := kotlin.NewLanguageRepository()

		// then
		assert.Equal(t, entities.LanguageKotlin, repo.Name())
		assert.Equal(t, "kt", repo.FileExtension())
		assert.Implements(t, (*entities.HolderSyntax)(nil), repo)
	})

	t.Run("should render declarations", func(t *testing.T) {
		t.Parallel()

		// given
		repo := kotlin.NewLanguageRepository().(*kotlin.LanguageRepository)

		// then
		assert.Equal(t, "object Libs {", repo.OpenHolder("Libs", false))
		assert.Equal(t, "object AndroidxCore {", repo.OpenHolder("AndroidxCore", true))
		assert.Equal(t, `const val okhttp: String = "4.2.2"`, repo.Constant("okhttp", "4.2.2"))
		assert.Equal(t, `val okhttp = "4.2.2"`, repo.Assignment("okhttp", "4.2.2"))
		assert.Equal(t, "// <buildSrcVersions>", repo.LineComment("<buildSrcVersions>"))
		assert.Equal(t, []string{"/**", " * a", " *", " */"}, repo.DocComment([]string{"a", ""}))
	})

	t.Run("should escape string templates and quotes", func(t *testing.T) {
		t.Parallel()

		// given
		repo := kotlin.NewLanguageRepository()

		// when
		line := repo.Assignment("odd", `1.0-"$x"\`)

		// then
		assert.Equal(t, `val odd = "1.0-\"\$x\"\\"`, line)
	})
}
