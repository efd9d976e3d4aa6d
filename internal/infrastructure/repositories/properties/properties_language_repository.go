package properties

import (
	"strings"

	"github.com/rios0rios0/buildsrcversions/internal/domain/entities"
	"github.com/rios0rios0/buildsrcversions/internal/domain/repositories"
)

const (
	languageName = entities.LanguageProperties
	keyPrefix    = "version."
)

//nolint:gochecknoglobals // read-only replacer
var valueEscaper = strings.NewReplacer(`\`, `\\`, "\n", `\n`)

// LanguageRepository writes gradle.properties entries. It has no constants
// holders, so it only serves versions-only mode.
type LanguageRepository struct{}

// NewLanguageRepository creates the properties syntax.
func NewLanguageRepository() repositories.LanguageRepository {
	return &LanguageRepository{}
}

func (l *LanguageRepository) Name() string { return languageName }

func (l *LanguageRepository) FileExtension() string { return "properties" }

func (l *LanguageRepository) LineComment(text string) string {
	return "# " + text
}

func (l *LanguageRepository) Assignment(name, value string) string {
	return keyPrefix + name + "=" + valueEscaper.Replace(value)
}
