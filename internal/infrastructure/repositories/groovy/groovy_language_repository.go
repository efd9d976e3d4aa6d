package groovy

import (
	"strings"

	"github.com/rios0rios0/buildsrcversions/internal/domain/entities"
	"github.com/rios0rios0/buildsrcversions/internal/domain/repositories"
)

const languageName = entities.LanguageGroovy

//nolint:gochecknoglobals // read-only replacer
var stringEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// LanguageRepository writes Groovy: classes with `static final String` members,
// and `def` declarations in versions-only mode (build.gradle).
type LanguageRepository struct{}

var _ entities.HolderSyntax = (*LanguageRepository)(nil)

// NewLanguageRepository creates the Groovy syntax.
func NewLanguageRepository() repositories.LanguageRepository {
	return &LanguageRepository{}
}

func (l *LanguageRepository) Name() string { return languageName }

func (l *LanguageRepository) FileExtension() string { return "groovy" }

func (l *LanguageRepository) FileHeader() []string { return nil }

func (l *LanguageRepository) DocComment(lines []string) []string {
	result := make([]string, 0, len(lines)+2)
	result = append(result, "/**")
	for _, line := range lines {
		result = append(result, strings.TrimRight(" * "+line, " "))
	}
	return append(result, " */")
}

func (l *LanguageRepository) OpenHolder(name string, nested bool) string {
	if nested {
		return "static class " + name + " {"
	}
	return "class " + name + " {"
}

func (l *LanguageRepository) CloseHolder() string { return "}" }

func (l *LanguageRepository) Constant(name, value string) string {
	return "static final String " + name + " = " + quote(value)
}

func (l *LanguageRepository) LineComment(text string) string {
	return "// " + text
}

func (l *LanguageRepository) Assignment(name, value string) string {
	return "def " + name + " = " + quote(value)
}

func quote(value string) string {
	return "'" + stringEscaper.Replace(value) + "'"
}
