package kotlin

import (
	"strings"

	"github.com/rios0rios0/buildsrcversions/internal/domain/entities"
	"github.com/rios0rios0/buildsrcversions/internal/domain/repositories"
)

const languageName = entities.LanguageKotlin

//nolint:gochecknoglobals // read-only replacer
var stringEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, `$`, `\$`)

// LanguageRepository writes Kotlin: `object` holders with `const val` members,
// and `val` declarations in versions-only mode (build.gradle.kts).
type LanguageRepository struct{}

var _ entities.HolderSyntax = (*LanguageRepository)(nil)

// NewLanguageRepository creates the Kotlin syntax.
func NewLanguageRepository() repositories.LanguageRepository {
	return &LanguageRepository{}
}

func (l *LanguageRepository) Name() string { return languageName }

func (l *LanguageRepository) FileExtension() string { return "kt" }

func (l *LanguageRepository) FileHeader() []string {
	return []string{"import kotlin.String", ""}
}

func (l *LanguageRepository) DocComment(lines []string) []string {
	result := make([]string, 0, len(lines)+2)
	result = append(result, "/**")
	for _, line := range lines {
		result = append(result, strings.TrimRight(" * "+line, " "))
	}
	return append(result, " */")
}

func (l *LanguageRepository) OpenHolder(name string, _ bool) string {
	return "object " + name + " {"
}

func (l *LanguageRepository) CloseHolder() string { return "}" }

func (l *LanguageRepository) Constant(name, value string) string {
	return "const val " + name + ": String = " + quote(value)
}

func (l *LanguageRepository) LineComment(text string) string {
	return "// " + text
}

func (l *LanguageRepository) Assignment(name, value string) string {
	return "val " + name + " = " + quote(value)
}

func quote(value string) string {
	return `"` + stringEscaper.Replace(value) + `"`
}
