package repositories

import "github.com/rios0rios0/buildsrcversions/internal/domain/entities"

// LanguageRepository renders the syntax of one target language.
// Languages that can hold constants also implement entities.HolderSyntax.
type LanguageRepository interface {
	entities.Syntax

	// Name returns the language identifier (e.g. "kotlin", "groovy").
	Name() string

	// FileExtension returns the extension of generated files, without the dot.
	FileExtension() string
}
