package repositories

import (
	"fmt"
	"slices"

	"github.com/rios0rios0/buildsrcversions/internal/domain/entities"
	domainRepos "github.com/rios0rios0/buildsrcversions/internal/domain/repositories"
)

// LanguageRegistry manages all registered target languages.
type LanguageRegistry struct {
	languages map[string]domainRepos.LanguageRepository
}

// NewLanguageRegistry creates an empty language registry.
func NewLanguageRegistry() *LanguageRegistry {
	return &LanguageRegistry{
		languages: make(map[string]domainRepos.LanguageRepository),
	}
}

// Register adds a language under its name.
func (r *LanguageRegistry) Register(l domainRepos.LanguageRepository) {
	r.languages[l.Name()] = l
}

// Get returns the language with the given name.
func (r *LanguageRegistry) Get(name string) (domainRepos.LanguageRepository, error) {
	l, ok := r.languages[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %v)", entities.ErrUnsupportedLanguage, name, r.Names())
	}
	return l, nil
}

// Names returns the sorted list of registered language names.
func (r *LanguageRegistry) Names() []string {
	names := make([]string, 0, len(r.languages))
	for name := range r.languages {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
