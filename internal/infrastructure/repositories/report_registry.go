package repositories

import (
	"fmt"
	"slices"

	"github.com/rios0rios0/buildsrcversions/internal/domain/entities"
	domainRepos "github.com/rios0rios0/buildsrcversions/internal/domain/repositories"
)

// ReportFactory is a constructor function that creates a ReportRepository for one schema.
type ReportFactory func() domainRepos.ReportRepository

// ReportRegistry manages all registered report schemas.
type ReportRegistry struct {
	reports map[string]ReportFactory
}

// NewReportRegistry creates an empty report registry.
func NewReportRegistry() *ReportRegistry {
	return &ReportRegistry{
		reports: make(map[string]ReportFactory),
	}
}

// Register adds a report factory under the given schema name (e.g. "benmanes").
func (r *ReportRegistry) Register(schema string, factory ReportFactory) {
	r.reports[schema] = factory
}

// Get builds the report codec for the given schema.
func (r *ReportRegistry) Get(schema string) (domainRepos.ReportRepository, error) {
	factory, ok := r.reports[schema]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %v)", entities.ErrUnsupportedSchema, schema, r.Names())
	}
	return factory(), nil
}

// Names returns the sorted list of registered schema names.
func (r *ReportRegistry) Names() []string {
	names := make([]string, 0, len(r.reports))
	for name := range r.reports {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
