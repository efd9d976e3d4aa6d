package report

import (
	"github.com/rios0rios0/buildsrcversions/internal/domain/entities"
	"github.com/rios0rios0/buildsrcversions/internal/domain/repositories"
)

type flatReport struct {
	GradleCurrentVersion *string          `json:"gradleCurrentVersion" yaml:"gradleCurrentVersion"`
	GradleLatestVersion  *string          `json:"gradleLatestVersion"  yaml:"gradleLatestVersion"`
	Dependencies         []flatDependency `json:"dependencies"         yaml:"dependencies"`
}

// flatDependency accepts "module" or "name" for the artifact and
// "currentVersion" or "version" for the declared version.
type flatDependency struct {
	Group            *string `json:"group"            yaml:"group"`
	Module           *string `json:"module"           yaml:"module"`
	Name             *string `json:"name"             yaml:"name"`
	CurrentVersion   *string `json:"currentVersion"   yaml:"currentVersion"`
	Version          *string `json:"version"          yaml:"version"`
	AvailableVersion *string `json:"availableVersion" yaml:"availableVersion"`
	ProjectURL       *string `json:"projectUrl"       yaml:"projectUrl"`
}

// FlatReportRepository parses the minimal report: an object with the build tool
// versions and a "dependencies" array, or a bare array of dependencies.
type FlatReportRepository struct{}

// NewFlatReportRepository creates the flat schema codec.
func NewFlatReportRepository() repositories.ReportRepository {
	return &FlatReportRepository{}
}

func (r *FlatReportRepository) Schema() string { return entities.SchemaFlat }

// Parse decodes and validates a flat report.
func (r *FlatReportRepository) Parse(data []byte) (*entities.DependencyGraph, error) {
	doc, err := parseDocument(data)
	if err != nil {
		return nil, &entities.MalformedReportError{Schema: r.Schema(), Err: err}
	}

	var report flatReport
	if doc.isArray {
		err = doc.decode(&report.Dependencies)
	} else {
		err = doc.decode(&report)
	}
	if err != nil {
		return nil, &entities.MalformedReportError{Schema: r.Schema(), Err: err}
	}

	entries := make([]entities.DependencyEntry, 0, len(report.Dependencies))
	for i, dep := range report.Dependencies {
		entry, schemaErr := dep.toEntry(i)
		if schemaErr != nil {
			return nil, schemaErr
		}
		entries = append(entries, entry)
	}

	return entities.NewDependencyGraph(
		entries,
		optional(report.GradleCurrentVersion),
		optional(report.GradleLatestVersion),
	)
}

func (d flatDependency) toEntry(index int) (entities.DependencyEntry, error) {
	group, ok := required(d.Group)
	if !ok {
		return entities.DependencyEntry{}, &entities.SchemaError{Index: index, Field: "group"}
	}
	module := firstOf(d.Module, d.Name)
	if module == "" {
		return entities.DependencyEntry{}, &entities.SchemaError{Index: index, Field: "module"}
	}
	current := firstOf(d.CurrentVersion, d.Version)
	if current == "" {
		return entities.DependencyEntry{}, &entities.SchemaError{Index: index, Field: "currentVersion"}
	}

	return entities.DependencyEntry{
		Coordinate: entities.Coordinate{Group: group, Module: module},
		Versions: entities.VersionInfo{
			Current:   current,
			Available: optional(d.AvailableVersion),
		},
		ProjectURL: optional(d.ProjectURL),
	}, nil
}
