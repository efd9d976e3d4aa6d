package report

import (
	"errors"

	"github.com/rios0rios0/buildsrcversions/internal/domain/entities"
	"github.com/rios0rios0/buildsrcversions/internal/domain/repositories"
)

type benmanesReport struct {
	Current    *benmanesSection `json:"current"    yaml:"current"`
	Exceeded   *benmanesSection `json:"exceeded"   yaml:"exceeded"`
	Outdated   *benmanesSection `json:"outdated"   yaml:"outdated"`
	Unresolved *benmanesSection `json:"unresolved" yaml:"unresolved"`
	Gradle     *benmanesGradle  `json:"gradle"     yaml:"gradle"`
}

type benmanesSection struct {
	Dependencies []benmanesDependency `json:"dependencies" yaml:"dependencies"`
}

type benmanesDependency struct {
	Group      *string            `json:"group"      yaml:"group"`
	Name       *string            `json:"name"       yaml:"name"`
	Version    *string            `json:"version"    yaml:"version"`
	ProjectURL *string            `json:"projectUrl" yaml:"projectUrl"`
	Available  *benmanesAvailable `json:"available"  yaml:"available"`
}

type benmanesAvailable struct {
	Release     *string `json:"release"     yaml:"release"`
	Milestone   *string `json:"milestone"   yaml:"milestone"`
	Integration *string `json:"integration" yaml:"integration"`
}

type benmanesGradle struct {
	Current *benmanesGradleVersion `json:"current" yaml:"current"`
	Running *benmanesGradleVersion `json:"running" yaml:"running"`
}

type benmanesGradleVersion struct {
	Version *string `json:"version" yaml:"version"`
}

// BenmanesReportRepository parses the JSON report written by the
// gradle-versions-plugin (build/dependencyUpdates/report.json).
type BenmanesReportRepository struct{}

// NewBenmanesReportRepository creates the gradle-versions-plugin codec.
func NewBenmanesReportRepository() repositories.ReportRepository {
	return &BenmanesReportRepository{}
}

func (r *BenmanesReportRepository) Schema() string { return entities.SchemaBenmanes }

// Parse decodes and validates a gradle-versions-plugin report. Sections are read
// in the order current, exceeded, outdated, unresolved.
func (r *BenmanesReportRepository) Parse(data []byte) (*entities.DependencyGraph, error) {
	doc, err := parseDocument(data)
	if err != nil {
		return nil, &entities.MalformedReportError{Schema: r.Schema(), Err: err}
	}
	if doc.isArray {
		return nil, &entities.MalformedReportError{
			Schema: r.Schema(),
			Err:    errors.New("root must be an object"),
		}
	}

	var report benmanesReport
	if decodeErr := doc.decode(&report); decodeErr != nil {
		return nil, &entities.MalformedReportError{Schema: r.Schema(), Err: decodeErr}
	}

	sections := []struct {
		name    string
		section *benmanesSection
	}{
		{"current", report.Current},
		{"exceeded", report.Exceeded},
		{"outdated", report.Outdated},
		{"unresolved", report.Unresolved},
	}

	var entries []entities.DependencyEntry
	for _, s := range sections {
		if s.section == nil {
			continue
		}
		for i, dep := range s.section.Dependencies {
			entry, schemaErr := dep.toEntry(s.name, i)
			if schemaErr != nil {
				return nil, schemaErr
			}
			entries = append(entries, entry)
		}
	}

	var gradleCurrent, gradleLatest string
	if report.Gradle != nil {
		if report.Gradle.Running != nil {
			gradleCurrent = optional(report.Gradle.Running.Version)
		}
		if report.Gradle.Current != nil {
			gradleLatest = optional(report.Gradle.Current.Version)
		}
	}

	return entities.NewDependencyGraph(entries, gradleCurrent, gradleLatest)
}

func (d benmanesDependency) toEntry(section string, index int) (entities.DependencyEntry, error) {
	group, ok := required(d.Group)
	if !ok {
		return entities.DependencyEntry{}, &entities.SchemaError{Section: section, Index: index, Field: "group"}
	}
	name, ok := required(d.Name)
	if !ok {
		return entities.DependencyEntry{}, &entities.SchemaError{Section: section, Index: index, Field: "name"}
	}
	version, ok := required(d.Version)
	if !ok {
		return entities.DependencyEntry{}, &entities.SchemaError{Section: section, Index: index, Field: "version"}
	}

	var available string
	if d.Available != nil {
		available = firstOf(d.Available.Release, d.Available.Milestone, d.Available.Integration)
	}

	return entities.DependencyEntry{
		Coordinate: entities.Coordinate{Group: group, Module: name},
		Versions:   entities.VersionInfo{Current: version, Available: available},
		ProjectURL: optional(d.ProjectURL),
	}, nil
}
