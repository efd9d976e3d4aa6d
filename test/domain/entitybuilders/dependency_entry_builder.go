//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/buildsrcversions/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// DependencyEntryBuilder helps create test dependency entries with a fluent interface.
type DependencyEntryBuilder struct {
	*testkit.BaseBuilder
	group      string
	module     string
	current    string
	available  string
	projectURL string
}

// NewDependencyEntryBuilder creates a new entry builder with sensible defaults.
func NewDependencyEntryBuilder() *DependencyEntryBuilder {
	return &DependencyEntryBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		group:       "com.example",
		module:      "library",
		current:     "1.0.0",
	}
}

// WithGroup sets the group namespace.
func (b *DependencyEntryBuilder) WithGroup(group string) *DependencyEntryBuilder {
	b.group = group
	return b
}

// WithModule sets the module name.
func (b *DependencyEntryBuilder) WithModule(module string) *DependencyEntryBuilder {
	b.module = module
	return b
}

// WithCurrent sets the current version.
func (b *DependencyEntryBuilder) WithCurrent(version string) *DependencyEntryBuilder {
	b.current = version
	return b
}

// WithAvailable sets the available version.
func (b *DependencyEntryBuilder) WithAvailable(version string) *DependencyEntryBuilder {
	b.available = version
	return b
}

// WithProjectURL sets the project URL.
func (b *DependencyEntryBuilder) WithProjectURL(url string) *DependencyEntryBuilder {
	b.projectURL = url
	return b
}

// Build creates the entry (satisfies testkit.Builder interface).
func (b *DependencyEntryBuilder) Build() interface{} {
	return b.BuildEntry()
}

// BuildEntry creates the entry with a concrete return type.
func (b *DependencyEntryBuilder) BuildEntry() entities.DependencyEntry {
	return entities.DependencyEntry{
		Coordinate: entities.Coordinate{Group: b.group, Module: b.module},
		Versions:   entities.VersionInfo{Current: b.current, Available: b.available},
		ProjectURL: b.projectURL,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *DependencyEntryBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.group = "com.example"
	b.module = "library"
	b.current = "1.0.0"
	b.available = ""
	b.projectURL = ""
	return b
}

// Clone creates a deep copy of the DependencyEntryBuilder.
func (b *DependencyEntryBuilder) Clone() testkit.Builder {
	return &DependencyEntryBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		group:       b.group,
		module:      b.module,
		current:     b.current,
		available:   b.available,
		projectURL:  b.projectURL,
	}
}
