//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/buildsrcversions/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// DependencyGraphBuilder helps create test graphs with a fluent interface.
type DependencyGraphBuilder struct {
	*testkit.BaseBuilder
	entries       []entities.DependencyEntry
	gradleCurrent string
	gradleLatest  string
}

// NewDependencyGraphBuilder creates an empty graph builder.
func NewDependencyGraphBuilder() *DependencyGraphBuilder {
	return &DependencyGraphBuilder{
		BaseBuilder:   testkit.NewBaseBuilder(),
		gradleCurrent: "5.6.4",
		gradleLatest:  "6.0.1",
	}
}

// WithEntry appends an entry.
func (b *DependencyGraphBuilder) WithEntry(entry entities.DependencyEntry) *DependencyGraphBuilder {
	b.entries = append(b.entries, entry)
	return b
}

// WithGradleVersions sets the build tool versions.
func (b *DependencyGraphBuilder) WithGradleVersions(current, latest string) *DependencyGraphBuilder {
	b.gradleCurrent = current
	b.gradleLatest = latest
	return b
}

// Build creates the graph (satisfies testkit.Builder interface).
func (b *DependencyGraphBuilder) Build() interface{} {
	return b.BuildGraph()
}

// BuildGraph creates the graph, panicking on duplicate coordinates.
func (b *DependencyGraphBuilder) BuildGraph() *entities.DependencyGraph {
	graph, err := entities.NewDependencyGraph(b.entries, b.gradleCurrent, b.gradleLatest)
	if err != nil {
		panic(err)
	}
	return graph
}

// Reset clears the builder state, allowing it to be reused.
func (b *DependencyGraphBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.entries = nil
	b.gradleCurrent = "5.6.4"
	b.gradleLatest = "6.0.1"
	return b
}

// Clone creates a deep copy of the DependencyGraphBuilder.
func (b *DependencyGraphBuilder) Clone() testkit.Builder {
	return &DependencyGraphBuilder{
		BaseBuilder:   b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		entries:       append([]entities.DependencyEntry(nil), b.entries...),
		gradleCurrent: b.gradleCurrent,
		gradleLatest:  b.gradleLatest,
	}
}
