package entities

// Coordinate identifies a library independently of its version.
type Coordinate struct {
	Group  string // Reverse-domain namespace (e.g. "org.jetbrains.kotlin")
	Module string // Artifact short name (e.g. "kotlin-stdlib")
}

// String returns the "group:module" form of the coordinate.
func (c Coordinate) String() string {
	return c.Group + ":" + c.Module
}

// VersionInfo holds the declared version and the latest one the report found.
// An empty Available means no update is known. No ordering is implied between them.
type VersionInfo struct {
	Current   string
	Available string
}

// HasUpdate reports whether the report found an available version.
func (v VersionInfo) HasUpdate() bool {
	return v.Available != ""
}

// DependencyEntry is one unique coordinate of the graph with its versions.
type DependencyEntry struct {
	Coordinate Coordinate
	Versions   VersionInfo
	ProjectURL string // Optional, only some report schemas carry it
}

// Notation returns the "group:module:version" string used in build scripts.
func (e DependencyEntry) Notation() string {
	return e.Coordinate.String() + ":" + e.Versions.Current
}

// CurrentIsNonStable classifies the declared version.
func (e DependencyEntry) CurrentIsNonStable() bool {
	return IsNonStable(e.Versions.Current)
}

// AvailableIsNonStable classifies the available version. It is false when no
// update is available.
func (e DependencyEntry) AvailableIsNonStable() bool {
	return e.Versions.HasUpdate() && IsNonStable(e.Versions.Available)
}

// DependencyGraph is the parsed report. It is immutable once built: entries are
// kept in report order and only copies are handed out.
type DependencyGraph struct {
	entries              []DependencyEntry
	gradleCurrentVersion string
	gradleLatestVersion  string
}

// NewDependencyGraph builds a graph from entries in report order. It fails with a
// DuplicateCoordinateError when two entries share the same coordinate.
func NewDependencyGraph(
	entries []DependencyEntry,
	gradleCurrentVersion, gradleLatestVersion string,
) (*DependencyGraph, error) {
	seen := make(map[Coordinate]int, len(entries))
	for i, entry := range entries {
		if first, found := seen[entry.Coordinate]; found {
			return nil, &DuplicateCoordinateError{
				Coordinate: entry.Coordinate,
				FirstIndex: first,
				Index:      i,
			}
		}
		seen[entry.Coordinate] = i
	}

	copied := make([]DependencyEntry, len(entries))
	copy(copied, entries)
	return &DependencyGraph{
		entries:              copied,
		gradleCurrentVersion: gradleCurrentVersion,
		gradleLatestVersion:  gradleLatestVersion,
	}, nil
}

// GradleCurrentVersion returns the version of the build tool that produced the report.
func (g *DependencyGraph) GradleCurrentVersion() string {
	return g.gradleCurrentVersion
}

// GradleLatestVersion returns the latest build tool release known to the report.
func (g *DependencyGraph) GradleLatestVersion() string {
	return g.gradleLatestVersion
}

// Entries returns a copy of the entries in report order.
func (g *DependencyGraph) Entries() []DependencyEntry {
	result := make([]DependencyEntry, len(g.entries))
	copy(result, g.entries)
	return result
}

// Coordinates returns the coordinates in report order.
func (g *DependencyGraph) Coordinates() []Coordinate {
	result := make([]Coordinate, 0, len(g.entries))
	for _, entry := range g.entries {
		result = append(result, entry.Coordinate)
	}
	return result
}

// Len returns the number of entries.
func (g *DependencyGraph) Len() int {
	return len(g.entries)
}

// Outdated returns the entries that have an available version, in report order.
func (g *DependencyGraph) Outdated() []DependencyEntry {
	var result []DependencyEntry
	for _, entry := range g.entries {
		if entry.Versions.HasUpdate() {
			result = append(result, entry)
		}
	}
	return result
}
