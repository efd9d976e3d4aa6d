package entities

import (
	"slices"
	"strings"
)

// AnnotatedEntry is a dependency with its synthesized names and stability verdicts.
type AnnotatedEntry struct {
	DependencyEntry
	Identifier         string
	Holder             string
	CurrentNonStable   bool
	AvailableNonStable bool
}

// AnnotatedGraph is the renderer input: every entry named and classified,
// sorted by identifier.
type AnnotatedGraph struct {
	Entries              []AnnotatedEntry
	GradleCurrentVersion string
	GradleLatestVersion  string
}

// Annotate names and classifies every entry of the graph.
func Annotate(graph *DependencyGraph, settings *Settings) *AnnotatedGraph {
	assignments := SynthesizeIdentifiers(graph.Coordinates(), settings)

	entries := make([]AnnotatedEntry, 0, graph.Len())
	for _, entry := range graph.Entries() {
		assignment := assignments[entry.Coordinate]
		entries = append(entries, AnnotatedEntry{
			DependencyEntry:    entry,
			Identifier:         assignment.Identifier,
			Holder:             assignment.Holder,
			CurrentNonStable:   entry.CurrentIsNonStable(),
			AvailableNonStable: entry.AvailableIsNonStable(),
		})
	}
	slices.SortStableFunc(entries, func(a, b AnnotatedEntry) int {
		return strings.Compare(a.Identifier, b.Identifier)
	})

	return &AnnotatedGraph{
		Entries:              entries,
		GradleCurrentVersion: graph.GradleCurrentVersion(),
		GradleLatestVersion:  graph.GradleLatestVersion(),
	}
}

// Outdated returns the entries with an available version, in identifier order.
func (g *AnnotatedGraph) Outdated() []AnnotatedEntry {
	var result []AnnotatedEntry
	for _, entry := range g.Entries {
		if entry.Versions.HasUpdate() {
			result = append(result, entry)
		}
	}
	return result
}

// holderGroup is the set of entries rendered inside one nested holder.
type holderGroup struct {
	Name    string
	Entries []AnnotatedEntry
}

// byHolder groups entries by holder, holders sorted by name, entries keeping
// their identifier order.
func (g *AnnotatedGraph) byHolder() []holderGroup {
	index := make(map[string]int)
	var groups []holderGroup
	for _, entry := range g.Entries {
		i, found := index[entry.Holder]
		if !found {
			i = len(groups)
			index[entry.Holder] = i
			groups = append(groups, holderGroup{Name: entry.Holder})
		}
		groups[i].Entries = append(groups[i].Entries, entry)
	}
	slices.SortFunc(groups, func(a, b holderGroup) int {
		return strings.Compare(a.Name, b.Name)
	})
	return groups
}
