package entities

import (
	"fmt"
	"strings"
	"unicode"
)

// Syntax renders the declarations written inside the versions-only region.
type Syntax interface {
	LineComment(text string) string
	Assignment(name, value string) string
}

// HolderSyntax additionally renders the constants holders of separate-files mode.
type HolderSyntax interface {
	Syntax
	FileHeader() []string
	DocComment(lines []string) []string
	OpenHolder(name string, nested bool) string
	CloseHolder() string
	Constant(name, value string) string
}

// ArtifactRenderer produces the text of generated artifacts. It keeps no state
// between calls.
type ArtifactRenderer struct {
	settings *Settings
	syntax   Syntax
}

// NewArtifactRenderer creates a renderer writing the given syntax.
func NewArtifactRenderer(settings *Settings, syntax Syntax) *ArtifactRenderer {
	return &ArtifactRenderer{settings: settings, syntax: syntax}
}

// RenderLibs renders the holder whose constants are full "group:module:version" notations.
func (r *ArtifactRenderer) RenderLibs(graph *AnnotatedGraph) (string, error) {
	syntax, err := r.holderSyntax()
	if err != nil {
		return "", err
	}

	w := newLineWriter(r.settings.Indent())
	w.lines(0, syntax.FileHeader()...)
	w.lines(0, syntax.DocComment(r.libsHeader())...)
	w.line(0, syntax.OpenHolder(r.settings.LibsName, false))

	if r.settings.GroupByNamespace {
		for i, group := range graph.byHolder() {
			if i > 0 {
				w.blank()
			}
			w.line(1, syntax.OpenHolder(group.Name, true))
			r.writeLibs(w, syntax, 2, group.Entries)
			w.line(1, syntax.CloseHolder())
		}
	} else {
		r.writeLibs(w, syntax, 1, graph.Entries)
	}

	w.line(0, syntax.CloseHolder())
	return w.String(), nil
}

func (r *ArtifactRenderer) writeLibs(w *lineWriter, syntax HolderSyntax, depth int, entries []AnnotatedEntry) {
	for i, entry := range entries {
		if i > 0 {
			w.blank()
		}
		if entry.ProjectURL != "" {
			w.lines(depth, syntax.DocComment([]string{entry.ProjectURL})...)
		}
		w.line(depth, syntax.Constant(entry.Identifier, entry.Notation()))
	}
}

// RenderVersions renders the holder whose constants are the current versions,
// each documented with the available update.
func (r *ArtifactRenderer) RenderVersions(graph *AnnotatedGraph) (string, error) {
	syntax, err := r.holderSyntax()
	if err != nil {
		return "", err
	}

	w := newLineWriter(r.settings.Indent())
	w.lines(0, syntax.FileHeader()...)
	w.lines(0, syntax.DocComment(r.versionsHeader())...)
	w.line(0, syntax.OpenHolder(r.settings.VersionsName, false))

	for _, entry := range graph.Entries {
		w.lines(1, syntax.DocComment(r.updateDoc(entry))...)
		w.line(1, syntax.Constant(entry.Identifier, entry.Versions.Current))
		w.blank()
	}

	w.lines(1, syntax.DocComment(r.gradleDoc(graph))...)
	w.line(1, syntax.Constant(GradleCurrentVersionName, graph.GradleCurrentVersion))
	w.blank()
	w.lines(1, syntax.DocComment(r.gradleDoc(graph))...)
	w.line(1, syntax.Constant(GradleLatestVersionName, graph.GradleLatestVersion))

	w.line(0, syntax.CloseHolder())
	return w.String(), nil
}

// RenderVersionsOnly rewrites the lines strictly between the start and end
// markers of a previously generated artifact. Everything outside the markers is
// kept byte for byte. It fails with a MissingMarkerError, leaving previous
// untouched, when the markers are absent or out of order.
func (r *ArtifactRenderer) RenderVersionsOnly(previous string, graph *AnnotatedGraph) (string, error) {
	newline := LineEnding(previous)
	lines := strings.Split(previous, newline)

	start, end, err := r.findMarkers(lines)
	if err != nil {
		return "", err
	}

	indent := leadingWhitespace(lines[start])
	region := r.versionsOnlyRegion(graph)
	for i, line := range region {
		region[i] = indent + line
	}

	result := make([]string, 0, start+1+len(region)+len(lines)-end)
	result = append(result, lines[:start+1]...)
	result = append(result, region...)
	result = append(result, lines[end:]...)
	return strings.Join(result, newline), nil
}

// InitialVersionsOnlyBlock renders a complete marker-delimited block, used to
// bootstrap a file that has no markers yet. Every line ends with newline.
func (r *ArtifactRenderer) InitialVersionsOnlyBlock(graph *AnnotatedGraph, newline string) string {
	lines := []string{r.syntax.LineComment(r.settings.Markers.Start)}
	lines = append(lines, r.versionsOnlyRegion(graph)...)
	lines = append(lines, r.syntax.LineComment(r.settings.Markers.End))
	return strings.Join(lines, newline) + newline
}

// LineEnding returns "\r\n" when content uses CRLF line endings, "\n" otherwise.
func LineEnding(content string) string {
	if strings.Contains(content, "\r\n") {
		return "\r\n"
	}
	return "\n"
}

func (r *ArtifactRenderer) findMarkers(lines []string) (int, int, error) {
	markers := r.settings.Markers
	start, end := -1, -1
	foundEnd := false
	for i, line := range lines {
		switch {
		case start < 0 && strings.Contains(line, markers.Start):
			start = i
		case strings.Contains(line, markers.End):
			foundEnd = true
			if start >= 0 && end < 0 {
				end = i
			}
		}
	}

	if start < 0 || end < 0 {
		return 0, 0, &MissingMarkerError{
			Start:      markers.Start,
			End:        markers.End,
			FoundStart: start >= 0,
			FoundEnd:   foundEnd,
		}
	}
	return start, end, nil
}

func (r *ArtifactRenderer) versionsOnlyRegion(graph *AnnotatedGraph) []string {
	docs := r.settings.Docs
	lines := []string{
		r.syntax.LineComment("Generated by ./gradle buildSrcVersions"),
		r.syntax.LineComment("See " + docs.Issue(IssueVersionsOnly)),
	}
	for _, entry := range graph.Entries {
		if entry.Versions.HasUpdate() {
			lines = append(lines, r.syntax.LineComment("available: "+availableLabel(entry)))
		}
		lines = append(lines, r.syntax.Assignment(entry.Identifier, entry.Versions.Current))
	}
	lines = append(lines,
		r.syntax.Assignment(GradleCurrentVersionName, graph.GradleCurrentVersion),
		r.syntax.Assignment(GradleLatestVersionName, graph.GradleLatestVersion),
	)
	return lines
}

func (r *ArtifactRenderer) holderSyntax() (HolderSyntax, error) {
	syntax, ok := r.syntax.(HolderSyntax)
	if !ok {
		return nil, fmt.Errorf("%w: constants holders cannot be written in this language", ErrUnsupportedLanguage)
	}
	return syntax, nil
}

func (r *ArtifactRenderer) libsHeader() []string {
	return []string{
		"Generated by " + r.settings.Docs.BaseURL,
		"",
		"Update this file with",
		"  `" + r.settings.Docs.RefreshCommand + "`",
	}
}

func (r *ArtifactRenderer) versionsHeader() []string {
	return []string{
		"Generated by " + r.settings.Docs.BaseURL,
		"",
		"Find which updates are available by running",
		"    `" + r.settings.Docs.RefreshCommand + "`",
		"This will only update the comments.",
		"",
		"YOU are responsible for updating manually the dependency version.",
	}
}

func (r *ArtifactRenderer) updateDoc(entry AnnotatedEntry) []string {
	var lines []string
	if entry.Versions.HasUpdate() {
		lines = append(lines, "Update available: "+availableLabel(entry))
	} else {
		lines = append(lines, "No update available")
	}
	if entry.CurrentNonStable {
		lines = append(lines, "Current version is non-stable")
	}
	return append(lines, "Refresh with `"+r.settings.Docs.RefreshCommand+"`")
}

func (r *ArtifactRenderer) gradleDoc(graph *AnnotatedGraph) []string {
	return []string{
		fmt.Sprintf("Current version: %q, latest version: %q", graph.GradleCurrentVersion, graph.GradleLatestVersion),
		"See issue 19: How to update Gradle itself?",
		r.settings.Docs.Issue(IssueUpdateGradle),
	}
}

func availableLabel(entry AnnotatedEntry) string {
	label := fmt.Sprintf("%q", entry.Versions.Available)
	if entry.AvailableNonStable {
		label += " (non-stable)"
	}
	return label
}

func leadingWhitespace(line string) string {
	return line[:len(line)-len(strings.TrimLeftFunc(line, unicode.IsSpace))]
}

// lineWriter accumulates indented lines terminated by "\n".
type lineWriter struct {
	b      strings.Builder
	indent string
}

func newLineWriter(indent string) *lineWriter {
	return &lineWriter{indent: indent}
}

func (w *lineWriter) line(depth int, text string) {
	if text != "" {
		w.b.WriteString(strings.Repeat(w.indent, depth))
		w.b.WriteString(text)
	}
	w.b.WriteByte('\n')
}

func (w *lineWriter) lines(depth int, texts ...string) {
	for _, text := range texts {
		w.line(depth, text)
	}
}

func (w *lineWriter) blank() {
	w.b.WriteByte('\n')
}

func (w *lineWriter) String() string {
	return w.b.String()
}
