package entities

import (
	"strconv"
	"strings"
)

// fallbackQualifier qualifies a meaningless module name when its group offers no
// segment, and stands in for a module name without letters or digits.
const fallbackQualifier = "lib"

// keywords holds the reserved words of every target language (Kotlin hard
// keywords, Java and Groovy keywords). Identifiers never take one of these.
//
//nolint:gochecknoglobals // read-only lookup table
var keywords = map[string]struct{}{
	// Kotlin
	"as": {}, "break": {}, "class": {}, "continue": {}, "do": {}, "else": {}, "false": {},
	"for": {}, "fun": {}, "if": {}, "in": {}, "interface": {}, "is": {}, "null": {},
	"object": {}, "package": {}, "return": {}, "super": {}, "this": {}, "throw": {},
	"true": {}, "try": {}, "typealias": {}, "typeof": {}, "val": {}, "var": {},
	"when": {}, "while": {},
	// Java and Groovy
	"abstract": {}, "assert": {}, "boolean": {}, "byte": {}, "case": {}, "catch": {},
	"char": {}, "const": {}, "def": {}, "default": {}, "double": {}, "enum": {},
	"extends": {}, "final": {}, "finally": {}, "float": {}, "goto": {}, "implements": {},
	"import": {}, "instanceof": {}, "int": {}, "long": {}, "native": {}, "new": {},
	"private": {}, "protected": {}, "public": {}, "short": {}, "static": {},
	"strictfp": {}, "switch": {}, "synchronized": {}, "throws": {}, "trait": {},
	"transient": {}, "void": {}, "volatile": {},
}

// Assignment holds the names chosen for one coordinate.
type Assignment struct {
	Identifier string // Constant name, unique over the whole graph
	Holder     string // Nested holder name derived from the group
}

// Assignments maps every coordinate of a graph to its names.
type Assignments map[Coordinate]Assignment

type identifierCandidate struct {
	coord      Coordinate
	base       string   // module name, or fallbackQualifier when it has no words
	qualifiers []string // group segments that may prefix the module name
	depth      int      // number of trailing qualifiers in use
	name       string
}

func (c *identifierCandidate) rename() {
	parts := make([]string, 0, c.depth+1)
	parts = append(parts, c.qualifiers[len(c.qualifiers)-c.depth:]...)
	parts = append(parts, c.base)
	c.name = EscapeIdentifier(CamelCase(parts...))
}

// SynthesizeIdentifiers assigns a unique, readable identifier to every coordinate.
//
// Resolution order:
//  1. the camel-cased module name, or "lib" for a module name without letters or digits;
//  2. a deny-listed or wordless module name is prefixed with its nearest group segment;
//  3. while names clash (with each other or a reserved name), every clashing
//     coordinate takes one more trailing group segment, as long as it has one left;
//  4. names still shared get a numeric suffix in encounter order, the first keeps
//     the bare name.
//
// The result only depends on the coordinates and their order.
func SynthesizeIdentifiers(coords []Coordinate, settings *Settings) Assignments {
	reserved := make(map[string]bool)
	for _, name := range settings.ReservedNames() {
		reserved[name] = true
	}

	candidates := make([]*identifierCandidate, 0, len(coords))
	for _, coord := range coords {
		base := coord.Module
		wordless := foldKey(base) == ""
		if wordless {
			base = fallbackQualifier
		}
		meaningless := wordless || settings.IsMeaningless(base)
		candidate := &identifierCandidate{
			coord:      coord,
			base:       base,
			qualifiers: qualifierSegments(coord.Group, base, meaningless),
		}
		if meaningless {
			candidate.depth = 1
		}
		candidate.rename()
		candidates = append(candidates, candidate)
	}

	for progressed := true; progressed; {
		progressed = qualifyClashes(candidates, reserved)
	}
	suffixClashes(candidates, reserved)

	holders := synthesizeHolders(coords)
	result := make(Assignments, len(candidates))
	for _, candidate := range candidates {
		result[candidate.coord] = Assignment{
			Identifier: candidate.name,
			Holder:     holders[candidate.coord.Group],
		}
	}
	return result
}

// qualifyClashes deepens every clashing candidate by one group segment. It
// returns false once no candidate could be deepened.
func qualifyClashes(candidates []*identifierCandidate, reserved map[string]bool) bool {
	owners := make(map[string]int, len(candidates))
	for _, candidate := range candidates {
		owners[candidate.name]++
	}

	progressed := false
	for _, candidate := range candidates {
		clash := owners[candidate.name] > 1 || reserved[candidate.name]
		if clash && candidate.depth < len(candidate.qualifiers) {
			candidate.depth++
			candidate.rename()
			progressed = true
		}
	}
	return progressed
}

// suffixClashes appends 2, 3, ... to the names still shared after qualification.
func suffixClashes(candidates []*identifierCandidate, reserved map[string]bool) {
	owners := make(map[string]int, len(candidates))
	for _, candidate := range candidates {
		owners[candidate.name]++
	}

	taken := make(map[string]bool, len(candidates)+len(reserved))
	for name := range reserved {
		taken[name] = true
	}
	for _, candidate := range candidates {
		if owners[candidate.name] == 1 && !reserved[candidate.name] {
			taken[candidate.name] = true
		}
	}

	for _, candidate := range candidates {
		if owners[candidate.name] == 1 && !reserved[candidate.name] {
			continue
		}
		if !taken[candidate.name] {
			taken[candidate.name] = true
			continue
		}
		for n := 2; ; n++ {
			next := candidate.name + strconv.Itoa(n)
			if !taken[next] {
				candidate.name = next
				taken[next] = true
				break
			}
		}
	}
}

// qualifierSegments returns the group segments usable as prefixes, dropping
// those that only repeat the module name.
func qualifierSegments(group, base string, meaningless bool) []string {
	var all, useful []string
	module := foldKey(base)
	for _, segment := range strings.Split(group, ".") {
		if foldKey(segment) == "" {
			continue
		}
		all = append(all, segment)
		if foldKey(segment) != module {
			useful = append(useful, segment)
		}
	}

	if meaningless && len(useful) == 0 {
		if len(all) > 0 {
			return all
		}
		return []string{fallbackQualifier}
	}
	return useful
}

// synthesizeHolders names one holder per distinct group, in order of first appearance.
func synthesizeHolders(coords []Coordinate) map[string]string {
	holders := make(map[string]string)
	taken := make(map[string]bool)
	for _, coord := range coords {
		if _, done := holders[coord.Group]; done {
			continue
		}
		base := EscapeIdentifier(PascalCase(coord.Group))
		name := base
		for n := 2; taken[name]; n++ {
			name = base + strconv.Itoa(n)
		}
		taken[name] = true
		holders[coord.Group] = name
	}
	return holders
}

// CamelCase joins the words of all parts, capitalizing every word but the first.
// Any rune other than an ASCII letter or digit separates words.
func CamelCase(parts ...string) string {
	var b strings.Builder
	first := true
	for _, part := range parts {
		for _, word := range splitWords(part) {
			if first {
				b.WriteString(word)
				first = false
				continue
			}
			b.WriteString(capitalize(word))
		}
	}
	return b.String()
}

// PascalCase is CamelCase with the first word capitalized too.
func PascalCase(parts ...string) string {
	return capitalize(CamelCase(parts...))
}

// EscapeIdentifier prefixes an underscore to names that start with a digit or are
// keywords of a target language. Names made only of underscores, the empty name
// included, are reserved in Kotlin and Java and become "_lib".
func EscapeIdentifier(name string) string {
	if strings.Trim(name, "_") == "" {
		return "_" + fallbackQualifier
	}
	if isDigit(name[0]) {
		return "_" + name
	}
	if _, reserved := keywords[name]; reserved {
		return "_" + name
	}
	return name
}

// IsIdentifier reports whether name is a valid constant name in every target language.
func IsIdentifier(name string) bool {
	if strings.Trim(name, "_") == "" || isDigit(name[0]) {
		return false
	}
	if _, reserved := keywords[name]; reserved {
		return false
	}
	for i := range len(name) {
		if !isAlnum(name[i]) && name[i] != '_' {
			return false
		}
	}
	return true
}

func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r > 0x7f || !isAlnum(byte(r))
	})
}

// foldKey lower-cases s and drops separators, for comparisons that ignore both.
func foldKey(s string) string {
	return strings.ToLower(strings.Join(splitWords(s), ""))
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlnum(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
