package entities

import (
	"regexp"
	"strings"
)

var (
	stableKeywords = []string{"RELEASE", "FINAL", "GA"}
	numericVersion = regexp.MustCompile(`^[0-9,.v-]+$`)
)

// IsNonStable reports whether a version looks like a pre-release build.
// A version is stable when it mentions RELEASE, FINAL or GA in any case, or when it
// only contains digits, commas, dots, hyphens and the letter v.
func IsNonStable(version string) bool {
	upper := strings.ToUpper(version)
	for _, keyword := range stableKeywords {
		if strings.Contains(upper, keyword) {
			return false
		}
	}
	return !numericVersion.MatchString(version)
}
