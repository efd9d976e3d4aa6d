package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	// SchemaBenmanes is the report written by the gradle-versions-plugin.
	SchemaBenmanes = "benmanes"
	// SchemaFlat is the minimal report with one object per dependency.
	SchemaFlat = "flat"

	LanguageKotlin     = "kotlin"
	LanguageGroovy     = "groovy"
	LanguageProperties = "properties" // versions-only mode only

	// GradleCurrentVersionName and GradleLatestVersionName are the fixed constant
	// names carrying the build tool's own versions.
	GradleCurrentVersionName = "gradleCurrentVersion"
	GradleLatestVersionName  = "gradleLatestVersion"

	IssueUpdateGradle  = 19
	IssueUpdatePlugin  = 47
	IssueConfiguration = 53
	IssueVersionsOnly  = 54

	defaultReportPath   = "build/dependencyUpdates/report.json"
	defaultLibsName     = "Libs"
	defaultVersionsName = "Versions"
	defaultIndentWidth  = 2
	maxIndentWidth      = 8
)

// DefaultMeaninglessNames are module names too generic to become a bare identifier.
// Many come from https://developer.android.com/jetpack/androidx/migrate
//
//nolint:gochecknoglobals // read-only default list
var DefaultMeaninglessNames = []string{
	"common", "core", "core-testing", "testing", "runtime", "extensions",
	"compiler", "migration", "db", "rules", "runner", "monitor", "loader",
	"media", "print", "io", "collection", "gradle", "android",
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Documentation holds the literal link and command templates used in generated comments.
type Documentation struct {
	BaseURL        string
	RefreshCommand string
}

// Issue returns the URL of a numbered issue of the project.
func (d Documentation) Issue(number int) string {
	return fmt.Sprintf("%s/issues/%d", d.BaseURL, number)
}

// Markers delimit the region rewritten by versions-only mode.
type Markers struct {
	Start string
	End   string
}

// Settings is the configuration of one generation run. It is built once and
// never mutated afterwards.
type Settings struct {
	ReportPath       string
	ReportSchema     string
	OutputDir        string
	Language         string
	LibsName         string
	VersionsName     string
	IndentWidth      int
	VersionsOnlyMode string
	VersionsOnlyFile string
	MeaninglessNames []string
	GroupByNamespace bool
	Docs             Documentation
	Markers          Markers
}

// fileSettings mirrors the keys accepted in a configuration file. Pointers tell
// "absent" apart from zero values.
type fileSettings struct {
	ReportPath       *string  `yaml:"report_path"`
	ReportSchema     *string  `yaml:"report_schema"`
	OutputDir        *string  `yaml:"output_dir"`
	Language         *string  `yaml:"language"`
	LibsName         *string  `yaml:"libs_name"`
	VersionsName     *string  `yaml:"versions_name"`
	Indent           *int     `yaml:"indent"`
	VersionsOnlyMode *string  `yaml:"versions_only_mode"`
	VersionsOnlyFile *string  `yaml:"versions_only_file"`
	MeaninglessNames []string `yaml:"meaningless_names"`
	GroupByNamespace *bool    `yaml:"group_by_namespace"`
}

// DefaultSettings returns the settings used when no configuration file exists.
func DefaultSettings() *Settings {
	settings := &Settings{
		ReportPath:       defaultReportPath,
		ReportSchema:     SchemaBenmanes,
		Language:         LanguageKotlin,
		LibsName:         defaultLibsName,
		VersionsName:     defaultVersionsName,
		IndentWidth:      defaultIndentWidth,
		MeaninglessNames: slices.Clone(DefaultMeaninglessNames),
		Docs: Documentation{
			BaseURL:        "https://github.com/jmfayard/buildSrcVersions",
			RefreshCommand: "$ ./gradlew buildSrcVersions",
		},
		Markers: Markers{
			Start: "<buildSrcVersions>",
			End:   "</buildSrcVersions>",
		},
	}
	settings.applyDerivedDefaults()
	return settings
}

// NewSettings reads a YAML (.yaml, .yml) or HCL (.hcl) configuration file and
// merges it over the defaults.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var raw *fileSettings
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		raw, err = decodeHCLSettings(data, path)
	default:
		raw, err = decodeYAMLSettings(data)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	settings := mergeSettings(DefaultSettings(), raw)
	if validateErr := validateSettings(settings); validateErr != nil {
		return nil, validateErr
	}
	return settings, nil
}

func decodeYAMLSettings(data []byte) (*fileSettings, error) {
	var raw fileSettings
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return &raw, nil
}

// mergeSettings overlays the keys present in the file on top of base.
func mergeSettings(base *Settings, raw *fileSettings) *Settings {
	merged := *base
	merged.MeaninglessNames = slices.Clone(base.MeaninglessNames)

	// derived defaults are recomputed once the file keys are known
	merged.OutputDir = ""
	merged.VersionsOnlyFile = ""

	setString(&merged.ReportPath, raw.ReportPath)
	setString(&merged.ReportSchema, raw.ReportSchema)
	setString(&merged.OutputDir, raw.OutputDir)
	setString(&merged.Language, raw.Language)
	setString(&merged.LibsName, raw.LibsName)
	setString(&merged.VersionsName, raw.VersionsName)
	setString(&merged.VersionsOnlyMode, raw.VersionsOnlyMode)
	setString(&merged.VersionsOnlyFile, raw.VersionsOnlyFile)
	if raw.Indent != nil {
		merged.IndentWidth = *raw.Indent
	}
	if raw.GroupByNamespace != nil {
		merged.GroupByNamespace = *raw.GroupByNamespace
	}
	for _, name := range raw.MeaninglessNames {
		name = strings.ToLower(strings.TrimSpace(name))
		if name != "" && !slices.Contains(merged.MeaninglessNames, name) {
			merged.MeaninglessNames = append(merged.MeaninglessNames, name)
		}
	}

	merged.ReportPath = expandEnv(merged.ReportPath)
	merged.OutputDir = expandEnv(merged.OutputDir)
	merged.VersionsOnlyFile = expandEnv(merged.VersionsOnlyFile)
	merged.applyDerivedDefaults()
	return &merged
}

func setString(target *string, value *string) {
	if value != nil {
		*target = strings.TrimSpace(*value)
	}
}

// applyDerivedDefaults fills the paths that depend on the chosen language or mode.
func (s *Settings) applyDerivedDefaults() {
	if s.OutputDir == "" {
		s.OutputDir = filepath.Join("buildSrc", "src", "main", s.Language)
	}
	if s.VersionsOnlyFile == "" {
		switch s.VersionsOnlyMode {
		case LanguageKotlin:
			s.VersionsOnlyFile = "build.gradle.kts"
		case LanguageGroovy:
			s.VersionsOnlyFile = "build.gradle"
		case LanguageProperties:
			s.VersionsOnlyFile = "gradle.properties"
		}
	}
}

// expandEnv replaces ${VAR} references with the environment value.
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

// Indent returns the indentation unit used in generated files.
func (s *Settings) Indent() string {
	return strings.Repeat(" ", s.IndentWidth)
}

// VersionsOnly reports whether versions-only mode is enabled.
func (s *Settings) VersionsOnly() bool {
	return s.VersionsOnlyMode != ""
}

// IsMeaningless reports whether a module name is on the deny-list. The check
// ignores case and separators, so "core-testing" also matches "coreTesting".
func (s *Settings) IsMeaningless(module string) bool {
	folded := foldKey(module)
	for _, name := range s.MeaninglessNames {
		if foldKey(name) == folded {
			return true
		}
	}
	return false
}

// ReservedNames returns the constant names that synthesized identifiers must avoid.
func (s *Settings) ReservedNames() []string {
	return []string{GradleCurrentVersionName, GradleLatestVersionName, s.LibsName, s.VersionsName}
}

func validateSettings(s *Settings) error {
	if s.ReportPath == "" {
		return errors.New("report_path is required")
	}
	if s.ReportSchema != SchemaBenmanes && s.ReportSchema != SchemaFlat {
		return fmt.Errorf("report_schema must be %q or %q, got %q", SchemaBenmanes, SchemaFlat, s.ReportSchema)
	}
	if s.Language != LanguageKotlin && s.Language != LanguageGroovy {
		return fmt.Errorf("language must be %q or %q, got %q", LanguageKotlin, LanguageGroovy, s.Language)
	}
	switch s.VersionsOnlyMode {
	case "", LanguageKotlin, LanguageGroovy, LanguageProperties:
	default:
		return fmt.Errorf(
			"versions_only_mode must be empty, %q, %q or %q, got %q",
			LanguageKotlin, LanguageGroovy, LanguageProperties, s.VersionsOnlyMode,
		)
	}
	if s.IndentWidth < 0 || s.IndentWidth > maxIndentWidth {
		return fmt.Errorf("indent must be between 0 and %d, got %d", maxIndentWidth, s.IndentWidth)
	}
	for key, name := range map[string]string{"libs_name": s.LibsName, "versions_name": s.VersionsName} {
		if !IsIdentifier(name) {
			return fmt.Errorf("%s must be a valid identifier, got %q", key, name)
		}
	}
	if s.LibsName == s.VersionsName {
		return fmt.Errorf("libs_name and versions_name must differ, both are %q", s.LibsName)
	}
	return nil
}

// FindConfigFile searches for a configuration file in the project directory and
// the standard locations. Returns the first file found or an error if none is found.
func FindConfigFile(projectDir string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		projectDir,
		filepath.Join(projectDir, ".config"),
		filepath.Join(projectDir, "configs"),
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".buildsrcversions.yaml",
		".buildsrcversions.yml",
		".buildsrcversions.hcl",
		"buildsrcversions.yaml",
		"buildsrcversions.yml",
		"buildsrcversions.hcl",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}
