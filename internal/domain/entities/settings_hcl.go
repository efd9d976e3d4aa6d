package entities

import (
	"errors"
	"fmt"
	"math/big"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	logger "github.com/sirupsen/logrus"
	"github.com/zclconf/go-cty/cty"
)

// decodeHCLSettings reads a flat HCL file where every setting is a top-level attribute:
//
//	report_path       = "${REPORTS_DIR}/report.json"
//	meaningless_names = ["ui", "ktx"]
//
// Template variables resolve to environment variables, like ${VAR} in YAML files.
func decodeHCLSettings(data []byte, filename string) (*fileSettings, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, diags
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}

	evalCtx := environmentContext(attrs)
	var raw fileSettings
	for name, attr := range attrs {
		val, valDiags := attr.Expr.Value(evalCtx)
		if valDiags.HasErrors() {
			return nil, valDiags
		}
		if val.IsNull() {
			continue
		}
		if err := assignHCLAttribute(&raw, name, val); err != nil {
			return nil, fmt.Errorf("%s (line %d): %w", name, attr.Range.Start.Line, err)
		}
	}
	return &raw, nil
}

// environmentContext exposes every variable referenced by the attributes with its
// environment value. Unset variables evaluate to "".
func environmentContext(attrs hcl.Attributes) *hcl.EvalContext {
	variables := make(map[string]cty.Value)
	for _, attr := range attrs {
		for _, traversal := range attr.Expr.Variables() {
			name := traversal.RootName()
			if _, done := variables[name]; done {
				continue
			}
			value, found := os.LookupEnv(name)
			if !found || value == "" {
				logger.Warnf("Environment variable %q is not set", name)
			}
			variables[name] = cty.StringVal(value)
		}
	}
	return &hcl.EvalContext{Variables: variables}
}

func assignHCLAttribute(raw *fileSettings, name string, val cty.Value) error {
	var err error
	switch name {
	case "report_path":
		raw.ReportPath, err = ctyString(val)
	case "report_schema":
		raw.ReportSchema, err = ctyString(val)
	case "output_dir":
		raw.OutputDir, err = ctyString(val)
	case "language":
		raw.Language, err = ctyString(val)
	case "libs_name":
		raw.LibsName, err = ctyString(val)
	case "versions_name":
		raw.VersionsName, err = ctyString(val)
	case "versions_only_mode":
		raw.VersionsOnlyMode, err = ctyString(val)
	case "versions_only_file":
		raw.VersionsOnlyFile, err = ctyString(val)
	case "indent":
		raw.Indent, err = ctyInt(val)
	case "group_by_namespace":
		raw.GroupByNamespace, err = ctyBool(val)
	case "meaningless_names":
		raw.MeaninglessNames, err = ctyStrings(val)
	default:
		err = errors.New("unknown setting")
	}
	return err
}

func ctyString(val cty.Value) (*string, error) {
	if val.Type() != cty.String {
		return nil, fmt.Errorf("expected string, got %s", val.Type().FriendlyName())
	}
	s := val.AsString()
	return &s, nil
}

func ctyBool(val cty.Value) (*bool, error) {
	if val.Type() != cty.Bool {
		return nil, fmt.Errorf("expected bool, got %s", val.Type().FriendlyName())
	}
	b := val.True()
	return &b, nil
}

func ctyInt(val cty.Value) (*int, error) {
	if val.Type() != cty.Number {
		return nil, fmt.Errorf("expected number, got %s", val.Type().FriendlyName())
	}
	n, accuracy := val.AsBigFloat().Int64()
	if accuracy != big.Exact {
		return nil, errors.New("expected a whole number")
	}
	i := int(n)
	return &i, nil
}

func ctyStrings(val cty.Value) ([]string, error) {
	ty := val.Type()
	if !ty.IsListType() && !ty.IsTupleType() && !ty.IsSetType() {
		return nil, fmt.Errorf("expected list of strings, got %s", ty.FriendlyName())
	}
	var result []string
	for it := val.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		s, err := ctyString(elem)
		if err != nil {
			return nil, err
		}
		result = append(result, *s)
	}
	return result, nil
}
