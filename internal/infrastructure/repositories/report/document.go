package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"gopkg.in/yaml.v3"
)

// document is a report decoded far enough to know its root shape.
// JSON is decoded with encoding/json, every other input with yaml.v3.
type document struct {
	isArray bool
	raw     []byte
	node    *yaml.Node
}

func parseDocument(data []byte) (*document, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New("empty document")
	}

	switch trimmed[0] {
	case '{':
		return &document{raw: trimmed}, nil
	case '[':
		return &document{raw: trimmed, isArray: true}, nil
	}

	var root yaml.Node
	if err := yaml.Unmarshal(trimmed, &root); err != nil {
		return nil, err
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, errors.New("empty document")
	}
	node := root.Content[0]
	switch node.Kind {
	case yaml.MappingNode:
		return &document{node: node}, nil
	case yaml.SequenceNode:
		return &document{node: node, isArray: true}, nil
	default:
		return nil, errors.New("root must be an object or an array")
	}
}

func (d *document) decode(target any) error {
	if d.node != nil {
		return d.node.Decode(target)
	}
	decoder := json.NewDecoder(bytes.NewReader(d.raw))
	if err := decoder.Decode(target); err != nil {
		return err
	}
	if decoder.More() {
		return errors.New("unexpected data after the JSON document")
	}
	return nil
}

// required returns the trimmed value of a mandatory field, and false when it
// is absent or blank.
func required(value *string) (string, bool) {
	if value == nil {
		return "", false
	}
	trimmed := strings.TrimSpace(*value)
	return trimmed, trimmed != ""
}

// optional returns the trimmed value of a field, or "" when absent.
func optional(value *string) string {
	v, _ := required(value)
	return v
}

// firstOf returns the first present value.
func firstOf(values ...*string) string {
	for _, value := range values {
		if v, ok := required(value); ok {
			return v
		}
	}
	return ""
}
