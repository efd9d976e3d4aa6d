package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedReport matches every MalformedReportError.
	ErrMalformedReport = errors.New("malformed dependency report")

	// ErrSchema matches every SchemaError.
	ErrSchema = errors.New("dependency report schema violation")

	// ErrDuplicateCoordinate matches every DuplicateCoordinateError.
	ErrDuplicateCoordinate = errors.New("duplicate dependency coordinate")

	// ErrMissingMarker matches every MissingMarkerError.
	ErrMissingMarker = errors.New("versions-only markers not found")

	// ErrUnsupportedSchema is returned when a report codec is requested for an unknown schema.
	ErrUnsupportedSchema = errors.New("unsupported report schema")

	// ErrUnsupportedLanguage is returned when no syntax is registered for a target language.
	ErrUnsupportedLanguage = errors.New("unsupported target language")
)

// MalformedReportError is returned when the report bytes are not a well-formed
// document of the expected shape.
type MalformedReportError struct {
	Schema string
	Err    error
}

func (e *MalformedReportError) Error() string {
	return fmt.Sprintf("malformed %s report: %v", e.Schema, e.Err)
}

func (e *MalformedReportError) Unwrap() error { return e.Err }

func (e *MalformedReportError) Is(target error) bool { return target == ErrMalformedReport }

// SchemaError is returned when a required field is absent on a report entry.
type SchemaError struct {
	Section string // Report section, empty for flat reports
	Index   int    // Position of the entry inside its section
	Field   string
}

func (e *SchemaError) Error() string {
	if e.Section != "" {
		return fmt.Sprintf("%s.dependencies[%d]: missing required field %q", e.Section, e.Index, e.Field)
	}
	return fmt.Sprintf("dependencies[%d]: missing required field %q", e.Index, e.Field)
}

func (e *SchemaError) Is(target error) bool { return target == ErrSchema }

// DuplicateCoordinateError is returned when the same group and module appear twice.
type DuplicateCoordinateError struct {
	Coordinate Coordinate
	FirstIndex int
	Index      int
}

func (e *DuplicateCoordinateError) Error() string {
	return fmt.Sprintf(
		"dependency %q appears twice (entries %d and %d)",
		e.Coordinate.String(), e.FirstIndex, e.Index,
	)
}

func (e *DuplicateCoordinateError) Is(target error) bool { return target == ErrDuplicateCoordinate }

// MissingMarkerError is returned by versions-only rendering when the previous
// artifact does not hold a start marker followed by an end marker.
type MissingMarkerError struct {
	Start      string
	End        string
	FoundStart bool
	FoundEnd   bool
}

func (e *MissingMarkerError) Error() string {
	switch {
	case e.FoundStart && e.FoundEnd:
		return fmt.Sprintf("marker %q must come after %q", e.End, e.Start)
	case e.FoundStart:
		return fmt.Sprintf("end marker %q not found", e.End)
	case e.FoundEnd:
		return fmt.Sprintf("start marker %q not found", e.Start)
	default:
		return fmt.Sprintf("markers %q and %q not found", e.Start, e.End)
	}
}

func (e *MissingMarkerError) Is(target error) bool { return target == ErrMissingMarker }
