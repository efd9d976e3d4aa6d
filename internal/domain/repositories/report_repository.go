package repositories

import "github.com/rios0rios0/buildsrcversions/internal/domain/entities"

// ReportRepository decodes the dependency report of one schema into a graph.
// It works on bytes already read; it never touches the filesystem or the network.
type ReportRepository interface {
	// Schema returns the schema identifier (e.g. "benmanes", "flat").
	Schema() string

	// Parse validates the report and builds the graph. It fails with
	// *entities.MalformedReportError, *entities.SchemaError or
	// *entities.DuplicateCoordinateError.
	Parse(data []byte) (*entities.DependencyGraph, error)
}
