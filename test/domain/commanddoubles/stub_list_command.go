//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/buildsrcversions/internal/domain/commands"
	"github.com/rios0rios0/buildsrcversions/internal/domain/entities"
)

// StubListCommand is a stub implementation of commands.List.
type StubListCommand struct {
	ExecuteCallCount int
	Entries          []entities.AnnotatedEntry
	ExecuteErr       error
	LastOpts         commands.ListOptions
}

var _ commands.List = (*StubListCommand)(nil)

func (s *StubListCommand) Execute(
	_ context.Context,
	opts commands.ListOptions,
) ([]entities.AnnotatedEntry, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Entries, s.ExecuteErr
}
