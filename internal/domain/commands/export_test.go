package commands

// AppendBlock exports appendBlock for testing.
var AppendBlock = appendBlock //nolint:gochecknoglobals // test export
