package entities

// FoldKey exports foldKey for testing.
var FoldKey = foldKey //nolint:gochecknoglobals // test export
