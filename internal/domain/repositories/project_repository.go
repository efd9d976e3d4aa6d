package repositories

// ProjectRepository locates the project that generated artifacts belong to.
type ProjectRepository interface {
	// Root returns the root directory of the project containing dir.
	Root(dir string) (string, error)
}
