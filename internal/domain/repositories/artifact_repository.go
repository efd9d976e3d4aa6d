package repositories

// ArtifactRepository reads and writes generated artifacts.
type ArtifactRepository interface {
	// Read returns the content of the artifact and whether it exists.
	Read(path string) (string, bool, error)

	// Write stores the content, creating parent directories. It returns false
	// without touching the file when the stored content is already identical.
	Write(path, content string) (bool, error)
}
