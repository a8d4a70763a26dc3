package driving

import "context"

// JobTextLoader reads job description text from a file on disk.
type JobTextLoader interface {
	// Load returns the plain text of the file at path.
	Load(ctx context.Context, path string) (string, error)

	// SupportedExtensions lists the file extensions that can be loaded.
	SupportedExtensions() []string
}
