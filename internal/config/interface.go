package config

import "context"

// Loader is the interface for a format-specific task file loader.
type Loader interface {
	// Extensions lists the file extensions (with leading dot) this loader
	// understands, e.g. ".hcl".
	Extensions() []string

	// Load reads the given files and translates them into the
	// format-agnostic model. Files are read in the order given.
	Load(ctx context.Context, files ...string) (*Model, error)
}
