package schema

import "context"

// Loader is the interface for a format-specific source of command schemas.
// The HCL manifest loader is the only concrete implementation in-tree, but
// the app wiring depends on this interface only.
type Loader interface {
	// Load reads command declarations from the given paths and returns
	// them keyed by command name.
	Load(ctx context.Context, paths ...string) (map[string]*Command, error)
}
