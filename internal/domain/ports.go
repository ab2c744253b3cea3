package domain

import "context"

// InterfaceExtractor produces the WIT interface text of a compiled
// component. Implementations wrap an external tool honoring the
// "component wit <path>" contract; the location of that tool is
// configuration, not a hardcoded binary name.
type InterfaceExtractor interface {
	Extract(ctx context.Context, componentPath string) (string, error)
}

// ComponentInspector checks whether a wasm artifact on disk is well-formed.
type ComponentInspector interface {
	Inspect(ctx context.Context, path string) (*ArtifactInfo, error)
}

// ConfigLoader loads the tool configuration for a directory.
type ConfigLoader interface {
	Load(dir string) (Config, error)
}

// GitInfo provides repository metadata for report stamping.
type GitInfo interface {
	IsGitRepo(path string) bool
	CommitHash(path string) (string, error)
}
