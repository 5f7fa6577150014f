package ports

import "github.com/linfen0/uv-snapshot-cli/internal/types"

type ManifestPort interface {
	LoadBase(path string) (types.Pyproject, error)
	WriteSnapshot(path string, doc types.Pyproject) error
}

type RequirementsPort interface {
	// ReadRequirements parses a line-oriented requirements file and
	// returns normalized package names.
	ReadRequirements(path string) ([]string, error)
}

type IndexTablePort interface {
	// LoadOverrides reads a variant-tag to index-URL override table.
	LoadOverrides(path string) (map[string]string, error)
}
