package app

import "github.com/linfen0/uv-snapshot-cli/internal/types"

const defaultProjectName = "environment-snapshot"

// defaultBaseTemplate is used when no base manifest is supplied: an
// empty project shell whose dependency list is the bundled default
// (none), so every installed package classifies by origin alone.
func defaultBaseTemplate() types.Pyproject {
	return types.Pyproject{
		Project: types.Project{
			Name:    defaultProjectName,
			Version: "0.1.0",
		},
	}
}
