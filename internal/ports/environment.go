package ports

import (
	"context"

	"github.com/linfen0/uv-snapshot-cli/internal/types"
)

type EnvironmentPort interface {
	// ListInstalled enumerates every package visible in the target
	// environment exactly once, names normalized.
	ListInstalled(ctx context.Context) ([]types.InstalledPackage, error)

	// RootPackages returns the normalized names of packages the user
	// installed explicitly, as opposed to transitive dependencies.
	RootPackages(ctx context.Context) (map[string]struct{}, error)
}
