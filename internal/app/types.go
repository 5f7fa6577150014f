package app

import (
	"time"

	"github.com/linfen0/uv-snapshot-cli/internal/types"
)

type SnapshotRequest struct {
	BasePath         string
	RequirementsPath string
	OutputPath       string
	IndexTablePath   string
	Prune            bool
}

type SnapshotResult struct {
	OutputPath string
	CreatedAt  time.Time
	Report     types.SnapshotReport
}

type InspectRequest struct {
	Path string
}

type InspectGroupSummary struct {
	Name     string
	Count    int
	Packages []string
}

type InspectResult struct {
	ProjectName string
	Core        []string
	Groups      []InspectGroupSummary
	Sources     map[string]string
	Indexes     []types.UvIndex
}

type ValidateRequest struct {
	BasePath string
}

type ValidateResult struct {
	ProjectName     string
	DependencyCount int
}
