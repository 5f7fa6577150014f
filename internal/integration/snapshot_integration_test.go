package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/linfen0/uv-snapshot-cli/internal/adapters"
	"github.com/linfen0/uv-snapshot-cli/internal/app"
	"github.com/linfen0/uv-snapshot-cli/internal/types"
)

type staticEnv struct {
	installed []types.InstalledPackage
	roots     map[string]struct{}
}

func (s staticEnv) ListInstalled(_ context.Context) ([]types.InstalledPackage, error) {
	return s.installed, nil
}

func (s staticEnv) RootPackages(_ context.Context) (map[string]struct{}, error) {
	return s.roots, nil
}

// TestSnapshotIntegration drives the full pipeline through the real
// file adapters: base manifest and requirements on disk in, snapshot
// TOML out, with only the environment port faked.
func TestSnapshotIntegration(t *testing.T) {
	dir := t.TempDir()
	basePath := filepath.Join(dir, "pyproject.toml")
	requirementsPath := filepath.Join(dir, "requirements.txt")
	indexTablePath := filepath.Join(dir, "indexes.yaml")
	outputPath := filepath.Join(dir, "pyproject.snapshot.toml")

	writeFile(t, basePath, `[project]
name = "demo"
version = "0.1.0"
dependencies = ["numpy>=1.20"]

[project.optional-dependencies]
dev = ["black"]
`)
	writeFile(t, requirementsPath, "requests>=2.0\n# comment\n\n")
	writeFile(t, indexTablePath, "indexes:\n  cu999: https://example.invalid/whl/cu999\n")

	env := staticEnv{installed: []types.InstalledPackage{
		{Name: "numpy", Version: "1.26.0", Origin: types.OriginRemoteIndex},
		{Name: "requests", Version: "2.31.0", Origin: types.OriginRemoteIndex},
		{Name: "black", Version: "24.4.2", Origin: types.OriginRemoteIndex},
		{Name: "torch", Version: "2.3.0+cu999", Origin: types.OriginRemoteIndex},
		{Name: "mylib", Version: "1.0", Origin: types.OriginLocalBuild},
	}}

	service := app.Service{
		Env:          env,
		Manifest:     adapters.NewPyprojectFileAdapter(),
		Requirements: adapters.NewRequirementsFileAdapter(),
		IndexTable:   adapters.NewIndexTableAdapter(),
		Clock:        time.Now,
	}

	result, err := service.Snapshot(t.Context(), app.SnapshotRequest{
		BasePath:         basePath,
		RequirementsPath: requirementsPath,
		IndexTablePath:   indexTablePath,
		OutputPath:       outputPath,
	})
	require.NoError(t, err)
	require.Equal(t, outputPath, result.OutputPath)
	require.Equal(t, "https://example.invalid/whl/cu999", result.Report.Variant.IndexURL)

	doc, err := adapters.NewPyprojectFileAdapter().LoadBase(outputPath)
	require.NoError(t, err)
	require.Equal(t, "demo", doc.Project.Name)
	require.Equal(t, []string{"numpy==1.26.0", "requests==2.31.0"}, doc.Project.Dependencies)
	require.Equal(t, []string{"black==24.4.2"}, doc.Project.OptionalDependencies["dev"])
	require.Equal(t, []string{"mylib==1.0"}, doc.Project.OptionalDependencies["user-compiled"])
	require.Equal(t, []string{"torch==2.3.0+cu999"}, doc.Project.OptionalDependencies["user-downloaded"])

	require.NotNil(t, doc.Tool)
	require.NotNil(t, doc.Tool.Uv)
	require.Equal(t, "pytorch-cu999", doc.Tool.Uv.Sources["torch"].Index)

	inspect, err := service.Inspect(app.InspectRequest{Path: outputPath})
	require.NoError(t, err)
	require.Equal(t, "demo", inspect.ProjectName)

	_, err = service.Validate(t.Context(), app.ValidateRequest{BasePath: outputPath})
	require.NoError(t, err)
}

// TestSnapshotIntegrationPrune verifies that pruning drops transitively
// installed user downloads while keeping explicit roots and pinned
// sources, round-tripped through the real adapters.
func TestSnapshotIntegrationPrune(t *testing.T) {
	dir := t.TempDir()
	outputPath := filepath.Join(dir, "pyproject.snapshot.toml")

	env := staticEnv{
		installed: []types.InstalledPackage{
			{Name: "foo-plugin", Version: "0.1", Origin: types.OriginRemoteIndex},
			{Name: "certifi", Version: "2024.2.2", Origin: types.OriginRemoteIndex},
		},
		roots: map[string]struct{}{"foo-plugin": {}},
	}

	service := app.Service{
		Env:          env,
		Manifest:     adapters.NewPyprojectFileAdapter(),
		Requirements: adapters.NewRequirementsFileAdapter(),
		IndexTable:   adapters.NewIndexTableAdapter(),
		Clock:        time.Now,
	}

	_, err := service.Snapshot(t.Context(), app.SnapshotRequest{
		OutputPath: outputPath,
		Prune:      true,
	})
	require.NoError(t, err)

	doc, err := adapters.NewPyprojectFileAdapter().LoadBase(outputPath)
	require.NoError(t, err)
	require.Equal(t, []string{"foo-plugin==0.1"}, doc.Project.OptionalDependencies["user-downloaded"])
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
