package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/linfen0/uv-snapshot-cli/internal/types"
)

const samplePyproject = `
[project]
name = "demo"
version = "1.2.3"
requires-python = ">=3.10"
dependencies = ["numpy>=1.20", "requests"]

[project.optional-dependencies]
gpu = ["torch==2.1.0+cu121"]

[tool.uv]
index = [{ name = "pytorch-cuda", url = "https://XXX/whl" }]

[tool.uv.sources]
torch = { index = "pytorch-cuda" }
`

func TestLoadBase(t *testing.T) {
	path := writeTempFile(t, "pyproject.toml", samplePyproject)
	doc, err := NewPyprojectFileAdapter().LoadBase(path)
	require.NoError(t, err)

	require.Equal(t, "demo", doc.Project.Name)
	require.Equal(t, "1.2.3", doc.Project.Version)
	require.Equal(t, []string{"numpy>=1.20", "requests"}, doc.Project.Dependencies)
	require.Equal(t, []string{"torch==2.1.0+cu121"}, doc.Project.OptionalDependencies["gpu"])
	require.NotNil(t, doc.Tool)
	require.Equal(t, "pytorch-cuda", doc.Tool.Uv.Sources["torch"].Index)
	require.Equal(t, "https://XXX/whl", doc.Tool.Uv.Index[0].URL)
}

func TestLoadBaseMissingFile(t *testing.T) {
	_, err := NewPyprojectFileAdapter().LoadBase(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

func TestLoadBaseMalformedNamesSource(t *testing.T) {
	path := writeTempFile(t, "pyproject.toml", "[project\nname = broken")
	_, err := NewPyprojectFileAdapter().LoadBase(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "pyproject.toml")
}

func TestWriteSnapshotRoundTrip(t *testing.T) {
	adapter := NewPyprojectFileAdapter()
	doc := types.Pyproject{
		Project: types.Project{
			Name:         "demo",
			Version:      "1.0.0",
			Dependencies: []string{"numpy==1.26.0"},
			OptionalDependencies: map[string][]string{
				"user-downloaded": {"foo-plugin==0.1"},
			},
		},
		Tool: &types.Tool{Uv: &types.UvTool{
			Sources: map[string]types.UvSource{"torch": {Index: "pytorch-cu121"}},
			Index:   []types.UvIndex{{Name: "pytorch-cu121", URL: "https://download.pytorch.org/whl/cu121", Explicit: true}},
		}},
	}

	path := filepath.Join(t.TempDir(), "pyproject.snapshot.toml")
	require.NoError(t, adapter.WriteSnapshot(path, doc))

	loaded, err := adapter.LoadBase(path)
	require.NoError(t, err)
	require.Equal(t, doc.Project.Dependencies, loaded.Project.Dependencies)
	require.Equal(t, doc.Project.OptionalDependencies, loaded.Project.OptionalDependencies)
	require.Equal(t, doc.Tool.Uv.Sources, loaded.Tool.Uv.Sources)
}

func TestWriteSnapshotDeterministicBytes(t *testing.T) {
	adapter := NewPyprojectFileAdapter()
	doc := types.Pyproject{
		Project: types.Project{
			Name:         "demo",
			Dependencies: []string{"numpy==1.26.0"},
			OptionalDependencies: map[string][]string{
				"user-downloaded": {"b==1", "a==1"},
				"user-compiled":   {"c==1"},
				"gpu":             {"torch==2.1.0+cu121"},
			},
		},
	}

	dir := t.TempDir()
	first := filepath.Join(dir, "first.toml")
	second := filepath.Join(dir, "second.toml")
	require.NoError(t, adapter.WriteSnapshot(first, doc))
	require.NoError(t, adapter.WriteSnapshot(second, doc))

	firstData, err := os.ReadFile(first)
	require.NoError(t, err)
	secondData, err := os.ReadFile(second)
	require.NoError(t, err)
	require.Equal(t, firstData, secondData)
}
