package adapters

import (
	"context"
	"encoding/json"
	"os/exec"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/linfen0/uv-snapshot-cli/internal/ports"
	"github.com/linfen0/uv-snapshot-cli/internal/shared"
	"github.com/linfen0/uv-snapshot-cli/internal/types"
)

// UvEnvAdapter queries the active environment through the uv binary.
// uv resolves the target environment itself (an activated .venv or the
// project environment), so the adapter only reads its output.
type UvEnvAdapter struct {
	Binary string
}

func NewUvEnvAdapter(binary string) UvEnvAdapter {
	if strings.TrimSpace(binary) == "" {
		binary = "uv"
	}
	return UvEnvAdapter{Binary: binary}
}

type pipListEntry struct {
	Name                    string `json:"name"`
	Version                 string `json:"version"`
	URL                     string `json:"url"`
	Editable                bool   `json:"editable"`
	EditableProjectLocation string `json:"editable_project_location"`
}

func (a UvEnvAdapter) ListInstalled(ctx context.Context) ([]types.InstalledPackage, error) {
	cmd := exec.CommandContext(ctx, a.Binary, "pip", "list", "--format", "json")
	var stderr strings.Builder
	cmd.Stderr = &stderr
	output, err := cmd.Output()
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("uv pip list failed").
			WithCause(shared.CommandError([]byte(stderr.String()), err))
	}
	return parsePipList(output)
}

func parsePipList(output []byte) ([]types.InstalledPackage, error) {
	var entries []pipListEntry
	if err := json.Unmarshal(output, &entries); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("uv pip list output is invalid").
			WithCause(err)
	}
	var packages []types.InstalledPackage
	for _, entry := range entries {
		name := shared.NormalizePipName(entry.Name)
		if name == "" {
			continue
		}
		packages = append(packages, types.InstalledPackage{
			Name:     name,
			Version:  strings.TrimSpace(entry.Version),
			Origin:   inferOrigin(entry),
			URL:      entry.URL,
			Editable: entry.Editable || entry.EditableProjectLocation != "",
		})
	}
	return packages, nil
}

// vcsPrefixes are the direct-URL schemes pip uses for version-control
// installs, which are built from source on the machine.
var vcsPrefixes = []string{"git+", "hg+", "svn+", "bzr+"}

// inferOrigin decides whether a package was built locally or fetched
// from a remote index. Editable installs, file:// URLs, and VCS
// checkouts all point at a locally built source tree; everything else
// came from an index.
func inferOrigin(entry pipListEntry) types.Origin {
	if entry.Editable || entry.EditableProjectLocation != "" {
		return types.OriginLocalBuild
	}
	if strings.HasPrefix(entry.URL, "file://") {
		return types.OriginLocalBuild
	}
	for _, prefix := range vcsPrefixes {
		if strings.HasPrefix(entry.URL, prefix) {
			return types.OriginLocalBuild
		}
	}
	return types.OriginRemoteIndex
}

func (a UvEnvAdapter) RootPackages(ctx context.Context) (map[string]struct{}, error) {
	cmd := exec.CommandContext(ctx, a.Binary, "pip", "tree", "--depth", "0")
	var stderr strings.Builder
	cmd.Stderr = &stderr
	output, err := cmd.Output()
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("uv pip tree failed").
			WithCause(shared.CommandError([]byte(stderr.String()), err))
	}
	return parseRootTree(string(output)), nil
}

// parseRootTree extracts root package names from "uv pip tree --depth 0"
// output, one "name vX.Y.Z" per line with optional tree glyphs.
func parseRootTree(output string) map[string]struct{} {
	roots := map[string]struct{}{}
	for _, line := range strings.Split(output, "\n") {
		clean := strings.NewReplacer("├── ", "", "└── ", "").Replace(line)
		clean = strings.TrimSpace(clean)
		if clean == "" {
			continue
		}
		name, _, found := strings.Cut(clean, " v")
		if !found {
			continue
		}
		name = shared.NormalizePipName(name)
		if name == "" {
			continue
		}
		roots[name] = struct{}{}
	}
	return roots
}

var _ ports.EnvironmentPort = UvEnvAdapter{}
