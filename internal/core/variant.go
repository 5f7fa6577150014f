package core

import (
	"fmt"
	"strings"

	pep440 "github.com/aquasecurity/go-pep440-version"

	"github.com/linfen0/uv-snapshot-cli/internal/shared"
	"github.com/linfen0/uv-snapshot-cli/internal/types"
)

// NumericLibrary is the canonical name of the numeric-computing library
// whose hardware-variant builds require a dedicated package index.
const NumericLibrary = "torch"

// variantIndexes maps a known build-variant tag (the local version
// segment after "+") to the package index serving wheels for that
// hardware backend. New accelerator toolkit versions are added here or
// supplied at runtime via an override table.
var variantIndexes = map[string]string{
	"cpu":     "https://download.pytorch.org/whl/cpu",
	"cu118":   "https://download.pytorch.org/whl/cu118",
	"cu121":   "https://download.pytorch.org/whl/cu121",
	"cu124":   "https://download.pytorch.org/whl/cu124",
	"cu126":   "https://download.pytorch.org/whl/cu126",
	"cu128":   "https://download.pytorch.org/whl/cu128",
	"rocm6.2": "https://download.pytorch.org/whl/rocm6.2",
	"rocm6.3": "https://download.pytorch.org/whl/rocm6.3",
}

// VariantResolver maps hardware build tags to index URLs.
type VariantResolver struct {
	indexes map[string]string
}

// NewVariantResolver builds a resolver from the built-in tag table
// merged with the given overrides. Override entries win on tag clashes.
func NewVariantResolver(overrides map[string]string) VariantResolver {
	indexes := make(map[string]string, len(variantIndexes)+len(overrides))
	for tag, url := range variantIndexes {
		indexes[tag] = url
	}
	for tag, url := range overrides {
		tag = strings.TrimSpace(tag)
		url = strings.TrimSpace(url)
		if tag == "" || url == "" {
			continue
		}
		indexes[tag] = url
	}
	return VariantResolver{indexes: indexes}
}

// Resolve searches the installed set for the numeric-computing library
// and derives its index URL from the version's local segment. Missing
// library or missing tag yield an empty resolution; an unrecognized tag
// yields a detected resolution with no URL plus a non-fatal warning, so
// emission proceeds without an index override.
func (r VariantResolver) Resolve(installed []types.InstalledPackage) (types.VariantResolution, []types.Warning) {
	var library *types.InstalledPackage
	for i := range installed {
		if shared.NormalizePipName(installed[i].Name) == NumericLibrary {
			library = &installed[i]
			break
		}
	}
	if library == nil {
		return types.VariantResolution{}, nil
	}

	resolution := types.VariantResolution{
		Detected: true,
		Library:  NumericLibrary,
		Version:  library.Version,
	}
	tag := localSegment(library.Version)
	if tag == "" {
		return resolution, nil
	}
	resolution.Tag = tag
	url, ok := r.indexes[tag]
	if !ok {
		warning := types.Warning{
			Kind:    types.WarningUnknownVariant,
			Package: NumericLibrary,
			Detail:  fmt.Sprintf("unrecognized build variant %q in %s==%s, no index override emitted", tag, NumericLibrary, library.Version),
		}
		return resolution, []types.Warning{warning}
	}
	resolution.IndexURL = url
	return resolution, nil
}

// localSegment extracts the PEP 440 local version segment ("+cu121")
// from a version string. Returns "" when the version has no local
// segment or does not parse as PEP 440 at all.
func localSegment(version string) string {
	if _, err := pep440.Parse(version); err != nil {
		return ""
	}
	idx := strings.Index(version, "+")
	if idx < 0 || idx == len(version)-1 {
		return ""
	}
	return strings.ToLower(version[idx+1:])
}
