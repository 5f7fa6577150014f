package core

import (
	"fmt"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/linfen0/uv-snapshot-cli/internal/shared"
	"github.com/linfen0/uv-snapshot-cli/internal/types"
)

// Classify assigns every installed package to exactly one dependency
// group. Precedence per package, first match wins:
//
//  1. name in the base core set        -> project-dependencies
//  2. origin is a local build          -> user-compiled
//  3. name in a base optional group    -> that group
//  4. otherwise                        -> user-downloaded
//
// Core membership is checked before origin, so a core dependency the
// user happens to have compiled locally still counts as core. The
// function is pure: it never mutates its inputs and equal inputs yield
// identically ordered output.
func Classify(installed []types.InstalledPackage, base types.BaseDependencySet) types.Partition {
	groups := map[types.GroupName][]types.InstalledPackage{}
	for _, pkg := range installed {
		group := classifyOne(pkg, base)
		groups[group] = append(groups[group], pkg)
	}
	for name := range groups {
		members := groups[name]
		sort.Slice(members, func(i, j int) bool {
			return shared.NormalizePipName(members[i].Name) < shared.NormalizePipName(members[j].Name)
		})
		groups[name] = members
	}
	return types.Partition{Groups: groups}
}

func classifyOne(pkg types.InstalledPackage, base types.BaseDependencySet) types.GroupName {
	key := shared.NormalizePipName(pkg.Name)
	if _, ok := base.Core[key]; ok {
		return types.GroupProjectDependencies
	}
	if pkg.Origin == types.OriginLocalBuild {
		return types.GroupUserCompiled
	}
	if group, ok := base.OptionalGroups[key]; ok {
		return group
	}
	return types.GroupUserDownloaded
}

// ValidatePartition verifies that a partition is total and disjoint over
// the installed set it was built from. A violation indicates the
// precedence chain is incomplete and is reported as an internal error.
func ValidatePartition(partition types.Partition, installed []types.InstalledPackage) error {
	seen := map[string]types.GroupName{}
	total := 0
	for group, members := range partition.Groups {
		for _, pkg := range members {
			key := shared.NormalizePipName(pkg.Name)
			if prior, ok := seen[key]; ok {
				return errbuilder.New().
					WithCode(errbuilder.CodeInternal).
					WithMsg(fmt.Sprintf("package %s classified in both %s and %s", key, prior, group))
			}
			seen[key] = group
			total++
		}
	}
	if total != len(installed) {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("partition covers %d of %d installed packages", total, len(installed)))
	}
	for _, pkg := range installed {
		if _, ok := seen[shared.NormalizePipName(pkg.Name)]; !ok {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(fmt.Sprintf("package %s missing from partition", pkg.Name))
		}
	}
	return nil
}

// ReproducibilityWarnings reports core dependencies that are pinned to a
// local build. Classification keeps them core; the warning makes the
// non-portable pin visible to the caller.
func ReproducibilityWarnings(installed []types.InstalledPackage, base types.BaseDependencySet) []types.Warning {
	var warnings []types.Warning
	for _, pkg := range installed {
		key := shared.NormalizePipName(pkg.Name)
		if _, ok := base.Core[key]; !ok {
			continue
		}
		if pkg.Origin != types.OriginLocalBuild {
			continue
		}
		warnings = append(warnings, types.Warning{
			Kind:    types.WarningLocalCoreBuild,
			Package: key,
			Detail:  fmt.Sprintf("core dependency %s==%s is a local build and may not be portable", key, pkg.Version),
		})
	}
	sort.Slice(warnings, func(i, j int) bool { return warnings[i].Package < warnings[j].Package })
	return warnings
}

// MissingPackageWarnings reports base dependencies that are absent from
// the installed set. The snapshot still pins whatever is installed; the
// warning flags that the environment has drifted from its declared base.
func MissingPackageWarnings(installed []types.InstalledPackage, base types.BaseDependencySet) []types.Warning {
	present := map[string]struct{}{}
	for _, pkg := range installed {
		present[shared.NormalizePipName(pkg.Name)] = struct{}{}
	}
	var warnings []types.Warning
	for name := range base.Core {
		if _, ok := present[name]; ok {
			continue
		}
		warnings = append(warnings, types.Warning{
			Kind:    types.WarningMissingPackage,
			Package: name,
			Detail:  fmt.Sprintf("base dependency %s is not installed in the environment", name),
		})
	}
	sort.Slice(warnings, func(i, j int) bool { return warnings[i].Package < warnings[j].Package })
	return warnings
}
