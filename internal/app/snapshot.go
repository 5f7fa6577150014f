package app

import (
	"context"
	"fmt"
	"sort"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"github.com/linfen0/uv-snapshot-cli/internal/core"
	"github.com/linfen0/uv-snapshot-cli/internal/policies"
	"github.com/linfen0/uv-snapshot-cli/internal/shared"
	"github.com/linfen0/uv-snapshot-cli/internal/types"
)

// Snapshot runs the full pipeline: inspect the environment, read the
// base manifest, classify, resolve the hardware variant, and write the
// snapshot. Fatal errors abort before anything is written; non-fatal
// warnings come back in the report.
func (s Service) Snapshot(ctx context.Context, req SnapshotRequest) (SnapshotResult, error) {
	outputPath := strings.TrimSpace(req.OutputPath)
	if outputPath == "" {
		return SnapshotResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output path is required")
	}

	base := defaultBaseTemplate()
	if strings.TrimSpace(req.BasePath) != "" {
		loaded, err := s.Manifest.LoadBase(req.BasePath)
		if err != nil {
			return SnapshotResult{}, err
		}
		if strings.TrimSpace(loaded.Project.Name) == "" {
			return SnapshotResult{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("%s: project.name must be set", req.BasePath))
		}
		base = loaded
	}

	var requirementNames []string
	if strings.TrimSpace(req.RequirementsPath) != "" {
		names, err := s.Requirements.ReadRequirements(req.RequirementsPath)
		if err != nil {
			return SnapshotResult{}, err
		}
		requirementNames = names
	}

	baseSet, err := buildBaseSet(base, requirementNames)
	if err != nil {
		return SnapshotResult{}, err
	}

	installed, err := s.Env.ListInstalled(ctx)
	if err != nil {
		return SnapshotResult{}, err
	}

	partition := core.Classify(installed, baseSet)
	if err := core.ValidatePartition(partition, installed); err != nil {
		return SnapshotResult{}, err
	}
	warnings := core.ReproducibilityWarnings(installed, baseSet)
	warnings = append(warnings, core.MissingPackageWarnings(installed, baseSet)...)

	var overrides map[string]string
	if strings.TrimSpace(req.IndexTablePath) != "" {
		overrides, err = s.IndexTable.LoadOverrides(req.IndexTablePath)
		if err != nil {
			return SnapshotResult{}, err
		}
	}
	variant, variantWarnings := core.NewVariantResolver(overrides).Resolve(installed)
	warnings = append(warnings, variantWarnings...)

	if req.Prune {
		roots, err := s.Env.RootPackages(ctx)
		if err != nil {
			return SnapshotResult{}, err
		}
		partition = policies.NewRetentionPolicy(true).Filter(partition, roots, baseSourceNames(base))
	}

	doc := core.Emit(base, partition, variant)
	assert.NotEmpty(ctx, doc.Project.Name, "emitted manifest must carry the base project name")
	if err := s.Manifest.WriteSnapshot(outputPath, doc); err != nil {
		return SnapshotResult{}, err
	}

	log.Ctx(ctx).Info().
		Str("output", outputPath).
		Int("packages", len(installed)).
		Int("warnings", len(warnings)).
		Msg("snapshot written")

	return SnapshotResult{
		OutputPath: outputPath,
		CreatedAt:  s.Clock(),
		Report: types.SnapshotReport{
			Warnings: warnings,
			Groups:   groupSummaries(partition),
			Variant:  variant,
		},
	}, nil
}

// buildBaseSet extracts the normalized base dependency set from the
// base manifest's dependency lists plus any requirements-file names.
func buildBaseSet(base types.Pyproject, requirementNames []string) (types.BaseDependencySet, error) {
	set := types.NewBaseDependencySet()
	for _, entry := range base.Project.Dependencies {
		requirement, err := core.ParseRequirement(entry, "project.dependencies")
		if err != nil {
			return types.BaseDependencySet{}, err
		}
		set.Core[requirement.Name] = struct{}{}
	}
	for group, entries := range base.Project.OptionalDependencies {
		for _, entry := range entries {
			requirement, err := core.ParseRequirement(entry, fmt.Sprintf("project.optional-dependencies.%s", group))
			if err != nil {
				return types.BaseDependencySet{}, err
			}
			set.OptionalGroups[requirement.Name] = types.GroupName(group)
		}
	}
	for _, name := range requirementNames {
		set.Core[name] = struct{}{}
	}
	return set, nil
}

// baseSourceNames collects normalized package names pinned to an index
// by the base manifest's tool.uv.sources table.
func baseSourceNames(base types.Pyproject) map[string]struct{} {
	names := map[string]struct{}{}
	if base.Tool == nil || base.Tool.Uv == nil {
		return names
	}
	for name := range base.Tool.Uv.Sources {
		names[shared.NormalizePipName(name)] = struct{}{}
	}
	return names
}

func groupSummaries(partition types.Partition) []types.GroupSummary {
	var summaries []types.GroupSummary
	for group, members := range partition.Groups {
		summaries = append(summaries, types.GroupSummary{Name: group, Count: len(members)})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Name < summaries[j].Name })
	return summaries
}
