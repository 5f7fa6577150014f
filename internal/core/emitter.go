package core

import (
	"fmt"
	"strings"

	"github.com/linfen0/uv-snapshot-cli/internal/types"
)

// indexURLPlaceholder marks a base index URL that should be replaced by
// the resolved hardware-variant URL.
const indexURLPlaceholder = "XXX"

// Emit assembles the snapshot manifest. Static project metadata from the
// base manifest is carried unchanged; the dependency sections are
// replaced by the computed partition and, when a hardware variant was
// resolved, an index source override scoped to the numeric-computing
// library is injected. Equal inputs produce identical documents.
func Emit(base types.Pyproject, partition types.Partition, variant types.VariantResolution) types.Pyproject {
	doc := base
	doc.Project.Dependencies = pinnedEntries(partition.Groups[types.GroupProjectDependencies])

	optional := map[string][]string{}
	for group, members := range partition.Groups {
		if group == types.GroupProjectDependencies {
			continue
		}
		if len(members) == 0 {
			continue
		}
		optional[string(group)] = pinnedEntries(members)
	}
	doc.Project.OptionalDependencies = optional

	doc.Tool = cloneTool(base.Tool)
	if variant.IndexURL != "" {
		injectVariantIndex(&doc, variant)
	}
	return doc
}

// pinnedEntries renders group members as exact "name==version" pins.
// Members arrive pre-sorted from the classifier.
func pinnedEntries(members []types.InstalledPackage) []string {
	entries := make([]string, 0, len(members))
	for _, pkg := range members {
		entries = append(entries, fmt.Sprintf("%s==%s", pkg.Name, pkg.Version))
	}
	return entries
}

// injectVariantIndex scopes the resolved index to the numeric-computing
// library only: a tool.uv.sources entry for the library plus a matching
// explicit index. Base indexes carrying the URL placeholder are
// rewritten in place; otherwise a new index entry is appended.
func injectVariantIndex(doc *types.Pyproject, variant types.VariantResolution) {
	if doc.Tool == nil {
		doc.Tool = &types.Tool{}
	}
	if doc.Tool.Uv == nil {
		doc.Tool.Uv = &types.UvTool{}
	}
	uv := doc.Tool.Uv

	indexName := ""
	for i := range uv.Index {
		if strings.Contains(uv.Index[i].URL, indexURLPlaceholder) {
			uv.Index[i].URL = variant.IndexURL
			if uv.Index[i].Name == "" {
				uv.Index[i].Name = variantIndexName(variant.Tag)
			}
			indexName = uv.Index[i].Name
			break
		}
		if uv.Index[i].URL == variant.IndexURL {
			if uv.Index[i].Name == "" {
				uv.Index[i].Name = variantIndexName(variant.Tag)
			}
			indexName = uv.Index[i].Name
			break
		}
	}
	if indexName == "" {
		indexName = variantIndexName(variant.Tag)
		uv.Index = append(uv.Index, types.UvIndex{
			Name:     indexName,
			URL:      variant.IndexURL,
			Explicit: true,
		})
	}

	if uv.Sources == nil {
		uv.Sources = map[string]types.UvSource{}
	}
	uv.Sources[variant.Library] = types.UvSource{Index: indexName}
}

func variantIndexName(tag string) string {
	return "pytorch-" + strings.ReplaceAll(tag, ".", "-")
}

// cloneTool deep-copies the tool section so emission never mutates the
// base document.
func cloneTool(tool *types.Tool) *types.Tool {
	if tool == nil {
		return nil
	}
	clone := &types.Tool{}
	if tool.Uv != nil {
		uv := &types.UvTool{}
		if tool.Uv.Sources != nil {
			uv.Sources = make(map[string]types.UvSource, len(tool.Uv.Sources))
			for name, source := range tool.Uv.Sources {
				uv.Sources[name] = source
			}
		}
		uv.Index = append([]types.UvIndex(nil), tool.Uv.Index...)
		clone.Uv = uv
	}
	return clone
}
