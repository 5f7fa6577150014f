package app

import (
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Inspect summarizes an existing snapshot manifest: the pinned core
// list, each optional group, and the index configuration.
func (s Service) Inspect(req InspectRequest) (InspectResult, error) {
	path := strings.TrimSpace(req.Path)
	if path == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("snapshot path is required")
	}
	doc, err := s.Manifest.LoadBase(path)
	if err != nil {
		return InspectResult{}, err
	}

	result := InspectResult{
		ProjectName: doc.Project.Name,
		Core:        append([]string(nil), doc.Project.Dependencies...),
		Sources:     map[string]string{},
	}
	for _, name := range sortedKeys(doc.Project.OptionalDependencies) {
		packages := doc.Project.OptionalDependencies[name]
		result.Groups = append(result.Groups, InspectGroupSummary{
			Name:     name,
			Count:    len(packages),
			Packages: append([]string(nil), packages...),
		})
	}
	if doc.Tool != nil && doc.Tool.Uv != nil {
		for name, source := range doc.Tool.Uv.Sources {
			result.Sources[name] = source.Index
		}
		result.Indexes = append(result.Indexes, doc.Tool.Uv.Index...)
	}
	return result, nil
}

func sortedKeys[V any](input map[string]V) []string {
	keys := make([]string, 0, len(input))
	for key := range input {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
