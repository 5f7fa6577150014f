package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"github.com/linfen0/uv-snapshot-cli/internal/core"
)

// Validate checks that a base manifest is usable as a snapshot
// template: project metadata present and every declared dependency
// entry parseable.
func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	path := strings.TrimSpace(req.BasePath)
	if path == "" {
		return ValidateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("base manifest path is required")
	}
	doc, err := s.Manifest.LoadBase(path)
	if err != nil {
		return ValidateResult{}, err
	}

	if strings.TrimSpace(doc.Project.Name) == "" {
		return ValidateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("%s: project.name must be set", path))
	}

	count := 0
	for _, entry := range doc.Project.Dependencies {
		if _, err := core.ParseRequirement(entry, "project.dependencies"); err != nil {
			return ValidateResult{}, err
		}
		count++
	}
	for group, entries := range doc.Project.OptionalDependencies {
		for _, entry := range entries {
			if _, err := core.ParseRequirement(entry, fmt.Sprintf("project.optional-dependencies.%s", group)); err != nil {
				return ValidateResult{}, err
			}
			count++
		}
	}

	log.Ctx(ctx).Debug().Str("base", doc.Project.Name).Int("dependencies", count).Msg("base manifest validated")
	return ValidateResult{ProjectName: doc.Project.Name, DependencyCount: count}, nil
}
