package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"

	"github.com/linfen0/uv-snapshot-cli/internal/shared"
)

// opTokens is the ordered list of version operators tried when splitting
// a requirement string. Longer tokens must precede shorter ones to avoid
// false matches (e.g. ">=" before ">").
var opTokens = []string{"===", "==", ">=", "<=", "~=", "!=", ">", "<"}

// Requirement is a parsed dependency declaration. Name is PEP 503
// normalized; Specifier holds the raw version constraint portion, empty
// for bare name references.
type Requirement struct {
	Name      string
	Specifier string
}

// ParseRequirement splits a PEP 508-style requirement string into its
// normalized name and version specifier. Extras ("pkg[extra]") and
// environment markers ("; python_version < ...") are discarded since the
// snapshot pins concrete installed versions. The source argument names
// the file or manifest key the requirement came from and is included in
// parse errors.
func ParseRequirement(raw string, source string) (Requirement, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Requirement{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("empty requirement in %s", source))
	}
	if idx := strings.Index(trimmed, ";"); idx >= 0 {
		trimmed = strings.TrimSpace(trimmed[:idx])
	}

	name := trimmed
	specifier := ""
	if idx := earliestOpIndex(trimmed); idx >= 0 {
		name = strings.TrimSpace(trimmed[:idx])
		specifier = strings.TrimSpace(trimmed[idx:])
	}
	if idx := strings.Index(name, "["); idx >= 0 {
		if !strings.HasSuffix(name, "]") {
			return Requirement{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("unterminated extras in %s: %s", source, raw))
		}
		name = strings.TrimSpace(name[:idx])
	}
	if name == "" {
		return Requirement{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid requirement in %s: %s", source, raw))
	}
	if strings.ContainsAny(name, " \t@/") {
		return Requirement{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid requirement name in %s: %s", source, raw))
	}
	if specifier != "" {
		if _, err := pep440.NewSpecifiers(specifier); err != nil {
			return Requirement{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid version specifier in %s: %s", source, raw)).
				WithCause(err)
		}
	}
	return Requirement{
		Name:      shared.NormalizePipName(name),
		Specifier: specifier,
	}, nil
}

// earliestOpIndex returns the position of the first operator token in
// the string, or -1 when none is present.
func earliestOpIndex(value string) int {
	best := -1
	for _, op := range opTokens {
		if idx := strings.Index(value, op); idx >= 0 {
			if best < 0 || idx < best {
				best = idx
			}
		}
	}
	return best
}
