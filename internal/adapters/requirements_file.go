package adapters

import (
	"fmt"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/linfen0/uv-snapshot-cli/internal/core"
	"github.com/linfen0/uv-snapshot-cli/internal/ports"
)

// RequirementsFileAdapter parses line-oriented requirements files into
// normalized package names.
type RequirementsFileAdapter struct{}

func NewRequirementsFileAdapter() RequirementsFileAdapter {
	return RequirementsFileAdapter{}
}

func (a RequirementsFileAdapter) ReadRequirements(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("requirements file %s not found", path)).
			WithCause(err)
	}
	var names []string
	for number, line := range strings.Split(string(content), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		requirement, err := core.ParseRequirement(trimmed, fmt.Sprintf("%s:%d", path, number+1))
		if err != nil {
			return nil, err
		}
		names = append(names, requirement.Name)
	}
	return names, nil
}

var _ ports.RequirementsPort = RequirementsFileAdapter{}
