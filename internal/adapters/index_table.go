package adapters

import (
	"fmt"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"github.com/linfen0/uv-snapshot-cli/internal/ports"
)

// IndexTableAdapter loads a YAML override table mapping hardware build
// tags to index URLs, layered over the built-in table at resolve time.
//
//	indexes:
//	  cu129: https://download.pytorch.org/whl/cu129
type IndexTableAdapter struct{}

func NewIndexTableAdapter() IndexTableAdapter {
	return IndexTableAdapter{}
}

type indexTableFile struct {
	Indexes map[string]string `yaml:"indexes"`
}

func (a IndexTableAdapter) LoadOverrides(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("index table %s not found", path)).
			WithCause(err)
	}
	var table indexTableFile
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("failed to parse index table %s", path)).
			WithCause(err)
	}
	return table.Indexes, nil
}

var _ ports.IndexTablePort = IndexTableAdapter{}
