package adapters

import (
	"errors"
	"fmt"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/linfen0/uv-snapshot-cli/internal/ports"
	"github.com/linfen0/uv-snapshot-cli/internal/types"
)

// PyprojectFileAdapter reads base manifests and writes snapshot
// manifests as TOML.
type PyprojectFileAdapter struct{}

func NewPyprojectFileAdapter() PyprojectFileAdapter {
	return PyprojectFileAdapter{}
}

func (a PyprojectFileAdapter) LoadBase(path string) (types.Pyproject, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Pyproject{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("base manifest %s not found", path)).
			WithCause(err)
	}
	var doc types.Pyproject
	if err := toml.Unmarshal(data, &doc); err != nil {
		msg := fmt.Sprintf("failed to parse %s", path)
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			msg = fmt.Sprintf("failed to parse %s at line %d column %d", path, row, col)
		}
		return types.Pyproject{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(msg).
			WithCause(err)
	}
	return doc, nil
}

func (a PyprojectFileAdapter) WriteSnapshot(path string, doc types.Pyproject) error {
	data, err := toml.Marshal(doc)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to serialize snapshot manifest").
			WithCause(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to write snapshot %s", path)).
			WithCause(err)
	}
	return nil
}

var _ ports.ManifestPort = PyprojectFileAdapter{}
