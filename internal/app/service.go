package app

import (
	"time"

	"github.com/linfen0/uv-snapshot-cli/internal/adapters"
	"github.com/linfen0/uv-snapshot-cli/internal/ports"
)

type Service struct {
	Env          ports.EnvironmentPort
	Manifest     ports.ManifestPort
	Requirements ports.RequirementsPort
	IndexTable   ports.IndexTablePort
	Clock        func() time.Time
}

func NewService(uvBinary string) Service {
	return Service{
		Env:          adapters.NewUvEnvAdapter(uvBinary),
		Manifest:     adapters.NewPyprojectFileAdapter(),
		Requirements: adapters.NewRequirementsFileAdapter(),
		IndexTable:   adapters.NewIndexTableAdapter(),
		Clock:        time.Now,
	}
}
