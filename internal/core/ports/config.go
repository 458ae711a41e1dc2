package ports

import "go.trai.ch/ember/internal/core/domain"

// ConfigLoader reads the tool configuration for a working directory.
// Missing configuration is not an error; defaults apply.
//
//go:generate mockgen -source=config.go -destination=mocks/mock_config.go -package=mocks
type ConfigLoader interface {
	Load(cwd string) (domain.ToolConfig, error)
}
