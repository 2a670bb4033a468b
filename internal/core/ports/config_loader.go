package ports

import "go.trai.ch/sieve/internal/core/domain"

// ConfigLoader defines the interface for loading the sieve configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration for the given working directory,
	// applying environment overrides on top of the file and defaults.
	Load(cwd string) (domain.Config, error)
}
