package ports

import "go.trai.ch/envkit/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds envkit.yaml at or above cwd and parses it.
	Load(cwd string) (*domain.Config, error)

	// DiscoverRoot walks up from cwd to the directory containing envkit.yaml.
	DiscoverRoot(cwd string) (string, error)
}
