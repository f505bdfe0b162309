package ports

import "github.com/delphix/savedump/internal/core/domain"

// ConfigLoader loads the host filesystem roots, falling back to the
// conventional defaults when no config file is present.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	Load() (domain.Paths, error)
}
