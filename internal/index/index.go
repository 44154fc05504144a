// Package index maps element ids to the signals and scenarios that contain
// them, backing the /{id}/scenario/id lookup of the REST surface.
package index

import (
	"fmt"

	"github.com/leolani/emissor-data/internal/config"
)

// NewIndex creates the element index selected by the configuration.
func NewIndex(cfg *config.ServiceConfig) (ElementIndex, error) {
	switch cfg.IndexBackend {
	case config.IndexBackendMemory:
		return NewMemoryIndex(), nil
	case config.IndexBackendSQLite:
		return NewSQLiteIndex(cfg.IndexDSN)
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrInvalidIndexConfig, cfg.IndexBackend)
	}
}
