// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Leolani Contributors

package config

import (
	"fmt"
	"time"
)

// Index backends understood by the service.
const (
	IndexBackendMemory = "memory"
	IndexBackendSQLite = "sqlite"
)

// ServiceConfig is the typed view of the merged configuration consumed by
// the emissor-data service at startup.
type ServiceConfig struct {
	// ProjectRoot is the filesystem location of the top-level project.
	ProjectRoot string

	// ProjectDependencies lists the sibling dependency directories of this
	// component.
	ProjectDependencies []string

	// GitRemote is the base URL of the git remote hosting the platform
	// repositories.
	GitRemote string

	// DataPath is the scenario storage base directory.
	DataPath string

	// HTTPAddress is the TCP address on which the REST server listens,
	// in "host:port" format.
	HTTPAddress string

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it.
	RequestTimeout time.Duration

	// BackendURL is the base URL of the backend storage service signal
	// payloads are fetched from.
	BackendURL string

	// EventTopics lists the event bus topics the worker subscribes to.
	EventTopics []string

	// IndexBackend selects the element index implementation, one of
	// [IndexBackendMemory] or [IndexBackendSQLite].
	IndexBackend string

	// IndexDSN is the SQLite database path used when IndexBackend is
	// [IndexBackendSQLite].
	IndexDSN string
}

func newServiceConfig(cfg Config) (*ServiceConfig, error) {
	svc := &ServiceConfig{}

	svc.ProjectRoot, _ = cfg.Get("project_root")
	svc.ProjectDependencies, _ = cfg.GetMulti("project_dependencies")
	svc.GitRemote, _ = cfg.Get("git_remote")
	svc.DataPath, _ = cfg.Get("emissor.data.path")
	svc.HTTPAddress, _ = cfg.Get("emissor.data.server.address")
	svc.BackendURL, _ = cfg.Get("emissor.data.backend.url")
	svc.EventTopics, _ = cfg.GetMulti("emissor.data.event.topics")
	svc.IndexBackend, _ = cfg.Get("emissor.data.index.backend")
	svc.IndexDSN, _ = cfg.Get("emissor.data.index.dsn")

	timeout, _, err := cfg.GetDuration("emissor.data.server.timeout")
	if err != nil {
		return nil, fmt.Errorf("%w: emissor.data.server.timeout: %w", ErrInvalidServerConfig, err)
	}
	svc.RequestTimeout = timeout

	return svc, nil
}

// validate checks that the final merged configuration satisfies the
// invariants the service relies on at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *ServiceConfig) validate() error {
	if cfg.DataPath == "" {
		return fmt.Errorf("%w: emissor.data.path is empty", ErrInvalidStorageConfig)
	}

	if cfg.HTTPAddress == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidServerConfig
	}

	switch cfg.IndexBackend {
	case IndexBackendMemory:
	case IndexBackendSQLite:
		if cfg.IndexDSN == "" {
			return fmt.Errorf("%w: sqlite backend requires emissor.data.index.dsn", ErrInvalidIndexConfig)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidIndexConfig, cfg.IndexBackend)
	}

	if len(cfg.EventTopics) == 0 {
		return ErrInvalidEventConfig
	}

	return nil
}
