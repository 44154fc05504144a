package config

import "errors"

// Loading errors. All of them abort Load: configuration is a prerequisite
// gate for everything else, so no partial configuration is ever exposed.
var (
	// ErrMissingInclude indicates that an include reference could not be
	// located in the module directory or among the embedded modules.
	ErrMissingInclude = errors.New("included module not found")

	// ErrUnresolvedReference indicates that a setting expression referenced
	// a setting that has not been defined at the point of resolution.
	ErrUnresolvedReference = errors.New("reference to undefined setting")

	// ErrIncludeCycle indicates that a module include chain referenced a
	// module that is currently being applied.
	ErrIncludeCycle = errors.New("include cycle detected")

	// ErrInvalidModule indicates that a module document could not be
	// decoded or failed structural checks (e.g. an unnamed setting).
	ErrInvalidModule = errors.New("invalid module document")
)

// Validation errors returned by [ServiceConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfig indicates invalid scenario storage settings
	// (for example, an empty data path).
	ErrInvalidStorageConfig = errors.New("invalid storage configuration")
	// ErrInvalidServerConfig indicates invalid HTTP server settings
	// (for example, missing address or non-positive request timeout).
	ErrInvalidServerConfig = errors.New("invalid server configuration")
	// ErrInvalidIndexConfig indicates invalid element index settings
	// (for example, an unknown backend name).
	ErrInvalidIndexConfig = errors.New("invalid index configuration")
	// ErrInvalidEventConfig indicates invalid event worker settings
	// (for example, an empty topic list).
	ErrInvalidEventConfig = errors.New("invalid event configuration")
)
