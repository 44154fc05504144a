package config

// Input is the explicit, typed contract for externally supplied
// configuration. It replaces ambient shell-quoted environment handling: the
// invoking process either fills an Input directly or lets the env/flag
// sources populate one.
//
// Struct tags map each field to its environment variable for the env source
// (caarlos0/env).
type Input struct {
	// ModulesDir is an optional directory of module documents that shadow
	// the embedded defaults.
	// Env: EMISSOR_MODULES_DIR
	ModulesDir string `env:"EMISSOR_MODULES_DIR"`

	// Entry is the logical name of the entry-point module.
	// Defaults to [DefaultEntry] when empty.
	// Env: EMISSOR_ENTRY
	Entry string `env:"EMISSOR_ENTRY"`

	// ProjectRoot overrides the project_root setting.
	// Env: PROJECT_ROOT
	ProjectRoot string `env:"PROJECT_ROOT"`

	// ProjectDependencies overrides the project_dependencies setting,
	// colon-separated in the environment.
	// Env: PROJECT_DEPENDENCIES
	ProjectDependencies []string `env:"PROJECT_DEPENDENCIES" envSeparator:":"`

	// GitRemote overrides the git_remote setting.
	// Env: GIT_REMOTE
	GitRemote string `env:"GIT_REMOTE"`

	// DataPath overrides the emissor.data.path setting.
	// Env: EMISSOR_DATA_PATH
	DataPath string `env:"EMISSOR_DATA_PATH"`

	// ServerAddress overrides the emissor.data.server.address setting.
	// Env: EMISSOR_SERVER_ADDRESS
	ServerAddress string `env:"EMISSOR_SERVER_ADDRESS"`

	// RequestTimeout overrides the emissor.data.server.timeout setting,
	// as a duration string (e.g. "30s", "1m").
	// Env: EMISSOR_REQUEST_TIMEOUT
	RequestTimeout string `env:"EMISSOR_REQUEST_TIMEOUT"`

	// BackendURL overrides the emissor.data.backend.url setting.
	// Env: EMISSOR_BACKEND_URL
	BackendURL string `env:"EMISSOR_BACKEND_URL"`

	// EventTopics overrides the emissor.data.event.topics setting,
	// comma-separated in the environment.
	// Env: EMISSOR_EVENT_TOPICS
	EventTopics []string `env:"EMISSOR_EVENT_TOPICS" envSeparator:","`

	// IndexBackend overrides the emissor.data.index.backend setting
	// ("memory" or "sqlite").
	// Env: EMISSOR_INDEX_BACKEND
	IndexBackend string `env:"EMISSOR_INDEX_BACKEND"`

	// IndexDSN overrides the emissor.data.index.dsn setting.
	// Env: EMISSOR_INDEX_DSN
	IndexDSN string `env:"EMISSOR_INDEX_DSN"`
}

// overrides converts the non-zero fields of the input into loader overrides
// keyed by setting name.
func (in *Input) overrides() Overrides {
	o := Overrides{}

	if in.ProjectRoot != "" {
		o["project_root"] = String(in.ProjectRoot)
	}
	if len(in.ProjectDependencies) > 0 {
		o["project_dependencies"] = Strings(in.ProjectDependencies...)
	}
	if in.GitRemote != "" {
		o["git_remote"] = String(in.GitRemote)
	}
	if in.DataPath != "" {
		o["emissor.data.path"] = String(in.DataPath)
	}
	if in.ServerAddress != "" {
		o["emissor.data.server.address"] = String(in.ServerAddress)
	}
	if in.RequestTimeout != "" {
		o["emissor.data.server.timeout"] = String(in.RequestTimeout)
	}
	if in.BackendURL != "" {
		o["emissor.data.backend.url"] = String(in.BackendURL)
	}
	if len(in.EventTopics) > 0 {
		o["emissor.data.event.topics"] = Strings(in.EventTopics...)
	}
	if in.IndexBackend != "" {
		o["emissor.data.index.backend"] = String(in.IndexBackend)
	}
	if in.IndexDSN != "" {
		o["emissor.data.index.dsn"] = String(in.IndexDSN)
	}

	return o
}
