package config

import (
	"fmt"
	"maps"

	"dario.cat/mergo"

	"github.com/leolani/emissor-data/internal/logger"
)

// Overrides carries externally supplied setting values, keyed by setting
// name. An override takes precedence over the module's own value and
// default at the point where the setting is first defined.
type Overrides map[string]Value

// Loader resolves an entry-point module and its includes into one merged
// [Config]. Each Load call is independent and produces a fresh
// configuration; the loader holds no state across calls.
type Loader struct {
	dir       string
	overrides Overrides
	log       *logger.Logger
}

// NewLoader creates a loader reading modules from dir, falling back to the
// embedded default modules for names not present there. dir may be empty to
// use embedded modules only.
func NewLoader(dir string, overrides Overrides, log *logger.Logger) *Loader {
	if log == nil {
		log = logger.Nop()
	}

	return &Loader{dir: dir, overrides: overrides, log: log}
}

// Load resolves the named entry module's own settings first, then applies
// each include in declared order, depth-first. Settings merge with
// first-definition-wins semantics: the entry point and earlier includes take
// precedence over later includes; a module applied twice is a no-op.
//
// Any failure (missing include, unresolved reference, cycle, malformed
// module) aborts the load; no partial configuration is returned. Overrides
// for settings no module defines are logged and ignored.
func (l *Loader) Load(entry string) (Config, error) {
	state := &loadState{
		resolved:   make(map[string]Value),
		consumed:   make(map[string]bool),
		applied:    make(map[string]bool),
		inProgress: make(map[string]bool),
	}

	if err := l.apply(entry, state); err != nil {
		return Config{}, err
	}

	for name := range l.overrides {
		if !state.consumed[name] {
			l.log.Warn().Str("setting", name).Msg("override ignored: setting is not defined by any module")
		}
	}

	return newConfig(state.resolved), nil
}

type loadState struct {
	resolved   map[string]Value
	consumed   map[string]bool
	applied    map[string]bool
	inProgress map[string]bool
}

func (l *Loader) apply(name string, state *loadState) error {
	if state.applied[name] {
		return nil
	}
	if state.inProgress[name] {
		return fmt.Errorf("%w: %q", ErrIncludeCycle, name)
	}
	state.inProgress[name] = true
	defer delete(state.inProgress, name)

	module, err := l.loadModule(name)
	if err != nil {
		return err
	}

	incoming, err := l.resolveModule(module, state)
	if err != nil {
		return err
	}

	if err := mergo.Merge(&state.resolved, incoming); err != nil {
		return fmt.Errorf("merging module %q: %w", name, err)
	}

	state.applied[name] = true
	l.log.Debug().Str("module", name).Int("settings", len(incoming)).Msg("applied configuration module")

	for _, include := range module.Includes {
		if err := l.apply(include, state); err != nil {
			return err
		}
	}

	return nil
}

// resolveModule resolves the module's settings in declared order against
// everything defined so far. Settings already defined by an earlier module
// are skipped entirely, so re-including a module never redefines anything.
func (l *Loader) resolveModule(module *Module, state *loadState) (map[string]Value, error) {
	scope := make(map[string]Value, len(state.resolved)+len(module.Settings))
	maps.Copy(scope, state.resolved)

	incoming := make(map[string]Value, len(module.Settings))
	for _, setting := range module.Settings {
		if _, defined := scope[setting.Name]; defined {
			continue
		}

		var override *Value
		if v, ok := l.overrides[setting.Name]; ok {
			override = &v
			state.consumed[setting.Name] = true
		}

		val, err := resolveSetting(setting, override, scope)
		if err != nil {
			return nil, fmt.Errorf("module %q: %w", module.Name, err)
		}

		scope[setting.Name] = val
		incoming[setting.Name] = val
	}

	return incoming, nil
}
