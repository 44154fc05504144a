package config

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed modules/*.yaml
var embeddedModules embed.FS

// DefaultEntry is the name of the embedded entry-point module.
const DefaultEntry = "entrypoint"

// Setting is one named configuration entry of a module.
//
// Value is a fixed assignment; Default is evaluated only when neither an
// external override nor a Value is present. Both forms may interpolate
// previously resolved settings with {name} references.
type Setting struct {
	Name    string `yaml:"name"`
	Value   *Value `yaml:"value,omitempty"`
	Default *Value `yaml:"default,omitempty"`
}

// Module is one configuration document: an ordered list of settings plus an
// ordered list of include references. Order matters on both — settings may
// reference settings resolved before them, and later includes observe
// settings established by earlier ones.
type Module struct {
	Name     string    `yaml:"name"`
	Settings []Setting `yaml:"settings"`
	Includes []string  `yaml:"includes"`
}

func decodeModule(name string, raw []byte) (*Module, error) {
	var m Module
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("%w: module %q: %w", ErrInvalidModule, name, err)
	}

	if m.Name == "" {
		m.Name = name
	}

	for _, s := range m.Settings {
		if s.Name == "" {
			return nil, fmt.Errorf("%w: module %q contains an unnamed setting", ErrInvalidModule, name)
		}
	}

	return &m, nil
}

// loadModule resolves a logical module name to its document. Modules in the
// configured directory shadow the embedded defaults; a name found in
// neither place is a missing include.
func (l *Loader) loadModule(name string) (*Module, error) {
	if l.dir != "" {
		raw, err := os.ReadFile(filepath.Join(l.dir, name+".yaml"))
		if err == nil {
			return decodeModule(name, raw)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading module %q: %w", name, err)
		}
	}

	raw, err := embeddedModules.ReadFile("modules/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrMissingInclude, name)
	}

	return decodeModule(name, raw)
}
