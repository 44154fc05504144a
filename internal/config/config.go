// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Leolani Contributors

package config

import (
	"sort"
	"time"
)

// Config is the merged configuration produced by [Loader.Load]: an
// immutable mapping from setting name to resolved value. It is never
// mutated after construction; consumers receive it by value and read from
// it concurrently without locking.
type Config struct {
	values map[string]Value
}

// newConfig wraps a resolved settings map. The map must not be retained by
// the caller afterwards.
func newConfig(values map[string]Value) Config {
	return Config{values: values}
}

// Has reports whether the setting is defined.
func (c Config) Has(name string) bool {
	_, ok := c.values[name]
	return ok
}

// Get returns the scalar form of the named setting.
func (c Config) Get(name string) (string, bool) {
	v, ok := c.values[name]
	if !ok {
		return "", false
	}
	return v.Scalar(), true
}

// GetMulti returns the list form of the named setting.
func (c Config) GetMulti(name string) ([]string, bool) {
	v, ok := c.values[name]
	if !ok {
		return nil, false
	}
	return v.List(), true
}

// GetDuration parses the named setting as a time.Duration (e.g. "30s").
// An undefined setting yields zero with ok=false; a defined but malformed
// one yields an error.
func (c Config) GetDuration(name string) (time.Duration, bool, error) {
	v, ok := c.values[name]
	if !ok {
		return 0, false, nil
	}

	d, err := time.ParseDuration(v.Scalar())
	if err != nil {
		return 0, true, err
	}
	return d, true, nil
}

// Names returns all defined setting names in sorted order.
func (c Config) Names() []string {
	names := make([]string, 0, len(c.values))
	for name := range c.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of defined settings.
func (c Config) Len() int {
	return len(c.values)
}
