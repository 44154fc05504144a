package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"

	"github.com/leolani/emissor-data/internal/logger"
)

type inputBuilder struct {
	inputs []*Input
	err    error
}

func newInputBuilder() *inputBuilder {
	return &inputBuilder{
		inputs: make([]*Input, 0, 3),
	}
}

// build merges all collected inputs. Earlier sources win for non-zero
// fields, so the order of the with* calls is the precedence order.
func (b *inputBuilder) build() (*Input, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config input: %w", b.err)
	}

	input := new(Input)
	for _, in := range b.inputs {
		if err := mergo.Merge(input, in); err != nil {
			return nil, fmt.Errorf("error merging config inputs: %w", err)
		}
	}

	return input, nil
}

func (b *inputBuilder) withExplicit(in *Input) *inputBuilder {
	if in != nil {
		b.inputs = append(b.inputs, in)
	}
	return b
}

func (b *inputBuilder) withFlags(args []string) *inputBuilder {
	flags, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.inputs = append(b.inputs, flags)
	return b
}

func (b *inputBuilder) withEnv() *inputBuilder {
	envIn := &Input{}
	if err := parseEnv(envIn); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.inputs = append(b.inputs, envIn)
	return b
}

// GetServiceConfig loads, merges, and validates the service configuration.
// Override sources are combined in the following priority order (first
// source wins for non-zero fields):
//  1. The explicit input, if any
//  2. Command-line flags
//  3. Environment variables
//
// The combined overrides are then applied while loading the entry-point
// module and its includes.
//
// Returns a fully populated *ServiceConfig or an error if any source or
// module fails to load or the final config fails validation.
func GetServiceConfig(explicit *Input, log *logger.Logger) (*ServiceConfig, error) {
	return getServiceConfig(explicit, os.Args[1:], log)
}

func getServiceConfig(explicit *Input, args []string, log *logger.Logger) (*ServiceConfig, error) {
	input, err := newInputBuilder().
		withExplicit(explicit).
		withFlags(args).
		withEnv().
		build()
	if err != nil {
		return nil, err
	}

	entry := input.Entry
	if entry == "" {
		entry = DefaultEntry
	}

	cfg, err := NewLoader(input.ModulesDir, input.overrides(), log).Load(entry)
	if err != nil {
		return nil, err
	}

	svc, err := newServiceConfig(cfg)
	if err != nil {
		return nil, err
	}

	if err := svc.validate(); err != nil {
		return nil, err
	}

	return svc, nil
}
