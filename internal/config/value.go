package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Value is a single setting value: either a scalar string or an ordered
// list of strings. The zero Value is "unset".
type Value struct {
	scalar string
	list   []string
	multi  bool
}

// String constructs a scalar Value.
func String(s string) Value {
	return Value{scalar: s}
}

// Strings constructs a list Value.
func Strings(s ...string) Value {
	return Value{list: s, multi: true}
}

// IsZero reports whether the value is unset. An empty scalar is unset; an
// empty list is set, so an override may clear a list-valued setting.
func (v Value) IsZero() bool {
	return !v.multi && v.scalar == "" && v.list == nil
}

// Multi reports whether the value is a list.
func (v Value) Multi() bool {
	return v.multi
}

// Scalar returns the scalar form of the value. For list values the elements
// are joined with a single space, mirroring how list-valued build settings
// collapse when used in scalar position.
func (v Value) Scalar() string {
	if !v.multi {
		return v.scalar
	}

	out := ""
	for i, item := range v.list {
		if i > 0 {
			out += " "
		}
		out += item
	}
	return out
}

// List returns the list form of the value. A scalar yields a single-element
// list; an unset value yields nil.
func (v Value) List() []string {
	if v.multi {
		return append([]string(nil), v.list...)
	}
	if v.scalar == "" {
		return nil
	}
	return []string{v.scalar}
}

// UnmarshalYAML accepts either a scalar node or a sequence of scalars.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*v = String(s)
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return err
		}
		*v = Strings(items...)
		return nil
	default:
		return fmt.Errorf("%w: setting value must be a string or a list of strings", ErrInvalidModule)
	}
}

// MarshalYAML renders scalar values as strings and list values as sequences.
func (v Value) MarshalYAML() (any, error) {
	if v.multi {
		return v.list, nil
	}
	return v.scalar, nil
}
