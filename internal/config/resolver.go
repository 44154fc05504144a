package config

import (
	"fmt"
	"regexp"
)

var refPattern = regexp.MustCompile(`\{([A-Za-z0-9_.\-]+)\}`)

// expand replaces every {name} reference in expr with the resolved value of
// that setting. References to settings that are not (yet) resolved fail
// with ErrUnresolvedReference.
func expand(expr string, resolved map[string]Value) (string, error) {
	var expandErr error

	out := refPattern.ReplaceAllStringFunc(expr, func(match string) string {
		ref := match[1 : len(match)-1]
		val, ok := resolved[ref]
		if !ok {
			if expandErr == nil {
				expandErr = fmt.Errorf("%w: %q", ErrUnresolvedReference, ref)
			}
			return match
		}
		return val.Scalar()
	})

	if expandErr != nil {
		return "", expandErr
	}
	return out, nil
}

// expandValue expands references in a scalar value, or element-wise in a
// list value.
func expandValue(v Value, resolved map[string]Value) (Value, error) {
	if !v.Multi() {
		expanded, err := expand(v.Scalar(), resolved)
		if err != nil {
			return Value{}, err
		}
		return String(expanded), nil
	}

	items := v.List()
	out := make([]string, 0, len(items))
	for _, item := range items {
		expanded, err := expand(item, resolved)
		if err != nil {
			return Value{}, err
		}
		out = append(out, expanded)
	}
	return Strings(out...), nil
}

// resolveSetting produces the effective value of one setting:
// external override first, then the module's fixed value, then the default
// expression. Value and default expressions are expanded against the
// settings resolved so far.
func resolveSetting(s Setting, override *Value, resolved map[string]Value) (Value, error) {
	if override != nil && !override.IsZero() {
		return *override, nil
	}

	var expr *Value
	switch {
	case s.Value != nil:
		expr = s.Value
	case s.Default != nil:
		expr = s.Default
	default:
		return Value{}, nil
	}

	val, err := expandValue(*expr, resolved)
	if err != nil {
		return Value{}, fmt.Errorf("resolving setting %q: %w", s.Name, err)
	}
	return val, nil
}
