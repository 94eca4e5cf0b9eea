// Package domain contains the core types for job configuration and dispatch.
package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// FieldState describes whether a configuration value is known.
type FieldState int

const (
	// FieldAbsent means the value was not provided at all.
	FieldAbsent FieldState = iota
	// FieldFixed means the value is fully known.
	FieldFixed
	// FieldDeferred means the value contains ${...} placeholders that are
	// substituted from the runtime arguments before the job runs.
	FieldDeferred
)

// String returns a human-readable name for the state.
func (s FieldState) String() string {
	switch s {
	case FieldFixed:
		return "fixed"
	case FieldDeferred:
		return "deferred"
	default:
		return "absent"
	}
}

// Field is a configuration value with an explicit resolution state.
// A deferred field is not known at job-definition time; deploy-time steps
// that depend on it must be skipped, never guessed.
type Field struct {
	state FieldState
	raw   string
}

// NewField classifies a raw configuration value. An empty string is absent;
// a value containing ${...} placeholders is deferred; anything else is fixed.
func NewField(raw string) Field {
	if raw == "" {
		return Field{state: FieldAbsent}
	}
	if strings.Contains(raw, "${") {
		return Field{state: FieldDeferred, raw: raw}
	}
	return Field{state: FieldFixed, raw: raw}
}

// FixedField creates a field with a known value, bypassing placeholder
// detection. Used after resolution.
func FixedField(value string) Field {
	if value == "" {
		return Field{state: FieldAbsent}
	}
	return Field{state: FieldFixed, raw: value}
}

// State returns the resolution state of the field.
func (f Field) State() FieldState { return f.state }

// IsFixed reports whether the value is fully known.
func (f Field) IsFixed() bool { return f.state == FieldFixed }

// IsDeferred reports whether the value still contains placeholders.
func (f Field) IsDeferred() bool { return f.state == FieldDeferred }

// IsAbsent reports whether the value was not provided.
func (f Field) IsAbsent() bool { return f.state == FieldAbsent }

// Value returns the raw value. For deferred fields this is the unexpanded
// template; callers that need the final value should use Resolve.
func (f Field) Value() string { return f.raw }

// Resolve expands ${name} placeholders from the given variables and returns
// the final value. Fixed and absent fields resolve to themselves. A
// placeholder with no matching variable is an error.
func (f Field) Resolve(vars map[string]string) (string, error) {
	if f.state != FieldDeferred {
		return f.raw, nil
	}

	var b strings.Builder
	rest := f.raw
	for {
		i := strings.Index(rest, "${")
		if i < 0 {
			b.WriteString(rest)
			return b.String(), nil
		}
		b.WriteString(rest[:i])
		rest = rest[i+2:]

		j := strings.Index(rest, "}")
		if j < 0 {
			return "", zerr.With(zerr.Wrap(ErrUnresolvedPlaceholder, "unterminated placeholder"), "value", f.raw)
		}
		name := rest[:j]
		v, ok := vars[name]
		if !ok {
			return "", zerr.With(zerr.Wrap(ErrUnresolvedPlaceholder, "no runtime argument for placeholder"), "placeholder", name)
		}
		b.WriteString(v)
		rest = rest[j+1:]
	}
}
