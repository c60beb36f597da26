package uconfig

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotImplemented is returned by New when the definition hook is missing.
	ErrNotImplemented = errors.New("config definition hook is not implemented")

	// ErrValidation is wrapped by every *ValidationError.
	ErrValidation = errors.New("config validation failed")

	// ErrNotConfig is wrapped by every *TypeError.
	ErrNotConfig = errors.New("operand is not a config instance")
)

// ValidationError reports a value outside the allowed type set.
type ValidationError struct {
	// Path locates the first offending value, e.g. "dictionary.d.a[3]".
	Path string
	// Kind is the kind of the offending value.
	Kind Kind
	// Reason is set when the failure is not a plain kind mismatch.
	Reason string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("one or more of the config attributes are not one of the allowed types: ")
	b.WriteString("[" + strings.Join(allowedKindNames(), ", ") + "]")
	if e.Path != "" {
		fmt.Fprintf(&b, " (%s is %s", e.Path, e.Kind)
		if e.Reason != "" {
			b.WriteString(": " + e.Reason)
		}
		b.WriteString(")")
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// TypeError reports an equality or difference operation whose operand is
// not a config instance.
type TypeError struct {
	Op      string
	Operand any
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("the second term of the %s operation should be a config instance, got %T", e.Op, e.Operand)
}

func (e *TypeError) Unwrap() error { return ErrNotConfig }
