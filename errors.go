package treeql

import "fmt"

// StructuralError indicates a malformed statement or expression shape,
// such as a logical operator with fewer than two operands.
type StructuralError struct {
	Detail string
}

func (e StructuralError) Error() string {
	return "invalid statement structure: " + e.Detail
}

// NewStructuralError creates a new structural error.
func NewStructuralError(format string, args ...any) error {
	return StructuralError{Detail: fmt.Sprintf(format, args...)}
}

// ValidationError indicates an identifier unknown to the schema
// collaborator.
type ValidationError struct {
	Kind string // "table" or "column"
	Name string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Name)
}

// NewValidationError creates a new validation error.
func NewValidationError(kind, name string) error {
	return ValidationError{Kind: kind, Name: name}
}

// BindingError indicates a bind-parameter mismatch: either the
// positional bindings container does not match the placeholder count,
// or a named placeholder has no binding.
type BindingError struct {
	Key  string
	Want int
	Got  int
}

func (e BindingError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("no binding for named placeholder %q", e.Key)
	}
	return fmt.Sprintf("expected %d positional bindings, got %d", e.Want, e.Got)
}

// NewBindingCountError creates a BindingError for a positional
// count mismatch.
func NewBindingCountError(want, got int) error {
	return BindingError{Want: want, Got: got}
}

// NewMissingBindingError creates a BindingError naming the missing key.
func NewMissingBindingError(key string) error {
	return BindingError{Key: key}
}
