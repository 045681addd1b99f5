package opdef

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateParameter = errors.New("duplicate type parameter")
	ErrTypeBinding        = errors.New("invalid type binding")
	ErrDefinitionFrozen   = errors.New("definition is frozen")
	ErrNoParameterNames   = errors.New("at least one type parameter name is required")
)

// DuplicateParameterError reports an explicit declaration of a type parameter
// that is already present.
type DuplicateParameterError struct {
	Param TypeParameter
}

func (e *DuplicateParameterError) Error() string {
	return fmt.Sprintf("duplicate type parameter: %s", e.Param)
}

func (e *DuplicateParameterError) Unwrap() error {
	return ErrDuplicateParameter
}

// TypeBindingError reports a specialization that bound a parameter to a value
// which is not a concrete IR type.
type TypeBindingError struct {
	Name  string
	Value any
}

func (e *TypeBindingError) Error() string {
	return fmt.Sprintf("type parameter %q: expected an IR type but got %T (%v)", e.Name, e.Value, e.Value)
}

func (e *TypeBindingError) Unwrap() error {
	return ErrTypeBinding
}

func frozenError(op string) error {
	return fmt.Errorf("%w: op %q can no longer be modified", ErrDefinitionFrozen, op)
}
