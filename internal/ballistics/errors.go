package ballistics

import (
	"errors"
	"fmt"
)

// Domain errors for input handling.
var (
	// ErrOutOfRange indicates an input value outside its variable's range.
	ErrOutOfRange = errors.New("ballistics: value out of range")

	// ErrUnknownVariable indicates an unrecognised variable identifier.
	ErrUnknownVariable = errors.New("ballistics: unknown variable")

	// ErrInvalidPair indicates a pair built from the same variable twice.
	ErrInvalidPair = errors.New("ballistics: pair needs two distinct variables")
)

// InputError wraps ErrOutOfRange with the offending variable and value.
type InputError struct {
	Variable Variable
	Value    float64
	Range    Range
}

func (e *InputError) Error() string {
	return fmt.Sprintf("ballistics: %s %.1f %s outside [%g, %g]",
		e.Variable, e.Value, e.Variable.Unit(), e.Range.Min, e.Range.Max)
}

func (e *InputError) Unwrap() error {
	return ErrOutOfRange
}
