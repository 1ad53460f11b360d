package indicator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/amirphl/ezpz-ti/internal/frame"
)

// Sentinels matched by errors.Is against the typed errors below.
var (
	ErrColumnNotFound     = errors.New("column not found")
	ErrCoercion           = errors.New("column cannot be coerced to f64")
	ErrInvalidConfig      = errors.New("invalid configuration token")
	ErrLengthPrecondition = errors.New("length precondition not met")
	ErrEmptyInput         = errors.New("empty input")
	ErrInvalidParameter   = errors.New("invalid parameter")
)

// ColumnNotFoundError is returned when a named column is absent from the frame.
type ColumnNotFoundError struct {
	Column string
	Err    error
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column %q not found: %v", e.Column, e.Err)
}

func (e *ColumnNotFoundError) Unwrap() error        { return e.Err }
func (e *ColumnNotFoundError) Is(target error) bool { return target == ErrColumnNotFound }

// CoercionError is returned for a column whose dtype is not numeric.
type CoercionError struct {
	Column string
	DType  frame.DType
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("column %q has dtype %s and cannot be cast to f64", e.Column, e.DType)
}

func (e *CoercionError) Is(target error) bool { return target == ErrCoercion }

// InvalidConfigError is returned for a token outside its enumeration.
type InvalidConfigError struct {
	Token  string
	Family string
	Valid  []string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("unknown %s %q, expected one of: %s", e.Family, e.Token, strings.Join(e.Valid, ", "))
}

func (e *InvalidConfigError) Is(target error) bool { return target == ErrInvalidConfig }

// LengthPreconditionError is returned when an input is shorter than (or, with
// Exact, different from) what the transform requires.
type LengthPreconditionError struct {
	Name     string
	Required int
	Actual   int
	Exact    bool
}

func (e *LengthPreconditionError) Error() string {
	qualifier := "at least"
	if e.Exact {
		qualifier = "exactly"
	}
	return fmt.Sprintf("%s requires %s %d observations, got %d", e.Name, qualifier, e.Required, e.Actual)
}

func (e *LengthPreconditionError) Is(target error) bool { return target == ErrLengthPrecondition }

// EmptyInputError is returned by single transforms given too few values to reduce.
type EmptyInputError struct {
	Name    string
	Minimum int
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("%s requires at least %d observation(s)", e.Name, e.Minimum)
}

func (e *EmptyInputError) Is(target error) bool { return target == ErrEmptyInput }

// InvalidParameterError is returned for scalar parameters no transform can use,
// such as a zero period.
type InvalidParameterError struct {
	Name   string
	Value  any
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%v: %s", e.Name, e.Value, e.Reason)
}

func (e *InvalidParameterError) Is(target error) bool { return target == ErrInvalidParameter }
