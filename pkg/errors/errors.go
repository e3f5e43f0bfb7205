// Package errors provides structured error handling for the tween packages.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates invalid construction options.
	KindConfig
	// KindDimension indicates a value set with the wrong number of dimensions.
	KindDimension
	// KindCurve indicates an unknown easing curve name.
	KindCurve
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindDimension:
		return "dimension"
	case KindCurve:
		return "curve"
	default:
		return "unknown"
	}
}

// Sentinel errors for use with errors.Is.
var (
	ErrConfig            = errors.New("invalid animator config")
	ErrDimensionMismatch = errors.New("dimension mismatch")
)

// TweenError represents a structured error reported by the tween packages.
type TweenError struct {
	// Op is the operation that failed (e.g., "animation.New").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *TweenError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *TweenError) Unwrap() error {
	return e.Err
}

// ConfigError is returned when an animator is constructed from options
// that cannot describe an animation.
type ConfigError struct {
	// Field is the offending option (e.g., "values", "durationMs").
	Field string
	// Reason describes what is wrong with it.
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is reports whether target is ErrConfig.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// DimensionMismatchError is returned when a value set does not have the
// animator's dimension count.
type DimensionMismatchError struct {
	// Op is the setter that rejected the values.
	Op string
	// Want is the animator's dimension count.
	Want int
	// Got is the dimension count that was supplied.
	Got int
	// Key is set when the counts agree but a supplied key is not one of
	// the animator's dimensions.
	Key string
}

func (e *DimensionMismatchError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s: unknown dimension %q", e.Op, e.Key)
	}
	return fmt.Sprintf("%s: got %d dimensions, want %d", e.Op, e.Got, e.Want)
}

// Is reports whether target is ErrDimensionMismatch.
func (e *DimensionMismatchError) Is(target error) bool {
	return target == ErrDimensionMismatch
}

// UnknownCurveError describes a curve name that was not found in the
// registry. It is reported, never returned: the animator substitutes
// Fallback and keeps going.
type UnknownCurveError struct {
	Name     string
	Fallback string
}

func (e *UnknownCurveError) Error() string {
	return fmt.Sprintf("unknown easing curve %q, using %q", e.Name, e.Fallback)
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "timer.fire").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the tween packages.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *TweenError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
