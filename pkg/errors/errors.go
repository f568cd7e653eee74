// Package errors provides structured error reporting for flipbook.
//
// Nothing in the animation core is fatal. Misconfigured transitions, failed
// layout reads and recovered panics are reported here as diagnostics and the
// controller carries on with no visible change.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrDegenerate is wrapped by reports about transitions whose implicit
// origin equals their destination.
var ErrDegenerate = errors.New("origin and destination are identical")

// ErrNoRect is wrapped by reports about transitions requested before any
// rectangle was committed.
var ErrNoRect = errors.New("no current rectangle")

// ErrClosed is returned by waits on a flipbook that has been closed.
var ErrClosed = errors.New("flipbook closed")

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an invalid builder or scene configuration.
	KindConfig
	// KindLayout indicates a failed or missing geometry read from the host.
	KindLayout
	// KindTransition indicates a queue entry that was rejected.
	KindTransition
	// KindRender indicates a failure while rasterizing frames.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindLayout:
		return "layout"
	case KindTransition:
		return "transition"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error represents a structured error in flipbook.
type Error struct {
	// Op is the operation that failed (e.g., "animation.evaluateQueue").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "animation.Task").
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

// ErrorHandler receives errors reported by flipbook.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
