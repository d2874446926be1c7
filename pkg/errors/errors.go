// Package errors provides structured error handling for UI specifications.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindParsing indicates a malformed document, missing attribute,
	// unknown tag or unknown template.
	KindParsing
	// KindIncompatible indicates a component whose category does not
	// satisfy the category expected at its call site.
	KindIncompatible
	// KindLoad indicates a failure to read or decode a document.
	KindLoad
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindParsing:
		return "parsing"
	case KindIncompatible:
		return "incompatible"
	case KindLoad:
		return "load"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// SpecError represents a failure at the boundary of a UI specification
// operation.
type SpecError struct {
	// Op is the operation that failed (e.g., "spec.LoadFile").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Path is the document path, if applicable.
	Path string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *SpecError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s [%s] path=%s: %v", e.Op, e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *SpecError) Unwrap() error {
	return e.Err
}

// Wrap builds a SpecError for op, deriving Kind from err and recording the
// caller's stack.
func Wrap(op, path string, err error) *SpecError {
	return &SpecError{
		Op:         op,
		Kind:       KindOf(err),
		Err:        err,
		Path:       path,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	}
}

// KindOf reports the kind of err, looking through wrapped errors.
func KindOf(err error) ErrorKind {
	var parsing *ParsingError
	var incompatible *IncompatibleError
	var spec *SpecError
	var panicErr *PanicError
	switch {
	case err == nil:
		return KindUnknown
	case As(err, &incompatible):
		return KindIncompatible
	case As(err, &parsing):
		return KindParsing
	case As(err, &panicErr):
		return KindPanic
	case As(err, &spec):
		return spec.Kind
	default:
		return KindLoad
	}
}

// ParsingError describes a structural violation in a UI document.
type ParsingError struct {
	// Msg describes the violated expectation.
	Msg string
	// Err is the underlying decoder error, if any.
	Err error
}

// Parsingf returns a ParsingError with a formatted message.
func Parsingf(format string, args ...any) *ParsingError {
	return &ParsingError{Msg: fmt.Sprintf(format, args...)}
}

func (e *ParsingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ui parsing: %s: %v", e.Msg, e.Err)
	}
	return "ui parsing: " + e.Msg
}

func (e *ParsingError) Unwrap() error {
	return e.Err
}

// IncompatibleError reports a component or template that produced a
// category other than the one expected at the call site.
type IncompatibleError struct {
	// Subject identifies the element or template, e.g.
	// "component 'label' with id 'title'" or "template 'card'".
	Subject string
	// Template is true when Subject names a template expansion.
	Template bool
	// Expected is the category required by the caller.
	Expected string
	// Actual is the category that was produced.
	Actual string
}

func (e *IncompatibleError) Error() string {
	if e.Template {
		return fmt.Sprintf("expected %s to expand into a %s, but it expanded into a %s", e.Subject, e.Expected, e.Actual)
	}
	return fmt.Sprintf("expected %s to be a %s, but it is a %s", e.Subject, e.Expected, e.Actual)
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "spec.ParseComponent").
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

// ErrorHandler receives errors reported by the uispec packages.
type ErrorHandler interface {
	// HandleError is called when an operation fails at a reporting boundary.
	HandleError(err *SpecError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
