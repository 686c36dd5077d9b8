// File: error.go
// Title: Argument Error Implementation
// Description: Implements the Error type returned by guard clauses together with
//              one constructor per kind and the Construct dispatcher that picks
//              the constructor from a kind tag. Each constructor takes exactly
//              the fields its kind carries.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors
// - 2026-10-19 v0.2.0: Kind-based construction, parameter name and actual value

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// Error is a guard violation. Its message is returned verbatim by Error().
type Error struct {
	kind      Kind
	message   string
	paramName string

	// Only set for KindArgumentOutOfRange
	actualValue    interface{}
	hasActualValue bool

	stackTrace []StackFrame
}

// StackFrame represents a single frame in the stack trace
type StackFrame struct {
	Function string `json:"function"`
	File     string `json:"file"`
	Line     int    `json:"line"`
}

const (
	// MaxStackFrames limits the number of stack frames captured
	MaxStackFrames = 20

	// Frames from these packages are dropped from the top of the stack so the
	// first frame is the code that invoked the guard.
	libraryPrefix = "github.com/msto63/throwif/foundation/core/"
)

// NewGeneric creates an error that carries a message only.
func NewGeneric(message string) *Error {
	return &Error{
		kind:       KindGeneric,
		message:    message,
		stackTrace: captureStackTrace(),
	}
}

// NewArgumentNull creates an error for an absent value.
func NewArgumentNull(paramName, message string) *Error {
	return &Error{
		kind:       KindArgumentNull,
		message:    message,
		paramName:  paramName,
		stackTrace: captureStackTrace(),
	}
}

// NewArgumentOutOfRange creates an error for a value outside its accepted range.
func NewArgumentOutOfRange(paramName string, actualValue interface{}, message string) *Error {
	return &Error{
		kind:           KindArgumentOutOfRange,
		message:        message,
		paramName:      paramName,
		actualValue:    actualValue,
		hasActualValue: true,
		stackTrace:     captureStackTrace(),
	}
}

// NewArgumentInvalid creates an error for a value failing a logical check.
func NewArgumentInvalid(paramName, message string) *Error {
	return &Error{
		kind:       KindArgumentInvalid,
		message:    message,
		paramName:  paramName,
		stackTrace: captureStackTrace(),
	}
}

// Construct builds the error for kind, handing each constructor only the
// fields it takes: paramName is dropped for KindGeneric and actualValue is
// dropped for every kind except KindArgumentOutOfRange.
//
// An unknown kind yields an *UnsupportedKindError instead of a degenerate
// error. Construct never panics.
func Construct(kind Kind, message, paramName string, actualValue interface{}) error {
	switch kind {
	case KindGeneric:
		return NewGeneric(message)
	case KindArgumentNull:
		return NewArgumentNull(paramName, message)
	case KindArgumentOutOfRange:
		return NewArgumentOutOfRange(paramName, actualValue, message)
	case KindArgumentInvalid:
		return NewArgumentInvalid(paramName, message)
	default:
		return &UnsupportedKindError{Kind: kind}
	}
}

// Error implements the standard error interface
func (e *Error) Error() string {
	return e.message
}

// Is reports whether target is the sentinel for this error's kind
func (e *Error) Is(target error) bool {
	return target == e.kind.sentinel()
}

// Kind returns the error kind
func (e *Error) Kind() Kind {
	return e.kind
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.kind.Code()
}

// Message returns the error message
func (e *Error) Message() string {
	return e.message
}

// ParamName returns the name of the offending parameter, empty for KindGeneric
func (e *Error) ParamName() string {
	return e.paramName
}

// ActualValue returns the offending value. ok is false unless the kind is
// KindArgumentOutOfRange.
func (e *Error) ActualValue() (value interface{}, ok bool) {
	return e.actualValue, e.hasActualValue
}

// StackTrace returns the stack trace
func (e *Error) StackTrace() []StackFrame {
	result := make([]StackFrame, len(e.stackTrace))
	copy(result, e.stackTrace)
	return result
}

// String returns a detailed string representation of the error
func (e *Error) String() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("Error: %s", e.message))
	parts = append(parts, fmt.Sprintf("Kind: %s", e.kind))
	parts = append(parts, fmt.Sprintf("Code: %s", e.Code()))

	if e.paramName != "" {
		parts = append(parts, fmt.Sprintf("Parameter: %s", e.paramName))
	}

	if e.hasActualValue {
		parts = append(parts, fmt.Sprintf("Actual: %v", e.actualValue))
	}

	if len(e.stackTrace) > 0 {
		top := e.stackTrace[0]
		parts = append(parts, fmt.Sprintf("At: %s (%s:%d)", top.Function, top.File, top.Line))
	}

	return strings.Join(parts, "\n")
}

// MarshalJSON implements json.Marshaler for structured logging
func (e *Error) MarshalJSON() ([]byte, error) {
	data := map[string]interface{}{
		"message": e.message,
		"kind":    e.kind.String(),
		"code":    e.Code(),
	}

	if e.paramName != "" {
		data["param_name"] = e.paramName
	}

	if e.hasActualValue {
		// Values that cannot be encoded are logged by their formatted text
		if _, err := json.Marshal(e.actualValue); err == nil {
			data["actual_value"] = e.actualValue
		} else {
			data["actual_value"] = fmt.Sprintf("%v", e.actualValue)
		}
	}

	if len(e.stackTrace) > 0 {
		data["stack_trace"] = e.stackTrace
	}

	return json.Marshal(data)
}

// captureStackTrace records the caller's stack, skipping leading frames that
// belong to the library itself
func captureStackTrace() []StackFrame {
	pcs := make([]uintptr, MaxStackFrames+16)
	n := runtime.Callers(3, pcs) // Skip Callers, captureStackTrace and the constructor
	frames := runtime.CallersFrames(pcs[:n])

	result := make([]StackFrame, 0, MaxStackFrames)
	leading := true
	for {
		frame, more := frames.Next()

		if leading && isLibraryFrame(frame) {
			if !more {
				break
			}
			continue
		}
		leading = false

		result = append(result, StackFrame{
			Function: frame.Function,
			File:     frame.File,
			Line:     frame.Line,
		})

		if !more || len(result) == MaxStackFrames {
			break
		}
	}

	return result
}

func isLibraryFrame(frame runtime.Frame) bool {
	return strings.HasPrefix(frame.Function, libraryPrefix) &&
		!strings.HasSuffix(frame.File, "_test.go")
}

// HasKind checks if an error is a guard error of a specific kind
func HasKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// KindOf returns the kind of the first *Error in err's chain
func KindOf(err error) (Kind, bool) {
	var guardErr *Error
	if errors.As(err, &guardErr) {
		return guardErr.kind, true
	}
	return 0, false
}
