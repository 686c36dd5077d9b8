// File: codes.go
// Title: Error Kinds and Codes
// Description: Defines the error kinds a guard can report and the stable string
//              codes attached to them. Kinds select which fields an error
//              carries; codes are what ends up in logs and API responses.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Reduced to argument error kinds for guard clauses

package error

import (
	"errors"
	"fmt"
)

// Code represents a structured error code for categorizing errors
type Code string

// Codes for every supported kind
const (
	CodeGeneric            Code = "GENERIC"
	CodeArgumentNull       Code = "ARGUMENT_NULL"
	CodeArgumentOutOfRange Code = "ARGUMENT_OUT_OF_RANGE"
	CodeArgumentInvalid    Code = "ARGUMENT_INVALID"
	CodeUnsupportedKind    Code = "UNSUPPORTED_KIND"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// Kind selects the shape of the error built by Construct.
type Kind int

const (
	// KindGeneric carries a message only.
	KindGeneric Kind = iota

	// KindArgumentNull reports a value that is absent where presence is required.
	// Carries the parameter name.
	KindArgumentNull

	// KindArgumentOutOfRange reports a value outside an accepted range or set.
	// Carries the parameter name and the actual value.
	KindArgumentOutOfRange

	// KindArgumentInvalid reports a value failing a structural or logical check
	// that is neither presence nor range. Carries the parameter name.
	KindArgumentInvalid
)

// Sentinels matched by errors.Is against an *Error of the same kind.
var (
	ErrGeneric            = errors.New("generic error")
	ErrArgumentNull       = errors.New("argument is null")
	ErrArgumentOutOfRange = errors.New("argument is out of range")
	ErrArgumentInvalid    = errors.New("argument is invalid")
	ErrUnsupportedKind    = errors.New("unsupported error kind")
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindGeneric:
		return "Generic"
	case KindArgumentNull:
		return "ArgumentNull"
	case KindArgumentOutOfRange:
		return "ArgumentOutOfRange"
	case KindArgumentInvalid:
		return "ArgumentInvalid"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// IsValid reports whether Construct knows how to build k.
func (k Kind) IsValid() bool {
	return k >= KindGeneric && k <= KindArgumentInvalid
}

// Code returns the error code for the kind
func (k Kind) Code() Code {
	switch k {
	case KindGeneric:
		return CodeGeneric
	case KindArgumentNull:
		return CodeArgumentNull
	case KindArgumentOutOfRange:
		return CodeArgumentOutOfRange
	case KindArgumentInvalid:
		return CodeArgumentInvalid
	default:
		return CodeUnsupportedKind
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindGeneric:
		return ErrGeneric
	case KindArgumentNull:
		return ErrArgumentNull
	case KindArgumentOutOfRange:
		return ErrArgumentOutOfRange
	case KindArgumentInvalid:
		return ErrArgumentInvalid
	default:
		return ErrUnsupportedKind
	}
}

// UnsupportedKindError is returned by Construct for a kind it cannot build.
// It signals a programming defect in the caller, not a data error.
type UnsupportedKindError struct {
	Kind Kind
}

// Error implements the error interface
func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("unsupported error kind %s", e.Kind)
}

// Unwrap returns ErrUnsupportedKind so errors.Is matches the sentinel.
func (e *UnsupportedKindError) Unwrap() error {
	return ErrUnsupportedKind
}
