// File: reference.go
// Title: Reference and Equality Predicates
// Description: Predicates that apply to values of any type: nil, zero value
//              and equality checks.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package throwif

import (
	"fmt"
	"reflect"

	"github.com/msto63/throwif/foundation/core/capture"
	twerror "github.com/msto63/throwif/foundation/core/error"
)

// IsNull fails with KindArgumentNull when the value is nil. Only pointers,
// maps, slices, channels, functions and interfaces can be nil; any other
// value passes.
func IsNull[T any](ref capture.Reference[T], opts ...Option) error {
	meta, err := ref.Resolve()
	if err != nil {
		return err
	}
	if !isNil(meta.Value) {
		return nil
	}
	return newSettings(opts).fail(twerror.KindArgumentNull, meta.Name, "is null", meta.Value)
}

// IsDefault fails with KindArgumentInvalid when the value is the zero value
// of its type.
func IsDefault[T any](ref capture.Reference[T], opts ...Option) error {
	meta, err := ref.Resolve()
	if err != nil {
		return err
	}
	if !isZero(meta.Value) {
		return nil
	}
	return newSettings(opts).fail(twerror.KindArgumentInvalid, meta.Name, "is equal to its default value", meta.Value)
}

// IsEqualTo fails with KindArgumentOutOfRange when the value equals
// testValue. The default message reads "{name} is not equal to {testValue}".
func IsEqualTo[T comparable](ref capture.Reference[T], testValue T, opts ...Option) error {
	meta, err := ref.Resolve()
	if err != nil {
		return err
	}
	if !equal(meta.Value, testValue) {
		return nil
	}
	return newSettings(opts).fail(twerror.KindArgumentOutOfRange, meta.Name,
		fmt.Sprintf("is not equal to %v", testValue), meta.Value)
}

// equal compares with == unless an interface, possibly nested in a struct
// or array, holds an uncomparable dynamic value that == would panic on
func equal[T comparable](a, b T) bool {
	if !comparableValue(a) || !comparableValue(b) {
		return reflect.DeepEqual(a, b)
	}
	return a == b
}

func comparableValue(value interface{}) bool {
	v := reflect.ValueOf(value)
	return !v.IsValid() || v.Comparable()
}

func isNil(value interface{}) bool {
	v := reflect.ValueOf(value)
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}

func isZero(value interface{}) bool {
	v := reflect.ValueOf(value)
	if !v.IsValid() {
		return true
	}
	return v.IsZero()
}
