// File: numeric.go
// Title: Numeric Predicates
// Description: Sign and range checks over built-in numeric types, including
//              time.Duration.
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

	"github.com/msto63/throwif/foundation/core/capture"
	twerror "github.com/msto63/throwif/foundation/core/error"
)

// Number is satisfied by every integer and floating point type, and by
// named types such as time.Duration built on them.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// IsPositive fails when the value is greater than zero.
func IsPositive[N Number](ref capture.Reference[N], opts ...Option) error {
	return checkNumber(ref, func(v N) bool { return v > 0 }, "is positive", opts)
}

// IsNegative fails when the value is lower than zero.
func IsNegative[N Number](ref capture.Reference[N], opts ...Option) error {
	return checkNumber(ref, func(v N) bool { return v < 0 }, "is negative", opts)
}

// IsPositiveOrZero fails when the value is greater than or equal to zero.
func IsPositiveOrZero[N Number](ref capture.Reference[N], opts ...Option) error {
	return checkNumber(ref, func(v N) bool { return v >= 0 }, "is positive or zero", opts)
}

// IsNegativeOrZero fails when the value is lower than or equal to zero.
// Use it to require a strictly positive count, port or timeout.
func IsNegativeOrZero[N Number](ref capture.Reference[N], opts ...Option) error {
	return checkNumber(ref, func(v N) bool { return v <= 0 }, "is lower or equal to zero", opts)
}

// IsGreaterThan fails when the value is strictly greater than limit.
func IsGreaterThan[N Number](ref capture.Reference[N], limit N, opts ...Option) error {
	return checkNumber(ref, func(v N) bool { return v > limit }, fmt.Sprintf("is greater than %v", limit), opts)
}

// IsLowerThan fails when the value is strictly lower than limit.
func IsLowerThan[N Number](ref capture.Reference[N], limit N, opts ...Option) error {
	return checkNumber(ref, func(v N) bool { return v < limit }, fmt.Sprintf("is lower than %v", limit), opts)
}

// All numeric violations are out of range and carry the actual value
func checkNumber[N Number](ref capture.Reference[N], violated func(N) bool, condition string, opts []Option) error {
	meta, err := ref.Resolve()
	if err != nil {
		return err
	}
	if !violated(meta.Value) {
		return nil
	}
	return newSettings(opts).fail(twerror.KindArgumentOutOfRange, meta.Name, condition, meta.Value)
}
