// File: decimal.go
// Title: Decimal Predicates
// Description: Sign and range checks for arbitrary precision numbers such as
//              *big.Rat, *big.Float and *big.Int.
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

// Decimal is implemented by arbitrary precision number types that compare
// against themselves.
type Decimal[D any] interface {
	Cmp(D) int
	Sign() int
}

// IsPositiveDecimal fails when the value is greater than zero.
func IsPositiveDecimal[D Decimal[D]](ref capture.Reference[D], opts ...Option) error {
	return checkDecimal(ref, func(v D) bool { return v.Sign() > 0 }, "is positive", opts)
}

// IsNegativeDecimal fails when the value is lower than zero.
func IsNegativeDecimal[D Decimal[D]](ref capture.Reference[D], opts ...Option) error {
	return checkDecimal(ref, func(v D) bool { return v.Sign() < 0 }, "is negative", opts)
}

// IsPositiveOrZeroDecimal fails when the value is greater than or equal to zero.
func IsPositiveOrZeroDecimal[D Decimal[D]](ref capture.Reference[D], opts ...Option) error {
	return checkDecimal(ref, func(v D) bool { return v.Sign() >= 0 }, "is positive or zero", opts)
}

// IsNegativeOrZeroDecimal fails when the value is lower than or equal to zero.
func IsNegativeOrZeroDecimal[D Decimal[D]](ref capture.Reference[D], opts ...Option) error {
	return checkDecimal(ref, func(v D) bool { return v.Sign() <= 0 }, "is lower or equal to zero", opts)
}

// IsGreaterThanDecimal fails when the value is strictly greater than limit.
// A nil limit is reported as KindArgumentNull for "limit".
func IsGreaterThanDecimal[D Decimal[D]](ref capture.Reference[D], limit D, opts ...Option) error {
	if isNil(limit) {
		return nilLimit()
	}
	return checkDecimal(ref, func(v D) bool { return v.Cmp(limit) > 0 }, fmt.Sprintf("is greater than %v", limit), opts)
}

// IsLowerThanDecimal fails when the value is strictly lower than limit.
// A nil limit is reported as KindArgumentNull for "limit".
func IsLowerThanDecimal[D Decimal[D]](ref capture.Reference[D], limit D, opts ...Option) error {
	if isNil(limit) {
		return nilLimit()
	}
	return checkDecimal(ref, func(v D) bool { return v.Cmp(limit) < 0 }, fmt.Sprintf("is lower than %v", limit), opts)
}

func checkDecimal[D Decimal[D]](ref capture.Reference[D], violated func(D) bool, condition string, opts []Option) error {
	meta, err := ref.Resolve()
	if err != nil {
		return err
	}

	s := newSettings(opts)
	if isNil(meta.Value) {
		return s.fail(twerror.KindArgumentNull, meta.Name, "is null", nil)
	}
	if !violated(meta.Value) {
		return nil
	}
	return s.fail(twerror.KindArgumentOutOfRange, meta.Name, condition, meta.Value)
}

// The limit is not captured, so message and kind overrides do not apply to it
func nilLimit() error {
	return twerror.NewArgumentNull("limit", "limit is null")
}
