// File: throwif_test.go
// Title: Predicate Tests
// Description: Table-driven tests for every predicate, the message and kind
//              options and the propagation of capture errors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test implementation

package throwif_test

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/throwif/foundation/core/capture"
	twerror "github.com/msto63/throwif/foundation/core/error"
	"github.com/msto63/throwif/foundation/core/throwif"
)

// requireGuardError asserts err is a guard error of the given kind and message
func requireGuardError(t *testing.T, err error, kind twerror.Kind, message string) *twerror.Error {
	t.Helper()
	require.Error(t, err)

	var guardErr *twerror.Error
	require.True(t, errors.As(err, &guardErr), "expected *twerror.Error, got %T: %v", err, err)
	assert.Equal(t, kind, guardErr.Kind())
	assert.Equal(t, message, guardErr.Error())
	return guardErr
}

func TestIsNull(t *testing.T) {
	var (
		nilPtr   *int
		nilMap   map[string]int
		nilSlice []string
		nilFunc  func()
		nilChan  chan int
		value    = 5
	)

	tests := []struct {
		name  string
		check func() error
		fails bool
	}{
		{"nil pointer", func() error { return throwif.IsNull(capture.Value("ptr", nilPtr)) }, true},
		{"nil map", func() error { return throwif.IsNull(capture.Value("ptr", nilMap)) }, true},
		{"nil slice", func() error { return throwif.IsNull(capture.Value("ptr", nilSlice)) }, true},
		{"nil func", func() error { return throwif.IsNull(capture.Value("ptr", nilFunc)) }, true},
		{"nil chan", func() error { return throwif.IsNull(capture.Value("ptr", nilChan)) }, true},
		{"nil interface", func() error { return throwif.IsNull(capture.Value[error]("ptr", nil)) }, true},
		{"nil any", func() error { return throwif.IsNull(capture.Value[any]("ptr", nil)) }, true},
		{"pointer", func() error { return throwif.IsNull(capture.Value("ptr", &value)) }, false},
		{"empty slice", func() error { return throwif.IsNull(capture.Value("ptr", []string{})) }, false},
		{"non-nillable", func() error { return throwif.IsNull(capture.Value("ptr", 0)) }, false},
		{"empty string", func() error { return throwif.IsNull(capture.Value("ptr", "")) }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.check()
			if !tt.fails {
				assert.NoError(t, err)
				return
			}
			guardErr := requireGuardError(t, err, twerror.KindArgumentNull, "ptr is null")
			assert.Equal(t, "ptr", guardErr.ParamName())
			assert.ErrorIs(t, err, twerror.ErrArgumentNull)
		})
	}
}

func TestIsDefault(t *testing.T) {
	type point struct{ X, Y int }

	assert.NoError(t, throwif.IsDefault(capture.Value("n", 1)))
	assert.NoError(t, throwif.IsDefault(capture.Value("s", "x")))
	assert.NoError(t, throwif.IsDefault(capture.Value("p", point{X: 1})))

	zeros := []error{
		throwif.IsDefault(capture.Value("value", 0)),
		throwif.IsDefault(capture.Value("value", "")),
		throwif.IsDefault(capture.Value("value", point{})),
		throwif.IsDefault(capture.Value("value", time.Time{})),
		throwif.IsDefault(capture.Value[*int]("value", nil)),
	}
	for i, err := range zeros {
		requireGuardError(t, err, twerror.KindArgumentInvalid, "value is equal to its default value")
		assert.ErrorIs(t, err, twerror.ErrArgumentInvalid, "case %d", i)
	}
}

func TestIsNullOrEmpty(t *testing.T) {
	assert.NoError(t, throwif.IsNullOrEmpty(capture.Value("name", "a")))
	assert.NoError(t, throwif.IsNullOrEmpty(capture.Value("name", " ")))

	err := throwif.IsNullOrEmpty(capture.Value("name", ""))
	requireGuardError(t, err, twerror.KindArgumentNull, "name is null or empty")

	type label string
	err = throwif.IsNullOrEmpty(capture.Value("tag", label("")))
	requireGuardError(t, err, twerror.KindArgumentNull, "tag is null or empty")
}

func TestIsNullOrWhiteSpace(t *testing.T) {
	tests := []struct {
		input string
		fails bool
	}{
		{"", true},
		{" ", true},
		{"\t\r\n ", true},
		{"  ", true},
		{"a", false},
		{"  a  ", false},
	}

	for _, tt := range tests {
		t.Run(strings.ReplaceAll(tt.input, " ", "_"), func(t *testing.T) {
			err := throwif.IsNullOrWhiteSpace(capture.Value("host", tt.input))
			if !tt.fails {
				assert.NoError(t, err)
				return
			}
			requireGuardError(t, err, twerror.KindArgumentNull,
				"host is null, empty or consists only of white-space characters")
		})
	}
}

func TestIsTrueIsFalse(t *testing.T) {
	assert.NoError(t, throwif.IsTrue(capture.Value("dryRun", false)))
	assert.NoError(t, throwif.IsFalse(capture.Value("enabled", true)))

	err := throwif.IsTrue(capture.Value("dryRun", true))
	requireGuardError(t, err, twerror.KindArgumentInvalid, "dryRun is true")

	err = throwif.IsFalse(capture.Value("enabled", false))
	requireGuardError(t, err, twerror.KindArgumentInvalid, "enabled is false")
}

func TestSignPredicates(t *testing.T) {
	type check func(capture.Reference[int], ...throwif.Option) error

	tests := []struct {
		name      string
		check     check
		condition string
		failing   []int
		passing   []int
	}{
		{"IsPositive", throwif.IsPositive[int], "is positive", []int{1, 100}, []int{0, -1}},
		{"IsNegative", throwif.IsNegative[int], "is negative", []int{-1, -100}, []int{0, 1}},
		{"IsPositiveOrZero", throwif.IsPositiveOrZero[int], "is positive or zero", []int{0, 1}, []int{-1}},
		{"IsNegativeOrZero", throwif.IsNegativeOrZero[int], "is lower or equal to zero", []int{0, -1}, []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, v := range tt.passing {
				assert.NoError(t, tt.check(capture.Value("count", v)), "value %d", v)
			}
			for _, v := range tt.failing {
				err := tt.check(capture.Value("count", v))
				guardErr := requireGuardError(t, err, twerror.KindArgumentOutOfRange, "count "+tt.condition)

				actual, ok := guardErr.ActualValue()
				assert.True(t, ok)
				assert.Equal(t, v, actual)
				assert.Equal(t, "count", guardErr.ParamName())
			}
		})
	}
}

func TestSignPredicates_OtherNumberTypes(t *testing.T) {
	assert.Error(t, throwif.IsNegative(capture.Value("delta", int8(-1))))
	assert.Error(t, throwif.IsPositive(capture.Value("ratio", 0.001)))
	assert.NoError(t, throwif.IsNegative(capture.Value("size", uint64(0))))
	assert.Error(t, throwif.IsNegativeOrZero(capture.Value("size", uint(0))))
	assert.NoError(t, throwif.IsPositive(capture.Value("ratio", float32(-0.5))))
}

func TestIsNegativeOrZero_Duration(t *testing.T) {
	err := throwif.IsNegativeOrZero(capture.Value("timeout", time.Duration(0)))
	guardErr := requireGuardError(t, err, twerror.KindArgumentOutOfRange, "timeout is lower or equal to zero")

	actual, _ := guardErr.ActualValue()
	assert.Equal(t, time.Duration(0), actual)

	assert.Error(t, throwif.IsNegativeOrZero(capture.Value("timeout", -time.Second)))
	assert.NoError(t, throwif.IsNegativeOrZero(capture.Value("timeout", time.Nanosecond)))
}

func TestIsGreaterThan(t *testing.T) {
	assert.NoError(t, throwif.IsGreaterThan(capture.Value("x", 9), 10))
	assert.NoError(t, throwif.IsGreaterThan(capture.Value("x", 10), 10))

	err := throwif.IsGreaterThan(capture.Value("x", 11), 10)
	requireGuardError(t, err, twerror.KindArgumentOutOfRange, "x is greater than 10")

	err = throwif.IsGreaterThan(capture.Value("wait", 2*time.Second), time.Second)
	requireGuardError(t, err, twerror.KindArgumentOutOfRange, "wait is greater than 1s")
}

func TestIsLowerThan(t *testing.T) {
	assert.NoError(t, throwif.IsLowerThan(capture.Value("x", 11), 10))
	assert.NoError(t, throwif.IsLowerThan(capture.Value("x", 10), 10))

	err := throwif.IsLowerThan(capture.Value("x", 9), 10)
	requireGuardError(t, err, twerror.KindArgumentOutOfRange, "x is lower than 10")

	err = throwif.IsLowerThan(capture.Value("ratio", 0.25), 0.5)
	requireGuardError(t, err, twerror.KindArgumentOutOfRange, "ratio is lower than 0.5")
}

func TestIsPositive_MatchesGreaterThanZero(t *testing.T) {
	for _, v := range []int{-2, -1, 0, 1, 2} {
		ref := capture.Value("n", v)
		positive := throwif.IsPositive(ref) != nil
		greater := throwif.IsGreaterThan(ref, 0) != nil
		assert.Equal(t, greater, positive, "value %d", v)
	}
}

func TestDecimalPredicates(t *testing.T) {
	half := big.NewRat(1, 2)
	zero := new(big.Rat)
	minus := big.NewRat(-3, 4)

	assert.Error(t, throwif.IsPositiveDecimal(capture.Value("price", half)))
	assert.NoError(t, throwif.IsPositiveDecimal(capture.Value("price", zero)))

	assert.Error(t, throwif.IsNegativeDecimal(capture.Value("price", minus)))
	assert.NoError(t, throwif.IsNegativeDecimal(capture.Value("price", zero)))

	assert.Error(t, throwif.IsPositiveOrZeroDecimal(capture.Value("price", zero)))
	assert.NoError(t, throwif.IsPositiveOrZeroDecimal(capture.Value("price", minus)))

	err := throwif.IsNegativeOrZeroDecimal(capture.Value("price", zero))
	guardErr := requireGuardError(t, err, twerror.KindArgumentOutOfRange, "price is lower or equal to zero")
	actual, ok := guardErr.ActualValue()
	assert.True(t, ok)
	assert.Same(t, zero, actual)
}

func TestDecimalLimits(t *testing.T) {
	one := big.NewInt(1)
	two := big.NewInt(2)

	assert.NoError(t, throwif.IsGreaterThanDecimal(capture.Value("qty", one), one))
	err := throwif.IsGreaterThanDecimal(capture.Value("qty", two), one)
	requireGuardError(t, err, twerror.KindArgumentOutOfRange, "qty is greater than 1")

	assert.NoError(t, throwif.IsLowerThanDecimal(capture.Value("qty", two), two))
	err = throwif.IsLowerThanDecimal(capture.Value("qty", one), two)
	requireGuardError(t, err, twerror.KindArgumentOutOfRange, "qty is lower than 2")

	amount := big.NewFloat(1.5)
	err = throwif.IsLowerThanDecimal(capture.Value("amount", amount), big.NewFloat(2))
	requireGuardError(t, err, twerror.KindArgumentOutOfRange, "amount is lower than 2")
}

func TestDecimalNil(t *testing.T) {
	var price *big.Rat

	err := throwif.IsPositiveDecimal(capture.Value("price", price))
	guardErr := requireGuardError(t, err, twerror.KindArgumentNull, "price is null")
	assert.Equal(t, "price", guardErr.ParamName())

	err = throwif.IsGreaterThanDecimal(capture.Value("price", big.NewRat(1, 1)), nil)
	guardErr = requireGuardError(t, err, twerror.KindArgumentNull, "limit is null")
	assert.Equal(t, "limit", guardErr.ParamName())
}

func TestTemporalPredicates(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	clock := throwif.WithClock(func() time.Time { return now })

	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	err := throwif.IsInThePast(capture.Value("deadline", past), clock)
	guardErr := requireGuardError(t, err, twerror.KindArgumentInvalid, "deadline is in the past")
	_, ok := guardErr.ActualValue()
	assert.False(t, ok)

	assert.NoError(t, throwif.IsInThePast(capture.Value("deadline", now), clock))
	assert.NoError(t, throwif.IsInThePast(capture.Value("deadline", future), clock))

	err = throwif.IsInTheFuture(capture.Value("birthday", future), clock)
	requireGuardError(t, err, twerror.KindArgumentInvalid, "birthday is in the future")

	assert.NoError(t, throwif.IsInTheFuture(capture.Value("birthday", now), clock))
	assert.NoError(t, throwif.IsInTheFuture(capture.Value("birthday", past), clock))
}

func TestTemporalPredicates_ClockOnSameLine(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	deadline := now.Add(-time.Hour)

	err := throwif.IsInThePast(capture.Of(func() time.Time { return deadline }), throwif.WithClock(func() time.Time { return now }))
	guardErr := requireGuardError(t, err, twerror.KindArgumentInvalid, "deadline is in the past")
	assert.Equal(t, "deadline", guardErr.ParamName())
}

func TestTemporalPredicates_DefaultClock(t *testing.T) {
	assert.Error(t, throwif.IsInThePast(capture.Value("start", time.Now().Add(-time.Hour))))
	assert.Error(t, throwif.IsInTheFuture(capture.Value("start", time.Now().Add(time.Hour))))
	assert.Error(t, throwif.IsInTheFuture(capture.Value("start", time.Now().Add(time.Hour)), throwif.WithClock(nil)))
}

func TestIsEqualTo(t *testing.T) {
	status := "open"

	err := throwif.IsEqualTo(capture.Of(func() string { return status }), "open")
	guardErr := requireGuardError(t, err, twerror.KindArgumentOutOfRange, "status is not equal to open")
	actual, _ := guardErr.ActualValue()
	assert.Equal(t, "open", actual)

	assert.NoError(t, throwif.IsEqualTo(capture.Value("status", "closed"), "open"))
	assert.Error(t, throwif.IsEqualTo(capture.Value("retries", 3), 3))
}

func TestIsEqualTo_UncomparableDynamicValues(t *testing.T) {
	type holder struct{ V any }

	tests := []struct {
		name  string
		value any
		test  any
		fails bool
	}{
		{"equal slices", any([]int{1}), any([]int{1}), true},
		{"different slices", any([]int{1}), any([]int{2}), false},
		{"slice and int", any([]int{1}), any(1), false},
		{"int and slice", any(1), any([]int{1}), false},
		{"equal maps", any(map[string]int{"a": 1}), any(map[string]int{"a": 1}), true},
		{"nil and slice", nil, any([]int{}), false},
		{"both nil", nil, nil, true},
		{"struct holding slices", holder{V: []int{1}}, holder{V: []int{1}}, true},
		{"struct holding different slices", holder{V: []int{1}}, holder{V: []int{3}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() {
				err = throwif.IsEqualTo(capture.Value("v", tt.value), tt.test)
			})
			if !tt.fails {
				assert.NoError(t, err)
				return
			}
			requireGuardError(t, err, twerror.KindArgumentOutOfRange, fmt.Sprintf("v is not equal to %v", tt.test))
		})
	}
}

func TestWithMessage(t *testing.T) {
	err := throwif.IsNegative(capture.Value("balance", -5), throwif.WithMessage("balance must not drop below zero"))
	requireGuardError(t, err, twerror.KindArgumentOutOfRange, "balance must not drop below zero")

	err = throwif.IsTrue(capture.Value("flag", true), throwif.WithMessage(""))
	requireGuardError(t, err, twerror.KindArgumentInvalid, "")

	// Overrides only affect the error, not the outcome
	assert.NoError(t, throwif.IsNegative(capture.Value("balance", 5), throwif.WithMessage("unused")))
}

func TestWithKind(t *testing.T) {
	err := throwif.IsNull(capture.Value[*int]("ptr", nil), throwif.WithKind(twerror.KindArgumentInvalid))
	guardErr := requireGuardError(t, err, twerror.KindArgumentInvalid, "ptr is null")
	assert.Equal(t, "ptr", guardErr.ParamName())

	err = throwif.IsNegative(capture.Value("n", -1), throwif.WithKind(twerror.KindGeneric))
	guardErr = requireGuardError(t, err, twerror.KindGeneric, "n is negative")
	assert.Empty(t, guardErr.ParamName())
	_, ok := guardErr.ActualValue()
	assert.False(t, ok)

	err = throwif.IsNegative(capture.Value("n", -1), throwif.WithKind(twerror.KindArgumentNull), throwif.WithMessage("custom"))
	requireGuardError(t, err, twerror.KindArgumentNull, "custom")
}

func TestWithKind_Unsupported(t *testing.T) {
	err := throwif.IsTrue(capture.Value("flag", true), throwif.WithKind(twerror.Kind(42)))
	require.Error(t, err)
	assert.ErrorIs(t, err, twerror.ErrUnsupportedKind)

	var unsupported *twerror.UnsupportedKindError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, twerror.Kind(42), unsupported.Kind)

	// No violation, no construction
	assert.NoError(t, throwif.IsTrue(capture.Value("flag", false), throwif.WithKind(twerror.Kind(42))))
}

func TestShapeErrorsPropagate(t *testing.T) {
	calls := 0
	bad := capture.Named("items[0]", func() int {
		calls++
		return -1
	})

	checks := []error{
		throwif.IsNegative(bad),
		throwif.IsGreaterThan(bad, 0),
		throwif.IsNull(bad),
		throwif.IsDefault(bad),
		throwif.IsEqualTo(bad, -1),
	}
	for _, err := range checks {
		assert.ErrorIs(t, err, capture.ErrShape)
		_, isGuard := twerror.KindOf(err)
		assert.False(t, isGuard)
	}
	assert.Equal(t, 0, calls)

	var zero capture.Reference[string]
	assert.ErrorIs(t, throwif.IsNullOrEmpty(zero), capture.ErrShape)
}

func TestOfIntegration(t *testing.T) {
	type config struct{ Port int }
	cfg := config{Port: 0}

	err := throwif.IsNegativeOrZero(capture.Of(func() int { return cfg.Port }))
	guardErr := requireGuardError(t, err, twerror.KindArgumentOutOfRange, "cfg.Port is lower or equal to zero")
	assert.Equal(t, "cfg.Port", guardErr.ParamName())

	frames := guardErr.StackTrace()
	require.NotEmpty(t, frames)
	assert.True(t, strings.HasSuffix(frames[0].Function, "TestOfIntegration"), frames[0].Function)
}

func TestAccessorEvaluatedOnce(t *testing.T) {
	calls := 0
	ref := capture.Named("count", func() int {
		calls++
		return -1
	})

	require.Error(t, throwif.IsNegative(ref))
	assert.Equal(t, 1, calls)
}
