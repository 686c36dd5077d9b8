// File: temporal.go
// Title: Date and Time Predicates
// Description: Checks a point in time against the current time.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package throwif

import (
	"time"

	"github.com/msto63/throwif/foundation/core/capture"
	twerror "github.com/msto63/throwif/foundation/core/error"
)

// IsInThePast fails with KindArgumentInvalid when the value is before now.
// The clock defaults to time.Now; see WithClock.
func IsInThePast(ref capture.Reference[time.Time], opts ...Option) error {
	return checkTime(ref, time.Time.Before, "is in the past", opts)
}

// IsInTheFuture fails with KindArgumentInvalid when the value is after now.
func IsInTheFuture(ref capture.Reference[time.Time], opts ...Option) error {
	return checkTime(ref, time.Time.After, "is in the future", opts)
}

func checkTime(ref capture.Reference[time.Time], violated func(time.Time, time.Time) bool, condition string, opts []Option) error {
	meta, err := ref.Resolve()
	if err != nil {
		return err
	}

	s := newSettings(opts)
	if !violated(meta.Value, s.now()) {
		return nil
	}
	return s.fail(twerror.KindArgumentInvalid, meta.Name, condition, meta.Value)
}
