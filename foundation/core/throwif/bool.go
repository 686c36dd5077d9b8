// File: bool.go
// Title: Boolean Predicates
// Description: Guards on boolean flags.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package throwif

import (
	"github.com/msto63/throwif/foundation/core/capture"
	twerror "github.com/msto63/throwif/foundation/core/error"
)

// IsTrue fails with KindArgumentInvalid when the value is true.
func IsTrue[B ~bool](ref capture.Reference[B], opts ...Option) error {
	return checkBool(ref, true, "is true", opts)
}

// IsFalse fails with KindArgumentInvalid when the value is false.
func IsFalse[B ~bool](ref capture.Reference[B], opts ...Option) error {
	return checkBool(ref, false, "is false", opts)
}

func checkBool[B ~bool](ref capture.Reference[B], violation bool, condition string, opts []Option) error {
	meta, err := ref.Resolve()
	if err != nil {
		return err
	}
	if bool(meta.Value) != violation {
		return nil
	}
	return newSettings(opts).fail(twerror.KindArgumentInvalid, meta.Name, condition, meta.Value)
}
