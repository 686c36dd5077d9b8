// File: strings.go
// Title: String Predicates
// Description: Emptiness checks for string values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package throwif

import (
	"strings"
	"unicode"

	"github.com/msto63/throwif/foundation/core/capture"
	twerror "github.com/msto63/throwif/foundation/core/error"
)

// IsNullOrEmpty fails with KindArgumentNull when the string has zero length.
func IsNullOrEmpty[S ~string](ref capture.Reference[S], opts ...Option) error {
	meta, err := ref.Resolve()
	if err != nil {
		return err
	}
	if len(meta.Value) > 0 {
		return nil
	}
	return newSettings(opts).fail(twerror.KindArgumentNull, meta.Name, "is null or empty", meta.Value)
}

// IsNullOrWhiteSpace fails with KindArgumentNull when the string is empty or
// contains only Unicode white space.
func IsNullOrWhiteSpace[S ~string](ref capture.Reference[S], opts ...Option) error {
	meta, err := ref.Resolve()
	if err != nil {
		return err
	}
	if strings.TrimFunc(string(meta.Value), unicode.IsSpace) != "" {
		return nil
	}
	return newSettings(opts).fail(twerror.KindArgumentNull, meta.Name,
		"is null, empty or consists only of white-space characters", meta.Value)
}
