// Package error builds the errors returned by guard clauses.
//
// Package: error
// Title: Guard Error Construction
// Description: This package maps an error kind onto a concrete error value with
//              the fields that kind carries. Guard clauses never assemble errors
//              by hand; they hand a kind, message, parameter name and actual value
//              to Construct, which dispatches to the matching constructor.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Argument kinds, Construct dispatcher, gRPC status mapping
//
// Kinds and the fields they carry:
//
//	KindGeneric            message
//	KindArgumentNull       message, parameter name
//	KindArgumentOutOfRange message, parameter name, actual value
//	KindArgumentInvalid    message, parameter name
//
// Usage:
//
//	import twerror "github.com/msto63/throwif/foundation/core/error"
//
//	err := twerror.Construct(twerror.KindArgumentOutOfRange, "count is negative", "count", -1)
//	if errors.Is(err, twerror.ErrArgumentOutOfRange) {
//		// handle range errors
//	}
//
//	// Unknown kinds are reported, not silently built
//	err = twerror.Construct(twerror.Kind(42), "msg", "p", nil)
//	errors.Is(err, twerror.ErrUnsupportedKind) // true
//
// Errors implement GRPCStatus, so a gRPC handler may return them directly.
package error
