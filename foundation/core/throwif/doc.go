// File: doc.go
// Title: Guard Clause Predicates
// Description: Package documentation for the predicate catalog.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

// Package throwif provides guard clauses: one function per predicate that
// resolves a captured reference and returns an error when the named
// condition holds.
//
// Basic usage:
//
//	func Listen(cfg Config) error {
//		if err := throwif.IsNegativeOrZero(capture.Of(func() int { return cfg.Port })); err != nil {
//			return err
//		}
//		if err := throwif.IsNullOrWhiteSpace(capture.Value("host", cfg.Host)); err != nil {
//			return err
//		}
//		...
//	}
//
// A violation yields a *twerror.Error whose kind depends on the predicate:
// KindArgumentNull for absent values, KindArgumentOutOfRange for numeric
// and equality checks (with the offending value attached) and
// KindArgumentInvalid for the rest. The default message is the resolved
// name followed by a description of the condition, for example
// "cfg.Port is lower or equal to zero".
//
// Every predicate accepts options:
//
//	throwif.IsTrue(capture.Value("dryRun", dryRun),
//		throwif.WithMessage("dry runs cannot publish"),
//		throwif.WithKind(twerror.KindGeneric))
//
// If the reference cannot be resolved the capture error is returned
// unchanged and the condition is not evaluated. Predicates are synchronous,
// keep no state between calls and never log.
package throwif
