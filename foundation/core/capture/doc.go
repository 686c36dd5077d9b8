// Package capture resolves a reference to a named value into its name and value.
//
// Package: capture
// Title: Name-Value Capture
// Description: A Reference wraps a zero-argument accessor over exactly one
//              named storage location (a variable, parameter or field). Resolving
//              it yields Metadata holding the location's source name and the
//              accessor's result, so guard clauses can report "count is negative"
//              without the caller repeating "count" as a string.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
//
// Three constructors are available:
//
//	capture.Of(func() int { return count })         // name read from the call-site source
//	capture.Named("count", func() int { return count }) // explicit name, deferred value
//	capture.Value("count", count)                   // explicit name, value already evaluated
//
// Of finds the function literal through the runtime symbol table and parses
// the source file it was compiled from. That file must still exist at the
// recorded path, so binaries built with -trimpath or shipped without sources
// should use Named or Value. The runtime only records the line of a literal,
// so when several literals are passed to Of on one line they must all read
// the same location. Literals given to other functions on that line, such
// as a clock, are ignored.
//
// Accepted shapes are a plain identifier or a selector chain rooted at one
// (cfg.Server.Port), optionally parenthesised. Selectors are meant to be
// fields; a method value such as obj.Close has the same syntax and is
// accepted too, since the source is read without type information. Calls,
// indexing, slicing, dereferences, literals, operators and predeclared
// constants are rejected with a *ShapeError before the accessor runs. AccessorName, NameAtLine and
// CheckName expose the same rules to static tooling.
//
// Nothing is cached: each Of call parses the file again and each Resolve
// invokes the accessor once.
package capture
