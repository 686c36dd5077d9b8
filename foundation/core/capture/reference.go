// File: reference.go
// Title: Captured References
// Description: Implements Reference, the deferred handle on a named value, its
//              constructors and its resolution into Metadata.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package capture

// Reference is a deferred handle on one named value of type T.
// The zero Reference is invalid and fails to resolve.
type Reference[T any] struct {
	name     string
	accessor func() T

	// Shape problem found at construction, reported by Resolve
	err error
}

// Metadata is a resolved Reference.
type Metadata[T any] struct {
	Name  string
	Value T
}

// Of captures the location read by accessor, taking its name from the
// source of the function literal. The literal must have the form
// func() T { return <location> }, where location is a variable or a field
// reached through a selector chain. A method value (obj.Method) cannot be
// told apart from a field without type information and is accepted as well;
// its name is then the method's, not a storage location.
func Of[T any](accessor func() T) Reference[T] {
	if accessor == nil {
		return Reference[T]{err: &ShapeError{Reason: "accessor is nil"}}
	}

	name, err := nameFromSource(accessor)
	if err != nil {
		return Reference[T]{err: err}
	}
	return Reference[T]{name: name, accessor: accessor}
}

// Named captures accessor under an explicit name. The accessor body is not
// inspected; name must be a plain identifier or selector chain.
func Named[T any](name string, accessor func() T) Reference[T] {
	if err := CheckName(name); err != nil {
		return Reference[T]{err: err}
	}
	if accessor == nil {
		return Reference[T]{err: &ShapeError{Expr: name, Reason: "accessor is nil"}}
	}
	return Reference[T]{name: name, accessor: accessor}
}

// Value captures an already evaluated value under an explicit name.
func Value[T any](name string, value T) Reference[T] {
	return Named(name, func() T { return value })
}

// Resolve returns the reference's name and the accessor's current result.
// A shape error is returned before the accessor is invoked; otherwise the
// accessor runs exactly once.
func (r Reference[T]) Resolve() (Metadata[T], error) {
	if r.err != nil {
		return Metadata[T]{}, r.err
	}
	if r.accessor == nil {
		return Metadata[T]{}, &ShapeError{Reason: "reference is not initialized"}
	}

	return Metadata[T]{
		Name:  r.name,
		Value: r.accessor(),
	}, nil
}

// Name returns the captured name, empty if construction failed.
func (r Reference[T]) Name() string {
	return r.name
}

// Err returns the construction error, if any.
func (r Reference[T]) Err() error {
	return r.err
}
