// File: options.go
// Title: Predicate Options
// Description: Functional options shared by all predicates and the helper that
//              turns a violation into an error.
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

	twerror "github.com/msto63/throwif/foundation/core/error"
)

// Option configures a single predicate call.
type Option func(*settings)

type settings struct {
	message    string
	hasMessage bool

	kind    twerror.Kind
	hasKind bool

	now func() time.Time
}

// WithMessage replaces the default message. The text is used exactly as
// given, including the empty string.
func WithMessage(message string) Option {
	return func(s *settings) {
		s.message = message
		s.hasMessage = true
	}
}

// WithKind replaces the predicate's default error kind. A kind unknown to
// twerror.Construct makes the predicate return *twerror.UnsupportedKindError
// on violation.
func WithKind(kind twerror.Kind) Option {
	return func(s *settings) {
		s.kind = kind
		s.hasKind = true
	}
}

// WithClock sets the time source for IsInThePast and IsInTheFuture.
// A nil clock is ignored.
func WithClock(now func() time.Time) Option {
	return func(s *settings) {
		if now != nil {
			s.now = now
		}
	}
}

func newSettings(opts []Option) *settings {
	s := &settings{now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// fail builds the error for a violated condition
func (s *settings) fail(kind twerror.Kind, name, condition string, actual interface{}) error {
	message := name + " " + condition
	if s.hasMessage {
		message = s.message
	}
	if s.hasKind {
		kind = s.kind
	}
	return twerror.Construct(kind, message, name, actual)
}
