package fluent

import (
	"errors"
	"fmt"
)

// Resolution diagnostics. They are reported wrapped in *Error and never
// abort a formatting call.
var (
	ErrUnknownVariable       = errors.New("fluent: unknown variable")
	ErrUnknownMessage        = errors.New("fluent: unknown message")
	ErrUnknownTerm           = errors.New("fluent: unknown term")
	ErrUnknownAttribute      = errors.New("fluent: unknown attribute")
	ErrUnknownFunction       = errors.New("fluent: unknown function")
	ErrCyclicReference       = errors.New("fluent: cyclic reference")
	ErrTooManyPlaceables     = errors.New("fluent: too many placeables")
	ErrMissingDefaultVariant = errors.New("fluent: missing default variant")
	ErrNoValue               = errors.New("fluent: message has no value")
	ErrFormatterConstruction = errors.New("fluent: formatter construction failed")
)

// Construction errors returned by Bundle setup calls.
var (
	ErrDuplicateEntryID      = errors.New("fluent: duplicate entry id")
	ErrDuplicateFunctionName = errors.New("fluent: duplicate function name")
)

// ErrMissingMessage indicates that no bundle in a localization holds the id.
var ErrMissingMessage = errors.New("fluent: missing message")

// ErrResourceNotFound is returned by a ResourceLoader when a locale has no
// source for a resource id.
var ErrResourceNotFound = errors.New("fluent: resource not found")

// Error carries a diagnostic kind and the reference it was raised for.
type Error struct {
	Kind error
	Ref  string
}

func (e *Error) Error() string {
	if e == nil || e.Kind == nil {
		return "fluent: error"
	}
	if e.Ref == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Ref)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Kind
}

func newError(kind error, ref string) *Error {
	return &Error{Kind: kind, Ref: ref}
}
