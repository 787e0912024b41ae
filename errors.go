package fluent

import (
	"errors"
	"fmt"
)

var (
	// Call-fatal lookup failures: Format and Compound return one of these
	// as their final error and produce no output at all.
	ErrMessageNotFound   = errors.New("fluent: message not found")
	ErrAttributeNotFound = errors.New("fluent: attribute not found")
	ErrNoValue           = errors.New("fluent: message has no value")

	// Construction and registration failures.
	ErrNilResource       = errors.New("fluent: resource cannot be nil")
	ErrNilFunction       = errors.New("fluent: function cannot be nil")
	ErrNilPluralRule     = errors.New("fluent: plural rule cannot be nil")
	ErrInvalidFunctionID = errors.New("fluent: invalid function id")

	// ErrMissingDefault reports a select expression without a default
	// variant; resolution falls back to the first variant.
	ErrMissingDefault = errors.New("fluent: select expression has no default variant")
)

// Kind names the namespace an identifier was looked up in.
type Kind string

const (
	KindMessage  Kind = "message"
	KindTerm     Kind = "term"
	KindFunction Kind = "function"
	KindVariable Kind = "variable"
)

// OverrideError reports a rejected duplicate registration. Registration is
// first-writer-wins: the existing entry stays and the entrant is discarded.
type OverrideError struct {
	Kind Kind
	ID   string
}

func (e *OverrideError) Error() string {
	return fmt.Sprintf("fluent: %s %q is already registered", e.Kind, e.ID)
}

// ReferenceError reports a placeable that addressed something unknown: a
// variable absent from the call arguments, an unregistered message, term or
// function, or a missing attribute. The resolver substitutes fallback text
// and keeps going. ID carries the referenced path without sigils, e.g.
// "brand.gender" for { -brand.gender }.
type ReferenceError struct {
	Kind Kind
	ID   string
}

func (e *ReferenceError) Error() string {
	switch e.Kind {
	case KindVariable:
		return fmt.Sprintf("fluent: unknown variable $%s", e.ID)
	case KindTerm:
		return fmt.Sprintf("fluent: unknown term -%s", e.ID)
	case KindFunction:
		return fmt.Sprintf("fluent: unknown function %s()", e.ID)
	default:
		return fmt.Sprintf("fluent: unknown message %s", e.ID)
	}
}

// CyclicReferenceError reports a message or term that, directly or through
// other references, re-entered its own resolution. The offending branch is
// cut and replaced with the originally requested path text. ID is the
// qualified identifier whose re-entry was refused, sigil included for terms.
type CyclicReferenceError struct {
	ID string
}

func (e *CyclicReferenceError) Error() string {
	return fmt.Sprintf("fluent: cyclic reference to %s", e.ID)
}

// NoValueError reports a bare reference to an entry that has attributes but
// no value. ID carries the reference text, sigil included for terms.
type NoValueError struct {
	ID string
}

func (e *NoValueError) Error() string {
	return fmt.Sprintf("fluent: %s has no value", e.ID)
}
