package fluent

import (
	"errors"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/fluent/ast"
)

// Function is a formatting function callable from placeables, e.g.
// { NUMBER($ratio, maximumFractionDigits: 2) }. It receives the already
// resolved positional and named arguments and returns the value to
// substitute; a nil result is treated as None. Functions must be pure with
// respect to their arguments and safe for concurrent use.
type Function func(positional []Value, named Args) Value

// Message is the result of Compound: the message value, when the message has
// one, and every attribute, each resolved independently.
type Message struct {
	Value      string
	HasValue   bool
	Attributes map[string]string
}

// Bundle is a set of messages, terms and functions for one locale, the unit
// an application formats translations through. Multi-locale applications
// hold one bundle per locale and route requests with NegotiateLocale.
//
// A bundle is mutable while it is being loaded: AddResource and AddFunction
// may be called freely from a single goroutine. Once handed to concurrent
// formatters it must be treated as frozen; Format, Compound and HasMessage
// never mutate it, so read-side calls need no locking.
type Bundle struct {
	// Locale fallback chain in preference order.
	locales []language.Tag

	// Formatting and plural-selection locale: the head of the chain.
	locale language.Tag

	// Plural categorization for select expressions.
	pluralRule PluralRule

	// Loaded messages, terms and functions, each in its own namespace.
	entries *registry
}

// Option configures a Bundle during construction.
type Option func(*Bundle) error

// New creates a Bundle with the given options. Without WithLocales the
// bundle formats for English.
func New(opts ...Option) (*Bundle, error) {
	b := &Bundle{
		locales:    []language.Tag{language.English},
		locale:     language.English,
		pluralRule: CLDRPluralRule,
		entries:    newRegistry(),
	}

	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	return b, nil
}

// WithLocales sets the bundle's locale fallback chain, most preferred first.
// Entries that do not parse as BCP 47 tags are dropped; if nothing usable
// remains the bundle falls back to English.
func WithLocales(locales ...string) Option {
	return func(b *Bundle) error {
		tags := parseLocales(locales)
		b.locales = tags
		b.locale = tags[0]
		return nil
	}
}

// WithResource loads a parsed resource during construction. Unlike
// AddResource it is strict: any duplicate entry fails construction.
func WithResource(res *ast.Resource) Option {
	return func(b *Bundle) error {
		return b.AddResource(res)
	}
}

// WithFunction registers a formatting function during construction.
func WithFunction(id string, fn Function) Option {
	return func(b *Bundle) error {
		return b.AddFunction(id, fn)
	}
}

// WithPluralRule replaces the CLDR plural rule used by select expressions.
func WithPluralRule(rule PluralRule) Option {
	return func(b *Bundle) error {
		if rule == nil {
			return ErrNilPluralRule
		}
		b.pluralRule = rule
		return nil
	}
}

// WithBuiltins registers the built-in formatting functions. Built-ins are
// opt-in so that a bundle's function table holds exactly what the caller
// put there.
func WithBuiltins() Option {
	return func(b *Bundle) error {
		return b.AddFunction("NUMBER", builtinNumber)
	}
}

// AddResource adds every message and term of res to the bundle. Loading is
// best-effort: entries whose id is already taken are rejected and reported
// while the rest are still inserted, so one duplicate does not discard a
// whole translation file. The returned error joins one OverrideError per
// rejected entry.
func (b *Bundle) AddResource(res *ast.Resource) error {
	if res == nil {
		return ErrNilResource
	}

	var errs []error
	for _, entry := range res.Entries {
		switch entry := entry.(type) {
		case *ast.Message:
			if err := b.entries.addMessage(entry); err != nil {
				errs = append(errs, err)
			}
		case *ast.Term:
			if err := b.entries.addTerm(entry); err != nil {
				errs = append(errs, err)
			}
		}
	}

	return errors.Join(errs...)
}

// functionID is the grammar for function identifiers.
var functionID = regexp.MustCompile(`^[A-Z][A-Z0-9_-]*$`)

// AddFunction makes fn callable from placeables under the given id. Ids are
// uppercase by convention and by grammar: a leading capital letter followed
// by capitals, digits, underscores or hyphens.
func (b *Bundle) AddFunction(id string, fn Function) error {
	if fn == nil {
		return ErrNilFunction
	}
	if !functionID.MatchString(id) {
		return fmt.Errorf("%w: %q", ErrInvalidFunctionID, id)
	}
	return b.entries.addFunction(id, fn)
}

// HasMessage reports whether a message with the given id is loaded. Terms
// do not count; they are not directly formattable.
func (b *Bundle) HasMessage(id string) bool {
	_, ok := b.entries.message(id)
	return ok
}

// Format resolves the message value or attribute identified by path and
// renders it with the given arguments. A path is a message id, optionally
// followed by "." and an attribute name; the split happens at the first dot.
//
// The final error is non-nil only when the path cannot be served at all:
// ErrMessageNotFound, ErrAttributeNotFound or ErrNoValue. Everything else
// degrades to fallback text inside the output and is reported in the error
// list, so a broken placeable never suppresses a translation.
func (b *Bundle) Format(path string, args ...Args) (string, []error, error) {
	id, attribute, hasAttribute := strings.Cut(path, ".")

	msg, ok := b.entries.message(id)
	if !ok {
		return "", nil, fmt.Errorf("%w: %q", ErrMessageNotFound, id)
	}

	var pattern *ast.Pattern
	switch {
	case hasAttribute:
		attr, ok := findAttribute(msg.Attributes, attribute)
		if !ok {
			return "", nil, fmt.Errorf("%w: %q", ErrAttributeNotFound, path)
		}
		pattern = attr.Value
	case msg.Value == nil:
		return "", nil, fmt.Errorf("%w: %q", ErrNoValue, id)
	default:
		pattern = msg.Value
	}

	s := newScope(b, mergeArgs(args))
	s.root = path
	result := s.stringify(s.resolveGuarded(path, pattern))
	return result, s.errs, nil
}

// Compound resolves a whole message: its value, when present, and all of its
// attributes, each as an independent resolution sharing one error list. It
// serves UI elements that consume several facets of one message, e.g. a
// button label with its tooltip and aria attributes.
func (b *Bundle) Compound(id string, args ...Args) (*Message, []error, error) {
	msg, ok := b.entries.message(id)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrMessageNotFound, id)
	}

	s := newScope(b, mergeArgs(args))
	out := &Message{Attributes: make(map[string]string, len(msg.Attributes))}

	if msg.Value != nil {
		s.root = id
		out.Value = s.stringify(s.resolveGuarded(id, msg.Value))
		out.HasValue = true
	}
	for _, attr := range msg.Attributes {
		path := qualify(id, attr.ID)
		s.root = path
		out.Attributes[attr.ID] = s.stringify(s.resolveGuarded(path, attr.Value))
	}

	return out, s.errs, nil
}

// Locale returns the bundle's formatting and plural-selection locale.
func (b *Bundle) Locale() language.Tag {
	return b.locale
}

// Locales returns a copy of the bundle's locale fallback chain.
func (b *Bundle) Locales() []language.Tag {
	return slices.Clone(b.locales)
}

func mergeArgs(args []Args) Args {
	switch len(args) {
	case 0:
		return nil
	case 1:
		return args[0]
	}
	merged := make(Args)
	for _, a := range args {
		maps.Copy(merged, a)
	}
	return merged
}
