package fluent

import (
	"strconv"
	"strings"

	"github.com/dmitrymomot/fluent/ast"
)

// resolvePattern renders a pattern by concatenating literal text with the
// stringified value of every placeable.
func (s *scope) resolvePattern(p *ast.Pattern) string {
	if p == nil {
		return ""
	}
	var sb strings.Builder
	for _, el := range p.Elements {
		switch el := el.(type) {
		case ast.Text:
			sb.WriteString(string(el))
		case *ast.Placeable:
			sb.WriteString(s.stringify(s.resolveExpression(el.Expression)))
		}
	}
	return sb.String()
}

// resolveExpression evaluates a placeable expression to a value. Failures
// are reported on the scope and degrade to fallback values; resolution never
// aborts mid-pattern.
func (s *scope) resolveExpression(e ast.Expression) Value {
	switch e := e.(type) {
	case ast.StringLiteral:
		return String(e.Value)
	case ast.NumberLiteral:
		return ParseNumber(e.Value)
	case *ast.VariableReference:
		if v, ok := s.variable(e.Name); ok && v != nil {
			return v
		}
		s.report(&ReferenceError{Kind: KindVariable, ID: e.Name})
		return String(e.Name)
	case *ast.MessageReference:
		return s.resolveMessageReference(e)
	case *ast.TermReference:
		return s.resolveTermReference(e)
	case *ast.FunctionReference:
		return s.resolveFunctionReference(e)
	case *ast.SelectExpression:
		return s.resolveSelect(e)
	case *ast.Placeable:
		return s.resolveExpression(e.Expression)
	default:
		return None{}
	}
}

func (s *scope) resolveMessageReference(ref *ast.MessageReference) Value {
	display := qualify(ref.ID, ref.Attribute)
	msg, ok := s.bundle.entries.message(ref.ID)
	if !ok {
		s.report(&ReferenceError{Kind: KindMessage, ID: display})
		return String(display)
	}
	if ref.Attribute != "" {
		attr, ok := findAttribute(msg.Attributes, ref.Attribute)
		if !ok {
			s.report(&ReferenceError{Kind: KindMessage, ID: display})
			return String(display)
		}
		return s.resolveGuarded(display, attr.Value)
	}
	if msg.Value == nil {
		s.report(&NoValueError{ID: display})
		return String(display)
	}
	return s.resolveGuarded(display, msg.Value)
}

func (s *scope) resolveTermReference(ref *ast.TermReference) Value {
	display := "-" + qualify(ref.ID, ref.Attribute)
	// Call arguments are evaluated in the caller's scope before anything
	// else, so their errors surface even when the term itself is missing.
	_, named := s.resolveCallArguments(ref.Arguments)

	term, ok := s.bundle.entries.term(ref.ID)
	if !ok {
		s.report(&ReferenceError{Kind: KindTerm, ID: qualify(ref.ID, ref.Attribute)})
		return String(display)
	}

	var pattern *ast.Pattern
	if ref.Attribute != "" {
		attr, ok := findAttribute(term.Attributes, ref.Attribute)
		if !ok {
			s.report(&ReferenceError{Kind: KindTerm, ID: qualify(ref.ID, ref.Attribute)})
			return String(display)
		}
		pattern = attr.Value
	} else {
		if term.Value == nil {
			s.report(&NoValueError{ID: display})
			return String(display)
		}
		pattern = term.Value
	}

	// The term sees only its own call arguments, never the caller's
	// variables.
	prev := s.locals
	s.locals = named
	defer func() { s.locals = prev }()

	return s.resolveGuarded(display, pattern)
}

func (s *scope) resolveFunctionReference(ref *ast.FunctionReference) Value {
	// Arguments are evaluated left to right even when the call itself
	// cannot proceed, so their reference errors are still reported.
	positional, named := s.resolveCallArguments(ref.Arguments)
	fn, ok := s.bundle.entries.function(ref.ID)
	if !ok {
		s.report(&ReferenceError{Kind: KindFunction, ID: ref.ID})
		return None{}
	}
	if v := fn(positional, named); v != nil {
		return v
	}
	return None{}
}

func (s *scope) resolveCallArguments(args *ast.CallArguments) ([]Value, Args) {
	if args == nil {
		return nil, Args{}
	}
	positional := make([]Value, 0, len(args.Positional))
	for _, e := range args.Positional {
		positional = append(positional, s.resolveExpression(e))
	}
	named := make(Args, len(args.Named))
	for _, arg := range args.Named {
		named[arg.Name] = s.resolveExpression(arg.Value)
	}
	return positional, named
}

func (s *scope) resolveSelect(sel *ast.SelectExpression) Value {
	selector := s.resolveExpression(sel.Selector)
	variant := s.selectVariant(selector, sel.Variants)
	if variant == nil {
		// A validated tree always carries a default variant; tolerate its
		// absence instead of dropping the whole message.
		s.report(ErrMissingDefault)
		if len(sel.Variants) == 0 {
			return None{}
		}
		variant = sel.Variants[0]
	}
	return String(s.resolvePattern(variant.Value))
}

// selectVariant applies the matching order: exact key text for string-like
// selectors; exact numeric key, then plural category, for numeric selectors;
// then the default variant.
func (s *scope) selectVariant(selector Value, variants []*ast.Variant) *ast.Variant {
	switch selector := selector.(type) {
	case String:
		if v := matchText(string(selector), variants); v != nil {
			return v
		}
	case Number:
		if !selector.valid {
			if v := matchText(selector.source, variants); v != nil {
				return v
			}
			break
		}
		if v := matchNumber(selector.value, variants); v != nil {
			return v
		}
		category := s.bundle.pluralRule(s.bundle.locale, selector)
		if v := matchText(string(category), variants); v != nil {
			return v
		}
	case Custom:
		if selector.Formattable == nil {
			break
		}
		if v := matchText(selector.Format(s.bundle.locale), variants); v != nil {
			return v
		}
		if categorizer, ok := selector.Formattable.(PluralCategorizer); ok {
			category := categorizer.PluralCategory(s.bundle.locale)
			if v := matchText(string(category), variants); v != nil {
				return v
			}
		}
	}
	for _, v := range variants {
		if v.Default {
			return v
		}
	}
	return nil
}

// matchText returns the first variant whose identifier key equals text.
func matchText(text string, variants []*ast.Variant) *ast.Variant {
	for _, v := range variants {
		if key, ok := v.Key.(ast.Identifier); ok && key.Name == text {
			return v
		}
	}
	return nil
}

// matchNumber returns the first variant whose numeric key equals value, so
// [1] and [1.0] both match the number one.
func matchNumber(value float64, variants []*ast.Variant) *ast.Variant {
	for _, v := range variants {
		key, ok := v.Key.(ast.NumberLiteral)
		if !ok {
			continue
		}
		if parsed, err := strconv.ParseFloat(key.Value, 64); err == nil && parsed == value {
			return v
		}
	}
	return nil
}

// resolveGuarded resolves the pattern behind the qualified id with the cycle
// guard engaged: a re-entrant id is refused and degrades to the originally
// requested path text instead of recursing forever.
func (s *scope) resolveGuarded(id string, pattern *ast.Pattern) Value {
	if !s.enter(id) {
		s.report(&CyclicReferenceError{ID: id})
		return String(s.root)
	}
	defer s.leave()
	return String(s.resolvePattern(pattern))
}

// qualify joins an entry id with an optional attribute name.
func qualify(id, attribute string) string {
	if attribute == "" {
		return id
	}
	return id + "." + attribute
}

// findAttribute scans an attribute list for the given id. Entries carry few
// attributes, so a linear scan beats a map here.
func findAttribute(attrs []*ast.Attribute, id string) (*ast.Attribute, bool) {
	for _, attr := range attrs {
		if attr.ID == id {
			return attr, true
		}
	}
	return nil, false
}
