package fluent

import (
	"slices"

	"golang.org/x/text/message"
)

// scope is the state of a single Format or Compound call: the caller
// arguments, the stack of identifiers currently being resolved, and the log
// of recoverable errors. A scope lives for exactly one call and is never
// shared between goroutines, so it needs no locking.
type scope struct {
	bundle    *Bundle
	args      Args
	locals    Args     // term call arguments, non-nil only inside a term
	root      string   // requested path, substituted where a cycle is cut
	resolving []string // qualified ids on the resolution stack
	errs      []error
	printer   *message.Printer
}

func newScope(b *Bundle, args Args) *scope {
	return &scope{bundle: b, args: args}
}

// enter pushes the qualified id onto the resolution stack. It reports false
// when the id is already on the stack, meaning the reference loops.
func (s *scope) enter(id string) bool {
	if slices.Contains(s.resolving, id) {
		return false
	}
	s.resolving = append(s.resolving, id)
	return true
}

// leave pops the innermost enter.
func (s *scope) leave() {
	s.resolving = s.resolving[:len(s.resolving)-1]
}

// report records a recoverable resolution error. Resolution continues with
// fallback output after every report.
func (s *scope) report(err error) {
	s.errs = append(s.errs, err)
}

// variable looks up a variable reference. Inside a term only the term's own
// call arguments are visible; everywhere else the caller arguments are.
func (s *scope) variable(name string) (Value, bool) {
	vars := s.args
	if s.locals != nil {
		vars = s.locals
	}
	v, ok := vars[name]
	return v, ok
}

// stringify renders a value for output. It never fails: None and nil render
// empty, invalid numbers render their source text.
func (s *scope) stringify(v Value) string {
	switch v := v.(type) {
	case String:
		return string(v)
	case Number:
		return v.format(s.messagePrinter())
	case Custom:
		if v.Formattable == nil {
			return ""
		}
		return v.Format(s.bundle.locale)
	default:
		return ""
	}
}

// messagePrinter returns the lazily built locale printer for this call.
// Printers are not safe for concurrent use, which is why each scope owns its
// own instead of sharing one on the bundle.
func (s *scope) messagePrinter() *message.Printer {
	if s.printer == nil {
		s.printer = message.NewPrinter(s.bundle.locale)
	}
	return s.printer
}
