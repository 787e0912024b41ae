package fluent

import "github.com/dmitrymomot/fluent/ast"

// registry holds every message, term and function loaded into a bundle.
// Each kind has its own namespace, so a message and a term may share an id.
// Registration is append-only and first-writer-wins: an id that is already
// taken rejects the entrant with an OverrideError and the existing entry
// stays reachable.
type registry struct {
	messages  map[string]*ast.Message
	terms     map[string]*ast.Term
	functions map[string]Function
}

func newRegistry() *registry {
	return &registry{
		messages:  make(map[string]*ast.Message),
		terms:     make(map[string]*ast.Term),
		functions: make(map[string]Function),
	}
}

func (r *registry) addMessage(msg *ast.Message) error {
	if _, exists := r.messages[msg.ID]; exists {
		return &OverrideError{Kind: KindMessage, ID: msg.ID}
	}
	r.messages[msg.ID] = msg
	return nil
}

func (r *registry) addTerm(term *ast.Term) error {
	if _, exists := r.terms[term.ID]; exists {
		return &OverrideError{Kind: KindTerm, ID: term.ID}
	}
	r.terms[term.ID] = term
	return nil
}

func (r *registry) addFunction(id string, fn Function) error {
	if _, exists := r.functions[id]; exists {
		return &OverrideError{Kind: KindFunction, ID: id}
	}
	r.functions[id] = fn
	return nil
}

func (r *registry) message(id string) (*ast.Message, bool) {
	msg, ok := r.messages[id]
	return msg, ok
}

func (r *registry) term(id string) (*ast.Term, bool) {
	term, ok := r.terms[id]
	return term, ok
}

func (r *registry) function(id string) (Function, bool) {
	fn, ok := r.functions[id]
	return fn, ok
}
