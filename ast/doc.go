// Package ast defines the syntax tree consumed by the fluent resolver.
//
// The tree mirrors the Fluent data model: a Resource holds messages and
// terms, each built from patterns of literal text and placeables. Node
// interfaces (Entry, PatternElement, Expression, VariantKey) are sealed by
// unexported marker methods, so the set of shapes the resolver has to handle
// is closed and checked at compile time.
//
// Trees are produced by a parser or constructed directly:
//
//	res := &ast.Resource{Entries: []ast.Entry{
//		&ast.Message{
//			ID: "hello",
//			Value: &ast.Pattern{Elements: []ast.PatternElement{
//				ast.Text("Hello, "),
//				&ast.Placeable{Expression: &ast.VariableReference{Name: "name"}},
//				ast.Text("!"),
//			}},
//		},
//	}}
//
// Nodes are plain data and carry no behavior. A tree must not be mutated
// once handed to a bundle; sharing one resource across bundles is safe under
// that contract.
package ast
