package ast

// Resource is a parsed translation resource: the ordered sequence of
// messages and terms that one source contributes to a bundle.
type Resource struct {
	Entries []Entry
}

// Entry is a top-level resource entry. The concrete types are *Message and
// *Term.
type Entry interface {
	entryNode()
}

// Message is a user-visible translation unit addressable by id. Value is nil
// for messages that carry only attributes.
type Message struct {
	ID         string
	Value      *Pattern
	Attributes []*Attribute
}

// Term is a reusable translation fragment. Terms live in their own
// namespace and are referenced with a leading "-" sigil; unlike messages
// they are never formatted directly.
type Term struct {
	ID         string
	Value      *Pattern
	Attributes []*Attribute
}

// Attribute is a named sub-pattern of a message or term, addressed as
// "id.attribute".
type Attribute struct {
	ID    string
	Value *Pattern
}

func (*Message) entryNode() {}
func (*Term) entryNode()    {}

// Pattern is the body of a message, term, attribute or variant: literal
// text interleaved with placeables.
type Pattern struct {
	Elements []PatternElement
}

// PatternElement is one pattern segment. The concrete types are Text and
// *Placeable.
type PatternElement interface {
	patternElement()
}

// Text is a run of literal text copied verbatim into the output.
type Text string

// Placeable holds an expression evaluated at format time. Placeables nest:
// a placeable is itself a valid expression.
type Placeable struct {
	Expression Expression
}

func (Text) patternElement()       {}
func (*Placeable) patternElement() {}

// Expression is an evaluatable node inside a placeable.
type Expression interface {
	expressionNode()
}

// StringLiteral is a quoted literal, e.g. {"static"}.
type StringLiteral struct {
	Value string
}

// NumberLiteral is a numeric literal kept in its source spelling, e.g.
// {3.14}. It doubles as a variant key.
type NumberLiteral struct {
	Value string
}

// VariableReference addresses a caller-supplied argument, e.g. { $name }.
// Inside a term it addresses the term's own call arguments instead.
type VariableReference struct {
	Name string
}

// MessageReference addresses another message or one of its attributes, e.g.
// { menu } or { menu.title }.
type MessageReference struct {
	ID        string
	Attribute string
}

// TermReference addresses a term, optionally an attribute and call
// arguments, e.g. { -brand } or { -brand(case: "genitive") }. Terms are the
// only entries that accept arguments at the reference site.
type TermReference struct {
	ID        string
	Attribute string
	Arguments *CallArguments
}

// FunctionReference invokes a registered function, e.g. { NUMBER($ratio) }.
type FunctionReference struct {
	ID        string
	Arguments *CallArguments
}

// SelectExpression picks one of its variants by matching a selector value
// against the variant keys.
type SelectExpression struct {
	Selector Expression
	Variants []*Variant
}

// CallArguments holds the arguments of a term or function call. Named
// argument values are restricted to string and number literals by the
// grammar.
type CallArguments struct {
	Positional []Expression
	Named      []*NamedArgument
}

// NamedArgument is a name: value pair in a call argument list.
type NamedArgument struct {
	Name  string
	Value Expression
}

// Variant is one branch of a select expression. A well-formed select
// expression marks exactly one variant as Default.
type Variant struct {
	Key     VariantKey
	Value   *Pattern
	Default bool
}

// VariantKey is a variant's match key. The concrete types are Identifier
// and NumberLiteral.
type VariantKey interface {
	variantKey()
}

// Identifier is a plain identifier variant key, e.g. [one].
type Identifier struct {
	Name string
}

func (Identifier) variantKey()    {}
func (NumberLiteral) variantKey() {}

func (StringLiteral) expressionNode()      {}
func (NumberLiteral) expressionNode()      {}
func (*VariableReference) expressionNode() {}
func (*MessageReference) expressionNode()  {}
func (*TermReference) expressionNode()     {}
func (*FunctionReference) expressionNode() {}
func (*SelectExpression) expressionNode()  {}
func (*Placeable) expressionNode()         {}
