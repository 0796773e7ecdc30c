package fluent

// Resource is a parsed catalog: an ordered list of top level entries.
type Resource struct {
	Body []Entry
}

// Entry is one of *Message, *Term, *Comment or *Junk.
type Entry interface {
	entry()
}

// Message is an entry addressable from outside the catalog.
type Message struct {
	ID         string
	Value      *Pattern
	Attributes []*Attribute
	Comment    string
}

// Term is an entry that can only be referenced from other patterns.
// ID is stored without the leading dash.
type Term struct {
	ID         string
	Value      *Pattern
	Attributes []*Attribute
	Comment    string
}

// Attribute is a named sub pattern of a message or term.
type Attribute struct {
	ID    string
	Value *Pattern
}

// Comment is a standalone comment, ignored by bundles.
type Comment struct {
	Content string
}

// Junk holds source the parser could not make sense of. Ignored by bundles.
type Junk struct {
	Content string
}

func (*Message) entry() {}
func (*Term) entry()    {}
func (*Comment) entry() {}
func (*Junk) entry()    {}

// Attribute returns the attribute named id.
func (m *Message) Attribute(id string) (*Attribute, bool) {
	if m == nil {
		return nil, false
	}
	return findAttribute(m.Attributes, id)
}

// Attribute returns the attribute named id.
func (t *Term) Attribute(id string) (*Attribute, bool) {
	if t == nil {
		return nil, false
	}
	return findAttribute(t.Attributes, id)
}

func findAttribute(attrs []*Attribute, id string) (*Attribute, bool) {
	for _, attr := range attrs {
		if attr != nil && attr.ID == id {
			return attr, true
		}
	}
	return nil, false
}

// Pattern is an ordered sequence of text and placeables.
type Pattern struct {
	Elements []PatternElement
}

// PatternElement is either *TextElement or *Placeable.
type PatternElement interface {
	patternElement()
}

type TextElement struct {
	Value string
}

// Placeable embeds an expression in a pattern. A placeable is itself an
// expression so placeables can nest.
type Placeable struct {
	Expression Expression
}

func (*TextElement) patternElement() {}
func (*Placeable) patternElement()   {}

// Expression is the closed set of inline and select expressions.
type Expression interface {
	expression()
}

type StringLiteral struct {
	Value string
}

// NumberLiteral keeps the literal source text so that the count of
// fraction digits written by the translator survives.
type NumberLiteral struct {
	Value string
}

type VariableReference struct {
	ID string
}

type MessageReference struct {
	ID        string
	Attribute string
}

type TermReference struct {
	ID        string
	Attribute string
	Arguments *CallArguments
}

type FunctionReference struct {
	ID        string
	Arguments CallArguments
}

// CallArguments are the positional and named arguments of a call.
type CallArguments struct {
	Positional []Expression
	Named      []NamedArgument
}

type NamedArgument struct {
	Name  string
	Value Expression
}

// SelectExpression picks one of its variants based on the selector.
type SelectExpression struct {
	Selector Expression
	Variants []*Variant
}

type Variant struct {
	Key     VariantKey
	Value   *Pattern
	Default bool
}

// VariantKey is either *Identifier or *NumberLiteral.
type VariantKey interface {
	variantKey()
}

type Identifier struct {
	Name string
}

func (*StringLiteral) expression()     {}
func (*NumberLiteral) expression()     {}
func (*VariableReference) expression() {}
func (*MessageReference) expression()  {}
func (*TermReference) expression()     {}
func (*FunctionReference) expression() {}
func (*SelectExpression) expression()  {}
func (*Placeable) expression()         {}

func (*Identifier) variantKey()    {}
func (*NumberLiteral) variantKey() {}

// Text builds a pattern with a single text element.
func Text(value string) *Pattern {
	return &Pattern{Elements: []PatternElement{&TextElement{Value: value}}}
}

// NewPattern builds a pattern from elements. Strings become text elements,
// expressions become placeables and pattern elements are kept as is.
func NewPattern(parts ...any) *Pattern {
	p := &Pattern{Elements: make([]PatternElement, 0, len(parts))}
	for _, part := range parts {
		switch v := part.(type) {
		case string:
			p.Elements = append(p.Elements, &TextElement{Value: v})
		case *Placeable:
			p.Elements = append(p.Elements, v)
		case PatternElement:
			p.Elements = append(p.Elements, v)
		case Expression:
			p.Elements = append(p.Elements, &Placeable{Expression: v})
		}
	}
	return p
}
