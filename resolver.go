package fluent

import (
	"slices"
	"strings"
)

const (
	// maxPlaceables caps the placeables written by one formatting call.
	maxPlaceables = 100
	// maxDepth caps nested message and term references.
	maxDepth = 100

	firstStrongIsolate    = '\u2068'
	popDirectionalIsolate = '\u2069'
)

// scope is the per call state of a resolution. It is never shared between
// calls, so a bundle can resolve concurrently with no locking beyond its
// formatter cache.
type scope struct {
	bundle *Bundle
	args   Args

	// local holds term arguments while a term body is resolved. External
	// arguments are not visible inside terms.
	local  Args
	inTerm bool

	travelled  []string
	placeables int
	dirty      bool
	errs       []error
}

func newScope(bundle *Bundle, args Args) *scope {
	return &scope{bundle: bundle, args: args}
}

func (s *scope) addError(err error) {
	if err != nil {
		s.errs = append(s.errs, err)
	}
}

func (s *scope) writePattern(b *strings.Builder, p *Pattern) {
	if p == nil || s.dirty {
		return
	}

	isolate := s.bundle.useIsolating && len(p.Elements) > 2
	for _, element := range p.Elements {
		if s.dirty {
			return
		}

		switch el := element.(type) {
		case *TextElement:
			b.WriteString(s.bundle.transform(el.Value))
		case *Placeable:
			s.placeables++
			if s.placeables > maxPlaceables {
				s.dirty = true
				s.addError(newError(ErrTooManyPlaceables, "more than 100 placeables"))
				return
			}

			wrap := isolate && needsIsolation(el.Expression)
			if wrap {
				b.WriteRune(firstStrongIsolate)
			}
			s.writeExpression(b, el.Expression)
			if wrap {
				b.WriteRune(popDirectionalIsolate)
			}
		}
	}
}

// needsIsolation reports whether the rendered expression may carry text of
// unknown direction. Literals and references to other entries are written
// by the translator and are not wrapped.
func needsIsolation(expr Expression) bool {
	switch e := expr.(type) {
	case *StringLiteral, *MessageReference, *TermReference:
		return false
	case *Placeable:
		return needsIsolation(e.Expression)
	default:
		return true
	}
}

func (s *scope) writeExpression(b *strings.Builder, expr Expression) {
	switch e := expr.(type) {
	case *Placeable:
		s.writeExpression(b, e.Expression)
	case *SelectExpression:
		s.writeSelect(b, e)
	case *MessageReference:
		s.writeMessageReference(b, e)
	case *TermReference:
		s.writeTermReference(b, e)
	case *VariableReference:
		value, ok := s.variable(e.ID)
		if !ok {
			b.WriteString("{$" + e.ID + "}")
			return
		}
		s.writeValue(b, value)
	case *FunctionReference:
		value, ok := s.callFunction(e)
		if !ok {
			b.WriteString("{" + strings.ToUpper(e.ID) + "()}")
			return
		}
		s.writeValue(b, value)
	default:
		s.writeValue(b, s.resolveInline(expr))
	}
}

func (s *scope) writeValue(b *strings.Builder, value Value) {
	switch value.(type) {
	case nil, ErrorValue, NoneValue:
		return
	}
	text, err := s.bundle.FormatValue(value)
	s.addError(err)
	b.WriteString(text)
}

// resolveInline evaluates an expression used as a selector or a call
// argument. Failures produce ErrorValue after recording a diagnostic.
func (s *scope) resolveInline(expr Expression) Value {
	switch e := expr.(type) {
	case *StringLiteral:
		return StringValue(e.Value)
	case *NumberLiteral:
		n, err := NumberFromString(e.Value)
		if err != nil {
			s.addError(err)
			return ErrorValue{}
		}
		return n
	case *VariableReference:
		value, ok := s.variable(e.ID)
		if !ok {
			return ErrorValue{}
		}
		return value
	case *FunctionReference:
		value, _ := s.callFunction(e)
		return value
	case *Placeable:
		return s.resolveInline(e.Expression)
	case nil:
		return ErrorValue{}
	default:
		var b strings.Builder
		s.writeExpression(&b, expr)
		return StringValue(b.String())
	}
}

func (s *scope) variable(name string) (Value, bool) {
	source := s.args
	if s.inTerm {
		source = s.local
	}
	value, ok := source.Get(name)
	if !ok {
		s.addError(newError(ErrUnknownVariable, "$"+name))
		return nil, false
	}
	return value, true
}

func (s *scope) writeMessageReference(b *strings.Builder, ref *MessageReference) {
	msg, ok := s.bundle.Message(ref.ID)
	if !ok {
		s.addError(newError(ErrUnknownMessage, ref.ID))
		b.WriteString("{" + ref.ID + "}")
		return
	}

	key, pattern := ref.ID, msg.Value
	if ref.Attribute != "" {
		key = ref.ID + "." + ref.Attribute
		attr, ok := msg.Attribute(ref.Attribute)
		if !ok {
			s.addError(newError(ErrUnknownAttribute, key))
			b.WriteString("{" + key + "}")
			return
		}
		pattern = attr.Value
	} else if pattern == nil {
		s.addError(newError(ErrNoValue, key))
		b.WriteString("{" + key + "}")
		return
	}

	s.track(b, key, func() {
		s.writePattern(b, pattern)
	})
}

func (s *scope) writeTermReference(b *strings.Builder, ref *TermReference) {
	key := "-" + ref.ID
	term, ok := s.bundle.Term(ref.ID)
	if !ok {
		s.addError(newError(ErrUnknownTerm, key))
		b.WriteString("{" + key + "}")
		return
	}

	pattern := term.Value
	if ref.Attribute != "" {
		key += "." + ref.Attribute
		attr, ok := term.Attribute(ref.Attribute)
		if !ok {
			s.addError(newError(ErrUnknownAttribute, key))
			b.WriteString("{" + key + "}")
			return
		}
		pattern = attr.Value
	} else if pattern == nil {
		s.addError(newError(ErrNoValue, key))
		b.WriteString("{" + key + "}")
		return
	}

	local := NewArgs()
	if ref.Arguments != nil {
		_, local = s.arguments(ref.Arguments)
	}

	savedLocal, savedInTerm := s.local, s.inTerm
	s.local, s.inTerm = local, true
	s.track(b, key, func() {
		s.writePattern(b, pattern)
	})
	s.local, s.inTerm = savedLocal, savedInTerm
}

// track runs fn with key marked as being resolved. Re-entering a key or
// nesting deeper than maxDepth writes the fallback token instead.
func (s *scope) track(b *strings.Builder, key string, fn func()) {
	if slices.Contains(s.travelled, key) {
		s.addError(newError(ErrCyclicReference, key))
		b.WriteString("{" + key + "}")
		return
	}
	if len(s.travelled) >= maxDepth {
		s.dirty = true
		s.addError(newError(ErrTooManyPlaceables, key))
		b.WriteString("{" + key + "}")
		return
	}

	s.travelled = append(s.travelled, key)
	fn()
	s.travelled = s.travelled[:len(s.travelled)-1]
}

func (s *scope) callFunction(ref *FunctionReference) (Value, bool) {
	name := strings.ToUpper(ref.ID)
	fn, ok := s.bundle.function(name)
	if !ok {
		s.addError(newError(ErrUnknownFunction, name+"()"))
		return ErrorValue{}, false
	}

	positional, named := s.arguments(&ref.Arguments)
	value := fn(positional, named)
	if value == nil {
		return NoneValue{}, true
	}
	return value, true
}

func (s *scope) arguments(call *CallArguments) ([]Value, Args) {
	positional := make([]Value, 0, len(call.Positional))
	for _, expr := range call.Positional {
		positional = append(positional, s.resolveInline(expr))
	}

	named := make(Args, len(call.Named))
	for _, arg := range call.Named {
		named[arg.Name] = s.resolveInline(arg.Value)
	}
	return positional, named
}

func (s *scope) writeSelect(b *strings.Builder, sel *SelectExpression) {
	selector := s.resolveInline(sel.Selector)
	variant := s.selectVariant(selector, sel.Variants)
	if variant == nil {
		return
	}
	s.writePattern(b, variant.Value)
}

// selectVariant returns the first variant whose key matches the selector,
// then the default variant. Without a default the first variant is used.
func (s *scope) selectVariant(selector Value, variants []*Variant) *Variant {
	for _, variant := range variants {
		if variant != nil && s.matches(selector, variant.Key) {
			return variant
		}
	}
	for _, variant := range variants {
		if variant != nil && variant.Default {
			return variant
		}
	}

	s.addError(newError(ErrMissingDefaultVariant, "select expression"))
	for _, variant := range variants {
		if variant != nil {
			return variant
		}
	}
	return nil
}

func (s *scope) matches(selector Value, key VariantKey) bool {
	switch sel := selector.(type) {
	case StringValue:
		id, ok := key.(*Identifier)
		return ok && string(sel) == id.Name
	case NumberValue:
		switch k := key.(type) {
		case *NumberLiteral:
			n, err := NumberFromString(k.Value)
			return err == nil && n.Value == sel.Value
		case *Identifier:
			category, err := PluralCategory(s.bundle.Locale(), sel, s.bundle.cache)
			if err != nil {
				s.addError(err)
				return false
			}
			return category == k.Name
		}
	}
	return false
}
