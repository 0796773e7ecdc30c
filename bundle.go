package fluent

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Function is a callable registered on a bundle. It receives resolved
// positional and named arguments and returns ErrorValue on bad input rather
// than failing the call.
type Function func(positional []Value, named Args) Value

// ValueFormatter overrides how values are written. Returning false falls
// back to the built in formatting.
type ValueFormatter func(value Value, locale language.Tag) (string, bool)

// BundleOption configures a Bundle at construction time.
type BundleOption func(*Bundle)

// WithUseIsolating toggles Unicode isolation marks around placeables.
func WithUseIsolating(enabled bool) BundleOption {
	return func(b *Bundle) {
		b.useIsolating = enabled
	}
}

// WithTransform applies fn to every text element and string value.
func WithTransform(fn func(string) string) BundleOption {
	return func(b *Bundle) {
		b.transformFn = fn
	}
}

func WithValueFormatter(fn ValueFormatter) BundleOption {
	return func(b *Bundle) {
		b.formatter = fn
	}
}

// WithFormatterCache sets the cache used for number, date and plural
// formatters. Bundles default to a SharedCache of their own.
func WithFormatterCache(cache FormatterCache) BundleOption {
	return func(b *Bundle) {
		if cache != nil {
			b.cache = cache
		}
	}
}

// Bundle holds the messages and terms of one locale. Entries and functions
// must be added before the bundle is used for formatting; after that it is
// read only and safe for concurrent use when its cache is.
type Bundle struct {
	locales      []language.Tag
	messages     map[string]*Message
	terms        map[string]*Term
	functions    map[string]Function
	cache        FormatterCache
	useIsolating bool
	transformFn  func(string) string
	formatter    ValueFormatter
}

// NewBundle creates an empty bundle. The first locale is the primary one and
// drives plural rules and value formatting. NUMBER and DATETIME are
// registered.
func NewBundle(locales []language.Tag, opts ...BundleOption) *Bundle {
	b := &Bundle{
		locales:      append([]language.Tag(nil), locales...),
		messages:     make(map[string]*Message),
		terms:        make(map[string]*Term),
		functions:    make(map[string]Function),
		useIsolating: true,
	}
	if len(b.locales) == 0 {
		b.locales = []language.Tag{language.Und}
	}

	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	if b.cache == nil {
		b.cache = NewSharedCache()
	}

	for name, fn := range builtinFunctions() {
		b.functions[name] = fn
	}
	return b
}

// Locale returns the primary locale.
func (b *Bundle) Locale() language.Tag {
	return b.locales[0]
}

func (b *Bundle) Locales() []language.Tag {
	return append([]language.Tag(nil), b.locales...)
}

// AddResource adds the messages and terms of res. An id that is already
// present is replaced by the new entry and reported as ErrDuplicateEntryID;
// the rest of the resource is still added. Comments and junk are skipped.
func (b *Bundle) AddResource(res *Resource) error {
	if res == nil {
		return nil
	}

	var errs []error
	for _, entry := range res.Body {
		switch e := entry.(type) {
		case *Message:
			if e == nil || e.ID == "" {
				continue
			}
			if _, exists := b.messages[e.ID]; exists {
				errs = append(errs, newError(ErrDuplicateEntryID, e.ID))
			}
			b.messages[e.ID] = e
		case *Term:
			if e == nil || e.ID == "" {
				continue
			}
			if _, exists := b.terms[e.ID]; exists {
				errs = append(errs, newError(ErrDuplicateEntryID, "-"+e.ID))
			}
			b.terms[e.ID] = e
		}
	}
	return errors.Join(errs...)
}

// AddFunction registers fn under the upper cased name. Registering a name
// twice fails and keeps the first function.
func (b *Bundle) AddFunction(name string, fn Function) error {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return fmt.Errorf("fluent: function name required")
	}
	if fn == nil {
		return fmt.Errorf("fluent: function %s is nil", name)
	}
	if _, exists := b.functions[name]; exists {
		return newError(ErrDuplicateFunctionName, name)
	}
	b.functions[name] = fn
	return nil
}

func (b *Bundle) function(name string) (Function, bool) {
	fn, ok := b.functions[strings.ToUpper(name)]
	return fn, ok
}

func (b *Bundle) HasMessage(id string) bool {
	_, ok := b.messages[id]
	return ok
}

func (b *Bundle) Message(id string) (*Message, bool) {
	msg, ok := b.messages[id]
	return msg, ok
}

// Term looks up a term. The id may be given with or without its dash.
func (b *Bundle) Term(id string) (*Term, bool) {
	term, ok := b.terms[strings.TrimPrefix(id, "-")]
	return term, ok
}

// FormatPattern resolves p against args. It always returns text; problems
// found on the way are returned as diagnostics.
func (b *Bundle) FormatPattern(p *Pattern, args Args) (string, []error) {
	return b.formatPattern("", p, args)
}

func (b *Bundle) formatPattern(key string, p *Pattern, args Args) (string, []error) {
	s := newScope(b, args)
	if key != "" {
		s.travelled = append(s.travelled, key)
	}

	var out strings.Builder
	s.writePattern(&out, p)
	return out.String(), s.errs
}

// FormatMessage formats the value of message id. The error is set only
// when the message does not exist or has no value; diagnostics do not mean
// the text is unusable.
func (b *Bundle) FormatMessage(id string, args Args) (string, []error, error) {
	msg, ok := b.Message(id)
	if !ok {
		return "", nil, newError(ErrUnknownMessage, id)
	}
	if msg.Value == nil {
		return "", nil, newError(ErrNoValue, id)
	}
	text, errs := b.formatPattern(id, msg.Value, args)
	return text, errs, nil
}

// FormatAttribute formats attribute attr of message id.
func (b *Bundle) FormatAttribute(id, attr string, args Args) (string, []error, error) {
	msg, ok := b.Message(id)
	if !ok {
		return "", nil, newError(ErrUnknownMessage, id)
	}
	attribute, ok := msg.Attribute(attr)
	if !ok {
		return "", nil, newError(ErrUnknownAttribute, id+"."+attr)
	}
	text, errs := b.formatPattern(id+"."+attr, attribute.Value, args)
	return text, errs, nil
}

// FormatValue writes a single value for the primary locale. Error and None
// values are empty.
func (b *Bundle) FormatValue(value Value) (string, error) {
	if b.formatter != nil {
		if text, ok := b.formatter(value, b.Locale()); ok {
			return text, nil
		}
	}

	switch v := value.(type) {
	case StringValue:
		return b.transform(string(v)), nil
	case NumberValue:
		return v.format(b.Locale(), b.cache)
	case DateTimeValue:
		return v.format(b.Locale(), b.cache)
	default:
		return "", nil
	}
}

func (b *Bundle) transform(text string) string {
	if b.transformFn == nil {
		return text
	}
	return b.transformFn(text)
}
