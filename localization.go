package fluent

import (
	"io"
	"iter"
	"log/slog"
	"sync"

	"golang.org/x/text/language"
)

// LocalizationOption configures a Localization.
type LocalizationOption func(*Localization)

// WithLocalizationLogger sets the logger for bundle construction and
// fallback events.
func WithLocalizationLogger(logger *slog.Logger) LocalizationOption {
	return func(l *Localization) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithLocalizationParser replaces ParseResource.
func WithLocalizationParser(parse ParseFunc) LocalizationOption {
	return func(l *Localization) {
		if parse != nil {
			l.parse = parse
		}
	}
}

// WithLocalizationBundleOptions applies opts to every bundle built.
func WithLocalizationBundleOptions(opts ...BundleOption) LocalizationOption {
	return func(l *Localization) {
		l.bundleOpts = append(l.bundleOpts, opts...)
	}
}

// WithLocalizationFunction registers fn on every bundle built.
func WithLocalizationFunction(name string, fn Function) LocalizationOption {
	return func(l *Localization) {
		l.functions = append(l.functions, namedFunction{name: name, fn: fn})
	}
}

type namedFunction struct {
	name string
	fn   Function
}

// Localization formats messages from an ordered list of locales, falling
// back to the next locale when a message is missing. Bundles are built on
// first use and kept for the lifetime of the Localization.
type Localization struct {
	resourceIDs []string
	loader      ResourceLoader
	parse       ParseFunc
	bundleOpts  []BundleOption
	functions   []namedFunction
	logger      *slog.Logger
	slots       []*bundleSlot
}

type bundleSlot struct {
	locale string
	once   sync.Once
	bundle *Bundle
	errs   []error
}

// NewLocalization creates a Localization over locales, in priority order.
// Each bundle holds resourceIDs as returned by loader.
func NewLocalization(resourceIDs, locales []string, loader ResourceLoader, opts ...LocalizationOption) *Localization {
	l := &Localization{
		resourceIDs: append([]string(nil), resourceIDs...),
		loader:      loader,
		parse:       ParseResource,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}

	for _, locale := range normalizeLocales(locales) {
		l.slots = append(l.slots, &bundleSlot{locale: locale})
	}
	return l
}

// Locales returns the locales in fallback order.
func (l *Localization) Locales() []string {
	out := make([]string, 0, len(l.slots))
	for _, slot := range l.slots {
		out = append(out, slot.locale)
	}
	return out
}

// Bundles yields the bundles in fallback order, building each on demand.
// Locales for which no resource could be loaded are skipped.
func (l *Localization) Bundles() iter.Seq[*Bundle] {
	return func(yield func(*Bundle) bool) {
		for _, slot := range l.slots {
			b := l.bundle(slot)
			if b == nil {
				continue
			}
			if !yield(b) {
				return
			}
		}
	}
}

// LoadErrors returns the errors met while building the bundle for locale.
func (l *Localization) LoadErrors(locale string) []error {
	for _, slot := range l.slots {
		if slot.locale == locale {
			l.bundle(slot)
			return append([]error(nil), slot.errs...)
		}
	}
	return nil
}

func (l *Localization) bundle(slot *bundleSlot) *Bundle {
	slot.once.Do(func() {
		slot.bundle, slot.errs = l.buildBundle(slot.locale)
	})
	return slot.bundle
}

func (l *Localization) buildBundle(locale string) (*Bundle, []error) {
	tag, err := language.Parse(locale)
	if err != nil {
		l.logger.Warn("invalid locale", slog.String("locale", locale), slog.Any("error", err))
		return nil, []error{err}
	}

	b := NewBundle([]language.Tag{tag}, l.bundleOpts...)
	var errs []error
	for _, fn := range l.functions {
		if err := b.AddFunction(fn.name, fn.fn); err != nil {
			errs = append(errs, err)
		}
	}

	loaded := 0
	for _, resID := range l.resourceIDs {
		if l.loader == nil {
			break
		}
		src, err := l.loader.Load(locale, resID)
		if err != nil {
			l.logger.Warn("resource not loaded",
				slog.String("locale", locale),
				slog.String("resource", resID),
				slog.Any("error", err),
			)
			errs = append(errs, err)
			continue
		}

		res, err := l.parse(resID, src)
		if err != nil {
			l.logger.Warn("resource has errors",
				slog.String("locale", locale),
				slog.String("resource", resID),
				slog.Any("error", err),
			)
			errs = append(errs, err)
		}
		if res == nil {
			continue
		}

		if err := b.AddResource(res); err != nil {
			l.logger.Warn("resource overrides entries",
				slog.String("locale", locale),
				slog.String("resource", resID),
				slog.Any("error", err),
			)
			errs = append(errs, err)
		}
		loaded++
	}

	if loaded == 0 && len(l.resourceIDs) > 0 {
		l.logger.Warn("no resources for locale", slog.String("locale", locale))
		return nil, errs
	}

	l.logger.Debug("bundle built",
		slog.String("locale", locale),
		slog.Any("resources", l.resourceIDs),
	)
	return b, errs
}

// FormatValue formats message id with the first bundle that has it. The
// error is ErrMissingMessage only when no bundle has a value for id.
func (l *Localization) FormatValue(id string, args Args) (string, []error, error) {
	text, _, errs, err := l.formatValue(id, args)
	return text, errs, err
}

// FormatValueWithMetadata is FormatValue that also reports the locale that
// supplied the message under the "locale" key.
func (l *Localization) FormatValueWithMetadata(id string, args Args) (string, map[string]any, []error, error) {
	text, locale, errs, err := l.formatValue(id, args)
	if err != nil {
		return text, nil, errs, err
	}
	return text, map[string]any{"locale": locale}, errs, nil
}

func (l *Localization) formatValue(id string, args Args) (string, string, []error, error) {
	var diagnostics []error
	for _, slot := range l.slots {
		b := l.bundle(slot)
		if b == nil {
			continue
		}

		msg, ok := b.Message(id)
		if !ok {
			l.logger.Debug("message not in locale, falling back",
				slog.String("id", id),
				slog.String("locale", slot.locale),
			)
			continue
		}
		if msg.Value == nil {
			diagnostics = append(diagnostics, newError(ErrNoValue, id))
			continue
		}

		text, errs := b.formatPattern(id, msg.Value, args)
		return text, slot.locale, append(diagnostics, errs...), nil
	}
	return "", "", diagnostics, newError(ErrMissingMessage, id)
}

// FormattedMessage is a message value with its attributes.
type FormattedMessage struct {
	Value      string
	HasValue   bool
	Attributes []FormattedAttribute
	Locale     string
}

type FormattedAttribute struct {
	ID    string
	Value string
}

// Attribute returns the formatted attribute named id.
func (m *FormattedMessage) Attribute(id string) (string, bool) {
	if m == nil {
		return "", false
	}
	for _, attr := range m.Attributes {
		if attr.ID == id {
			return attr.Value, true
		}
	}
	return "", false
}

// FormatMessage formats the value and every attribute of message id using
// the first bundle that has the message.
func (l *Localization) FormatMessage(id string, args Args) (*FormattedMessage, []error, error) {
	for _, slot := range l.slots {
		b := l.bundle(slot)
		if b == nil {
			continue
		}
		msg, ok := b.Message(id)
		if !ok {
			l.logger.Debug("message not in locale, falling back",
				slog.String("id", id),
				slog.String("locale", slot.locale),
			)
			continue
		}

		var diagnostics []error
		out := &FormattedMessage{Locale: slot.locale}
		if msg.Value != nil {
			text, errs := b.formatPattern(id, msg.Value, args)
			out.Value, out.HasValue = text, true
			diagnostics = append(diagnostics, errs...)
		}
		for _, attr := range msg.Attributes {
			if attr == nil {
				continue
			}
			text, errs := b.formatPattern(id+"."+attr.ID, attr.Value, args)
			out.Attributes = append(out.Attributes, FormattedAttribute{ID: attr.ID, Value: text})
			diagnostics = append(diagnostics, errs...)
		}
		return out, diagnostics, nil
	}
	return nil, nil, newError(ErrMissingMessage, id)
}

// Key names a message and the arguments to format it with.
type Key struct {
	ID   string
	Args Args
}

// FormatValues formats keys in order. A key missing from every bundle
// yields an empty string and an ErrMissingMessage error in the returned
// list.
func (l *Localization) FormatValues(keys []Key) ([]string, []error) {
	out := make([]string, len(keys))
	var diagnostics []error
	for i, key := range keys {
		text, errs, err := l.FormatValue(key.ID, key.Args)
		out[i] = text
		diagnostics = append(diagnostics, errs...)
		if err != nil {
			diagnostics = append(diagnostics, err)
		}
	}
	return out, diagnostics
}
