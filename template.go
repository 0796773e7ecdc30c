package fluent

import (
	"errors"
	"fmt"
	"strings"
)

// LocalizerSource returns the Localizer for a requested locale.
// (*Config).LocalizerFor is one.
type LocalizerSource func(locale string) (Localizer, error)

// HelperConfig configures template helper exports
type HelperConfig struct {
	// LocaleKey is read from map template data to find the locale.
	LocaleKey string
	// TemplateHelperKey renames the translate helper.
	TemplateHelperKey string
	// OnMissing renders messages that could not be formatted. By default the
	// message id is written.
	OnMissing func(locale, id string, args Args, err error) string
}

// TemplateHelpers exposes localization helpers for text/template and
// html/template:
//
//	{{ translate . "cart-items" "count" 3 }}
//	{{ current_locale . }}
//
// The first argument is either a locale string or template data holding the
// locale under cfg.LocaleKey. Trailing arguments are name/value pairs.
func TemplateHelpers(source LocalizerSource, cfg HelperConfig) map[string]any {
	localeKey := cfg.LocaleKey
	if localeKey == "" {
		localeKey = "locale"
	}
	translateKey := cfg.TemplateHelperKey
	if translateKey == "" {
		translateKey = "translate"
	}
	onMissing := cfg.OnMissing
	if onMissing == nil {
		onMissing = func(_, id string, _ Args, _ error) string { return id }
	}

	currentLocale := func(data any) string {
		return extractLocale(data, localeKey)
	}

	translate := func(data any, id string, pairs ...any) string {
		locale := extractLocale(data, localeKey)
		args, err := argsFromPairs(pairs)
		if err != nil {
			return onMissing(locale, id, args, err)
		}
		if source == nil {
			return onMissing(locale, id, args, errors.New("fluent: no localizer source"))
		}

		localizer, err := source(locale)
		if err != nil {
			return onMissing(locale, id, args, err)
		}
		text, _, err := localizer.FormatValue(id, args)
		if err != nil {
			return onMissing(locale, id, args, err)
		}
		return text
	}

	return map[string]any{
		translateKey:     translate,
		"current_locale": currentLocale,
	}
}

func argsFromPairs(pairs []any) (Args, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("fluent: odd number of template arguments")
	}

	args := make(Args, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok || name == "" {
			return nil, fmt.Errorf("fluent: argument name at %d is not a string", i)
		}
		if v := ValueOf(pairs[i+1]); v != nil {
			args[name] = v
		}
	}
	return args, nil
}

func extractLocale(data any, localeKey string) string {
	switch v := data.(type) {
	case string:
		return strings.TrimSpace(v)
	case map[string]any:
		if s, ok := v[localeKey].(string); ok {
			return strings.TrimSpace(s)
		}
	case map[string]string:
		return strings.TrimSpace(v[localeKey])
	case interface{ Locale() string }:
		return v.Locale()
	}
	return ""
}
