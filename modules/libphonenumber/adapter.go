// Package libphonenumber provides a PHONE function for fluent bundles backed
// by github.com/nyaruka/phonenumbers.
//
//	b := fluent.NewBundle([]language.Tag{language.MustParse("en-US")})
//	_ = libphonenumber.Register(b)
//
// Messages can then call { PHONE($number) } or
// { PHONE($number, format: "national") }.
package libphonenumber

import (
	"strconv"
	"strings"

	fluent "github.com/goliatone/go-fluent"
	"github.com/nyaruka/phonenumbers"
	"golang.org/x/text/language"
)

// FunctionName is the name PHONE is registered under.
const FunctionName = "PHONE"

type options struct {
	region string
	format phonenumbers.PhoneNumberFormat
}

// Option configures registration behaviour for the libphonenumber adapter.
type Option func(*options)

// WithRegion forces parsing using the provided ISO 3166-1 alpha-2 country code.
func WithRegion(region string) Option {
	return func(o *options) {
		o.region = strings.ToUpper(strings.TrimSpace(region))
	}
}

// WithFormat selects the default output format (defaults to INTERNATIONAL).
func WithFormat(format phonenumbers.PhoneNumberFormat) Option {
	return func(o *options) {
		o.format = format
	}
}

// Register adds PHONE to b. Numbers without a country code are read in the
// region of the bundle locale unless WithRegion is given.
func Register(b *fluent.Bundle, opts ...Option) error {
	return b.AddFunction(FunctionName, Function(b.Locale(), opts...))
}

// Function returns the PHONE implementation for locale.
//
// Named arguments:
//   - format: international, national, e164 or rfc3966
//   - region: region used for numbers without a country code
//
// Input that is not a possible phone number is returned unchanged.
func Function(locale language.Tag, opts ...Option) fluent.Function {
	cfg := options{format: phonenumbers.INTERNATIONAL}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return func(positional []fluent.Value, named fluent.Args) fluent.Value {
		if len(positional) != 1 {
			return fluent.ErrorValue{}
		}

		var raw string
		switch v := positional[0].(type) {
		case fluent.StringValue:
			raw = string(v)
		case fluent.NumberValue:
			raw = strconv.FormatFloat(v.Value, 'f', -1, 64)
		default:
			return fluent.ErrorValue{}
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return fluent.String(raw)
		}

		region := cfg.region
		if v, ok := stringArg(named, "region"); ok && v != "" {
			region = strings.ToUpper(v)
		}
		if region == "" {
			region = regionFromLocale(locale)
		}

		format := cfg.format
		if v, ok := stringArg(named, "format"); ok {
			if parsed, ok := parseFormat(v); ok {
				format = parsed
			}
		}

		return fluent.String(formatNumber(raw, region, format))
	}
}

func formatNumber(raw, region string, format phonenumbers.PhoneNumberFormat) string {
	number, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return raw
	}

	if !phonenumbers.IsPossibleNumber(number) && !phonenumbers.IsValidNumber(number) {
		return raw
	}

	formatted := phonenumbers.Format(number, format)
	if formatted == "" {
		return raw
	}
	return formatted
}

func stringArg(named fluent.Args, name string) (string, bool) {
	v, ok := named.Get(name)
	if !ok {
		return "", false
	}
	s, ok := v.(fluent.StringValue)
	return string(s), ok
}

func parseFormat(name string) (phonenumbers.PhoneNumberFormat, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "international":
		return phonenumbers.INTERNATIONAL, true
	case "national":
		return phonenumbers.NATIONAL, true
	case "e164":
		return phonenumbers.E164, true
	case "rfc3966":
		return phonenumbers.RFC3966, true
	default:
		return 0, false
	}
}

// regionFromLocale returns the locale's region, guessing the likely one for
// bare languages.
func regionFromLocale(locale language.Tag) string {
	if locale == language.Und {
		return ""
	}
	region, confidence := locale.Region()
	if confidence == language.No {
		return ""
	}
	return strings.ToUpper(region.String())
}
