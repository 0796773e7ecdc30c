package langneg

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Strategy selects how many locales Negotiate returns.
type Strategy int

const (
	Filtering Strategy = iota
	Matching
	Lookup
)

func (s Strategy) String() string {
	switch s {
	case Filtering:
		return "filtering"
	case Matching:
		return "matching"
	case Lookup:
		return "lookup"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy reads a strategy name, ignoring case.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "filtering":
		return Filtering, nil
	case "matching":
		return Matching, nil
	case "lookup":
		return Lookup, nil
	default:
		return Filtering, fmt.Errorf("langneg: unknown strategy %q", name)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler so a Strategy can be
// read from configuration.
func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// locale holds the subtags compared during negotiation. Empty subtags act as
// wildcards when a locale is used as a range.
type locale struct {
	language string
	script   string
	region   string
	variants string
}

func parseLocale(s string) (locale, bool) {
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(s), "_", "-"))
	if err != nil {
		return locale{}, false
	}

	base, script, region := tag.Raw()
	l := locale{language: base.String()}
	if l.language == "und" {
		l.language = ""
	}
	if script != (language.Script{}) {
		l.script = script.String()
	}
	if region != (language.Region{}) {
		l.region = region.String()
	}

	variants := tag.Variants()
	if len(variants) > 0 {
		names := make([]string, len(variants))
		for i, v := range variants {
			names[i] = v.String()
		}
		l.variants = strings.Join(names, "-")
	}
	return l, true
}

// key renders the language, script and region subtags.
func (l locale) key() string {
	parts := []string{l.language}
	if l.script != "" {
		parts = append(parts, l.script)
	}
	if l.region != "" {
		parts = append(parts, l.region)
	}
	return strings.Join(parts, "-")
}

func (l locale) matches(other locale, selfAsRange, otherAsRange bool) bool {
	return subtagMatches(l.language, other.language, selfAsRange, otherAsRange) &&
		subtagMatches(l.script, other.script, selfAsRange, otherAsRange) &&
		subtagMatches(l.region, other.region, selfAsRange, otherAsRange) &&
		subtagMatches(l.variants, other.variants, selfAsRange, otherAsRange)
}

func subtagMatches(a, b string, aAsRange, bAsRange bool) bool {
	return (aAsRange && a == "") || (bAsRange && b == "") || strings.EqualFold(a, b)
}

type candidate struct {
	raw    string
	locale locale
}

// Negotiate orders the available locales for the requested ones. The result
// holds each available locale at most once, spelled as given in available.
func Negotiate(requested, available []string, defaultLocale string, strategy Strategy) []string {
	supported := filterMatches(requested, available, strategy)

	if defaultLocale == "" {
		return supported
	}
	if strategy == Lookup {
		if len(supported) == 0 {
			supported = append(supported, defaultLocale)
		}
		return supported
	}
	for _, l := range supported {
		if l == defaultLocale {
			return supported
		}
	}
	return append(supported, defaultLocale)
}

func filterMatches(requested, available []string, strategy Strategy) []string {
	pool := make([]candidate, 0, len(available))
	seen := make(map[string]struct{}, len(available))
	for _, raw := range available {
		if _, dup := seen[raw]; dup {
			continue
		}
		seen[raw] = struct{}{}
		if l, ok := parseLocale(raw); ok {
			pool = append(pool, candidate{raw: raw, locale: l})
		}
	}

	var supported []string

	// take moves matching candidates into supported. Outside Filtering only
	// the first match is taken.
	take := func(req locale, selfAsRange, otherAsRange bool) bool {
		found := false
		kept := pool[:0]
		for _, c := range pool {
			if (strategy == Filtering || !found) && c.locale.matches(req, selfAsRange, otherAsRange) {
				found = true
				supported = append(supported, c.raw)
				continue
			}
			kept = append(kept, c)
		}
		pool = kept
		return found
	}

	for _, raw := range requested {
		req, ok := parseLocale(raw)
		if !ok {
			continue
		}

		steps := []func() bool{
			func() bool { return take(req, false, false) },
			func() bool { return take(req, true, false) },
			func() bool { return req.maximize() && take(req, true, false) },
			func() bool {
				req.variants = ""
				return take(req, true, true)
			},
			func() bool {
				req.region = ""
				return req.maximize() && take(req, true, false)
			},
			func() bool {
				req.region = ""
				return take(req, true, true)
			},
		}

		for _, step := range steps {
			if !step() {
				continue
			}
			if strategy == Lookup {
				return supported
			}
			if strategy == Matching {
				break
			}
		}
	}

	return supported
}
