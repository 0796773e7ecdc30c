package fluent

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// pluralRules maps numbers to CLDR plural categories for one locale and
// rule type.
type pluralRules struct {
	tag   language.Tag
	rules *plural.Rules
}

var pluralCategoryNames = map[plural.Form]string{
	plural.Other: "other",
	plural.Zero:  "zero",
	plural.One:   "one",
	plural.Two:   "two",
	plural.Few:   "few",
	plural.Many:  "many",
}

func loadPluralRules(cache FormatterCache, tag language.Tag, kind PluralType) (*pluralRules, error) {
	family, rules := FamilyPluralCardinal, plural.Cardinal
	if kind == PluralOrdinal {
		family, rules = FamilyPluralOrdinal, plural.Ordinal
	}

	key := FormatterKey{Family: family, Locale: tag.String()}
	return loadFormatter(cache, key, func() (*pluralRules, error) {
		return &pluralRules{tag: tag, rules: rules}, nil
	})
}

// category returns the plural category of the shaped number d.
func (p *pluralRules) category(d decimal) string {
	i, v, w, f, t := d.operands()
	form := p.rules.MatchPlural(p.tag, i, v, w, f, t)
	if name, ok := pluralCategoryNames[form]; ok {
		return name
	}
	return "other"
}

// PluralCategory returns the CLDR plural category of n in locale, using the
// rule type carried in n's options.
func PluralCategory(tag language.Tag, n NumberValue, cache FormatterCache) (string, error) {
	rules, err := loadPluralRules(cache, tag, n.Options.pluralType())
	if err != nil {
		return "", err
	}
	return rules.category(n.decimal()), nil
}
