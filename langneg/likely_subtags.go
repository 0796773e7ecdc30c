package langneg

import "strings"

// likelySubtags maps a locale to its maximized form.
var likelySubtags = map[string]string{
	"en":    "en-Latn-US",
	"fr":    "fr-Latn-FR",
	"sr":    "sr-Cyrl-SR",
	"sr-RU": "sr-Latn-SR",
	"az-IR": "az-Arab-IR",
	"zh-GB": "zh-Hant-GB",
	"zh-US": "zh-Hant-US",
}

// regionMatchingKeys are languages whose main region shares the language
// code, such as de-DE or pl-PL.
var regionMatchingKeys = []string{
	"az", "bg", "cs", "de", "es", "fi", "fr", "hu", "it", "lt", "lv", "nl", "pl", "ro", "ru",
}

// maximize fills in likely script and region subtags. It reports false when
// nothing is known about the locale.
func (l *locale) maximize() bool {
	if extended, ok := likelySubtags[l.key()]; ok {
		parsed, ok := parseLocale(extended)
		if !ok {
			return false
		}
		l.language, l.script, l.region = parsed.language, parsed.script, parsed.region
		return true
	}

	for _, key := range regionMatchingKeys {
		if l.language == key {
			l.region = strings.ToUpper(key)
			return true
		}
	}
	return false
}
