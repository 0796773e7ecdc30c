// Package langneg negotiates which of the available locales to use for a
// list of requested ones.
//
// Three strategies are supported:
//
//   - Filtering returns every available locale that matches any requested
//     locale, in request priority order.
//   - Matching returns the best available locale for each requested locale.
//   - Lookup returns the single best locale for the whole request.
//
// Each requested locale is tried against the available locales in a fixed
// cascade: exact match, available locale as a range, likely subtags, the
// locale without variants, likely subtags of the bare language, and finally
// the language alone. The default locale closes the list for Filtering and
// Matching, and is the whole answer for Lookup when nothing matched.
//
// Basic usage:
//
//	requested := langneg.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
//	locales := langneg.Negotiate(requested, []string{"en-US", "pl", "fr"}, "en-US", langneg.Filtering)
package langneg
