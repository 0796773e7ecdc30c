package fluent

import "golang.org/x/text/unicode/norm"

// NormalizeNFC is a text transform that puts output in Unicode
// normalization form C.
func NormalizeNFC(text string) string {
	return norm.NFC.String(text)
}
