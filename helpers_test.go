package fluent_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	fluent "github.com/goliatone/go-fluent"
)

const (
	fsi = "\u2068"
	pdi = "\u2069"
)

// newBundle builds a bundle for locale from a YAML catalog.
func newBundle(t *testing.T, locale, src string, opts ...fluent.BundleOption) *fluent.Bundle {
	t.Helper()

	res, err := fluent.ParseResource("test.yaml", []byte(src))
	require.NoError(t, err)

	b := fluent.NewBundle([]language.Tag{language.MustParse(locale)}, opts...)
	require.NoError(t, b.AddResource(res))
	return b
}

func format(t *testing.T, b *fluent.Bundle, id string, args fluent.Args) (string, []error) {
	t.Helper()

	text, errs, err := b.FormatMessage(id, args)
	require.NoError(t, err)
	return text, errs
}
