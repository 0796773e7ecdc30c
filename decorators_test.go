package fluent_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fluent "github.com/goliatone/go-fluent"
)

type plainLocalizer map[string]string

func (p plainLocalizer) FormatValue(id string, _ fluent.Args) (string, []error, error) {
	text, ok := p[id]
	if !ok {
		return "", nil, fluent.ErrMissingMessage
	}
	return text, nil, nil
}

func TestWrapWithHooksPassThrough(t *testing.T) {
	t.Parallel()

	base := plainLocalizer{"hi": "Hi"}
	assert.Equal(t, fluent.Localizer(base), fluent.WrapWithHooks(base))
	assert.Equal(t, fluent.Localizer(base), fluent.WrapWithHooks(base, nil))
	assert.Nil(t, fluent.WrapWithHooks(nil, fluent.FormatHookFuncs{}))
}

func TestWrapWithHooksOrderAndRewrite(t *testing.T) {
	t.Parallel()

	var calls []string
	first := fluent.FormatHookFuncs{
		Before: func(ctx *fluent.FormatHookContext) {
			calls = append(calls, "first.before")
			ctx.ID = "hi"
			ctx.SetMetadata("source", "first")
		},
		After: func(ctx *fluent.FormatHookContext) {
			calls = append(calls, "first.after")
			ctx.Result = strings.ToUpper(ctx.Result)
		},
	}
	second := fluent.FormatHookFuncs{
		After: func(ctx *fluent.FormatHookContext) {
			calls = append(calls, "second.after")
			source, ok := ctx.MetadataValue("source")
			assert.True(t, ok)
			assert.Equal(t, "first", source)
			ctx.Result += "!"
		},
	}

	localizer := fluent.WrapWithHooks(plainLocalizer{"hi": "Hi"}, first, second)
	text, errs, err := localizer.FormatValue("alias", nil)
	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.Equal(t, "HI!", text)
	assert.Equal(t, []string{"first.before", "first.after", "second.after"}, calls)
}

func TestWrapWithHooksReportsLocale(t *testing.T) {
	t.Parallel()

	var ctxs []fluent.FormatHookContext
	hook := fluent.FormatHookFuncs{After: func(ctx *fluent.FormatHookContext) {
		ctxs = append(ctxs, *ctx)
	}}

	localizer := fluent.WrapWithHooks(testdataLocalization([]string{"pl", "en-US"}), hook)

	_, _, err := localizer.FormatValue("about", nil)
	require.NoError(t, err)
	_, _, err = localizer.FormatValue("missing", nil)
	require.Error(t, err)

	require.Len(t, ctxs, 2)
	assert.Equal(t, "en-US", ctxs[0].Locale)
	assert.Equal(t, "About Firefox", ctxs[0].Result)
	assert.Equal(t, "en-US", ctxs[0].Metadata["locale"])
	assert.Empty(t, ctxs[1].Locale)
	assert.ErrorIs(t, ctxs[1].Error, fluent.ErrMissingMessage)
}

func TestFormatHookContextNil(t *testing.T) {
	t.Parallel()

	var ctx *fluent.FormatHookContext
	ctx.SetMetadata("k", "v")
	_, ok := ctx.MetadataValue("k")
	assert.False(t, ok)

	empty := &fluent.FormatHookContext{}
	empty.SetMetadata("", "v")
	assert.Nil(t, empty.Metadata)
}

func TestLoggingHook(t *testing.T) {
	t.Parallel()

	assert.Nil(t, fluent.LoggingHook(nil))

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	localizer := fluent.WrapWithHooks(testdataLocalization([]string{"en-US"}), fluent.LoggingHook(logger))

	_, _, err := localizer.FormatValue("hello-world", nil)
	require.NoError(t, err)
	assert.Empty(t, buf.String())

	_, errs, err := localizer.FormatValue("hello-user", nil)
	require.NoError(t, err)
	require.Len(t, errs, 1)

	_, _, err = localizer.FormatValue("ghost", nil)
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, `level=WARN msg="message formatted with errors" id=hello-user locale=en-US`)
	assert.Contains(t, out, `level=ERROR msg="message not formatted" id=ghost`)
}
