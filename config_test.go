package fluent_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fluent "github.com/goliatone/go-fluent"
	"github.com/goliatone/go-fluent/langneg"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Parallel()

	loader := fluent.NewStaticLoader(map[string]map[string]string{
		"pl":    {"main.yaml": "messages: {hi: Cześć}"},
		"en-US": {"main.yaml": "messages: {hi: Hi}"},
	})

	cfg, err := fluent.NewConfig(fluent.WithLoader(loader), fluent.WithResources("main.yaml"))
	require.NoError(t, err)

	assert.Equal(t, []string{"en-US", "pl"}, cfg.AvailableLocales)
	assert.Equal(t, "en-US", cfg.DefaultLocale)
	assert.Equal(t, langneg.Filtering, cfg.Strategy)
	assert.True(t, cfg.UseIsolating)
	assert.NotNil(t, cfg.Parser)
	assert.NotNil(t, cfg.Logger)
	assert.Equal(t, []string{"en-US"}, cfg.NegotiatedLocales())
}

func TestNewConfigRejectsInvalidFunction(t *testing.T) {
	t.Parallel()

	_, err := fluent.NewConfig(fluent.WithFunction(" ", fluent.NumberFunction))
	assert.Error(t, err)

	_, err = fluent.NewConfig(fluent.WithFunction("UPPER", nil))
	assert.Error(t, err)

	_, err = fluent.NewConfig(fluent.WithFileLoader(nil, ""))
	assert.Error(t, err)
}

func TestConfigNegotiation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		opts      []fluent.Option
		requested []string
		want      []string
	}{
		{
			name:      "filtering adds default",
			opts:      []fluent.Option{fluent.WithAvailableLocales("en-US", "pl", "de")},
			requested: []string{"pl-PL", "de"},
			want:      []string{"pl", "de", "en-US"},
		},
		{
			name:      "lookup returns one locale",
			opts:      []fluent.Option{fluent.WithAvailableLocales("en-US", "pl", "de"), fluent.WithStrategy(langneg.Lookup)},
			requested: []string{"pl-PL", "de"},
			want:      []string{"pl"},
		},
		{
			name:      "explicit default",
			opts:      []fluent.Option{fluent.WithAvailableLocales("pl", "de"), fluent.WithDefaultLocale("de")},
			requested: []string{"fr"},
			want:      []string{"de"},
		},
		{
			name:      "nothing requested",
			opts:      []fluent.Option{fluent.WithAvailableLocales("pl", "de")},
			requested: nil,
			want:      []string{"pl"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := append(tt.opts, fluent.WithRequestedLocales(tt.requested...))
			cfg, err := fluent.NewConfig(opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.NegotiatedLocales())
		})
	}
}

func TestConfigBuildLocalization(t *testing.T) {
	t.Parallel()

	cache := fluent.NewSharedCache()
	cfg, err := fluent.NewConfig(
		fluent.WithLoader(fluent.NewStaticLoader(map[string]map[string]string{
			"en-US": {"main.yaml": "messages: {price: {fn: NUMBER, args: [{var: n}]}, hi: Hi}"},
			"de":    {"main.yaml": "messages: {price: {fn: NUMBER, args: [{var: n}]}}"},
		})),
		fluent.WithResources("main.yaml"),
		fluent.WithDefaultLocale("en-US"),
		fluent.WithRequestedLocales("de"),
		fluent.WithSharedCache(cache),
	)
	require.NoError(t, err)

	l10n, err := cfg.BuildLocalization()
	require.NoError(t, err)
	assert.Equal(t, []string{"de", "en-US"}, l10n.Locales())

	again, err := cfg.BuildLocalization()
	require.NoError(t, err)
	assert.Same(t, l10n, again)

	args := fluent.Args{"n": fluent.Number(1234.5)}
	text, _, err := l10n.FormatValue("price", args)
	require.NoError(t, err)
	assert.Equal(t, "1.234,5", text)

	text, _, err = l10n.FormatValue("hi", nil)
	require.NoError(t, err)
	assert.Equal(t, "Hi", text)

	en, err := cfg.LocalizationFor([]string{"en"})
	require.NoError(t, err)
	assert.NotSame(t, l10n, en)
	text, _, err = en.FormatValue("price", args)
	require.NoError(t, err)
	assert.Equal(t, "1,234.5", text)

	entries := cache.Len()
	_, _, err = en.FormatValue("price", args)
	require.NoError(t, err)
	assert.Equal(t, entries, cache.Len())
	assert.Positive(t, entries)
}

func TestConfigIsolation(t *testing.T) {
	t.Parallel()

	args := fluent.Args{"name": fluent.String("Ann")}
	for _, tt := range []struct {
		name string
		opts []fluent.Option
		want string
	}{
		{name: "default isolates", want: "Hello, " + fsi + "Ann" + pdi + "!"},
		{name: "disabled", opts: []fluent.Option{fluent.WithIsolation(false)}, want: "Hello, Ann!"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			opts := append([]fluent.Option{
				fluent.WithFileLoader(os.DirFS("testdata"), "{locale}/{res_id}"),
				fluent.WithAvailableLocales("en-US"),
				fluent.WithResources("test.yaml"),
			}, tt.opts...)
			cfg, err := fluent.NewConfig(opts...)
			require.NoError(t, err)

			l10n, err := cfg.BuildLocalization()
			require.NoError(t, err)
			text, _, err := l10n.FormatValue("hello-user", args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, text)
		})
	}
}

func TestConfigRequiresLoader(t *testing.T) {
	t.Parallel()

	cfg, err := fluent.NewConfig(fluent.WithDefaultLocale("en"))
	require.NoError(t, err)

	_, err = cfg.BuildLocalization()
	assert.Error(t, err)

	empty, err := fluent.NewConfig(fluent.WithLoader(fluent.NewStaticLoader(nil)))
	require.NoError(t, err)
	_, err = empty.BuildLocalization()
	assert.Error(t, err)
}

func TestConfigLocalizerAppliesHooksAndTransform(t *testing.T) {
	t.Parallel()

	var seen []string
	hook := fluent.FormatHookFuncs{After: func(ctx *fluent.FormatHookContext) {
		seen = append(seen, ctx.ID+"@"+ctx.Locale)
	}}

	cfg, err := fluent.NewConfig(
		fluent.WithEnvConfig(fluent.EnvConfig{
			DefaultLocale:    "en-US",
			AvailableLocales: []string{"en-US", "pl"},
			Resources:        []string{"test.yaml"},
			ResourcesDir:     "testdata",
			PathTemplate:     "{locale}/{res_id}",
			UseIsolating:     false,
		}),
		fluent.WithFormatHooks(hook),
		fluent.WithTextTransform(fluent.NormalizeNFC),
	)
	require.NoError(t, err)

	localizer, err := cfg.LocalizerFor("pl")
	require.NoError(t, err)

	text, _, err := localizer.FormatValue("new-message", nil)
	require.NoError(t, err)
	assert.Equal(t, "Nowa Wiadomość", text)

	text, _, err = localizer.FormatValue("hello-user", fluent.Args{"name": fluent.String("Ann")})
	require.NoError(t, err)
	assert.Equal(t, "Hello, Ann!", text)

	assert.Equal(t, []string{"new-message@pl", "hello-user@en-US"}, seen)

	def, err := cfg.BuildLocalizer()
	require.NoError(t, err)
	text, _, err = def.FormatValue("hello-world", nil)
	require.NoError(t, err)
	assert.Equal(t, "Hello World", text)
}

func TestParseEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		ec, err := fluent.ParseEnvConfig(map[string]string{})
		require.NoError(t, err)
		assert.Equal(t, fluent.EnvConfig{
			DefaultLocale: "en-US",
			Strategy:      langneg.Filtering,
			PathTemplate:  "{locale}/{res_id}",
			UseIsolating:  true,
		}, ec)
	})

	t.Run("values", func(t *testing.T) {
		ec, err := fluent.ParseEnvConfig(map[string]string{
			"FLUENT_DEFAULT_LOCALE":    "pl",
			"FLUENT_AVAILABLE_LOCALES": "pl,en-US",
			"FLUENT_REQUESTED_LOCALES": "en-US",
			"FLUENT_STRATEGY":          "lookup",
			"FLUENT_RESOURCES":         "main.yaml,errors.yaml",
			"FLUENT_RESOURCES_DIR":     "locales",
			"FLUENT_PATH_TEMPLATE":     "{res_id}.{locale}",
			"FLUENT_USE_ISOLATING":     "false",
		})
		require.NoError(t, err)
		assert.Equal(t, fluent.EnvConfig{
			DefaultLocale:    "pl",
			AvailableLocales: []string{"pl", "en-US"},
			RequestedLocales: []string{"en-US"},
			Strategy:         langneg.Lookup,
			Resources:        []string{"main.yaml", "errors.yaml"},
			ResourcesDir:     "locales",
			PathTemplate:     "{res_id}.{locale}",
			UseIsolating:     false,
		}, ec)
	})

	t.Run("bad strategy", func(t *testing.T) {
		_, err := fluent.ParseEnvConfig(map[string]string{"FLUENT_STRATEGY": "best"})
		assert.Error(t, err)
	})

	t.Run("bad bool", func(t *testing.T) {
		_, err := fluent.ParseEnvConfig(map[string]string{"FLUENT_USE_ISOLATING": "maybe"})
		assert.Error(t, err)
	})
}
