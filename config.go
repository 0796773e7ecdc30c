package fluent

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/goliatone/go-fluent/langneg"
)

// Config captures locale negotiation, resource loading and bundle setup
type Config struct {
	DefaultLocale    string
	AvailableLocales []string
	RequestedLocales []string
	Strategy         langneg.Strategy
	ResourceIDs      []string
	Loader           ResourceLoader
	Parser           ParseFunc
	UseIsolating     bool
	Hooks            []FormatHook
	Logger           *slog.Logger

	functions []namedFunction
	transform func(string) string
	cache     FormatterCache

	mu            sync.Mutex
	localizations map[string]*Localization
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		UseIsolating: true,
		Strategy:     langneg.Filtering,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if len(cfg.AvailableLocales) == 0 {
		if lister, ok := cfg.Loader.(interface{ Locales() []string }); ok {
			cfg.AvailableLocales = lister.Locales()
		}
	}
	cfg.AvailableLocales = normalizeLocales(cfg.AvailableLocales)
	cfg.RequestedLocales = normalizeLocales(cfg.RequestedLocales)

	if cfg.DefaultLocale == "" && len(cfg.AvailableLocales) > 0 {
		cfg.DefaultLocale = cfg.AvailableLocales[0]
	}
	cfg.DefaultLocale = normalizeLocale(cfg.DefaultLocale)

	if cfg.Parser == nil {
		cfg.Parser = ParseResource
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.cache == nil {
		cfg.cache = NewSharedCache()
	}

	return cfg, nil
}

// WithDefaultLocale sets the locale used when negotiation finds nothing
func WithDefaultLocale(locale string) Option {
	return func(c *Config) error {
		c.DefaultLocale = locale
		return nil
	}
}

// WithAvailableLocales registers the locales resources exist for
func WithAvailableLocales(locales ...string) Option {
	return func(c *Config) error {
		c.AvailableLocales = append(c.AvailableLocales, locales...)
		return nil
	}
}

// WithRequestedLocales sets the user's locales in priority order
func WithRequestedLocales(locales ...string) Option {
	return func(c *Config) error {
		c.RequestedLocales = append(c.RequestedLocales, locales...)
		return nil
	}
}

func WithStrategy(strategy langneg.Strategy) Option {
	return func(c *Config) error {
		c.Strategy = strategy
		return nil
	}
}

// WithResources lists the resource ids every bundle is built from
func WithResources(resourceIDs ...string) Option {
	return func(c *Config) error {
		c.ResourceIDs = append(c.ResourceIDs, resourceIDs...)
		return nil
	}
}

func WithLoader(loader ResourceLoader) Option {
	return func(c *Config) error {
		c.Loader = loader
		return nil
	}
}

// WithFileLoader reads resources from fsys using a template such as
// "{locale}/{res_id}".
func WithFileLoader(fsys fs.FS, pathTemplate string) Option {
	return func(c *Config) error {
		if fsys == nil {
			return errors.New("fluent: file loader requires a filesystem")
		}
		c.Loader = NewFileLoader(fsys, pathTemplate)
		return nil
	}
}

func WithParser(parse ParseFunc) Option {
	return func(c *Config) error {
		c.Parser = parse
		return nil
	}
}

// WithIsolation toggles Unicode isolation marks in every bundle the config builds.
func WithIsolation(enabled bool) Option {
	return func(c *Config) error {
		c.UseIsolating = enabled
		return nil
	}
}

// WithSharedCache makes every bundle built by the config use cache.
func WithSharedCache(cache *SharedCache) Option {
	return func(c *Config) error {
		if cache != nil {
			c.cache = cache
		}
		return nil
	}
}

// WithFunction registers fn on every bundle built by the config
func WithFunction(name string, fn Function) Option {
	return func(c *Config) error {
		if strings.TrimSpace(name) == "" || fn == nil {
			return fmt.Errorf("fluent: invalid function %q", name)
		}
		c.functions = append(c.functions, namedFunction{name: name, fn: fn})
		return nil
	}
}

func WithFormatHooks(hooks ...FormatHook) Option {
	return func(c *Config) error {
		c.Hooks = append(c.Hooks, hooks...)
		return nil
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithTextTransform applies fn to text elements and string values, see
// NormalizeNFC.
func WithTextTransform(fn func(string) string) Option {
	return func(c *Config) error {
		c.transform = fn
		return nil
	}
}

// NegotiatedLocales returns the fallback chain for the requested locales.
// With nothing requested the default locale is used.
func (c *Config) NegotiatedLocales() []string {
	return c.negotiate(c.RequestedLocales)
}

func (c *Config) negotiate(requested []string) []string {
	if len(requested) == 0 && c.DefaultLocale != "" {
		requested = []string{c.DefaultLocale}
	}
	return langneg.Negotiate(requested, c.AvailableLocales, c.DefaultLocale, c.Strategy)
}

// BuildLocalization builds a Localization over the negotiated locales.
func (c *Config) BuildLocalization() (*Localization, error) {
	return c.LocalizationFor(c.RequestedLocales)
}

// LocalizationFor negotiates requested against the available locales and
// returns a Localization for the result. Localizations are reused for equal
// negotiation results, so bundles are built once per locale chain.
func (c *Config) LocalizationFor(requested []string) (*Localization, error) {
	if c.Loader == nil {
		return nil, errors.New("fluent: config requires a resource loader")
	}

	locales := c.negotiate(normalizeLocales(requested))
	if len(locales) == 0 {
		return nil, errors.New("fluent: no locales negotiated")
	}

	key := strings.Join(locales, ",")
	c.mu.Lock()
	defer c.mu.Unlock()

	if loc, ok := c.localizations[key]; ok {
		return loc, nil
	}

	bundleOpts := []BundleOption{
		WithUseIsolating(c.UseIsolating),
		WithFormatterCache(c.cache),
	}
	if c.transform != nil {
		bundleOpts = append(bundleOpts, WithTransform(c.transform))
	}

	opts := []LocalizationOption{
		WithLocalizationLogger(c.Logger),
		WithLocalizationParser(c.Parser),
		WithLocalizationBundleOptions(bundleOpts...),
	}
	for _, fn := range c.functions {
		opts = append(opts, WithLocalizationFunction(fn.name, fn.fn))
	}

	loc := NewLocalization(c.ResourceIDs, locales, c.Loader, opts...)
	if c.localizations == nil {
		c.localizations = make(map[string]*Localization)
	}
	c.localizations[key] = loc

	c.Logger.Debug("localization built",
		slog.Any("requested", requested),
		slog.Any("locales", locales),
	)
	return loc, nil
}

// BuildLocalizer is BuildLocalization wrapped with the configured hooks.
func (c *Config) BuildLocalizer() (Localizer, error) {
	loc, err := c.BuildLocalization()
	if err != nil {
		return nil, err
	}
	return WrapWithHooks(loc, c.Hooks...), nil
}

// LocalizerFor returns a hooked Localizer for a single requested locale.
// Its signature matches LocalizerSource.
func (c *Config) LocalizerFor(locale string) (Localizer, error) {
	var requested []string
	if locale != "" {
		requested = []string{locale}
	}
	loc, err := c.LocalizationFor(requested)
	if err != nil {
		return nil, err
	}
	return WrapWithHooks(loc, c.Hooks...), nil
}

// EnvConfig holds the settings that can be supplied through the
// environment.
type EnvConfig struct {
	DefaultLocale    string           `env:"FLUENT_DEFAULT_LOCALE" envDefault:"en-US"`
	AvailableLocales []string         `env:"FLUENT_AVAILABLE_LOCALES" envSeparator:","`
	RequestedLocales []string         `env:"FLUENT_REQUESTED_LOCALES" envSeparator:","`
	Strategy         langneg.Strategy `env:"FLUENT_STRATEGY" envDefault:"filtering"`
	Resources        []string         `env:"FLUENT_RESOURCES" envSeparator:","`
	ResourcesDir     string           `env:"FLUENT_RESOURCES_DIR"`
	PathTemplate     string           `env:"FLUENT_PATH_TEMPLATE" envDefault:"{locale}/{res_id}"`
	UseIsolating     bool             `env:"FLUENT_USE_ISOLATING" envDefault:"true"`
}

// LoadEnvConfig reads EnvConfig from the process environment.
func LoadEnvConfig() (EnvConfig, error) {
	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("fluent: parse env: %w", err)
	}
	return cfg, nil
}

// ParseEnvConfig reads EnvConfig from vars instead of the process
// environment.
func ParseEnvConfig(vars map[string]string) (EnvConfig, error) {
	var cfg EnvConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return EnvConfig{}, fmt.Errorf("fluent: parse env: %w", err)
	}
	return cfg, nil
}

// WithEnvConfig applies ec. A resources directory installs a file loader.
func WithEnvConfig(ec EnvConfig) Option {
	return func(c *Config) error {
		if ec.DefaultLocale != "" {
			c.DefaultLocale = ec.DefaultLocale
		}
		c.AvailableLocales = append(c.AvailableLocales, ec.AvailableLocales...)
		c.RequestedLocales = append(c.RequestedLocales, ec.RequestedLocales...)
		c.ResourceIDs = append(c.ResourceIDs, ec.Resources...)
		c.Strategy = ec.Strategy
		c.UseIsolating = ec.UseIsolating

		if ec.ResourcesDir != "" {
			c.Loader = NewFileLoader(os.DirFS(ec.ResourcesDir), ec.PathTemplate)
		}
		return nil
	}
}
