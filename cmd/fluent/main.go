// Command fluent formats messages from catalog resources on disk.
//
//	fluent -dir ./locales -resources main.yaml -locale pl,en-US format hello-user name=Ana
//	fluent -available en-US,pl,fr -locale pl-PL negotiate
//
// Settings may also come from FLUENT_* environment variables or a .env file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	fluent "github.com/goliatone/go-fluent"
	"github.com/goliatone/go-fluent/langneg"
	"github.com/joho/godotenv"
)

type logConfig struct {
	Level  string `env:"FLUENT_LOG_LEVEL" envDefault:"warn"`
	Format string `env:"FLUENT_LOG_FORMAT" envDefault:"text"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "fluent: %v\n", err)
		os.Exit(1)
	}
}

func run(argv []string, stdout, stderr io.Writer) error {
	// The .env file is optional.
	_ = godotenv.Load()

	var logCfg logConfig
	if err := env.Parse(&logCfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	logger := newLogger(logCfg, stderr)

	envCfg, err := fluent.LoadEnvConfig()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("fluent", flag.ContinueOnError)
	fs.SetOutput(stderr)
	dir := fs.String("dir", envCfg.ResourcesDir, "directory holding {locale}/{resource} files")
	pathTemplate := fs.String("path", envCfg.PathTemplate, "resource path template")
	resources := fs.String("resources", strings.Join(envCfg.Resources, ","), "comma separated resource ids")
	requested := fs.String("locale", strings.Join(envCfg.RequestedLocales, ","), "comma separated requested locales")
	available := fs.String("available", strings.Join(envCfg.AvailableLocales, ","), "comma separated available locales")
	defaultLocale := fs.String("default", envCfg.DefaultLocale, "default locale")
	strategy := fs.String("strategy", envCfg.Strategy.String(), "negotiation strategy: filtering, matching or lookup")
	isolate := fs.Bool("isolate", envCfg.UseIsolating, "wrap placeables in Unicode isolation marks")
	if err := fs.Parse(argv); err != nil {
		return err
	}

	envCfg.ResourcesDir = *dir
	envCfg.PathTemplate = *pathTemplate
	envCfg.Resources = splitList(*resources)
	envCfg.RequestedLocales = splitList(*requested)
	envCfg.AvailableLocales = splitList(*available)
	envCfg.DefaultLocale = *defaultLocale
	envCfg.UseIsolating = *isolate
	if envCfg.Strategy, err = langneg.ParseStrategy(*strategy); err != nil {
		return err
	}

	if len(envCfg.AvailableLocales) == 0 && envCfg.ResourcesDir != "" {
		envCfg.AvailableLocales = discoverLocales(envCfg.ResourcesDir)
	}

	cfg, err := fluent.NewConfig(
		fluent.WithEnvConfig(envCfg),
		fluent.WithLogger(logger),
		fluent.WithTextTransform(fluent.NormalizeNFC),
		fluent.WithFormatHooks(fluent.LoggingHook(logger)),
	)
	if err != nil {
		return err
	}

	args := fs.Args()
	if len(args) == 0 {
		return errors.New("missing command: format or negotiate")
	}

	switch args[0] {
	case "negotiate":
		for _, locale := range cfg.NegotiatedLocales() {
			fmt.Fprintln(stdout, locale)
		}
		return nil
	case "format":
		if len(args) < 2 {
			return errors.New("format: missing message id")
		}
		return formatMessage(cfg, args[1], args[2:], stdout)
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func formatMessage(cfg *fluent.Config, id string, pairs []string, stdout io.Writer) error {
	localizer, err := cfg.BuildLocalizer()
	if err != nil {
		return err
	}

	args, err := parseArgs(pairs)
	if err != nil {
		return err
	}

	text, _, err := localizer.FormatValue(id, args)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, text)
	return nil
}

// parseArgs reads name=value pairs. Values that parse as numbers become
// numbers.
func parseArgs(pairs []string) (fluent.Args, error) {
	args := fluent.NewArgs()
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("argument %q is not name=value", pair)
		}
		if n, err := fluent.NumberFromString(value); err == nil {
			args.Set(name, n)
			continue
		}
		args.Set(name, fluent.String(value))
	}
	return args, nil
}

func discoverLocales(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var locales []string
	for _, entry := range entries {
		if entry.IsDir() {
			locales = append(locales, entry.Name())
		}
	}
	return locales
}

func splitList(value string) []string {
	var out []string
	for part := range strings.SplitSeq(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func newLogger(cfg logConfig, w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
