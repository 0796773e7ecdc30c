package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fluent "github.com/goliatone/go-fluent"
)

func writeCatalog(t *testing.T, dir, locale, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, locale), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, locale, "main.yaml"), []byte(body), 0o644))
}

func TestRunFormatFallsBack(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, dir, "en-US", "messages:\n  hello: Hello\n  bye: Goodbye\n")
	writeCatalog(t, dir, "pl", "messages:\n  hello: Cześć\n")
	t.Chdir(dir)

	tests := []struct {
		name string
		id   string
		want string
	}{
		{name: "requested locale", id: "hello", want: "Cześć\n"},
		{name: "fallback locale", id: "bye", want: "Goodbye\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := run([]string{
				"-dir", dir,
				"-resources", "main.yaml",
				"-locale", "pl",
				"-default", "en-US",
				"format", tt.id,
			}, &stdout, &stderr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout.String())
		})
	}
}

func TestRunNegotiate(t *testing.T) {
	t.Chdir(t.TempDir())

	var stdout, stderr bytes.Buffer
	err := run([]string{
		"-available", "en-US,pl,fr",
		"-locale", "pl-PL",
		"-default", "en-US",
		"negotiate",
	}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "pl\nen-US\n", stdout.String())
}

func TestRunRequiresCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	var stdout, stderr bytes.Buffer
	err := run(nil, &stdout, &stderr)
	require.Error(t, err)
}

func TestParseArgs(t *testing.T) {
	args, err := parseArgs([]string{"name=Ana", "count=3"})
	require.NoError(t, err)

	name, _ := args.Get("name")
	assert.Equal(t, fluent.String("Ana"), name)
	count, _ := args.Get("count")
	assert.Equal(t, fluent.Number(3), count)

	_, err = parseArgs([]string{"broken"})
	require.Error(t, err)
}
