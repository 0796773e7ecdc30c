package fluent

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestConfinedCacheBuildsOnce(t *testing.T) {
	t.Parallel()

	cache := NewConfinedCache()
	key := FormatterKey{Family: FamilyDecimal, Locale: "en", Options: "auto"}

	builds := 0
	build := func() (any, error) {
		builds++
		return builds, nil
	}

	first, err := cache.Load(key, build)
	require.NoError(t, err)
	second, err := cache.Load(key, build)
	require.NoError(t, err)

	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
	assert.Equal(t, 1, cache.Len())
}

func TestCacheDoesNotStoreFailures(t *testing.T) {
	t.Parallel()

	caches := map[string]FormatterCache{
		"confined": NewConfinedCache(),
		"shared":   NewSharedCache(),
	}

	for name, cache := range caches {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			key := FormatterKey{Family: FamilyCurrency, Locale: "en", Options: "XXX"}
			boom := errors.New("boom")

			_, err := cache.Load(key, func() (any, error) { return nil, boom })
			require.ErrorIs(t, err, boom)

			value, err := cache.Load(key, func() (any, error) { return "ok", nil })
			require.NoError(t, err)
			assert.Equal(t, "ok", value)
		})
	}
}

func TestSharedCacheConcurrentMisses(t *testing.T) {
	t.Parallel()

	cache := NewSharedCache()
	key := FormatterKey{Family: FamilyPluralCardinal, Locale: "pl"}

	var builds atomic.Int32
	var wg sync.WaitGroup
	results := make([]any, 64)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			value, err := cache.Load(key, func() (any, error) {
				builds.Add(1)
				return &struct{ n int }{n: 1}, nil
			})
			assert.NoError(t, err)
			results[i] = value
		}()
	}
	wg.Wait()

	for _, r := range results {
		assert.Same(t, results[0], r)
	}
	assert.LessOrEqual(t, builds.Load(), int32(len(results)))
	assert.Equal(t, 1, cache.Len())
}

func TestLoadFormatterTypeMismatch(t *testing.T) {
	t.Parallel()

	cache := NewConfinedCache()
	key := FormatterKey{Family: FamilyDecimal, Locale: "en"}
	_, err := cache.Load(key, func() (any, error) { return "not a formatter", nil })
	require.NoError(t, err)

	_, err = loadFormatter(cache, key, func() (*decimalFormatter, error) {
		return newDecimalFormatter(language.English, GroupingAuto)
	})
	require.ErrorIs(t, err, ErrFormatterConstruction)
}

func TestLoadFormatterWithoutCache(t *testing.T) {
	t.Parallel()

	f, err := loadDecimalFormatter(nil, language.German, GroupingAuto)
	require.NoError(t, err)
	assert.Equal(t, "1.234,5", f.format(parseDecimal("1234.5")))
}

func TestFormatterKeyString(t *testing.T) {
	t.Parallel()

	key := FormatterKey{Family: FamilyDate, Locale: "en-US", Options: "medium/hidden/hidden"}
	assert.Equal(t, "date|en-US|medium/hidden/hidden", key.String())
}
