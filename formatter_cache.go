package fluent

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// FormatterFamily groups formatters that share construction logic.
type FormatterFamily string

const (
	FamilyDecimal        FormatterFamily = "decimal"
	FamilyCurrency       FormatterFamily = "currency"
	FamilyPluralCardinal FormatterFamily = "plural-cardinal"
	FamilyPluralOrdinal  FormatterFamily = "plural-ordinal"
	FamilyDate           FormatterFamily = "date"
	FamilyTime           FormatterFamily = "time"
	FamilyDateTime       FormatterFamily = "datetime"
	FamilyZonedDateTime  FormatterFamily = "zoned-datetime"
	FamilyTimeZone       FormatterFamily = "timezone"
)

// FormatterKey identifies one formatter instance. Options is a canonical
// rendering of the option tuple the formatter was built for.
type FormatterKey struct {
	Family  FormatterFamily
	Locale  string
	Options string
}

func (k FormatterKey) String() string {
	return fmt.Sprintf("%s|%s|%s", k.Family, k.Locale, k.Options)
}

// FormatterCache stores formatters for the lifetime of the process. Load
// returns the cached formatter for key, calling build on a miss. Failed
// builds are not cached.
type FormatterCache interface {
	Load(key FormatterKey, build func() (any, error)) (any, error)
}

// loadFormatter is the typed form of FormatterCache.Load.
func loadFormatter[T any](cache FormatterCache, key FormatterKey, build func() (T, error)) (T, error) {
	if cache == nil {
		return build()
	}

	value, err := cache.Load(key, func() (any, error) {
		return build()
	})
	if err != nil {
		var zero T
		return zero, err
	}

	typed, ok := value.(T)
	if !ok {
		var zero T
		return zero, newError(ErrFormatterConstruction, "cached formatter type mismatch for "+key.String())
	}
	return typed, nil
}

// ConfinedCache is a formatter cache for a single goroutine. It performs no
// synchronization.
type ConfinedCache struct {
	entries map[FormatterKey]any
}

var _ FormatterCache = (*ConfinedCache)(nil)

func NewConfinedCache() *ConfinedCache {
	return &ConfinedCache{entries: make(map[FormatterKey]any)}
}

func (c *ConfinedCache) Load(key FormatterKey, build func() (any, error)) (any, error) {
	if c.entries == nil {
		c.entries = make(map[FormatterKey]any)
	}
	if cached, ok := c.entries[key]; ok {
		return cached, nil
	}

	value, err := build()
	if err != nil {
		return nil, err
	}
	c.entries[key] = value
	return value, nil
}

// Len reports the number of cached formatters.
func (c *ConfinedCache) Len() int {
	return len(c.entries)
}

// SharedCache is a formatter cache safe for concurrent use. Concurrent
// misses on the same key share a single build, and once a formatter is
// stored every caller observes that instance.
type SharedCache struct {
	mu      sync.RWMutex
	entries map[FormatterKey]any
	group   singleflight.Group
}

var _ FormatterCache = (*SharedCache)(nil)

func NewSharedCache() *SharedCache {
	return &SharedCache{entries: make(map[FormatterKey]any)}
}

func (c *SharedCache) Load(key FormatterKey, build func() (any, error)) (any, error) {
	c.mu.RLock()
	if cached, ok := c.entries[key]; ok {
		c.mu.RUnlock()
		return cached, nil
	}
	c.mu.RUnlock()

	value, err, _ := c.group.Do(key.String(), func() (any, error) {
		c.mu.RLock()
		cached, ok := c.entries[key]
		c.mu.RUnlock()
		if ok {
			return cached, nil
		}

		built, err := build()
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		defer c.mu.Unlock()
		if c.entries == nil {
			c.entries = make(map[FormatterKey]any)
		} else if cached, ok := c.entries[key]; ok {
			return cached, nil
		}
		c.entries[key] = built
		return built, nil
	})
	return value, err
}

// Len reports the number of cached formatters.
func (c *SharedCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
