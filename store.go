package fluent

import (
	"fmt"
	"sort"
)

// StaticLoader serves resource sources held in memory. It is read only
// after construction.
type StaticLoader struct {
	sources map[string]map[string][]byte
	locales []string
}

var _ ResourceLoader = (*StaticLoader)(nil)

// NewStaticLoader builds an immutable snapshot from locale -> resource id ->
// source.
func NewStaticLoader(data map[string]map[string]string) *StaticLoader {
	sources := make(map[string]map[string][]byte, len(data))
	locales := make([]string, 0, len(data))

	for locale, resources := range data {
		if resources == nil {
			continue
		}
		clone := make(map[string][]byte, len(resources))
		for resID, src := range resources {
			clone[resID] = []byte(src)
		}
		sources[locale] = clone
		locales = append(locales, locale)
	}

	// make locales deterministic
	sort.Strings(locales)

	return &StaticLoader{sources: sources, locales: locales}
}

func (s *StaticLoader) Load(locale, resID string) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: %s/%s", ErrResourceNotFound, locale, resID)
	}

	src, ok := s.sources[locale][resID]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrResourceNotFound, locale, resID)
	}
	return append([]byte(nil), src...), nil
}

// Locales returns the locales with at least one resource.
func (s *StaticLoader) Locales() []string {
	if s == nil || len(s.locales) == 0 {
		return nil
	}
	out := make([]string, len(s.locales))
	copy(out, s.locales)
	return out
}
