package fluent

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// ResourceLoader returns the raw source of resource resID for locale. A
// locale without the resource reports an error wrapping ErrResourceNotFound.
type ResourceLoader interface {
	Load(locale, resID string) ([]byte, error)
}

// LoaderFunc adapters allow bare functions to implement ResourceLoader.
type LoaderFunc func(locale, resID string) ([]byte, error)

// Load implements ResourceLoader for LoaderFunc.
func (fn LoaderFunc) Load(locale, resID string) ([]byte, error) {
	return fn(locale, resID)
}

// FileLoader reads resources from a file system. The path template may
// contain {locale} and {res_id}, as in "locales/{locale}/{res_id}".
type FileLoader struct {
	fsys     fs.FS
	template string
}

var _ ResourceLoader = (*FileLoader)(nil)

func NewFileLoader(fsys fs.FS, pathTemplate string) *FileLoader {
	return &FileLoader{fsys: fsys, template: pathTemplate}
}

// Path returns the file path for locale and resID.
func (l *FileLoader) Path(locale, resID string) string {
	replacer := strings.NewReplacer("{locale}", locale, "{res_id}", resID)
	return path.Clean(replacer.Replace(l.template))
}

func (l *FileLoader) Load(locale, resID string) ([]byte, error) {
	if l == nil || l.fsys == nil {
		return nil, errors.New("fluent: file loader has no file system")
	}

	name := l.Path(locale, resID)
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, name)
		}
		return nil, fmt.Errorf("fluent: read %s: %w", name, err)
	}
	return data, nil
}
