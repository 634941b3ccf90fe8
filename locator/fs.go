package locator

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/MKhiriev/go-db-warden/batch"
)

// FSLocator resolves batches from .sql files in a directory of an [fs.FS]
// (an embed.FS in the common case). The file name without its extension is
// the batch name, compared case-insensitively.
type FSLocator struct {
	opts  options
	fsys  fs.FS
	dir   string
	files map[string]string // lower-cased batch name -> file path
	names map[string]string // lower-cased batch name -> original spelling
}

// NewFS builds a locator over all *.sql files directly inside dir of fsys.
// Use "." for the root directory.
func NewFS(fsys fs.FS, dir string, opts ...Option) (*FSLocator, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading script directory %q: %w", dir, err)
	}

	l := &FSLocator{
		opts:  o,
		fsys:  fsys,
		dir:   dir,
		files: make(map[string]string),
		names: make(map[string]string),
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(path.Ext(entry.Name()), ".sql") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), path.Ext(entry.Name()))
		key := strings.ToLower(name)
		l.files[key] = path.Join(dir, entry.Name())
		l.names[key] = name
	}

	return l, nil
}

// Names implements [Locator].
func (l *FSLocator) Names() []string {
	names := make([]string, 0, len(l.names))
	for _, name := range l.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Batch implements [Locator].
func (l *FSLocator) Batch(name, separator string) (*batch.Batch, error) {
	filePath, ok := l.files[strings.ToLower(name)]
	if !ok {
		return nil, ErrNotFound
	}

	text, err := fs.ReadFile(l.fsys, filePath)
	if err != nil {
		return nil, fmt.Errorf("reading script %q: %w", filePath, err)
	}

	return batchFromScript(string(text), separator, l.opts)
}
