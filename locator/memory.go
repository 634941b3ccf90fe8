package locator

import (
	"sort"
	"strings"

	"github.com/MKhiriev/go-db-warden/batch"
)

// MemoryLocator resolves batches from scripts registered in memory. It is
// the simplest script source and the one used by most tests.
type MemoryLocator struct {
	opts    options
	scripts map[string]memoryScript
}

type memoryScript struct {
	name string // original spelling
	text string
}

// NewMemory returns an empty in-memory script locator.
func NewMemory(opts ...Option) *MemoryLocator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &MemoryLocator{
		opts:    o,
		scripts: make(map[string]memoryScript),
	}
}

// AddScript registers script text under name, replacing any previous script
// with the same (case-insensitive) name. Returns the locator for chaining.
func (l *MemoryLocator) AddScript(name, text string) *MemoryLocator {
	l.scripts[strings.ToLower(name)] = memoryScript{name: name, text: text}
	return l
}

// Names implements [Locator].
func (l *MemoryLocator) Names() []string {
	names := make([]string, 0, len(l.scripts))
	for _, s := range l.scripts {
		names = append(names, s.name)
	}
	sort.Strings(names)
	return names
}

// Batch implements [Locator].
func (l *MemoryLocator) Batch(name, separator string) (*batch.Batch, error) {
	s, ok := l.scripts[strings.ToLower(name)]
	if !ok {
		return nil, ErrNotFound
	}
	return batchFromScript(s.text, separator, l.opts)
}
