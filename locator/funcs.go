package locator

import (
	"sort"
	"strings"

	"github.com/MKhiriev/go-db-warden/batch"
)

// Builder fills an empty batch with the commands of one named batch.
// Builders usually append callbacks but may mix in scripts as well.
type Builder func(b *batch.Batch)

// FuncsLocator resolves batches from an explicit registry of Go builders.
// It replaces ambient discovery of callback implementations: the host
// application registers every callback batch at startup under a name.
type FuncsLocator struct {
	opts     options
	builders map[string]funcsEntry
}

type funcsEntry struct {
	name  string // original spelling
	build Builder
}

// NewFuncs returns an empty callback registry locator.
func NewFuncs(opts ...Option) *FuncsLocator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &FuncsLocator{
		opts:     o,
		builders: make(map[string]funcsEntry),
	}
}

// Register binds a builder to a (case-insensitive) batch name, replacing any
// previous registration. Returns the locator for chaining.
func (l *FuncsLocator) Register(name string, build Builder) *FuncsLocator {
	l.builders[strings.ToLower(name)] = funcsEntry{name: name, build: build}
	return l
}

// Names implements [Locator].
func (l *FuncsLocator) Names() []string {
	names := make([]string, 0, len(l.builders))
	for _, e := range l.builders {
		names = append(names, e.name)
	}
	sort.Strings(names)
	return names
}

// Batch implements [Locator]. The separator is ignored: callback batches
// have no script text to split.
func (l *FuncsLocator) Batch(name, _ string) (*batch.Batch, error) {
	e, ok := l.builders[strings.ToLower(name)]
	if !ok {
		return nil, ErrNotFound
	}

	b := l.opts.factory()
	e.build(b)
	if err := checkBatchConflicts(b); err != nil {
		return nil, err
	}
	return b, nil
}
