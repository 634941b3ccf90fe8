// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package locator

import (
	"errors"
	"sort"
	"strings"

	"github.com/MKhiriev/go-db-warden/batch"
)

type aggregateMode int

const (
	modeWaterfall aggregateMode = iota
	modeMerge
)

// AggregateLocator composes several locators into one logical source.
//
// In waterfall mode sub-locators are tried in registration order and the
// first one that resolves the name wins. In merge mode every sub-locator is
// queried and their commands are unioned into one batch; if any sub-locator
// misses, the whole lookup misses.
//
// Names is always the case-insensitive union of all sub-locator name sets.
type AggregateLocator struct {
	locators []Locator
	mode     aggregateMode
}

// NewWaterfall composes locators with first-hit-wins semantics.
func NewWaterfall(locators ...Locator) *AggregateLocator {
	return &AggregateLocator{locators: locators, mode: modeWaterfall}
}

// NewMerge composes locators with union semantics: a batch is resolved only
// when every sub-locator knows the name, and the result carries the commands
// of all of them in sub-locator order.
func NewMerge(locators ...Locator) *AggregateLocator {
	return &AggregateLocator{locators: locators, mode: modeMerge}
}

// Names implements [Locator].
func (l *AggregateLocator) Names() []string {
	seen := make(map[string]string)
	for _, sub := range l.locators {
		for _, name := range sub.Names() {
			key := strings.ToLower(name)
			if _, ok := seen[key]; !ok {
				seen[key] = name
			}
		}
	}

	names := make([]string, 0, len(seen))
	for _, name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Batch implements [Locator].
func (l *AggregateLocator) Batch(name, separator string) (*batch.Batch, error) {
	if l.mode == modeMerge {
		return l.merge(name, separator)
	}
	return l.waterfall(name, separator)
}

func (l *AggregateLocator) waterfall(name, separator string) (*batch.Batch, error) {
	for _, sub := range l.locators {
		b, err := sub.Batch(name, separator)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return b, nil
	}
	return nil, ErrNotFound
}

func (l *AggregateLocator) merge(name, separator string) (*batch.Batch, error) {
	merged := batch.New()
	for _, sub := range l.locators {
		b, err := sub.Batch(name, separator)
		if err != nil {
			// ErrNotFound from any sub-locator fails the whole lookup.
			return nil, err
		}
		for _, cmd := range b.Commands() {
			merged.AddCommand(cmd)
		}
	}
	if merged.IsEmpty() && len(l.locators) == 0 {
		return nil, ErrNotFound
	}
	if err := checkBatchConflicts(merged); err != nil {
		return nil, err
	}
	return merged, nil
}
