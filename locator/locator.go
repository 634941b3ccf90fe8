// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package locator resolves named batches from pluggable sources: in-memory
// script registries, script files on an fs.FS, and explicit Go callback
// registries. Locators compose through [AggregateLocator], which either
// waterfalls through its sub-locators or merges their results.
//
// Script sources recognise inline command directives of the form
//
//	/* DBWARDEN:TransactionRequirement=Required */
//	/* DBWARDEN:IsolationLevel=Serializable */
//	/* DBWARDEN:ExecutionType=Scalar */
//
// embedded anywhere in a command's text. Unknown keys are ignored; malformed
// values are logged and ignored.
package locator

import (
	"errors"
	"regexp"

	"github.com/MKhiriev/go-db-warden/batch"
	"github.com/rs/zerolog"
)

// ErrNotFound is returned by [Locator.Batch] when no batch with the
// requested name exists in the source. Callers should match it with
// [errors.Is].
var ErrNotFound = errors.New("batch not found")

// DefaultSeparator is the conventional script separator: commands are split
// on a line containing only "GO" (case-insensitive). Pass "" to Batch to
// keep a script as a single command.
const DefaultSeparator = "GO"

// Locator resolves batches by name. Names are case-insensitive; Names never
// returns nil.
type Locator interface {
	// Names lists the batch names known to this locator, in their original
	// spelling.
	Names() []string

	// Batch resolves the named batch, splitting script text on separator.
	// Returns ErrNotFound when the name is unknown, or a conflict error when
	// directives establish contradictory batch-level requirements.
	Batch(name, separator string) (*batch.Batch, error)
}

// Factory produces the empty batch a locator fills. It exists so hosts can
// substitute a prepared batch type; the default is [batch.New].
type Factory func() *batch.Batch

type options struct {
	pattern *regexp.Regexp
	factory Factory
	log     zerolog.Logger
}

func defaultOptions() options {
	return options{
		pattern: directivePattern,
		factory: batch.New,
		log:     zerolog.Nop(),
	}
}

// Option configures a script locator.
type Option func(*options)

// WithDirectivePattern replaces the directive pattern. The expression must
// define two named capture groups, "key" and "value".
func WithDirectivePattern(pattern *regexp.Regexp) Option {
	return func(o *options) { o.pattern = pattern }
}

// WithFactory replaces the batch factory used when resolving batches.
func WithFactory(factory Factory) Option {
	return func(o *options) { o.factory = factory }
}

// WithLogger sets the logger used for ignored-directive warnings.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.log = log }
}
