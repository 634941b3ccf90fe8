// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package batch

import (
	"database/sql"
	"errors"

	"github.com/MKhiriev/go-db-warden/models"
)

// Batch is an ordered, mutable sequence of commands executed as one logical
// unit against a single connection or transaction. The zero value is not
// usable; create batches with [New].
type Batch struct {
	commands []*Command
}

// New returns an empty batch.
func New() *Batch {
	return &Batch{}
}

// AddScript appends a script command with the given transaction requirement
// and returns it for further configuration (isolation, execution type,
// parameters).
func (b *Batch) AddScript(script string, txReq models.TransactionRequirement) *Command {
	cmd := NewScriptCommand(script, txReq)
	b.commands = append(b.commands, cmd)
	return cmd
}

// AddCallback appends a code command with the given transaction requirement
// and returns it for further configuration.
func (b *Batch) AddCallback(code Callback, txReq models.TransactionRequirement) *Command {
	cmd := NewCallbackCommand(code, txReq)
	b.commands = append(b.commands, cmd)
	return cmd
}

// AddCommand appends an already constructed command. Used by locators that
// build commands from script files, and by [Batch.Split].
func (b *Batch) AddCommand(cmd *Command) *Command {
	b.commands = append(b.commands, cmd)
	return cmd
}

// Commands returns the commands in execution order. The returned slice is
// shared with the batch and must not be modified.
func (b *Batch) Commands() []*Command { return b.commands }

// Len returns the number of commands in the batch.
func (b *Batch) Len() int { return len(b.commands) }

// IsEmpty reports whether the batch has no commands.
func (b *Batch) IsEmpty() bool { return len(b.commands) == 0 }

// Reset clears the execution state of every command. It is idempotent and
// never fails; resetting an unexecuted batch is a no-op.
func (b *Batch) Reset() {
	for _, cmd := range b.commands {
		cmd.Reset()
	}
}

// RequiresTransaction reports whether any command requires a transaction.
// It returns [ErrConflictingTransactionRequirement] if another command
// disallows one at the same time. The executor calls this before every run.
func (b *Batch) RequiresTransaction() (bool, error) {
	required, disallowed := b.scanRequirements()
	if required && disallowed {
		return false, ErrConflictingTransactionRequirement
	}
	return required, nil
}

// DisallowsTransaction reports whether any command disallows a transaction.
// It returns [ErrConflictingTransactionRequirement] if another command
// requires one at the same time.
func (b *Batch) DisallowsTransaction() (bool, error) {
	required, disallowed := b.scanRequirements()
	if required && disallowed {
		return false, ErrConflictingTransactionRequirement
	}
	return disallowed, nil
}

func (b *Batch) scanRequirements() (required, disallowed bool) {
	for _, cmd := range b.commands {
		switch cmd.TransactionRequirement() {
		case models.TxRequired:
			required = true
		case models.TxDisallowed:
			disallowed = true
		}
	}
	return required, disallowed
}

// IsolationLevel returns the explicit isolation level agreed on by the
// batch's commands, if any. Two commands requesting different explicit
// levels is a conflict reported as [ErrConflictingIsolationLevel].
func (b *Batch) IsolationLevel() (sql.IsolationLevel, bool, error) {
	var (
		level sql.IsolationLevel
		found bool
	)
	for _, cmd := range b.commands {
		l, ok := cmd.IsolationLevel()
		if !ok {
			continue
		}
		if found && l != level {
			return sql.LevelDefault, false, ErrConflictingIsolationLevel
		}
		level, found = l, true
	}
	return level, found, nil
}

// Result returns the first non-nil result of an executed command, or nil if
// nothing has been executed yet.
func (b *Batch) Result() any {
	for _, cmd := range b.commands {
		if cmd.WasExecuted() && cmd.Result() != nil {
			return cmd.Result()
		}
	}
	return nil
}

// Results returns the results of all executed commands in order. Commands
// that were not executed are skipped; the slice is empty if nothing ran.
func (b *Batch) Results() []any {
	var results []any
	for _, cmd := range b.commands {
		if cmd.WasExecuted() {
			results = append(results, cmd.Result())
		}
	}
	return results
}

// Error returns the first recorded error message, or "".
func (b *Batch) Error() string {
	for _, cmd := range b.commands {
		if cmd.Error() != "" {
			return cmd.Error()
		}
	}
	return ""
}

// Errors returns all recorded error messages in command order.
func (b *Batch) Errors() []string {
	var msgs []string
	for _, cmd := range b.commands {
		if cmd.Error() != "" {
			msgs = append(msgs, cmd.Error())
		}
	}
	return msgs
}

// Exception returns the first recorded error object, or nil.
func (b *Batch) Exception() error {
	for _, cmd := range b.commands {
		if cmd.Err() != nil {
			return cmd.Err()
		}
	}
	return nil
}

// Exceptions returns all recorded error objects in command order.
func (b *Batch) Exceptions() []error {
	var errs []error
	for _, cmd := range b.commands {
		if cmd.Err() != nil {
			errs = append(errs, cmd.Err())
		}
	}
	return errs
}

// FirstFailure surfaces the first captured failure as an error: the first
// error object if one exists, otherwise the first error message wrapped in
// an error, otherwise nil.
func (b *Batch) FirstFailure() error {
	if err := b.Exception(); err != nil {
		return err
	}
	if msg := b.Error(); msg != "" {
		return errors.New(msg)
	}
	return nil
}

// AllFailures surfaces every captured failure joined into one error, or nil
// if the batch has no failures.
func (b *Batch) AllFailures() error {
	var errs []error
	for _, cmd := range b.commands {
		if cmd.Err() != nil {
			errs = append(errs, cmd.Err())
		} else if cmd.Error() != "" {
			errs = append(errs, errors.New(cmd.Error()))
		}
	}
	return errors.Join(errs...)
}

// WasFullyExecuted reports whether every command of a non-empty batch was
// executed.
func (b *Batch) WasFullyExecuted() bool {
	if len(b.commands) == 0 {
		return false
	}
	for _, cmd := range b.commands {
		if !cmd.WasExecuted() {
			return false
		}
	}
	return true
}

// WasPartiallyExecuted reports whether at least one command was executed.
func (b *Batch) WasPartiallyExecuted() bool {
	for _, cmd := range b.commands {
		if cmd.WasExecuted() {
			return true
		}
	}
	return false
}

// HasFailed reports whether any command recorded an error message or an
// error object.
func (b *Batch) HasFailed() bool {
	for _, cmd := range b.commands {
		if cmd.HasFailed() {
			return true
		}
	}
	return false
}

// Split produces one single-command batch per command passing the filter
// (all commands if filter is nil). Command identity is preserved — the new
// batches reference the original commands, not copies — so results of a
// later run remain visible through both the original and the split batches.
func (b *Batch) Split(filter func(*Command) bool) []*Batch {
	var batches []*Batch
	for _, cmd := range b.commands {
		if filter != nil && !filter(cmd) {
			continue
		}
		single := New()
		single.AddCommand(cmd)
		batches = append(batches, single)
	}
	return batches
}
