// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package batch models an ordered collection of database commands that is
// executed as one logical unit against a single connection or transaction.
//
// A [Command] is either a script (SQL text) or a callback (Go code) together
// with its transaction and isolation requirements. A [Batch] owns an ordered
// sequence of commands, detects transaction-requirement conflicts across
// them, and aggregates per-command results and failures after a run.
package batch

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-db-warden/models"
)

// Querier is the minimal driver surface a command executes against. Both
// *sql.Conn and *sql.Tx satisfy it, so the same command runs unchanged with
// or without a surrounding transaction.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Callback is a code command. It receives the open connection or transaction
// the batch runs on and returns a result value or an error. Returning an
// error aborts the remainder of the batch; returning an error created with
// [Softf] records it on the command and lets the batch continue.
type Callback func(ctx context.Context, q Querier) (any, error)

type commandKind int

const (
	kindNone commandKind = iota
	kindScript
	kindCallback
)

// Command is a single unit of work inside a batch. It is constructed by a
// locator or by [Batch.AddScript] / [Batch.AddCallback]; its execution state
// (result, error, exception, wasExecuted) is mutated only by the executor.
type Command struct {
	kind      commandKind
	script    string
	code      Callback
	txReq     models.TransactionRequirement
	isolation *sql.IsolationLevel
	execType  models.ExecutionType
	params    []models.Parameter

	result      any
	errMsg      string
	err         error
	wasExecuted bool
}

// NewScriptCommand constructs a script command with the given transaction
// requirement. Isolation level and execution type default to none and
// NonQuery and can be set with [Command.WithIsolation] and
// [Command.WithExecutionType].
func NewScriptCommand(script string, txReq models.TransactionRequirement) *Command {
	return &Command{kind: kindScript, script: script, txReq: txReq}
}

// NewCallbackCommand constructs a code command with the given transaction
// requirement.
func NewCallbackCommand(code Callback, txReq models.TransactionRequirement) *Command {
	return &Command{kind: kindCallback, code: code, txReq: txReq}
}

// WithTransactionRequirement replaces the transaction requirement and
// returns the command for chaining. Used by locators when a script directive
// overrides the default.
func (c *Command) WithTransactionRequirement(req models.TransactionRequirement) *Command {
	c.txReq = req
	return c
}

// WithIsolation sets an explicit isolation level requirement and returns the
// command for chaining.
func (c *Command) WithIsolation(level sql.IsolationLevel) *Command {
	c.isolation = &level
	return c
}

// WithExecutionType sets how a script command is executed and returns the
// command for chaining. Callback commands ignore the execution type.
func (c *Command) WithExecutionType(t models.ExecutionType) *Command {
	c.execType = t
	return c
}

// SetParam binds a named parameter value. Parameters are unique by name:
// setting an existing name replaces the previous value in place, new names
// are appended in call order. Returns the command for chaining.
func (c *Command) SetParam(name string, value any) *Command {
	for i := range c.params {
		if c.params[i].Name == name {
			c.params[i].Value = value
			return c
		}
	}
	c.params = append(c.params, models.Parameter{Name: name, Value: value})
	return c
}

// Script returns the SQL text of a script command, or "" for a callback
// command.
func (c *Command) Script() string { return c.script }

// Code returns the callback of a code command, or nil for a script command.
func (c *Command) Code() Callback { return c.code }

// IsScript reports whether the command carries SQL text.
func (c *Command) IsScript() bool { return c.kind == kindScript }

// TransactionRequirement returns the command's transaction requirement.
func (c *Command) TransactionRequirement() models.TransactionRequirement { return c.txReq }

// IsolationLevel returns the explicit isolation level requirement, if any.
func (c *Command) IsolationLevel() (sql.IsolationLevel, bool) {
	if c.isolation == nil {
		return sql.LevelDefault, false
	}
	return *c.isolation, true
}

// ExecutionType returns how a script command is executed.
func (c *Command) ExecutionType() models.ExecutionType { return c.execType }

// Params returns the bound parameters in insertion order. The returned slice
// is shared with the command and must not be modified.
func (c *Command) Params() []models.Parameter { return c.params }

// Args returns the parameter values in insertion order, ready to be passed
// to the driver.
func (c *Command) Args() []any {
	if len(c.params) == 0 {
		return nil
	}
	args := make([]any, len(c.params))
	for i, p := range c.params {
		args[i] = p.Value
	}
	return args
}

// Result returns the captured execution result, or nil if the command has
// not been executed.
func (c *Command) Result() any { return c.result }

// Error returns the captured error message, or "" if none was recorded.
func (c *Command) Error() string { return c.errMsg }

// Err returns the captured execution error object, or nil.
func (c *Command) Err() error { return c.err }

// WasExecuted reports whether the executor has run this command.
func (c *Command) WasExecuted() bool { return c.wasExecuted }

// HasFailed reports whether the command recorded an error message or an
// error object.
func (c *Command) HasFailed() bool { return c.errMsg != "" || c.err != nil }

// Validate checks the script-xor-callback invariant. A command violating it
// aborts batch execution with [ErrInvalidCommand].
func (c *Command) Validate() error {
	switch c.kind {
	case kindScript:
		if c.code != nil {
			return ErrInvalidCommand
		}
	case kindCallback:
		if c.code == nil {
			return ErrInvalidCommand
		}
	default:
		return ErrInvalidCommand
	}
	return nil
}

// MarkExecuted records a successful execution. Called by the executor.
func (c *Command) MarkExecuted(result any) {
	c.result = result
	c.wasExecuted = true
}

// MarkSoftFailure records a non-fatal failure: the command counts as
// executed, the message is kept for [Batch.Errors], and the batch continues.
func (c *Command) MarkSoftFailure(msg string) {
	c.errMsg = msg
	c.wasExecuted = true
}

// MarkFailure records a fatal execution failure. The error object and its
// message are kept; the executor aborts the remainder of the batch.
func (c *Command) MarkFailure(err error) {
	c.err = err
	if err != nil {
		c.errMsg = err.Error()
	}
	c.wasExecuted = true
}

// Reset clears all execution state so the command can be run again. It is
// idempotent and never fails.
func (c *Command) Reset() {
	c.result = nil
	c.errMsg = ""
	c.err = nil
	c.wasExecuted = false
}

// Clone returns a deep, independent copy of the command, including its
// parameters and any captured execution state.
func (c *Command) Clone() *Command {
	clone := *c
	if len(c.params) > 0 {
		clone.params = make([]models.Parameter, len(c.params))
		copy(clone.params, c.params)
	}
	if c.isolation != nil {
		level := *c.isolation
		clone.isolation = &level
	}
	return &clone
}

// SoftError is an error value that records a failure on the command without
// aborting the rest of the batch. Callbacks return it when a command should
// be reported as failed but later commands must still run.
type SoftError struct {
	msg string
}

// Softf constructs a [SoftError] with a formatted message.
func Softf(format string, args ...any) error {
	return &SoftError{msg: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *SoftError) Error() string { return e.msg }

// IsSoft reports whether err is (or wraps) a [SoftError].
func IsSoft(err error) bool {
	var soft *SoftError
	return errors.As(err, &soft)
}
