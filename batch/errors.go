package batch

import "errors"

// Sentinel errors returned by batch and command operations. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrConflictingTransactionRequirement is returned when one command of a
	// batch requires a transaction while another one disallows it. A batch in
	// this state is never executed.
	ErrConflictingTransactionRequirement = errors.New("conflicting transaction requirement in batch")

	// ErrConflictingIsolationLevel is returned when two commands of a batch
	// request different explicit isolation levels.
	ErrConflictingIsolationLevel = errors.New("conflicting isolation level in batch")

	// ErrInvalidCommand is returned when a command has neither a script nor a
	// callback set, or both. This is a programming error, not a runtime
	// condition, and execution of the batch is aborted.
	ErrInvalidCommand = errors.New("command must have exactly one of script or callback")
)
