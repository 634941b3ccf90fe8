// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql"
	"fmt"
	"strings"
)

// TransactionRequirement states whether a batch command needs to run inside
// a database transaction.
type TransactionRequirement int

const (
	// TxDontCare means the command runs either way; the batch-level decision
	// is made by the other commands.
	TxDontCare TransactionRequirement = iota

	// TxRequired means the command must run inside a transaction.
	TxRequired

	// TxDisallowed means the command must not run inside a transaction
	// (e.g. DDL that some engines refuse to execute transactionally).
	TxDisallowed
)

// String returns the canonical name of the requirement.
func (t TransactionRequirement) String() string {
	switch t {
	case TxRequired:
		return "Required"
	case TxDisallowed:
		return "Disallowed"
	default:
		return "DontCare"
	}
}

// ParseTransactionRequirement converts a directive value into a
// [TransactionRequirement]. Matching is case-insensitive.
func ParseTransactionRequirement(s string) (TransactionRequirement, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dontcare":
		return TxDontCare, nil
	case "required":
		return TxRequired, nil
	case "disallowed":
		return TxDisallowed, nil
	}
	return TxDontCare, fmt.Errorf("unknown transaction requirement %q", s)
}

// ExecutionType states how a script command is executed against the driver
// and what kind of result it produces.
type ExecutionType int

const (
	// ExecNonQuery executes the script without reading rows; the result is
	// the number of affected rows.
	ExecNonQuery ExecutionType = iota

	// ExecReader executes the script and reads all result rows.
	ExecReader

	// ExecScalar executes the script and reads the first column of the first
	// result row.
	ExecScalar
)

// String returns the canonical name of the execution type.
func (e ExecutionType) String() string {
	switch e {
	case ExecReader:
		return "Reader"
	case ExecScalar:
		return "Scalar"
	default:
		return "NonQuery"
	}
}

// ParseExecutionType converts a directive value into an [ExecutionType].
// Matching is case-insensitive.
func ParseExecutionType(s string) (ExecutionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nonquery":
		return ExecNonQuery, nil
	case "reader":
		return ExecReader, nil
	case "scalar":
		return ExecScalar, nil
	}
	return ExecNonQuery, fmt.Errorf("unknown execution type %q", s)
}

// ParseIsolationLevel converts a directive value into a standard library
// isolation level. Matching is case-insensitive and ignores spaces, so both
// "ReadCommitted" and "read committed" are accepted.
func ParseIsolationLevel(s string) (sql.IsolationLevel, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "") {
	case "default":
		return sql.LevelDefault, nil
	case "readuncommitted":
		return sql.LevelReadUncommitted, nil
	case "readcommitted":
		return sql.LevelReadCommitted, nil
	case "writecommitted":
		return sql.LevelWriteCommitted, nil
	case "repeatableread":
		return sql.LevelRepeatableRead, nil
	case "snapshot":
		return sql.LevelSnapshot, nil
	case "serializable":
		return sql.LevelSerializable, nil
	case "linearizable":
		return sql.LevelLinearizable, nil
	}
	return sql.LevelDefault, fmt.Errorf("unknown isolation level %q", s)
}
