// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DbState is the canonical lifecycle state of a managed database.
//
// The state is always derived from raw detection results — it is never set
// directly by callers. See the manager package for the derivation rules.
type DbState int

const (
	// StateUninitialized means the manager has not run detection yet, or has
	// been closed. No database operation is allowed in this state.
	StateUninitialized DbState = iota

	// StateReadyNew means the database exists and is at the newest supported
	// version.
	StateReadyNew

	// StateReadyOld means the database exists at a supported version below
	// the newest one; it is usable and upgradeable.
	StateReadyOld

	// StateReadyUnknown means the database exists and is usable, but its
	// version cannot be related to the supported range (for example when the
	// manager has no upgrader configured).
	StateReadyUnknown

	// StateNew means the database has not been created yet (version 0) and
	// an upgrader is available to create it.
	StateNew

	// StateUnavailable means the database has not been created and no
	// upgrader is configured, so the manager cannot bring it up.
	StateUnavailable

	// StateTooOld means the database version is below the minimum supported
	// version.
	StateTooOld

	// StateTooNew means the database version is above the maximum supported
	// version (typically written by a newer release).
	StateTooNew

	// StateDamagedOrInvalid means detection failed or reported a negative
	// version; the database must be restored or recreated before use.
	StateDamagedOrInvalid
)

var dbStateNames = map[DbState]string{
	StateUninitialized:    "Uninitialized",
	StateReadyNew:         "ReadyNew",
	StateReadyOld:         "ReadyOld",
	StateReadyUnknown:     "ReadyUnknown",
	StateNew:              "New",
	StateUnavailable:      "Unavailable",
	StateTooOld:           "TooOld",
	StateTooNew:           "TooNew",
	StateDamagedOrInvalid: "DamagedOrInvalid",
}

// String returns the canonical name of the state.
func (s DbState) String() string {
	if name, ok := dbStateNames[s]; ok {
		return name
	}
	return "Unknown"
}

// IsReady reports whether the state allows regular database operations
// (connections, transactions, batch execution).
func (s DbState) IsReady() bool {
	return s == StateReadyNew || s == StateReadyOld || s == StateReadyUnknown
}

// VersionNotCreated is the version value reported for a database that does
// not exist yet. Any negative version means the database is damaged or its
// version could not be detected.
const VersionNotCreated = 0
