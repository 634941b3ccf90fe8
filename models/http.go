package models

// StatusResponse describes the managed database as the warden currently sees
// it. It is the payload of GET /api/status and of the responses returned by
// the mutating admin endpoints.
type StatusResponse struct {
	// AppVersion is the semantic version of the running warden binary.
	AppVersion string `json:"app_version"`

	// State is the canonical name of the current lifecycle state.
	State string `json:"state"`

	// Version is the detected database version. Zero means the database was
	// never created, negative means the version could not be determined.
	Version int `json:"version"`

	// InitialState and InitialVersion are the snapshot taken on the first
	// initialization, kept for comparison with the current values.
	InitialState   string `json:"initial_state"`
	InitialVersion int    `json:"initial_version"`
}

// BatchListResponse is the payload of GET /api/batches.
type BatchListResponse struct {
	// Batches holds the names of every batch the configured locator can
	// resolve, sorted alphabetically.
	Batches []string `json:"batches"`
}

// BatchResponse is the payload of GET /api/batches/{name}. It describes the
// resolved batch without executing it.
type BatchResponse struct {
	Name     string         `json:"name"`
	Commands []BatchCommand `json:"commands"`
}

// BatchCommand describes one command of a resolved batch.
type BatchCommand struct {
	// Script is the SQL text of a script command. Empty for callback
	// commands, which have no textual representation.
	Script string `json:"script,omitempty"`

	// IsScript reports whether the command is a script (true) or a
	// registered callback (false).
	IsScript bool `json:"is_script"`

	// TransactionRequirement is the canonical name of the command's
	// transaction requirement (DontCare, Required, Disallowed).
	TransactionRequirement string `json:"transaction_requirement"`

	// IsolationLevel is the requested isolation level, empty when the
	// command does not request one.
	IsolationLevel string `json:"isolation_level,omitempty"`

	// ExecutionType is the canonical name of the command's execution type
	// (NonQuery, Reader, Scalar).
	ExecutionType string `json:"execution_type"`
}

// UpgradeRequest is the payload of POST /api/upgrade.
type UpgradeRequest struct {
	// TargetVersion is the version to upgrade to. Zero means the newest
	// version the configured upgrader supports.
	TargetVersion int `json:"target_version"`
}

// BackupRequest is the payload of POST /api/backup.
type BackupRequest struct {
	// Target is the file the backup is written to.
	Target string `json:"target"`
}

// RestoreRequest is the payload of POST /api/restore.
type RestoreRequest struct {
	// Source is the backup file the database is restored from.
	Source string `json:"source"`
}

// ErrorResponse is the JSON body of every non-2xx admin API response.
type ErrorResponse struct {
	Error string `json:"error"`
}
