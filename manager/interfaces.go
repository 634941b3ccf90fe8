package manager

//go:generate mockgen -source=interfaces.go -destination=../internal/mock/manager_mock.go -package=mock

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-db-warden/models"
)

// Detector determines the raw state and version of the managed database.
//
// A detector reports damage either by returning ok=false or by returning a
// negative version. When it returns a nil state the manager derives the
// canonical state from the version and the configured version range; a
// non-nil state is authoritative and passed through unchanged.
type Detector interface {
	Detect(ctx context.Context, mgr *Manager) (ok bool, state *models.DbState, version int)
}

// Upgrader advances the database schema one version at a time and declares
// the supported version range.
type Upgrader interface {
	// MinVersion returns the lowest database version this upgrader can
	// start from.
	MinVersion(mgr *Manager) int

	// MaxVersion returns the newest version this upgrader can produce.
	MaxVersion(mgr *Manager) int

	// Upgrade advances the database from exactly version from to from+1.
	// It reports false when the step failed; the manager re-detects the
	// version after every step and aborts when it did not increase.
	Upgrade(ctx context.Context, mgr *Manager, from int) bool
}

// BackupCreator writes and restores database backups. Either capability may
// be unsupported; the manager checks the flags before calling.
type BackupCreator interface {
	Backup(ctx context.Context, mgr *Manager, target string) bool
	Restore(ctx context.Context, mgr *Manager, source string) bool
	SupportsBackup() bool
	SupportsRestore() bool
}

// CleanupProcessor removes all managed objects from the database, returning
// it to the not-created state.
type CleanupProcessor interface {
	Cleanup(ctx context.Context, mgr *Manager) bool
}

// ConnectionProvider opens connections and transactions against the managed
// database. Returned handles are open and usable; they are owned by the
// caller until closed. Providers log their own failures.
type ConnectionProvider interface {
	// Connection returns a single dedicated connection.
	Connection(ctx context.Context, readOnly bool) (*sql.Conn, error)

	// Transaction begins a transaction with the given isolation level
	// (sql.LevelDefault for the driver default).
	Transaction(ctx context.Context, readOnly bool, iso sql.IsolationLevel) (*sql.Tx, error)

	// SupportsReadOnly reports whether read-only handles are available.
	SupportsReadOnly() bool
}
