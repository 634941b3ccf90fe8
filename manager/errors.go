package manager

import "errors"

// Sentinel errors returned by Manager operations. Callers should use
// [errors.Is] to match against these values. Precondition errors are always
// raised before any side effect occurs.
var (
	// ErrWrongState is returned when an operation is not allowed in the
	// manager's current lifecycle state (e.g. executing a batch before
	// Initialize, or upgrading a damaged database).
	ErrWrongState = errors.New("operation not allowed in current database state")

	// ErrNotSupported is returned when a requested capability is not
	// configured or not available: read-only handles on a provider without
	// read-only support, Upgrade without an upgrader, Backup/Restore without
	// a backup creator, Cleanup without a cleanup processor, or batch lookup
	// without a locator.
	ErrNotSupported = errors.New("operation not supported by this manager")

	// ErrVersionOutOfRange is returned by Upgrade when the target version is
	// outside the supported range or below the current version.
	ErrVersionOutOfRange = errors.New("target version out of range")

	// ErrUpgradeFailed is returned when a single upgrade step reports
	// failure or leaves the manager in a non-ready state.
	ErrUpgradeFailed = errors.New("upgrade step failed")

	// ErrUpgradeStalled is returned when an upgrade step reports success but
	// the detected version did not strictly increase. It guards the upgrade
	// loop against misbehaving upgraders.
	ErrUpgradeStalled = errors.New("upgrade step did not advance database version")

	// ErrBackupFailed is returned when the backup creator reports failure.
	ErrBackupFailed = errors.New("backup failed")

	// ErrRestoreFailed is returned when the backup creator reports failure
	// restoring from a backup.
	ErrRestoreFailed = errors.New("restore failed")

	// ErrCleanupFailed is returned when the cleanup processor reports
	// failure.
	ErrCleanupFailed = errors.New("cleanup failed")
)
