package manager

import (
	"context"
	"fmt"
)

// Backup writes a backup to target. It requires an initialized manager (any
// state, including damaged — backing up a broken database before repair is
// a supported workflow) and a configured backup creator. State and version
// are re-detected afterwards.
func (m *Manager) Backup(ctx context.Context, target string) error {
	if !m.initialized {
		return fmt.Errorf("backup before initialize: %w", ErrWrongState)
	}
	if m.backup == nil || !m.backup.SupportsBackup() {
		return fmt.Errorf("backup: %w", ErrNotSupported)
	}

	ok := m.backup.Backup(ctx, m, target)
	m.redetect(ctx)
	if !ok {
		m.log.Error().Str("target", target).Msg("backup collaborator reported failure")
		return fmt.Errorf("backup to %q: %w", target, ErrBackupFailed)
	}

	m.log.Info().Str("target", target).Msg("backup finished")
	return nil
}

// Restore replaces the database from a backup at source. Requirements and
// semantics mirror [Manager.Backup].
func (m *Manager) Restore(ctx context.Context, source string) error {
	if !m.initialized {
		return fmt.Errorf("restore before initialize: %w", ErrWrongState)
	}
	if m.backup == nil || !m.backup.SupportsRestore() {
		return fmt.Errorf("restore: %w", ErrNotSupported)
	}

	ok := m.backup.Restore(ctx, m, source)
	m.redetect(ctx)
	if !ok {
		m.log.Error().Str("source", source).Msg("restore collaborator reported failure")
		return fmt.Errorf("restore from %q: %w", source, ErrRestoreFailed)
	}

	m.log.Info().Str("source", source).Msg("restore finished")
	return nil
}

// Cleanup removes all managed objects, returning the database to the
// not-created state. It requires a ready or New manager and a configured
// cleanup processor. State and version are re-detected afterwards.
func (m *Manager) Cleanup(ctx context.Context) error {
	if err := m.requireReadyOrNew("cleanup"); err != nil {
		return err
	}
	if m.cleanup == nil {
		return fmt.Errorf("cleanup: %w", ErrNotSupported)
	}

	ok := m.cleanup.Cleanup(ctx, m)
	m.redetect(ctx)
	if !ok {
		m.log.Error().Msg("cleanup collaborator reported failure")
		return fmt.Errorf("cleanup: %w", ErrCleanupFailed)
	}

	m.log.Info().Msg("cleanup finished")
	return nil
}
