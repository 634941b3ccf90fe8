// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sqlite

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-db-warden/internal/logger"
	"github.com/MKhiriev/go-db-warden/manager"
)

// FileBackup backs up and restores a SQLite database by copying its file.
// It implements [manager.BackupCreator].
//
// The copy happens while the pool stays open, so callers should not run
// batches concurrently with a backup. A WAL checkpoint is issued first so
// the main file holds all committed data.
type FileBackup struct {
	provider *Provider
	log      *logger.Logger
}

// NewFileBackup constructs a FileBackup for the provider's database file.
func NewFileBackup(p *Provider, log *logger.Logger) *FileBackup {
	log.Debug().Msg("creating sqlite file backup")
	return &FileBackup{
		provider: p,
		log:      log,
	}
}

// SupportsBackup implements [manager.BackupCreator].
func (b *FileBackup) SupportsBackup() bool { return true }

// SupportsRestore implements [manager.BackupCreator].
func (b *FileBackup) SupportsRestore() bool { return true }

// Backup implements [manager.BackupCreator]. It copies the database file to
// target.
func (b *FileBackup) Backup(ctx context.Context, _ *manager.Manager, target string) bool {
	if _, err := b.provider.DB().ExecContext(ctx, "PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		b.log.Warn().Err(err).Msg("wal checkpoint before backup failed")
	}

	if err := copyFile(b.provider.File(), target); err != nil {
		b.log.Err(err).Str("target", target).Msg("error copying database file")
		return false
	}

	b.log.Info().Str("target", target).Msg("database file backed up")
	return true
}

// Restore implements [manager.BackupCreator]. It replaces the database file
// with the backup at source.
func (b *FileBackup) Restore(ctx context.Context, _ *manager.Manager, source string) bool {
	if err := copyFile(source, b.provider.File()); err != nil {
		b.log.Err(err).Str("source", source).Msg("error restoring database file")
		return false
	}

	b.log.Info().Str("source", source).Msg("database file restored")
	return true
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("copying %s to %s: %w", src, dst, err)
	}

	return out.Close()
}
