// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-db-warden/models"
)

// AdminClient is the contract of the warden admin API as seen from a remote
// process (the terminal UI or one-shot commands).
type AdminClient interface {
	// Status reports the managed database's current state and version.
	Status(ctx context.Context) (models.StatusResponse, error)

	// Batches lists the names of every batch the warden can resolve.
	Batches(ctx context.Context) ([]string, error)

	// Batch describes the named batch without executing it.
	Batch(ctx context.Context, name string) (models.BatchResponse, error)

	// Upgrade advances the database to targetVersion; zero means the newest
	// supported version. Returns the status after the upgrade.
	Upgrade(ctx context.Context, targetVersion int) (models.StatusResponse, error)

	// Cleanup removes every managed object from the database.
	Cleanup(ctx context.Context) (models.StatusResponse, error)

	// Backup writes a backup of the database to target on the server side.
	Backup(ctx context.Context, target string) (models.StatusResponse, error)

	// Restore replaces the database with the backup at source.
	Restore(ctx context.Context, source string) (models.StatusResponse, error)
}
