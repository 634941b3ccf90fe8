// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package provider holds the driver-independent warden collaborators: the
// script-driven upgrader and cleanup processor, and the bookkeeping around
// the version table. Driver-specific connection handling and detection live
// in the postgres and sqlite subpackages.
package provider

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-db-warden/batch"
)

// VersionTable is the single-row table the warden keeps its schema version
// in. A database without it counts as not created.
const VersionTable = "warden_version"

// createVersionTable works unchanged on PostgreSQL and SQLite.
const createVersionTable = `CREATE TABLE IF NOT EXISTS ` + VersionTable + ` (version INTEGER NOT NULL)`

const dropVersionTable = `DROP TABLE IF EXISTS ` + VersionTable

// SelectVersionSQL builds the version lookup query used by the detectors.
func SelectVersionSQL() (string, error) {
	query, _, err := sq.Select("version").From(VersionTable).ToSql()
	if err != nil {
		return "", fmt.Errorf("building version query: %w", err)
	}
	return query, nil
}

// recordVersion returns a callback command that replaces the version row
// with the given version, creating the table when it does not exist yet.
// The table is single-row, so delete-then-insert is the portable upsert.
func recordVersion(version int, placeholder sq.PlaceholderFormat) batch.Callback {
	return func(ctx context.Context, q batch.Querier) (any, error) {
		if _, err := q.ExecContext(ctx, createVersionTable); err != nil {
			return nil, fmt.Errorf("creating version table: %w", err)
		}

		deleteSQL, _, err := sq.Delete(VersionTable).ToSql()
		if err != nil {
			return nil, fmt.Errorf("building version delete: %w", err)
		}
		if _, err := q.ExecContext(ctx, deleteSQL); err != nil {
			return nil, fmt.Errorf("clearing version table: %w", err)
		}

		insertSQL, args, err := sq.Insert(VersionTable).
			Columns("version").
			Values(version).
			PlaceholderFormat(placeholder).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("building version insert: %w", err)
		}
		if _, err := q.ExecContext(ctx, insertSQL, args...); err != nil {
			return nil, fmt.Errorf("recording version %d: %w", version, err)
		}

		return version, nil
	}
}

// dropVersionTracking returns a callback command that removes the version
// table, returning the database to the not-created state.
func dropVersionTracking() batch.Callback {
	return func(ctx context.Context, q batch.Querier) (any, error) {
		if _, err := q.ExecContext(ctx, dropVersionTable); err != nil {
			return nil, fmt.Errorf("dropping version table: %w", err)
		}
		return nil, nil
	}
}
