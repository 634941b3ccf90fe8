// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MKhiriev/go-db-warden/internal/logger"
	"github.com/MKhiriev/go-db-warden/internal/provider"
	"github.com/MKhiriev/go-db-warden/manager"
	"github.com/MKhiriev/go-db-warden/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Detector reads the warden version table of a PostgreSQL database. It
// implements [manager.Detector].
//
// A missing version table means the database was never created by the
// warden: version 0. An existing but empty or multi-row table is damage.
// Driver-level failures (connection refused, permission denied) report
// detection failure, which the manager degrades to DamagedOrInvalid.
type Detector struct {
	db  *sql.DB
	log *logger.Logger
}

// NewDetector constructs a Detector reading through the given pool,
// normally the one owned by [Provider].
func NewDetector(db *sql.DB, log *logger.Logger) *Detector {
	log.Debug().Msg("creating postgres detector")
	return &Detector{
		db:  db,
		log: log,
	}
}

// Detect implements [manager.Detector].
func (d *Detector) Detect(ctx context.Context, _ *manager.Manager) (bool, *models.DbState, int) {
	query, err := provider.SelectVersionSQL()
	if err != nil {
		d.log.Err(err).Msg("error building version query")
		return false, nil, 0
	}

	rows, err := d.db.QueryContext(ctx, query)
	if err != nil && Classify(err) == Retryable {
		// transient failures get one more chance before degrading the state
		d.log.Warn().Err(err).Msg("retrying version query after transient error")
		rows, err = d.db.QueryContext(ctx, query)
	}
	if err != nil {
		if postgresErrorCode(err) == pgerrcode.UndefinedTable {
			return true, nil, models.VersionNotCreated
		}
		d.log.Err(err).Msg("error querying version table")
		return false, nil, 0
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			d.log.Err(err).Msg("error reading version table")
			return false, nil, 0
		}
		// table exists but carries no version row
		d.log.Warn().Msg("version table is empty")
		return true, nil, -1
	}

	var version int
	if err := rows.Scan(&version); err != nil {
		d.log.Err(err).Msg("error scanning version")
		return false, nil, 0
	}

	if rows.Next() {
		// more than one row, the version is ambiguous
		d.log.Warn().Msg("version table has multiple rows")
		return true, nil, -1
	}

	return true, nil, version
}

func postgresErrorCode(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
