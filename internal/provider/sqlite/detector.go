// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/MKhiriev/go-db-warden/internal/logger"
	"github.com/MKhiriev/go-db-warden/internal/provider"
	"github.com/MKhiriev/go-db-warden/manager"
	"github.com/MKhiriev/go-db-warden/models"
)

// Detector reads the warden version table of a SQLite database. It
// implements [manager.Detector]. Semantics match the PostgreSQL detector:
// no version table means not created, an empty or multi-row table is
// damage, driver failures report detection failure.
type Detector struct {
	db  *sql.DB
	log *logger.Logger
}

// NewDetector constructs a Detector reading through the given pool,
// normally the one owned by [Provider].
func NewDetector(db *sql.DB, log *logger.Logger) *Detector {
	log.Debug().Msg("creating sqlite detector")
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
	if err != nil {
		// the sqlite3 driver reports a missing table only through the message
		if strings.Contains(err.Error(), "no such table") {
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
		d.log.Warn().Msg("version table is empty")
		return true, nil, -1
	}

	var version int
	if err := rows.Scan(&version); err != nil {
		d.log.Err(err).Msg("error scanning version")
		return false, nil, 0
	}

	if rows.Next() {
		d.log.Warn().Msg("version table has multiple rows")
		return true, nil, -1
	}

	return true, nil, version
}
