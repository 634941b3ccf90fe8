// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package sqlite implements the warden connection provider, state detector,
// and file-copy backup for SQLite databases.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-db-warden/internal/config"
	"github.com/MKhiriev/go-db-warden/internal/logger"
)

// Provider hands out connections and transactions against one SQLite
// database file. It implements [manager.ConnectionProvider].
type Provider struct {
	db     *sql.DB
	dbFile string
	log    *logger.Logger
}

// NewProvider opens (creating when missing) and pings the SQLite database
// file named by the configuration DSN.
func NewProvider(ctx context.Context, cfg config.DB, log *logger.Logger) (*Provider, error) {
	// db will be in file
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "sqlite.NewProvider").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file")
	}

	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "sqlite.NewProvider").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB")
	}

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "sqlite.NewProvider").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().Str("func", "sqlite.NewProvider").Msg("connected to database successfully")

	return &Provider{
		db:     conn,
		dbFile: cfg.DSN,
		log:    log,
	}, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}

// DB exposes the underlying pool to the detector sharing this provider's
// connection.
func (p *Provider) DB() *sql.DB { return p.db }

// File returns the path of the managed database file.
func (p *Provider) File() string { return p.dbFile }

// Close closes the underlying connection pool.
func (p *Provider) Close() error { return p.db.Close() }

// Connection implements [manager.ConnectionProvider]. A read-only connection
// has the query_only pragma set for its lifetime.
func (p *Provider) Connection(ctx context.Context, readOnly bool) (*sql.Conn, error) {
	conn, err := p.db.Conn(ctx)
	if err != nil {
		p.log.Err(err).Msg("error acquiring connection")
		return nil, fmt.Errorf("acquiring connection: %w", err)
	}

	if readOnly {
		if _, err := conn.ExecContext(ctx, "PRAGMA query_only = ON"); err != nil {
			p.log.Err(err).Msg("error setting connection read-only")
			_ = conn.Close()
			return nil, fmt.Errorf("setting connection read-only: %w", err)
		}
	}

	return conn, nil
}

// Transaction implements [manager.ConnectionProvider].
func (p *Provider) Transaction(ctx context.Context, readOnly bool, iso sql.IsolationLevel) (*sql.Tx, error) {
	tx, err := p.db.BeginTx(ctx, &sql.TxOptions{Isolation: iso, ReadOnly: readOnly})
	if err != nil {
		p.log.Err(err).Msg("error beginning transaction")
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	return tx, nil
}

// SupportsReadOnly implements [manager.ConnectionProvider].
func (p *Provider) SupportsReadOnly() bool { return true }
