// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package postgres implements the warden connection provider and state
// detector for PostgreSQL, using the pgx driver through database/sql.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-db-warden/internal/config"
	"github.com/MKhiriev/go-db-warden/internal/logger"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Provider hands out connections and transactions against one PostgreSQL
// database. It implements [manager.ConnectionProvider].
type Provider struct {
	db  *sql.DB
	log *logger.Logger
}

// NewProvider opens and pings a PostgreSQL connection pool for the given
// configuration.
func NewProvider(ctx context.Context, cfg config.DB, log *logger.Logger) (*Provider, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "postgres.NewProvider").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "postgres.NewProvider").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "postgres.NewProvider").Msg("connected to database successfully")

	return &Provider{
		db:  conn,
		log: log,
	}, nil
}

// DB exposes the underlying pool to the detector sharing this provider's
// connection.
func (p *Provider) DB() *sql.DB { return p.db }

// Close closes the underlying connection pool.
func (p *Provider) Close() error { return p.db.Close() }

// Connection implements [manager.ConnectionProvider]. A read-only connection
// is put in read-only mode for the whole session.
func (p *Provider) Connection(ctx context.Context, readOnly bool) (*sql.Conn, error) {
	conn, err := p.db.Conn(ctx)
	if err != nil {
		p.log.Err(err).Msg("error acquiring connection")
		return nil, fmt.Errorf("acquiring connection: %w", err)
	}

	if readOnly {
		if _, err := conn.ExecContext(ctx, "SET SESSION CHARACTERISTICS AS TRANSACTION READ ONLY"); err != nil {
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

// SupportsReadOnly implements [manager.ConnectionProvider]. PostgreSQL
// supports read-only sessions and transactions.
func (p *Provider) SupportsReadOnly() bool { return true }
