// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package manager implements the database lifecycle orchestrator: it owns
// the canonical state/version of one managed database, executes batches
// against it, and drives incremental single-step schema upgrades through
// pluggable collaborators.
//
// A Manager performs no internal synchronization. Mutating operations
// (Initialize, ExecuteBatch, Upgrade, Backup, Restore, Cleanup, Close) must
// not be invoked concurrently on the same instance; read-only lookups may
// run concurrently with each other.
package manager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-db-warden/batch"
	"github.com/MKhiriev/go-db-warden/locator"
	"github.com/MKhiriev/go-db-warden/models"
	"github.com/rs/zerolog"
)

// Manager tracks the lifecycle state of one database and funnels every
// operation against it. Construct with [New]; optional collaborators are
// attached with the With* methods before the first Initialize.
type Manager struct {
	provider ConnectionProvider
	detector Detector
	locator  locator.Locator
	upgrader Upgrader
	backup   BackupCreator
	cleanup  CleanupProcessor

	log zerolog.Logger

	state          models.DbState
	version        int
	initialState   models.DbState
	initialVersion int
	initialized    bool

	listeners []func(StateChange)
}

// New constructs a Manager in the Uninitialized state. The provider and
// detector are mandatory; loc may be nil when the host resolves batches
// itself.
func New(provider ConnectionProvider, detector Detector, loc locator.Locator, log zerolog.Logger) *Manager {
	return &Manager{
		provider: provider,
		detector: detector,
		locator:  loc,
		log:      log,
		state:    models.StateUninitialized,
	}
}

// WithUpgrader attaches the upgrade collaborator and returns the manager.
// Without one, Upgrade is unsupported and version detection cannot relate
// versions to a supported range.
func (m *Manager) WithUpgrader(u Upgrader) *Manager {
	m.upgrader = u
	return m
}

// WithBackup attaches the backup collaborator and returns the manager.
func (m *Manager) WithBackup(b BackupCreator) *Manager {
	m.backup = b
	return m
}

// WithCleanup attaches the cleanup collaborator and returns the manager.
func (m *Manager) WithCleanup(c CleanupProcessor) *Manager {
	m.cleanup = c
	return m
}

// State returns the current canonical lifecycle state.
func (m *Manager) State() models.DbState { return m.state }

// Version returns the current detected version.
func (m *Manager) Version() int { return m.version }

// InitialState returns the state snapshot taken at the last Initialize.
func (m *Manager) InitialState() models.DbState { return m.initialState }

// InitialVersion returns the version snapshot taken at the last Initialize.
func (m *Manager) InitialVersion() int { return m.initialVersion }

// IsInitialized reports whether Initialize completed since construction or
// the last Close.
func (m *Manager) IsInitialized() bool { return m.initialized }

// Initialize runs detection and derives the canonical state and version,
// snapshotting both as the initial values. Re-initializing an initialized
// manager implicitly closes it first. Detection failure never returns an
// error; it surfaces as the DamagedOrInvalid state.
func (m *Manager) Initialize(ctx context.Context) {
	if m.initialized {
		m.Close()
	}

	m.redetect(ctx)
	m.initialState = m.state
	m.initialVersion = m.version
	m.initialized = true

	m.log.Info().
		Str("state", m.state.String()).
		Int("version", m.version).
		Msg("database manager initialized")
}

// Close returns the manager to the Uninitialized state. Connections and
// transactions previously handed out are unaffected; they stay owned by
// their callers.
func (m *Manager) Close() {
	m.setStateAndVersion(models.StateUninitialized, models.VersionNotCreated)
	m.initialized = false
}

// redetect re-runs detection and updates state/version through the single
// mutation funnel.
func (m *Manager) redetect(ctx context.Context) {
	ok, rawState, rawVersion := m.detector.Detect(ctx, m)
	if !ok {
		m.log.Warn().Msg("version detection failed, degrading to DamagedOrInvalid")
	}

	minVersion, maxVersion := 0, 0
	if m.upgrader != nil {
		minVersion = m.upgrader.MinVersion(m)
		maxVersion = m.upgrader.MaxVersion(m)
	}

	state, version := DeriveState(ok, rawState, rawVersion, minVersion, maxVersion, m.upgrader != nil)
	m.setStateAndVersion(state, version)
}

// Connection hands out a dedicated open connection. The manager must be in
// a ready state; the caller owns the connection until closing it.
func (m *Manager) Connection(ctx context.Context, readOnly bool) (*sql.Conn, error) {
	if err := m.requireReady("create connection"); err != nil {
		return nil, err
	}
	if readOnly && !m.provider.SupportsReadOnly() {
		return nil, fmt.Errorf("read-only connection: %w", ErrNotSupported)
	}

	conn, err := m.provider.Connection(ctx, readOnly)
	if err != nil {
		m.log.Error().Err(err).Msg("connection creation failed")
		return nil, fmt.Errorf("creating connection: %w", err)
	}
	return conn, nil
}

// Transaction hands out an open transaction with the driver's default
// isolation level. The manager must be in a ready state; the caller owns
// the transaction and must commit or roll it back.
func (m *Manager) Transaction(ctx context.Context, readOnly bool) (*sql.Tx, error) {
	if err := m.requireReady("create transaction"); err != nil {
		return nil, err
	}
	if readOnly && !m.provider.SupportsReadOnly() {
		return nil, fmt.Errorf("read-only transaction: %w", ErrNotSupported)
	}

	tx, err := m.provider.Transaction(ctx, readOnly, sql.LevelDefault)
	if err != nil {
		m.log.Error().Err(err).Msg("transaction creation failed")
		return nil, fmt.Errorf("creating transaction: %w", err)
	}
	return tx, nil
}

// GetBatch resolves a named batch through the configured locator. Callable
// in any state.
func (m *Manager) GetBatch(name, separator string) (*batch.Batch, error) {
	if m.locator == nil {
		return nil, fmt.Errorf("no batch locator configured: %w", ErrNotSupported)
	}
	return m.locator.Batch(name, separator)
}

// GetBatchNames lists all batch names known to the configured locator.
// Callable in any state; returns an empty list without a locator.
func (m *Manager) GetBatchNames() []string {
	if m.locator == nil {
		return []string{}
	}
	return m.locator.Names()
}

func (m *Manager) requireReady(op string) error {
	if !m.state.IsReady() {
		return fmt.Errorf("%s in state %s: %w", op, m.state, ErrWrongState)
	}
	return nil
}

func (m *Manager) requireReadyOrNew(op string) error {
	if !m.state.IsReady() && m.state != models.StateNew {
		return fmt.Errorf("%s in state %s: %w", op, m.state, ErrWrongState)
	}
	return nil
}
