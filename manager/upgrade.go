// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package manager

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-db-warden/models"
)

// Upgrade advances the database to targetVersion by repeated single-step
// upgrades. The manager must be ready or New and have an upgrader
// configured; targetVersion must lie inside the supported range and not be
// below the current version. Reaching the target already is a no-op.
//
// Every step re-detects state and version. The loop aborts when a step
// reports failure, when the manager leaves the ready states, or when the
// detected version fails to strictly increase — the last guard bounds the
// loop to at most targetVersion-currentVersion iterations even against a
// misbehaving upgrader.
func (m *Manager) Upgrade(ctx context.Context, targetVersion int) error {
	if err := m.requireReadyOrNew("upgrade"); err != nil {
		return err
	}
	if m.upgrader == nil {
		return fmt.Errorf("upgrade: %w", ErrNotSupported)
	}

	minVersion := m.upgrader.MinVersion(m)
	maxVersion := m.upgrader.MaxVersion(m)
	if targetVersion < minVersion || targetVersion > maxVersion {
		return fmt.Errorf("upgrade to %d (supported range %d..%d): %w",
			targetVersion, minVersion, maxVersion, ErrVersionOutOfRange)
	}
	if targetVersion < m.version {
		return fmt.Errorf("upgrade to %d from %d: %w", targetVersion, m.version, ErrVersionOutOfRange)
	}
	if targetVersion == m.version {
		return nil
	}

	m.log.Info().
		Int("from_version", m.version).
		Int("target_version", targetVersion).
		Msg("starting incremental upgrade")

	for m.version < targetVersion {
		from := m.version

		ok := m.upgrader.Upgrade(ctx, m, from)
		m.redetect(ctx)

		if !ok {
			return fmt.Errorf("upgrading from version %d: %w", from, ErrUpgradeFailed)
		}
		if !m.state.IsReady() && m.state != models.StateNew {
			return fmt.Errorf("state %s after upgrading from version %d: %w",
				m.state, from, ErrUpgradeFailed)
		}
		if m.version <= from {
			return fmt.Errorf("version %d after upgrading from version %d: %w",
				m.version, from, ErrUpgradeStalled)
		}
	}

	m.log.Info().Int("version", m.version).Msg("upgrade finished")
	return nil
}
