// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// DriverPostgres and DriverSQLite are the database drivers the warden can
// manage.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The driver is only checked when set, so client-only invocations that never
// touch the database do not need storage settings.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case "", DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unknown driver %q: %w", cfg.Storage.DB.Driver, ErrInvalidStorageConfigs)
	}

	if cfg.Storage.DB.Driver != "" && cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("driver %q without DSN: %w", cfg.Storage.DB.Driver, ErrInvalidStorageConfigs)
	}

	if cfg.Upgrade.TargetVersion < 0 {
		return fmt.Errorf("target version %d: %w", cfg.Upgrade.TargetVersion, ErrInvalidUpgradeConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
