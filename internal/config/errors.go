package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid managed database settings
	// (for example, an unknown driver or a driver without a DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAdapterConfigs indicates invalid remote admin API settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidUpgradeConfigs indicates invalid upgrade settings
	// (for example, a negative target version).
	ErrInvalidUpgradeConfigs = errors.New("invalid upgrade configuration")
)
