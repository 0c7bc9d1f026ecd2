package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing token sign key or a zero token duration).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates an empty database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing HTTP address or a
	// non-positive request timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates invalid worker pool settings.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
