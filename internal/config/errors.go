package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing token sign key or storage key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidBackendConfigs indicates invalid backend collaborator
	// settings (for example, non-positive latency).
	ErrInvalidBackendConfigs = errors.New("invalid backend configuration")
	// ErrInvalidBreachConfigs indicates invalid breach-check settings
	// (for example, missing base URL or zero request timeout).
	ErrInvalidBreachConfigs = errors.New("invalid breach configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero scan interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
