package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, an empty listen address after defaults were applied).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAssetsConfigs indicates invalid asset settings
	// (for example, an empty frontend bundle directory).
	ErrInvalidAssetsConfigs = errors.New("invalid assets configuration")
)
