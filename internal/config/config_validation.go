// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// A half-configured credential pair is NOT an error: the auth gate is simply
// left uninstalled in that case (see [StructuredConfig.Credentials]).
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Assets.Dir == "" {
		return ErrInvalidAssetsConfigs
	}

	return nil
}
