// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the edge
// service. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional JSON
// file, with defaults applied last.
//
// The struct is immutable after GetStructuredConfig returns: request handling
// never mutates configuration.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the Basic Auth credential
	// pair and the application version.
	App App `envPrefix:"APP_"`

	// Assets holds the location of the prebuilt frontend bundle served by
	// the asset router.
	Assets Assets `envPrefix:"ASSETS_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// BasicAuthUser is the username of the single accepted credential pair
	// for the protected path prefixes. The auth gate is installed only when
	// both BasicAuthUser and BasicAuthPass are non-empty.
	// Env: APP_BASIC_AUTH_USER
	BasicAuthUser string `env:"BASIC_AUTH_USER"`

	// BasicAuthPass is the password of the single accepted credential pair.
	// Must be kept confidential; it is never logged.
	// Env: APP_BASIC_AUTH_PASS
	BasicAuthPass string `env:"BASIC_AUTH_PASS"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Assets holds the file-system location of the frontend bundle.
type Assets struct {
	// Dir is the path to the directory produced by the frontend build
	// (the Vite dist directory). If the directory or its index.html is
	// missing at startup, the asset router serves 503 for every request.
	// Env: ASSETS_DIR
	Dir string `env:"DIR"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds how long the server waits for request headers
	// before giving up on a connection (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Credentials is the immutable username/password pair accepted by the
// Basic Auth gate.
type Credentials struct {
	User string
	Pass string
}

// Credentials returns the configured credential pair and whether it is
// complete. The pair is considered configured only when both the username
// and the password are non-empty; a half-configured pair leaves the gate
// uninstalled, exactly as if neither value was set.
func (cfg *StructuredConfig) Credentials() (Credentials, bool) {
	if cfg.App.BasicAuthUser == "" || cfg.App.BasicAuthPass == "" {
		return Credentials{}, false
	}

	return Credentials{
		User: cfg.App.BasicAuthUser,
		Pass: cfg.App.BasicAuthPass,
	}, true
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
