package config

import (
	"time"
)

// ClientConfig is the top-level configuration container for the securevault
// client. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, an optional JSON
// file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type ClientConfig struct {
	// App holds application-level settings such as token parameters and the
	// local storage protection key.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Backend holds settings for the authentication backend collaborator.
	Backend Backend `envPrefix:"BACKEND_"`

	// Breach holds settings for the breach-check collaborator.
	Breach Breach `envPrefix:"BREACH_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control token
// lifecycle and local data protection.
type App struct {
	// TokenSignKey is the secret key used to sign and verify session JWT
	// tokens. Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued session token.
	// It is validated when a persisted session is restored.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session token remains valid after
	// issuance (e.g. "24h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// StorageKey is the secret from which the at-rest encryption key for
	// local snapshots is derived. Must be kept confidential.
	// Env: APP_STORAGE_KEY
	StorageKey string `env:"STORAGE_KEY"`
}

// Storage groups the configuration for the local storage backend.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path used by the client
	// (e.g. "securevault.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Backend holds settings for the authentication backend collaborator.
// The current backend is simulated in-process; Latency controls how long
// each simulated call suspends before resolving.
type Backend struct {
	// Latency is the fixed delay applied to every simulated backend call
	// (e.g. "1s").
	// Env: BACKEND_LATENCY
	Latency time.Duration `env:"LATENCY"`
}

// Breach holds settings for the breach-check collaborator.
type Breach struct {
	// BaseURL is the base URL of the Pwned Passwords range API.
	// Env: BREACH_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the maximum duration for a single breach lookup
	// request (e.g. "10s").
	// Env: BREACH_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Offline switches breach lookups to the built-in offline checker
	// instead of the range API.
	// Env: BREACH_OFFLINE
	Offline bool `env:"OFFLINE"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// BreachCheckInterval defines how often the breach-check worker rescans
	// the vault (e.g. "30m").
	// Env: WORKERS_BREACH_CHECK_INTERVAL
	BreachCheckInterval time.Duration `env:"BREACH_CHECK_INTERVAL"`
}

// GetClientConfig loads, merges, and validates the client configuration from
// all available sources in the following priority order (earlier sources win
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *ClientConfig or an error if any source fails to
// load or the final config fails validation.
func GetClientConfig() (*ClientConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
