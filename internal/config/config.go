// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-trip-keeper application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the application version.
	App App `envPrefix:"APP_"`

	// Relay holds credentials and settings for the generative AI provider
	// the relay forwards requests to. Deliberately unprefixed so that the
	// conventional GEMINI_API_KEY variable is read verbatim.
	Relay Relay

	// Storage holds configuration for the client's local persistence.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the relay's
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings for the client's outbound HTTP transport
	// (the relay base URL and request timeout).
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Shown in the TUI build-info overlay.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Relay holds settings for the outbound generative AI integration.
type Relay struct {
	// GeminiAPIKey is the API key for the generative provider. Server-side
	// only, never shipped to the client. The relay refuses to start
	// without it.
	// Env: GEMINI_API_KEY
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
}

// Storage groups the configuration for the client's persistence backends.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path (e.g. "trip-keeper.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds network and timeout settings for the relay's HTTP server.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "localhost:3001").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// PortFallbackAttempts is how many consecutive ports are tried when
	// the configured one is already in use (the port number is incremented
	// on each attempt).
	// Env: SERVER_PORT_FALLBACK_ATTEMPTS
	PortFallbackAttempts int `env:"PORT_FALLBACK_ATTEMPTS"`
}

// Adapter holds configuration for the client's outbound HTTP transport.
type Adapter struct {
	// HTTPAddress is the base URL of the relay the client talks to
	// (e.g. "http://localhost:3001").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the default timeout for outbound client requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// WeatherRefreshInterval defines how often the background weather job
	// re-fetches snapshots for all itinerary locations.
	// Env: WORKERS_WEATHER_REFRESH_INTERVAL
	WeatherRefreshInterval time.Duration `env:"WEATHER_REFRESH_INTERVAL"`
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
