// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-film-keeper client. It aggregates all sub-configurations and is
// populated by merging defaults, environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Storage holds configuration for the local film cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds settings of the remote movie API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for the background sync process.
	Workers Workers `envPrefix:"WORKERS_"`

	// DevTools holds settings of the optional state inspector.
	DevTools DevTools `envPrefix:"DEVTOOLS_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for all storage backends used by the
// client.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local database.
type DB struct {
	// DSN is the SQLite file path (e.g. "filmkeeper.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds settings of the remote movie API.
type Adapter struct {
	// HTTPAddress is the base URL of the movie API
	// (e.g. "https://douban.uieee.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single outbound request
	// (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// City selects the city whose in-theater listing is fetched.
	// Env: ADAPTER_CITY
	City string `env:"CITY"`
}

// Workers holds configuration for the background sync process.
type Workers struct {
	// SyncInterval defines how often recent and top listings are re-synced.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// DevTools holds settings of the state inspector.
type DevTools struct {
	// Enabled installs the recording enhancer.
	// Env: DEVTOOLS_ENABLED
	Enabled bool `env:"ENABLED"`

	// Address is the host:port the inspector HTTP server listens on.
	// Empty keeps the recorder without serving it.
	// Env: DEVTOOLS_ADDRESS
	Address string `env:"ADDRESS"`

	// HistoryLimit is the number of recorded actions kept in memory.
	// Env: DEVTOOLS_HISTORY_LIMIT
	HistoryLimit int `env:"HISTORY_LIMIT"`
}

// Log holds logging settings.
type Log struct {
	// Level is the minimal level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is the path of the log file. Empty writes next to the executable.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// defaultConfig holds the values used when no source sets a field.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			DB: DB{DSN: "filmkeeper.db"},
		},
		Adapter: Adapter{
			HTTPAddress:    "https://douban.uieee.com",
			RequestTimeout: 15 * time.Second,
			City:           "上海",
		},
		Workers: Workers{
			SyncInterval: 30 * time.Minute,
		},
		DevTools: DevTools{
			HistoryLimit: 100,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
