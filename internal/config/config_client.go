package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the movie API adapter.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the movie API.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
	// City selects the in-theater listing.
	City string
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background task settings.
type ClientWorkers struct {
	// SyncInterval defines how often the background task re-syncs listings.
	SyncInterval time.Duration
}

// ClientDevTools contains state inspector settings.
type ClientDevTools struct {
	// Enabled installs the recording enhancer.
	Enabled bool
	// Address is where the inspector is served; empty disables serving.
	Address string
	// HistoryLimit bounds the number of recorded actions.
	HistoryLimit int
}

// ClientLog contains logging settings.
type ClientLog struct {
	// Level is the minimal level name.
	Level string
	// File is the log file path.
	File string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains movie API settings.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background task settings.
	Workers ClientWorkers
	// DevTools contains inspector settings.
	DevTools ClientDevTools
	// Log contains logging settings.
	Log ClientLog
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			City:           cfg.Adapter.City,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
		DevTools: ClientDevTools{
			Enabled:      cfg.DevTools.Enabled,
			Address:      cfg.DevTools.Address,
			HistoryLimit: cfg.DevTools.HistoryLimit,
		},
		Log: ClientLog{
			Level: cfg.Log.Level,
			File:  cfg.Log.File,
		},
	}
}
