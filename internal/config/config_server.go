package config

import (
	"fmt"
	"time"
)

// ServerConfig is the relay-specific configuration view assembled from
// [StructuredConfig].
type ServerConfig struct {
	// App contains application-level settings.
	App App
	// Relay contains the generative provider credentials.
	Relay Relay
	// Server contains listen address and timeout settings.
	Server Server
}

// GetServerConfig builds and validates a relay-specific config view from the
// merged structured configuration.
//
// The missing-API-key check is deliberately part of validation here: the
// relay must refuse to start without a provider credential.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App:    cfg.App,
		Relay:  cfg.Relay,
		Server: cfg.Server,
	}

	return serverCfg, serverCfg.validate()
}

func (cfg *ServerConfig) validate() error {
	if cfg.Relay.GeminiAPIKey == "" {
		return ErrMissingGeminiAPIKey
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Server.PortFallbackAttempts < 1 {
		return ErrInvalidServerConfigs
	}

	if cfg.Server.RequestTimeout <= 0 {
		cfg.Server.RequestTimeout = 30 * time.Second
	}

	return nil
}
