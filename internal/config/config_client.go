package config

import (
	"fmt"
	"time"
)

// ClientConfig is the configuration view of the demo client, derived from
// [StructuredConfig].
type ClientConfig struct {
	// ServerAddress is the base URL of the storefront server.
	ServerAddress string
	// RequestTimeout bounds every outbound request.
	RequestTimeout time.Duration
	// LogLevel is a zerolog level name.
	LogLevel string
	// Args are the positional arguments: the command and its operands.
	Args []string
}

// GetClientConfig builds and validates the client configuration from
// defaults, environment variables, the given arguments and the optional JSON
// file.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(parseClientFlags, args).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		ServerAddress:  cfg.Adapter.HTTPAddress,
		RequestTimeout: cfg.Adapter.RequestTimeout,
		LogLevel:       cfg.App.LogLevel,
		Args:           cfg.Args,
	}

	return clientCfg, clientCfg.validate()
}
