// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package endpoint

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Recognized sslProvider and negotiationType values.
const (
	SSLProviderOpenSSL = "openSSL"
	SSLProviderJDK     = "JDK"

	NegotiationTLS       = "TLS"
	NegotiationPlainText = "plainText"
)

// EnvConfigFile names the environment variable pointing at an optional
// process-wide defaults file (.json, .yaml, or .yml).
const EnvConfigFile = "GRPC_TLS_ENDPOINT_CONFIG"

// Config holds process-wide defaults applied when an endpoint's properties
// omit sslProvider or negotiationType.
type Config struct {
	// DefaultSSLProvider is used when the sslProvider property is absent.
	DefaultSSLProvider string `json:"sslProvider" yaml:"sslProvider"`

	// DefaultNegotiationType is used when the negotiationType property is absent.
	DefaultNegotiationType string `json:"negotiationType" yaml:"negotiationType"`
}

var (
	configOnce   sync.Once
	globalConfig *Config
)

// GetConfig returns the process-wide defaults, loading them once from the
// file named by EnvConfigFile when set. Defaults are openSSL and TLS, the
// same defaults the original transport configuration shipped with. A broken
// config file is not fatal: defaults win and the error is swallowed, since
// per-endpoint properties still validate strictly.
func GetConfig() *Config {
	configOnce.Do(func() {
		globalConfig = loadConfig(os.Getenv(EnvConfigFile))
	})
	return globalConfig
}

// loadConfig builds a Config from defaults plus an optional overlay file.
func loadConfig(path string) *Config {
	cfg := &Config{
		DefaultSSLProvider:     SSLProviderOpenSSL,
		DefaultNegotiationType: NegotiationTLS,
	}

	if path == "" {
		return cfg
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	overlay := &Config{}
	if err := unmarshalConfig(data, overlay, path); err != nil {
		return cfg
	}

	if overlay.DefaultSSLProvider != "" {
		cfg.DefaultSSLProvider = overlay.DefaultSSLProvider
	}
	if overlay.DefaultNegotiationType != "" {
		cfg.DefaultNegotiationType = overlay.DefaultNegotiationType
	}
	return cfg
}

// unmarshalConfig parses the config file as YAML or JSON based on extension.
func unmarshalConfig(data []byte, cfg *Config, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// resolveNegotiation validates the sslProvider and negotiationType properties
// against their recognized values, falling back to the process-wide defaults
// when a property is absent. Invalid values are fatal configuration errors.
func resolveNegotiation(props Properties, cfg *Config) (sslProvider, negotiation string, err error) {
	sslProvider, ok := props.getString(PropSSLProvider)
	if !ok || sslProvider == "" {
		sslProvider = cfg.DefaultSSLProvider
	}
	if sslProvider != SSLProviderOpenSSL && sslProvider != SSLProviderJDK {
		return "", "", fmt.Errorf("%w: sslProvider has to be either %s or %s, value: %q",
			ErrConfiguration, SSLProviderOpenSSL, SSLProviderJDK, sslProvider)
	}

	negotiation, ok = props.getString(PropNegotiationType)
	if !ok || negotiation == "" {
		negotiation = cfg.DefaultNegotiationType
	}
	if negotiation != NegotiationTLS && negotiation != NegotiationPlainText {
		return "", "", fmt.Errorf("%w: negotiationType has to be either %s or %s, value: %q",
			ErrConfiguration, NegotiationTLS, NegotiationPlainText, negotiation)
	}

	return sslProvider, negotiation, nil
}
