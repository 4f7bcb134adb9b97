// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package endpoint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	writeConfig := func(t *testing.T, name, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0600), "write config")
		return path
	}

	tests := []struct {
		name            string
		path            string
		wantProvider    string
		wantNegotiation string
	}{
		{
			name:            "NoFileUsesDefaults",
			path:            "",
			wantProvider:    SSLProviderOpenSSL,
			wantNegotiation: NegotiationTLS,
		},
		{
			name:            "MissingFileUsesDefaults",
			path:            "/nonexistent/endpoint-defaults.yaml",
			wantProvider:    SSLProviderOpenSSL,
			wantNegotiation: NegotiationTLS,
		},
		{
			name:            "YAMLOverlay",
			path:            writeConfig(t, "defaults.yaml", "sslProvider: JDK\nnegotiationType: plainText\n"),
			wantProvider:    SSLProviderJDK,
			wantNegotiation: NegotiationPlainText,
		},
		{
			name:            "JSONOverlay",
			path:            writeConfig(t, "defaults.json", `{"sslProvider":"JDK"}`),
			wantProvider:    SSLProviderJDK,
			wantNegotiation: NegotiationTLS,
		},
		{
			name:            "BrokenFileFallsBackToDefaults",
			path:            writeConfig(t, "defaults.yaml", ":\tnot yaml"),
			wantProvider:    SSLProviderOpenSSL,
			wantNegotiation: NegotiationTLS,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := loadConfig(tt.path)
			assert.Equal(t, tt.wantProvider, cfg.DefaultSSLProvider, "default SSL provider")
			assert.Equal(t, tt.wantNegotiation, cfg.DefaultNegotiationType, "default negotiation type")
		})
	}
}

func TestResolveNegotiation_DefaultsFromConfig(t *testing.T) {
	cfg := &Config{
		DefaultSSLProvider:     SSLProviderJDK,
		DefaultNegotiationType: NegotiationPlainText,
	}

	provider, negotiation, err := resolveNegotiation(Properties{}, cfg)
	require.NoError(t, err, "resolveNegotiation() error")
	assert.Equal(t, SSLProviderJDK, provider, "provider from config default")
	assert.Equal(t, NegotiationPlainText, negotiation, "negotiation from config default")
}

func TestParseEndpointURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		wantErr  error
		protocol string
		host     string
		port     int
	}{
		{name: "Plain", url: "grpc://localhost:7051", protocol: "grpc", host: "localhost", port: 7051},
		{name: "TLS", url: "grpcs://peer.internal.example:443", protocol: "grpcs", host: "peer.internal.example", port: 443},
		{name: "IPv4", url: "grpcs://127.0.0.1:7051", protocol: "grpcs", host: "127.0.0.1", port: 7051},
		{name: "UnknownScheme", url: "https://localhost:7051", wantErr: ErrUnsupportedProtocol},
		{name: "NoScheme", url: "localhost:7051", wantErr: ErrUnsupportedProtocol},
		{name: "NoPort", url: "grpc://localhost", wantErr: ErrConfiguration},
		{name: "ZeroPort", url: "grpc://localhost:0", wantErr: ErrConfiguration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pu, err := parseEndpointURL(tt.url)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr, "expected %v", tt.wantErr)
				return
			}

			require.NoError(t, err, "parseEndpointURL() error")
			assert.Equal(t, tt.protocol, pu.protocol, "protocol")
			assert.Equal(t, tt.host, pu.host, "host")
			assert.Equal(t, tt.port, pu.port, "port")
		})
	}
}
