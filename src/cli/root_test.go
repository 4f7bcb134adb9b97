// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/H0llyW00dzZ/grpc-tls-endpoint/src/cli"
	"github.com/H0llyW00dzZ/grpc-tls-endpoint/src/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const version = "1.3.3.7-testing"

func TestExecute_Plaintext(t *testing.T) {
	os.Args = []string{"cmd", "grpc://peer.example.com:7051"}
	err := cli.Execute(context.Background(), version, logger.Nop())
	assert.NoError(t, err)
	assert.True(t, cli.OperationPerformed)
	assert.True(t, cli.OperationPerformedSuccessfully)
}

func TestExecute_NoArgs(t *testing.T) {
	os.Args = []string{"cmd"}
	err := cli.Execute(context.Background(), version, logger.Nop())
	assert.Error(t, err)
	assert.False(t, cli.OperationPerformed)
}

func TestExecute_UnsupportedProtocol(t *testing.T) {
	os.Args = []string{"cmd", "http://peer.example.com:7051"}
	err := cli.Execute(context.Background(), version, logger.Nop())
	assert.Error(t, err)
	assert.False(t, cli.OperationPerformedSuccessfully)
}

func TestExecute_JSONProperties(t *testing.T) {
	propsFile := filepath.Join(t.TempDir(), "props.json")
	require.NoError(t, os.WriteFile(propsFile,
		[]byte(`{"hostnameOverride": "peer0.internal.example"}`), 0644))

	os.Args = []string{"cmd", "-p", propsFile, "--json", "grpc://peer.example.com:7051"}
	err := cli.Execute(context.Background(), version, logger.Nop())
	assert.NoError(t, err)
	assert.True(t, cli.OperationPerformedSuccessfully)
}

func TestExecute_YAMLProperties(t *testing.T) {
	propsFile := filepath.Join(t.TempDir(), "props.yaml")
	require.NoError(t, os.WriteFile(propsFile,
		[]byte("hostnameOverride: peer0.internal.example\n"), 0644))

	os.Args = []string{"cmd", "-p", propsFile, "--table", "grpc://peer.example.com:7051"}
	err := cli.Execute(context.Background(), version, logger.Nop())
	assert.NoError(t, err)
}

func TestExecute_InvalidJSONProperties(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "malformed document",
			content: `{"hostnameOverride": `,
		},
		{
			name:    "schema violation",
			content: `{"pemBytes": 42}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			propsFile := filepath.Join(t.TempDir(), "props.json")
			require.NoError(t, os.WriteFile(propsFile, []byte(tt.content), 0644))

			os.Args = []string{"cmd", "-p", propsFile, "grpc://peer.example.com:7051"}
			err := cli.Execute(context.Background(), version, logger.Nop())
			assert.Error(t, err)
			assert.False(t, cli.OperationPerformed)
		})
	}
}

func TestExecute_MissingPropertiesFile(t *testing.T) {
	os.Args = []string{"cmd", "-p", "/tmp/nonexistent-props-12345.json", "grpc://peer.example.com:7051"}
	err := cli.Execute(context.Background(), version, logger.Nop())
	assert.Error(t, err)
}
