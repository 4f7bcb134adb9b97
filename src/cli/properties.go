// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/H0llyW00dzZ/grpc-tls-endpoint/src/endpoint"
	"github.com/H0llyW00dzZ/grpc-tls-endpoint/src/internal/helper/gc"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// ErrPropertiesSchema indicates a JSON properties file that failed schema validation.
var ErrPropertiesSchema = errors.New("cli: properties file failed schema validation")

// propertiesSchema constrains JSON properties files: recognized keys carry
// strings, channel option keys and future property names stay open.
const propertiesSchema = `{
	"type": "object",
	"properties": {
		"pemBytes":               {"type": "string"},
		"pemFile":                {"type": "string"},
		"hostnameOverride":       {"type": "string"},
		"trustServerCertificate": {"type": "string", "enum": ["true", "false"]},
		"clientKeyFile":          {"type": "string"},
		"clientCertFile":         {"type": "string"},
		"clientKeyBytes":         {"type": "string"},
		"clientCertBytes":        {"type": "string"},
		"sslProvider":            {"type": "string"},
		"negotiationType":        {"type": "string"}
	},
	"additionalProperties": true
}`

// loadProperties reads a connection properties file. JSON files are validated
// against the embedded schema before unmarshaling; YAML files are parsed
// directly. An empty path yields nil properties.
func loadProperties(path string) (endpoint.Properties, error) {
	if path == "" {
		return nil, nil
	}

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cli: failed to open properties file: %w", err)
	}
	defer f.Close()

	if _, err := buf.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("cli: failed to read properties file: %w", err)
	}
	data := append([]byte(nil), buf.Bytes()...)

	var raw map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("cli: failed to parse YAML properties file: %w", err)
		}
	default:
		if err := validatePropertiesJSON(data); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("cli: failed to parse JSON properties file: %w", err)
		}
	}

	return endpoint.Properties(raw), nil
}

// validatePropertiesJSON checks a JSON document against the properties schema.
func validatePropertiesJSON(data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(propertiesSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("cli: failed to validate properties file: %w", err)
	}

	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return fmt.Errorf("%w: %s", ErrPropertiesSchema, strings.Join(details, "; "))
	}

	return nil
}
