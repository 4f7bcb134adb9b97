// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the gRPC TLS endpoint builder.
// It implements a Cobra-based CLI that constructs an endpoint descriptor from a URL
// and an optional connection properties file (JSON or YAML), then reports the result
// as plain text, JSON, or a markdown table, and can optionally dial the endpoint to
// verify reachability. The package handles file I/O, context cancellation, and
// integrates with the logger package for output and error reporting.
package cli
