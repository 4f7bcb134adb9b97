// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides abstraction and implementation for logging operations.
// It defines the Logger interface and provides two implementations: CLILogger for
// human-readable command-line output and JSONLogger for structured JSON logging
// suitable for machine consumption. Both implementations are thread-safe.
//
// The endpoint builder takes a Logger so that library consumers decide where
// construction warnings and trace output go; by default nothing is emitted.
package logger
