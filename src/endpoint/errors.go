// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package endpoint

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedProtocol indicates that the endpoint URL carries a scheme
	// other than grpc or grpcs.
	ErrUnsupportedProtocol = errors.New("endpoint: unsupported protocol")

	// ErrConfiguration indicates conflicting or partial connection properties:
	// a file and a bytes source for the same credential artifact, only one half
	// of a key/certificate pair, an invalid sslProvider or negotiationType
	// value, or an unreadable referenced file.
	ErrConfiguration = errors.New("endpoint: invalid configuration")

	// ErrTrustConstruction indicates that the CA trust bytes could not be
	// assembled into a usable trust anchor set.
	ErrTrustConstruction = errors.New("endpoint: failed to construct trust context")

	// ErrUnsupportedOption indicates a channel option property whose name has
	// no registered capability on the channel builder.
	ErrUnsupportedOption = errors.New("endpoint: unsupported channel option")

	// ErrOptionInvocation indicates a registered channel option that rejected
	// the supplied argument value.
	ErrOptionInvocation = errors.New("endpoint: channel option invocation failed")
)

// CredentialDecodeError reports a client TLS credential that could not be
// decoded, identifying which artifact (private key or certificate) failed.
type CredentialDecodeError struct {
	Artifact string // "private key" or "certificate"
	Err      error
}

// Error returns the formatted error message.
func (e *CredentialDecodeError) Error() string {
	return fmt.Sprintf("endpoint: failed to decode client TLS %s: %v", e.Artifact, e.Err)
}

// Unwrap returns the underlying decode error.
func (e *CredentialDecodeError) Unwrap() error { return e.Err }

// OptionError reports a channel option that could not be applied. Name is the
// option name without its prefix; Err is ErrUnsupportedOption or wraps
// ErrOptionInvocation with the setter failure.
type OptionError struct {
	Name string
	Err  error
}

// Error returns the formatted error message.
func (e *OptionError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Name)
}

// Unwrap returns the underlying option error.
func (e *OptionError) Unwrap() error { return e.Err }
