// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package endpoint

// Recognized connection property keys. Values are strings, byte slices, or
// channel-option argument values; Properties is treated as immutable for the
// duration of one endpoint construction.
const (
	// PropPEMBytes holds raw PEM-concatenated CA trust bytes ([]byte or string).
	PropPEMBytes = "pemBytes"

	// PropPEMFile holds comma-separated paths to CA trust files, concatenated
	// after PropPEMBytes in listed order.
	PropPEMFile = "pemFile"

	// PropHostnameOverride holds an explicit authority name used verbatim for
	// server certificate validation.
	PropHostnameOverride = "hostnameOverride"

	// PropTrustServerCertificate opts into deriving the authority name from the
	// CA certificate's Subject Common Name when no override is given. The value
	// is the string "true".
	PropTrustServerCertificate = "trustServerCertificate"

	// PropClientKeyFile and PropClientCertFile name the client TLS identity as
	// a file pair; mutually exclusive with the bytes pair below, and within a
	// pair it is both-or-neither.
	PropClientKeyFile  = "clientKeyFile"
	PropClientCertFile = "clientCertFile"

	// PropClientKeyBytes and PropClientCertBytes carry the client TLS identity
	// as raw byte values.
	PropClientKeyBytes  = "clientKeyBytes"
	PropClientCertBytes = "clientCertBytes"

	// PropSSLProvider selects the TLS provider, "openSSL" or "JDK". The value
	// is validated for compatibility with configuration written against the
	// original transport stack; Go always uses crypto/tls.
	PropSSLProvider = "sslProvider"

	// PropNegotiationType selects "TLS" or "plainText" negotiation for grpcs
	// endpoints.
	PropNegotiationType = "negotiationType"
)

// ChannelOptionPrefix marks property keys that are forwarded to the channel
// builder's capability registry; the suffix names the capability.
const ChannelOptionPrefix = "grpc.ChannelBuilderOption."

// Properties is an opaque mapping of connection property keys to values
// supplied by the caller.
type Properties map[string]any

// has reports whether the key is present, regardless of value.
func (p Properties) has(key string) bool {
	_, ok := p[key]
	return ok
}

// getString returns the property as a string. Only string values qualify;
// a present non-string value reads as absent.
func (p Properties) getString(key string) (string, bool) {
	v, ok := p[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// getBytes returns the property as a byte slice, accepting []byte or string
// values since callers commonly hold PEM material either way.
func (p Properties) getBytes(key string) ([]byte, bool) {
	v, ok := p[key]
	if !ok {
		return nil, false
	}
	switch b := v.(type) {
	case []byte:
		return b, true
	case string:
		return []byte(b), true
	}
	return nil, false
}

// isTrue reports whether the property holds the string "true" (the wire form
// the original property set used) or a native boolean true.
func (p Properties) isTrue(key string) bool {
	switch v := p[key].(type) {
	case string:
		return v == "true"
	case bool:
		return v
	}
	return false
}
