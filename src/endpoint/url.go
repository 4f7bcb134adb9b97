// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package endpoint

import (
	"fmt"
	"net/url"
	"strconv"
)

// Supported endpoint protocols.
const (
	protocolPlain = "grpc"
	protocolTLS   = "grpcs"
)

// parsedURL is the (protocol, host, port) decomposition of an endpoint URL.
type parsedURL struct {
	protocol string
	host     string
	port     int
}

// parseEndpointURL splits an endpoint URL into protocol, host, and port.
//
// The protocol check runs first so that unknown schemes fail before any
// credential or trust work happens. The port is mandatory and must be in
// the 1-65535 range.
func parseEndpointURL(rawURL string) (parsedURL, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return parsedURL{}, fmt.Errorf("%w: failed to parse URL %q: %v", ErrConfiguration, rawURL, err)
	}

	if u.Scheme != protocolPlain && u.Scheme != protocolTLS {
		return parsedURL{}, fmt.Errorf("%w: %q", ErrUnsupportedProtocol, u.Scheme)
	}

	host := u.Hostname()
	if host == "" {
		return parsedURL{}, fmt.Errorf("%w: URL %q has no host", ErrConfiguration, rawURL)
	}

	portStr := u.Port()
	if portStr == "" {
		return parsedURL{}, fmt.Errorf("%w: URL %q has no port", ErrConfiguration, rawURL)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port < 1 || port > 65535 {
		return parsedURL{}, fmt.Errorf("%w: URL %q has invalid port %q", ErrConfiguration, rawURL, portStr)
	}

	return parsedURL{protocol: u.Scheme, host: host, port: port}, nil
}
