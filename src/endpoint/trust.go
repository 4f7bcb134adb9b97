// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package endpoint

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"

	x509certs "github.com/H0llyW00dzZ/grpc-tls-endpoint/src/internal/x509/certs"
	"google.golang.org/grpc/credentials"
)

// buildTrustContext turns resolved CA trust bytes and an optional client
// identity into transport credentials for a grpcs channel.
//
// The CA bytes become the trust anchor set; the pool must gain at least one
// certificate or construction fails. When a client identity is present it is
// added so the handshake presents it (mutual TLS). The authority, when
// non-empty, overrides the name the server certificate is validated against.
// No handshake I/O happens here.
func buildTrustContext(caBytes []byte, identity *clientIdentity, authority string, decoder *x509certs.Certificate) (credentials.TransportCredentials, error) {
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(caBytes) {
		// Not PEM, or no parsable certificate in it. A single DER certificate
		// is still acceptable CA material.
		cert, err := decoder.Decode(caBytes)
		if err != nil {
			return nil, fmt.Errorf("%w: no usable CA certificate in trust bytes: %v", ErrTrustConstruction, err)
		}
		pool.AddCert(cert)
	}

	cfg := &tls.Config{
		RootCAs:    pool,
		MinVersion: tls.VersionTLS12,
	}
	if identity != nil {
		cfg.Certificates = []tls.Certificate{identity.cert}
	}
	if authority != "" {
		cfg.ServerName = authority
	}

	return credentials.NewTLS(cfg), nil
}

// ambientTrustCredentials returns transport credentials backed by the
// process's ambient root store, used when a grpcs endpoint carries no CA
// material at all.
func ambientTrustCredentials() credentials.TransportCredentials {
	return credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12})
}
