// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package endpoint

import (
	"crypto/tls"
	"fmt"
	"os"
	"regexp"

	"github.com/H0llyW00dzZ/grpc-tls-endpoint/src/internal/helper/gc"
	x509certs "github.com/H0llyW00dzZ/grpc-tls-endpoint/src/internal/x509/certs"
)

// pemFileSeparator splits the pemFile property into individual paths.
var pemFileSeparator = regexp.MustCompile(`[ \t]*,[ \t]*`)

// clientIdentity is the decoded mutual-TLS half of a credential bundle:
// the key/certificate pair plus the exact PEM bytes the certificate came
// from. The raw PEM is retained verbatim because the identity digest must
// be computed over the very bytes the caller supplied; re-encoding the
// decoded certificate is not guaranteed to byte-reproduce them.
type clientIdentity struct {
	cert    tls.Certificate
	certPEM []byte
}

// resolveCABytes assembles CA trust material by concatenating the pemBytes
// property with the contents of every file listed in pemFile, in that order.
// An empty result is "no CA material", not an error: a grpcs endpoint without
// CA bytes falls back to ambient trust.
func resolveCABytes(props Properties) ([]byte, error) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if props.has(PropPEMBytes) {
		pb, ok := props.getBytes(PropPEMBytes)
		if !ok {
			return nil, fmt.Errorf("%w: pemBytes property must be bytes or a string", ErrConfiguration)
		}
		buf.Write(pb)
	}

	if props.has(PropPEMFile) {
		pemFile, ok := props.getString(PropPEMFile)
		if !ok {
			return nil, fmt.Errorf("%w: pemFile property must be a string of file paths", ErrConfiguration)
		}

		for _, path := range pemFileSeparator.Split(pemFile, -1) {
			if path == "" {
				continue
			}

			f, err := os.Open(path)
			if err != nil {
				return nil, fmt.Errorf("%w: failed to read CA certificate file %s: %v", ErrConfiguration, path, err)
			}
			if _, err := buf.ReadFrom(f); err != nil {
				f.Close()
				return nil, fmt.Errorf("%w: failed to read CA certificate file %s: %v", ErrConfiguration, path, err)
			}
			f.Close()
		}
	}

	if buf.Len() == 0 {
		return nil, nil
	}

	// Copy out: the pooled buffer is reused after Put.
	return append([]byte(nil), buf.Bytes()...), nil
}

// resolveClientCredentials extracts the mutual-TLS identity from the
// properties, enforcing source exclusivity: for each artifact the file and
// bytes variants are mutually exclusive, and within the chosen variant the
// key and certificate are both-or-neither. Returns nil when no client
// identity is configured.
func resolveClientCredentials(props Properties, decoder *x509certs.Certificate) (*clientIdentity, error) {
	var keyBytes, certBytes []byte

	switch {
	case props.has(PropClientKeyFile) && props.has(PropClientKeyBytes):
		return nil, fmt.Errorf("%w: properties %q and %q cannot both be set",
			ErrConfiguration, PropClientKeyFile, PropClientKeyBytes)

	case props.has(PropClientCertFile) && props.has(PropClientCertBytes):
		return nil, fmt.Errorf("%w: properties %q and %q cannot both be set",
			ErrConfiguration, PropClientCertFile, PropClientCertBytes)

	case props.has(PropClientKeyFile) || props.has(PropClientCertFile):
		keyFile, _ := props.getString(PropClientKeyFile)
		certFile, _ := props.getString(PropClientCertFile)
		if keyFile == "" || certFile == "" {
			return nil, fmt.Errorf("%w: properties %q and %q must both be set or both be absent",
				ErrConfiguration, PropClientKeyFile, PropClientCertFile)
		}

		var err error
		if keyBytes, err = os.ReadFile(keyFile); err != nil {
			return nil, fmt.Errorf("%w: failed to read client TLS key file %s: %v", ErrConfiguration, keyFile, err)
		}
		if certBytes, err = os.ReadFile(certFile); err != nil {
			return nil, fmt.Errorf("%w: failed to read client TLS certificate file %s: %v", ErrConfiguration, certFile, err)
		}

	case props.has(PropClientKeyBytes) || props.has(PropClientCertBytes):
		keyBytes, _ = props.getBytes(PropClientKeyBytes)
		certBytes, _ = props.getBytes(PropClientCertBytes)
		if len(keyBytes) == 0 || len(certBytes) == 0 {
			return nil, fmt.Errorf("%w: properties %q and %q must both be set or both be absent",
				ErrConfiguration, PropClientKeyBytes, PropClientCertBytes)
		}
	}

	if keyBytes == nil || certBytes == nil {
		return nil, nil
	}

	key, err := decoder.DecodePrivateKey(keyBytes)
	if err != nil {
		return nil, &CredentialDecodeError{Artifact: "private key", Err: err}
	}

	cert, err := decoder.Decode(certBytes)
	if err != nil {
		return nil, &CredentialDecodeError{Artifact: "certificate", Err: err}
	}

	return &clientIdentity{
		cert: tls.Certificate{
			Certificate: [][]byte{cert.Raw},
			PrivateKey:  key,
			Leaf:        cert,
		},
		certPEM: append([]byte(nil), certBytes...),
	}, nil
}
