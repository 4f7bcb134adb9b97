// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package endpoint

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"regexp"
)

var (
	// pemCertMarker matches BEGIN/END CERTIFICATE marker lines, tolerating the
	// dash and whitespace variations real PEM files carry.
	pemCertMarker = regexp.MustCompile(`-+[ \t]*(BEGIN|END)[ \t]+CERTIFICATE[ \t]*-+`)

	// pemWhitespace matches any whitespace inside the base64 body.
	pemWhitespace = regexp.MustCompile(`\s`)
)

// errDigestDecode reports client certificate PEM whose base64 body did not decode.
var errDigestDecode = errors.New("endpoint: failed to decode client certificate PEM body")

// certificateDigest computes SHA-256 over the DER encoding recovered from the
// stored client certificate PEM: markers and whitespace stripped, remainder
// base64-decoded.
//
// The digest must cover the DER bytes, not the PEM text, because it is later
// compared against what other parties observe on the wire, and the wire
// carries DER.
func certificateDigest(certPEM []byte) ([]byte, error) {
	body := pemCertMarker.ReplaceAllString(string(certPEM), "")
	body = pemWhitespace.ReplaceAllString(body, "")

	der, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return nil, errDigestDecode
	}

	sum := sha256.Sum256(der)
	return sum[:], nil
}
