// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package endpoint

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/base64"
	"encoding/pem"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selfSignedPEM(t testing.TB) (certPEM, der []byte) {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err, "generate key")

	template := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "digest.internal.example"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
	}
	der, err = x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err, "create certificate")

	certPEM = pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	return certPEM, der
}

func TestCertificateDigest(t *testing.T) {
	certPEM, der := selfSignedPEM(t)
	want := sha256.Sum256(der)

	tests := []struct {
		name  string
		input []byte
	}{
		{name: "CanonicalPEM", input: certPEM},
		{
			// Marker lines with padded dashes and tabs, body re-wrapped: the
			// digest must still land on the same DER bytes.
			name: "SloppyPEM",
			input: []byte("--- \tBEGIN CERTIFICATE \t---\n" +
				strings.ReplaceAll(base64.StdEncoding.EncodeToString(der), "A", "A \n") +
				"\n---- END\tCERTIFICATE ----\n"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := certificateDigest(tt.input)
			require.NoError(t, err, "certificateDigest() error")
			assert.Equal(t, want[:], got, "digest over DER bytes")
		})
	}
}

func TestCertificateDigest_BadBody(t *testing.T) {
	_, err := certificateDigest([]byte("-----BEGIN CERTIFICATE-----\n!!!\n-----END CERTIFICATE-----\n"))
	assert.Error(t, err, "invalid base64 body must not produce a digest")
}

func BenchmarkCertificateDigest(b *testing.B) {
	certPEM, _ := selfSignedPEM(b)

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := certificateDigest(certPEM); err != nil {
			b.Fatal(err)
		}
	}
}
