// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs_test

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	x509certs "github.com/H0llyW00dzZ/grpc-tls-endpoint/src/internal/x509/certs"
)

func newTestCert(t *testing.T, cn string) (*x509.Certificate, []byte) {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err, "generate key")

	template := &x509.Certificate{
		SerialNumber: big.NewInt(time.Now().UnixNano()),
		Subject:      pkix.Name{CommonName: cn},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err, "create certificate")

	cert, err := x509.ParseCertificate(der)
	require.NoError(t, err, "parse created certificate")

	return cert, pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
}

func TestCertificateOperations(t *testing.T) {
	decoder := x509certs.New()
	cert, certPEM := newTestCert(t, "certs.internal.example")

	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Decode PEM Certificate",
			testFunc: func(t *testing.T) {
				decoded, err := decoder.Decode(certPEM)
				require.NoError(t, err, "Decode() error")

				assert.True(t, cert.Equal(decoded), "decoded certificate mismatch")
				assert.Equal(t, "certs.internal.example", decoded.Subject.CommonName, "subject CN")
			},
		},
		{
			name: "Decode DER Certificate",
			testFunc: func(t *testing.T) {
				decoded, err := decoder.Decode(cert.Raw)
				require.NoError(t, err, "Decode() error")

				assert.True(t, cert.Equal(decoded), "decoded certificate mismatch")
			},
		},
		{
			name: "Decode First Of Concatenated PEM",
			testFunc: func(t *testing.T) {
				other, otherPEM := newTestCert(t, "other.internal.example")

				decoded, err := decoder.Decode(append(append([]byte(nil), certPEM...), otherPEM...))
				require.NoError(t, err, "Decode() error")

				assert.True(t, cert.Equal(decoded), "first certificate must win")
				assert.False(t, other.Equal(decoded), "second certificate must not win")
			},
		},
		{
			name: "Decode Multiple Certificates",
			testFunc: func(t *testing.T) {
				_, otherPEM := newTestCert(t, "other.internal.example")

				certs, err := decoder.DecodeMultiple(append(append([]byte(nil), certPEM...), otherPEM...))
				require.NoError(t, err, "DecodeMultiple() error")

				assert.Len(t, certs, 2, "expected 2 certificates")
			},
		},
		{
			name: "Decode Invalid Data",
			testFunc: func(t *testing.T) {
				_, err := decoder.Decode([]byte("not certificate material"))
				assert.Error(t, err, "expected error for invalid data")
			},
		},
		{
			name: "Decode Wrong Block Type",
			testFunc: func(t *testing.T) {
				wrongType := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: cert.Raw})

				_, err := decoder.Decode(wrongType)
				assert.ErrorIs(t, err, x509certs.ErrInvalidBlockType, "expected block type error")
			},
		},
		{
			name: "Encode PEM Round Trip",
			testFunc: func(t *testing.T) {
				encoded := decoder.EncodePEM(cert)
				assert.NotEmpty(t, encoded, "EncodePEM() returned empty result")

				decoded, err := decoder.Decode(encoded)
				require.NoError(t, err, "Decode() error")
				assert.True(t, cert.Equal(decoded), "round-tripped certificate mismatch")
			},
		},
		{
			name: "Encode DER",
			testFunc: func(t *testing.T) {
				assert.Equal(t, cert.Raw, decoder.EncodeDER(cert), "EncodeDER must return raw DER")
			},
		},
		{
			name: "IsPEM",
			testFunc: func(t *testing.T) {
				assert.True(t, decoder.IsPEM(certPEM), "PEM input")
				assert.False(t, decoder.IsPEM(cert.Raw), "DER input")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.testFunc)
	}
}

func TestDecodePrivateKey(t *testing.T) {
	decoder := x509certs.New()

	ecKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err, "generate EC key")
	rsaKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err, "generate RSA key")

	pkcs8, err := x509.MarshalPKCS8PrivateKey(ecKey)
	require.NoError(t, err, "marshal PKCS#8")
	sec1, err := x509.MarshalECPrivateKey(ecKey)
	require.NoError(t, err, "marshal SEC1")
	pkcs1 := x509.MarshalPKCS1PrivateKey(rsaKey)

	tests := []struct {
		name string
		data []byte
	}{
		{
			name: "PKCS8 PEM",
			data: pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: pkcs8}),
		},
		{
			name: "SEC1 EC PEM",
			data: pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: sec1}),
		},
		{
			name: "PKCS1 RSA PEM",
			data: pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: pkcs1}),
		},
		{
			name: "PKCS8 DER",
			data: pkcs8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := decoder.DecodePrivateKey(tt.data)
			require.NoError(t, err, "DecodePrivateKey() error")
			assert.NotNil(t, key, "decoded key")
		})
	}
}

func TestDecodePrivateKey_Invalid(t *testing.T) {
	decoder := x509certs.New()

	_, err := decoder.DecodePrivateKey([]byte("not a key"))
	assert.ErrorIs(t, err, x509certs.ErrParsePrivateKey, "expected private key parse error")
}
