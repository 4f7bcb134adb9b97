// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package endpoint

import (
	"sync"

	x509certs "github.com/H0llyW00dzZ/grpc-tls-endpoint/src/internal/x509/certs"
	"github.com/H0llyW00dzZ/grpc-tls-endpoint/src/logger"
)

// CNCache maps CA certificate bytes (as string keys) to the Subject Common
// Name extracted from them. It is shared across endpoint constructions for
// the life of the process; entries are never evicted and values for the same
// key are always equal, so racing writers are harmless.
//
// CNCache is safe for concurrent use by multiple goroutines.
type CNCache struct {
	mu    sync.RWMutex
	names map[string]string
}

// NewCNCache creates an empty CN cache.
func NewCNCache() *CNCache {
	return &CNCache{names: make(map[string]string)}
}

// get looks up a cached CN by CA bytes key.
func (c *CNCache) get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	name, ok := c.names[key]
	return name, ok
}

// put stores a resolved CN. Last write wins.
func (c *CNCache) put(key, name string) {
	c.mu.Lock()
	c.names[key] = name
	c.mu.Unlock()
}

// Size returns the number of cached CN entries.
func (c *CNCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.names)
}

// defaultCNCache backs every endpoint construction that does not inject its
// own cache via WithCNCache.
var defaultCNCache = NewCNCache()

// resolveAuthority derives the authority name used for server certificate
// validation. An explicit hostnameOverride wins verbatim. Otherwise, when the
// caller opted in with trustServerCertificate and CA bytes are present, the
// CA certificate's Subject Common Name is used, memoized in the cache keyed
// by the exact CA byte sequence.
//
// CN extraction failure is deliberately non-fatal: construction continues
// without an override and the transport validates against the certificate's
// literal encoded name. This is the degraded mode development environments
// rely on.
func resolveAuthority(props Properties, caBytes []byte, cache *CNCache, decoder *x509certs.Certificate, log logger.Logger) string {
	if cn, ok := props.getString(PropHostnameOverride); ok && cn != "" {
		return cn
	}

	if !props.isTrue(PropTrustServerCertificate) || len(caBytes) == 0 {
		return ""
	}

	key := string(caBytes)
	if cn, ok := cache.get(key); ok {
		return cn
	}

	cert, err := decoder.Decode(caBytes)
	if err != nil {
		log.Printf("error getting Subject CN from certificate, try setting it specifically with the %s property: %v",
			PropHostnameOverride, err)
		return ""
	}

	cn := cert.Subject.CommonName
	if cn == "" {
		log.Printf("CA certificate has no Subject CN, try setting it specifically with the %s property",
			PropHostnameOverride)
		return ""
	}

	cache.put(key, cn)
	return cn
}
