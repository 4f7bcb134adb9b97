// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package endpoint

import (
	"fmt"
	"sync"

	x509certs "github.com/H0llyW00dzZ/grpc-tls-endpoint/src/internal/x509/certs"
	"github.com/H0llyW00dzZ/grpc-tls-endpoint/src/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Endpoint is a finished endpoint descriptor: host, port, and the assembled
// transport configuration for opening an RPC channel to the remote peer.
// It is immutable after construction except for the lazily memoized client
// certificate digest.
type Endpoint struct {
	url       string
	host      string
	port      int
	protocol  string
	authority string
	mutualTLS bool

	clientCertPEM []byte
	digestOnce    sync.Once
	digest        []byte

	dialOpts []grpc.DialOption
}

// settings collects the injectable collaborators of one construction.
type settings struct {
	log     logger.Logger
	cache   *CNCache
	config  *Config
	decoder *x509certs.Certificate
}

// Option customizes endpoint construction.
type Option func(*settings)

// WithLogger routes construction warnings and trace output to log instead of
// discarding them.
func WithLogger(log logger.Logger) Option {
	return func(s *settings) {
		if log != nil {
			s.log = log
		}
	}
}

// WithCNCache injects a CN cache, replacing the process-wide one. Useful for
// tests and for callers that want cache lifecycles narrower than the process.
func WithCNCache(cache *CNCache) Option {
	return func(s *settings) {
		if cache != nil {
			s.cache = cache
		}
	}
}

// WithConfig overrides the process-wide defaults for this construction.
func WithConfig(cfg *Config) Option {
	return func(s *settings) {
		if cfg != nil {
			s.config = cfg
		}
	}
}

// New constructs an endpoint descriptor for the given URL and connection
// properties.
//
// The URL decides the protocol: grpc yields a plaintext transport; grpcs runs
// the full credential, authority, and trust pipeline. Construction is
// all-or-nothing: any failure aborts with the originating error and there is
// no partially usable endpoint. The sole tolerated failure is CN-based
// authority resolution, which degrades to no override with a logged warning.
func New(url string, props Properties, opts ...Option) (*Endpoint, error) {
	s := &settings{
		log:     logger.Nop(),
		cache:   defaultCNCache,
		decoder: x509certs.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.config == nil {
		s.config = GetConfig()
	}

	s.log.Printf("creating endpoint for url %s", url)

	pu, err := parseEndpointURL(url)
	if err != nil {
		return nil, err
	}

	e := &Endpoint{
		url:      url,
		host:     pu.host,
		port:     pu.port,
		protocol: pu.protocol,
	}
	builder := newChannelBuilder(pu.host, pu.port)

	switch pu.protocol {
	case protocolPlain:
		builder.creds = insecure.NewCredentials()

	case protocolTLS:
		if err := e.configureTLS(builder, props, s); err != nil {
			return nil, err
		}
	}

	if err := applyChannelOptions(builder, props, s.log); err != nil {
		return nil, err
	}

	e.dialOpts = builder.build()
	return e, nil
}

// CreateEndpoint is an alias for New matching the construction entry point
// name callers of the original transport know.
func CreateEndpoint(url string, props Properties, opts ...Option) (*Endpoint, error) {
	return New(url, props, opts...)
}

// configureTLS runs the grpcs half of assembly: client credential resolution,
// CA assembly, negotiation validation, authority resolution, and trust
// context construction.
func (e *Endpoint) configureTLS(builder *channelBuilder, props Properties, s *settings) error {
	identity, err := resolveClientCredentials(props, s.decoder)
	if err != nil {
		return err
	}
	if identity != nil {
		e.clientCertPEM = identity.certPEM
		e.mutualTLS = true
	}

	caBytes, err := resolveCABytes(props)
	if err != nil {
		return err
	}
	s.log.Printf("endpoint %s CA trust bytes: %d", e.url, len(caBytes))

	sslProvider, negotiation, err := resolveNegotiation(props, s.config)
	if err != nil {
		return err
	}
	s.log.Printf("endpoint %s negotiation type: %q, SSL provider: %q", e.url, negotiation, sslProvider)

	if caBytes == nil {
		// Ambient trust: validate against whatever root store the process
		// carries. Valid for development, worth a warning everywhere else.
		s.log.Printf("endpoint %s is grpcs with no CA certificates", e.url)
		builder.creds = ambientTrustCredentials()
		if negotiation == NegotiationPlainText {
			builder.creds = insecure.NewCredentials()
		}
		return nil
	}

	e.authority = resolveAuthority(props, caBytes, s.cache, s.decoder, s.log)
	if e.authority != "" {
		s.log.Printf("endpoint %s using CN overrideAuthority: %q", e.url, e.authority)
	}

	creds, err := buildTrustContext(caBytes, identity, e.authority, s.decoder)
	if err != nil {
		return err
	}
	builder.creds = creds

	// plainText negotiation on a grpcs URL still validates all the supplied
	// material above, then dials without transport security.
	if negotiation == NegotiationPlainText {
		builder.creds = insecure.NewCredentials()
	}

	return nil
}

// URL returns the endpoint URL construction started from.
func (e *Endpoint) URL() string { return e.url }

// Host returns the endpoint host.
func (e *Endpoint) Host() string { return e.host }

// Port returns the endpoint port.
func (e *Endpoint) Port() int { return e.port }

// Protocol returns the URL scheme the endpoint was built from, either
// "grpc" or "grpcs".
func (e *Endpoint) Protocol() string { return e.protocol }

// Target returns the host:port dial target.
func (e *Endpoint) Target() string {
	return fmt.Sprintf("%s:%d", e.host, e.port)
}

// MutualTLS reports whether a client TLS identity was configured.
func (e *Endpoint) MutualTLS() bool { return e.mutualTLS }

// AuthorityOverride returns the authority name used for server certificate
// validation, or empty when none was resolved.
func (e *Endpoint) AuthorityOverride() string { return e.authority }

// ClientTLSCertificateDigest returns the SHA-256 digest over the DER encoding
// of the configured client certificate, or nil when no client certificate was
// configured. The digest is computed on first call and memoized for the life
// of the endpoint.
func (e *Endpoint) ClientTLSCertificateDigest() []byte {
	if e.clientCertPEM == nil {
		return nil
	}

	e.digestOnce.Do(func() {
		digest, err := certificateDigest(e.clientCertPEM)
		if err != nil {
			// The PEM already decoded during construction, so this only
			// fires on DER input passed through verbatim.
			return
		}
		e.digest = digest
	})

	return e.digest
}

// DialOptions returns a copy of the assembled dial options.
func (e *Endpoint) DialOptions() []grpc.DialOption {
	return append([]grpc.DialOption(nil), e.dialOpts...)
}

// Dial opens a client connection to the endpoint using the assembled dial
// options plus any extras. The returned connection connects lazily; callers
// own its lifecycle.
func (e *Endpoint) Dial(extra ...grpc.DialOption) (*grpc.ClientConn, error) {
	return grpc.NewClient(e.Target(), append(e.DialOptions(), extra...)...)
}
