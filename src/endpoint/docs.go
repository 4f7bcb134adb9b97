// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package endpoint builds verified, optionally mutually-authenticated gRPC
// endpoint descriptors from a target URL and a set of connection properties.
//
// Construction resolves the transport protocol (grpc vs grpcs), assembles CA
// trust material from byte and file sources, decodes an optional client TLS
// identity, derives the authority name used for certificate validation
// (with a process-wide CN cache), computes a SHA-256 digest over the client
// certificate's DER encoding, and forwards named channel options to the
// underlying gRPC dial-option builder through an explicit capability registry.
//
// The package never performs handshake I/O: the result of construction is a
// descriptor carrying host, port, and assembled [grpc.DialOption] values, plus
// a Dial convenience that hands them to [grpc.NewClient].
package endpoint
