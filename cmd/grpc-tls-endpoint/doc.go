// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// grpc-tls-endpoint is a command-line tool for building and inspecting
// verified gRPC endpoint descriptors from grpc:// and grpcs:// URLs.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/grpc-tls-endpoint/cmd/grpc-tls-endpoint@latest
//
// # Usage
//
//	grpc-tls-endpoint ENDPOINT_URL [FLAGS]
//
// # Flags
//
//	-p, --properties  Connection properties file (JSON or YAML)
//	    --json        Emit the descriptor as JSON
//	    --table       Emit the descriptor as a markdown table
//	    --dial        Dial the endpoint and wait for the channel to become ready
//	    --timeout     Dial readiness timeout used with --dial (default 10s)
//
// # Examples
//
// Describe a plaintext endpoint:
//
//	grpc-tls-endpoint grpc://peer0.example.com:7051
//
// Describe a TLS endpoint with a pinned CA and client identity:
//
//	grpc-tls-endpoint -p props.json grpcs://peer0.example.com:7051
//
// where props.json carries the trust material:
//
//	{
//	  "pemFile": "ca.pem",
//	  "clientKeyFile": "client.key",
//	  "clientCertFile": "client.crt"
//	}
//
// Verify connectivity:
//
//	grpc-tls-endpoint -p props.json --dial grpcs://peer0.example.com:7051
package main
