// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509certs provides specialized encoding and decoding operations for [X.509] certificates
// and TLS private keys. It supports multiple formats including [PEM], DER, and [PKCS7],
// and decodes private keys in PKCS#8, SEC1 EC, and PKCS#1 RSA encodings. This package is
// the crypto-primitives collaborator of the endpoint builder: it turns raw certificate
// and key bytes into structured objects and never touches the network.
//
// [X.509]: https://grokipedia.com/page/X.509
// [PKCS7]: https://grokipedia.com/page/PKCS_7
// [PEM]: https://grokipedia.com/page/PEM#privacy-enhanced-mail
package x509certs
