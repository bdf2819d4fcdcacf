// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FitVault Contributors

package token

import (
	"crypto/rsa"
	"os"

	"github.com/golang-jwt/jwt/v5"
	"github.com/samber/oops"
)

// LoadRSAPrivateKey reads a PEM-encoded RSA private key from disk.
func LoadRSAPrivateKey(path string) (*rsa.PrivateKey, error) {
	pemBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, oops.Code("TOKEN_KEY_READ_FAILED").
			With("path", path).
			Wrap(err)
	}
	key, err := jwt.ParseRSAPrivateKeyFromPEM(pemBytes)
	if err != nil {
		return nil, oops.Code("TOKEN_KEY_PARSE_FAILED").
			With("path", path).
			Wrap(err)
	}
	return key, nil
}

// LoadRSAPublicKey reads a PEM-encoded RSA public key from disk.
func LoadRSAPublicKey(path string) (*rsa.PublicKey, error) {
	pemBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, oops.Code("TOKEN_KEY_READ_FAILED").
			With("path", path).
			Wrap(err)
	}
	key, err := jwt.ParseRSAPublicKeyFromPEM(pemBytes)
	if err != nil {
		return nil, oops.Code("TOKEN_KEY_PARSE_FAILED").
			With("path", path).
			Wrap(err)
	}
	return key, nil
}
