// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FitVault Contributors

// Package token issues and verifies the signed bearer tokens other services
// trust without calling back to authd.
//
// Two signing modes exist. Asymmetric RS256 is the production default: the
// issuer process exclusively holds the private key, and any verifier checks
// tokens with the public key alone (see VerifyWithKey). Symmetric HS256
// shares one secret between issuer and verifiers; every holder of the secret
// can also mint tokens, so this mode is the weaker fallback for single-process
// deployments, not for production fleets.
//
// A token has no server-side state: each Verify call independently classifies
// it at call time. The same token can verify on one call and be rejected as
// expired on a later one.
package token

import (
	"crypto/rsa"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/samber/oops"
)

// DefaultLifetime is the token validity window used when the issuer is not
// configured otherwise.
const DefaultLifetime = 30 * time.Minute

// Claims is the self-contained claim set embedded in every token.
// Subject carries the username.
type Claims struct {
	jwt.RegisteredClaims
}

// Username returns the token subject.
func (c *Claims) Username() string {
	return c.Subject
}

// Issuer signs bearer tokens and verifies its own.
type Issuer struct {
	method    jwt.SigningMethod
	signKey   any
	verifyKey any
	lifetime  time.Duration
}

// NewHS256Issuer creates a symmetric issuer. The secret is used for both
// signing and verification. A non-positive lifetime selects DefaultLifetime.
func NewHS256Issuer(secret []byte, lifetime time.Duration) (*Issuer, error) {
	if len(secret) == 0 {
		return nil, oops.Code("TOKEN_INVALID_KEY").Errorf("signing secret cannot be empty")
	}
	return newIssuer(jwt.SigningMethodHS256, secret, secret, lifetime), nil
}

// NewRS256Issuer creates an asymmetric issuer holding the private key.
// Verifiers elsewhere only need the public half; see VerifyWithKey.
func NewRS256Issuer(key *rsa.PrivateKey, lifetime time.Duration) (*Issuer, error) {
	if key == nil {
		return nil, oops.Code("TOKEN_INVALID_KEY").Errorf("private key is required")
	}
	return newIssuer(jwt.SigningMethodRS256, key, &key.PublicKey, lifetime), nil
}

func newIssuer(method jwt.SigningMethod, signKey, verifyKey any, lifetime time.Duration) *Issuer {
	if lifetime <= 0 {
		lifetime = DefaultLifetime
	}
	return &Issuer{method: method, signKey: signKey, verifyKey: verifyKey, lifetime: lifetime}
}

// Issue signs a token for the subject with the issuer's configured lifetime.
func (i *Issuer) Issue(subject string) (string, error) {
	return i.IssueWithLifetime(subject, i.lifetime)
}

// IssueWithLifetime signs a token for the subject expiring after the given
// duration.
func (i *Issuer) IssueWithLifetime(subject string, lifetime time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
		},
	}

	signed, err := jwt.NewWithClaims(i.method, claims).SignedString(i.signKey)
	if err != nil {
		return "", oops.Code("TOKEN_SIGN_FAILED").
			With("subject", subject).
			Wrap(err)
	}
	return signed, nil
}

// Verify classifies the token at call time. It returns the claims only for a
// token whose signature checks out under the issuer's algorithm and whose
// expiry is still in the future. Expired, tampered, malformed, and
// wrong-algorithm tokens all report (nil, false); callers never learn which,
// so the boundary cannot leak the sub-reason.
func (i *Issuer) Verify(tokenString string) (*Claims, bool) {
	return verify(tokenString, i.method.Alg(), i.verifyKey)
}

// VerifyWithKey verifies an RS256 token against an explicit public key. It is
// stateless so any service instance can verify tokens without holding signing
// capability.
func VerifyWithKey(tokenString string, key *rsa.PublicKey) (*Claims, bool) {
	if key == nil {
		return nil, false
	}
	return verify(tokenString, jwt.SigningMethodRS256.Alg(), key)
}

func verify(tokenString, alg string, key any) (*Claims, bool) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return key, nil },
		jwt.WithValidMethods([]string{alg}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return nil, false
	}
	return claims, true
}
