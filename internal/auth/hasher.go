// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FitVault Contributors

package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/samber/oops"
	"golang.org/x/crypto/argon2"
)

// Params are the argon2id cost parameters embedded in every hash.
type Params struct {
	Time       uint32 // iterations
	Memory     uint32 // KiB
	Threads    uint8  // parallelism
	SaltLength uint32 // salt length in bytes
	KeyLength  uint32 // output length in bytes
}

// DefaultParams are the OWASP-recommended argon2id parameters.
var DefaultParams = Params{
	Time:       1,
	Memory:     64 * 1024, // 64 MB
	Threads:    4,
	SaltLength: 16,
	KeyLength:  32,
}

// ErrEmptyPassword is returned when attempting to hash an empty password.
var ErrEmptyPassword = oops.Code("AUTH_EMPTY_PASSWORD").Errorf("password cannot be empty")

// PasswordHasher provides password hashing and verification.
type PasswordHasher interface {
	// Hash produces an argon2id hash of the password. Every call embeds a
	// fresh random salt, so two hashes of the same password differ.
	Hash(password string) (string, error)

	// Verify checks if the password matches the hash.
	// Returns (true, nil) on match, (false, nil) on mismatch, or an
	// AUTH_MALFORMED_HASH error when the hash cannot be parsed at all.
	Verify(password, hash string) (bool, error)

	// NeedsRehash returns true if the hash's embedded parameters are
	// weaker than the hasher's configured parameters.
	NeedsRehash(hash string) bool
}

// Argon2idHasher implements PasswordHasher using argon2id.
type Argon2idHasher struct {
	params Params
}

// NewArgon2idHasher creates an Argon2idHasher with DefaultParams.
func NewArgon2idHasher() *Argon2idHasher {
	return NewArgon2idHasherWithParams(DefaultParams)
}

// NewArgon2idHasherWithParams creates an Argon2idHasher with explicit cost
// parameters. Raising parameters on a running deployment is safe: old hashes
// keep verifying and NeedsRehash flags them for transparent upgrade.
func NewArgon2idHasherWithParams(p Params) *Argon2idHasher {
	return &Argon2idHasher{params: p}
}

// Hash produces an argon2id hash of the password.
func (h *Argon2idHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	salt := make([]byte, h.params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", oops.Code("AUTH_SALT_FAILED").Wrap(err)
	}

	key := argon2.IDKey([]byte(password), salt, h.params.Time, h.params.Memory, h.params.Threads, h.params.KeyLength)

	// PHC string format:
	// $argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>
	encoded := fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.params.Memory,
		h.params.Time,
		h.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	return encoded, nil
}

// Verify checks if the password matches the hash.
func (h *Argon2idHasher) Verify(password, encodedHash string) (bool, error) {
	_, memory, time, threads, salt, expected, err := parseHash(encodedHash)
	if err != nil {
		return false, err
	}

	// Validate key length to prevent integer overflow in uint32 conversion
	keyLen := len(expected)
	if keyLen <= 0 || keyLen > 1<<30 {
		return false, oops.Code("AUTH_MALFORMED_HASH").Errorf("invalid hash key length: %d", keyLen)
	}

	computed := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(keyLen))

	if subtle.ConstantTimeCompare(computed, expected) == 1 {
		return true, nil
	}
	return false, nil
}

// NeedsRehash returns true if the hash is not argon2id or any of its
// embedded cost parameters is below the hasher's configured value. A hash
// freshly produced by this hasher never needs a rehash.
func (h *Argon2idHasher) NeedsRehash(encodedHash string) bool {
	version, memory, time, threads, _, _, err := parseHash(encodedHash)
	if err != nil {
		return true
	}
	if version < argon2.Version {
		return true
	}
	return memory < h.params.Memory || time < h.params.Time || threads < h.params.Threads
}

// parseHash decodes a PHC-format argon2id hash string.
func parseHash(encodedHash string) (version int, memory, time uint32, threads uint8, salt, key []byte, err error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 {
		return 0, 0, 0, 0, nil, nil, oops.Code("AUTH_MALFORMED_HASH").Errorf("invalid hash format")
	}

	if parts[1] != "argon2id" {
		return 0, 0, 0, 0, nil, nil, oops.Code("AUTH_MALFORMED_HASH").Errorf("unsupported hash algorithm: %s", parts[1])
	}

	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return 0, 0, 0, 0, nil, nil, oops.Code("AUTH_MALFORMED_HASH").Wrap(err)
	}

	var rawThreads uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &rawThreads); err != nil {
		return 0, 0, 0, 0, nil, nil, oops.Code("AUTH_MALFORMED_HASH").Wrap(err)
	}

	// Validate threads fits in uint8 to prevent silent truncation
	if rawThreads == 0 || rawThreads > 255 {
		return 0, 0, 0, 0, nil, nil, oops.Code("AUTH_MALFORMED_HASH").Errorf("threads value %d out of range", rawThreads)
	}
	threads = uint8(rawThreads)

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return 0, 0, 0, 0, nil, nil, oops.Code("AUTH_MALFORMED_HASH").Wrap(err)
	}

	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return 0, 0, 0, 0, nil, nil, oops.Code("AUTH_MALFORMED_HASH").Wrap(err)
	}

	return version, memory, time, threads, salt, key, nil
}
