// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FitVault Contributors

package auth

import (
	"context"
	"regexp"
	"time"

	"github.com/samber/oops"
)

// Username validation constraints.
const (
	MinUsernameLength = 3
	MaxUsernameLength = 30
)

// Password length bounds enforced at the boundary.
const (
	MinPasswordLength = 4
	MaxPasswordLength = 64
)

// usernameRegex matches usernames containing only letters, numbers, and
// underscores. Length is checked separately for better error messages.
var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// Credential binds a username to its password hash.
type Credential struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// ValidateUsername validates a username against rules.
// Username requirements:
//   - Length: MinUsernameLength to MaxUsernameLength characters
//   - Can contain only letters (a-z, A-Z), numbers (0-9), and underscores (_)
func ValidateUsername(username string) error {
	if username == "" {
		return oops.Code("AUTH_INVALID_USERNAME").Errorf("username cannot be empty")
	}
	if len(username) < MinUsernameLength {
		return oops.Code("AUTH_INVALID_USERNAME").
			With("min", MinUsernameLength).
			Errorf("username must be at least %d characters", MinUsernameLength)
	}
	if len(username) > MaxUsernameLength {
		return oops.Code("AUTH_INVALID_USERNAME").
			With("max", MaxUsernameLength).
			Errorf("username must be at most %d characters", MaxUsernameLength)
	}
	if !usernameRegex.MatchString(username) {
		return oops.Code("AUTH_INVALID_USERNAME").
			Errorf("username must contain only letters, numbers, and underscores")
	}
	return nil
}

// ValidatePassword validates the plaintext password length bounds.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return oops.Code("AUTH_INVALID_PASSWORD").
			With("min", MinPasswordLength).
			Errorf("password must be at least %d characters", MinPasswordLength)
	}
	if len(password) > MaxPasswordLength {
		return oops.Code("AUTH_INVALID_PASSWORD").
			With("max", MaxPasswordLength).
			Errorf("password must be at most %d characters", MaxPasswordLength)
	}
	return nil
}

// CredentialStore manages credential persistence.
type CredentialStore interface {
	// Get retrieves a credential by username.
	// Returns ErrNotFound if no such username exists.
	Get(ctx context.Context, username string) (*Credential, error)

	// GetAll retrieves every stored credential.
	GetAll(ctx context.Context) ([]*Credential, error)

	// Exists reports whether a username is taken.
	Exists(ctx context.Context, username string) (bool, error)

	// Create stores a new credential.
	// Returns ErrAlreadyExists if the username is taken.
	Create(ctx context.Context, username, passwordHash string) error

	// UpdateHash replaces the password hash for an existing username.
	// Returns ErrNotFound if no such username exists.
	UpdateHash(ctx context.Context, username, newHash string) error

	// Delete removes a credential. Deleting an absent username is not an
	// error.
	Delete(ctx context.Context, username string) error
}
