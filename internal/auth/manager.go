// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FitVault Contributors

package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/samber/oops"
)

// dummyPasswordHash is used when a user doesn't exist to prevent timing attacks.
// We still run password verification to make response time consistent.
// This is NOT a real credential - it's a fake hash that will never match any password.
//
//nolint:gosec // G101: This is an intentionally fake hash for timing attack prevention, not a credential.
const dummyPasswordHash = "$argon2id$v=19$m=65536,t=1,p=4$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

// Manager orchestrates the credential store and the password hasher.
type Manager struct {
	store  CredentialStore
	hasher PasswordHasher
	logger *slog.Logger
}

// NewManager creates a Manager.
func NewManager(store CredentialStore, hasher PasswordHasher, logger *slog.Logger) (*Manager, error) {
	if store == nil {
		return nil, oops.Code("AUTH_INVALID_DEPS").Errorf("credential store is required")
	}
	if hasher == nil {
		return nil, oops.Code("AUTH_INVALID_DEPS").Errorf("password hasher is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{store: store, hasher: hasher, logger: logger}, nil
}

// UsernameExists reports whether the username is taken.
func (m *Manager) UsernameExists(ctx context.Context, username string) (bool, error) {
	exists, err := m.store.Exists(ctx, username)
	if err != nil {
		return false, oops.Code("AUTH_STORE_FAILED").
			With("operation", "check username").
			Wrap(err)
	}
	return exists, nil
}

// CreateAccount hashes the password and persists a new credential.
// Returns ErrAlreadyExists when the username is taken. It does not touch the
// remote profile service; that orchestration belongs to account.Coordinator.
func (m *Manager) CreateAccount(ctx context.Context, username, password string) error {
	hash, err := m.hasher.Hash(password)
	if err != nil {
		return oops.Code("AUTH_HASH_FAILED").
			With("operation", "hash password").
			Wrap(err)
	}

	if err := m.store.Create(ctx, username, hash); err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			return err
		}
		return oops.Code("AUTH_STORE_FAILED").
			With("operation", "create credential").
			With("username", username).
			Wrap(err)
	}
	return nil
}

// VerifyPassword checks the password for a username and reports the outcome
// as a result, never as an error: an unknown username and a wrong password
// are both (false, nil). Uses constant-time operations to prevent
// timing-based username enumeration.
//
// When the password matches but the stored hash was produced with weaker
// parameters, the hash is recomputed and persisted transparently. A failure
// of that opportunistic rehash never fails the authentication: the password
// was already proven correct.
func (m *Manager) VerifyPassword(ctx context.Context, username, password string) (bool, error) {
	cred, lookupErr := m.store.Get(ctx, username)

	// Determine which hash to verify against (real or dummy for timing
	// attack prevention)
	targetHash := dummyPasswordHash
	exists := false
	if lookupErr != nil {
		if !errors.Is(lookupErr, ErrNotFound) {
			return false, oops.Code("AUTH_STORE_FAILED").
				With("operation", "get credential").
				Wrap(lookupErr)
		}
	} else {
		targetHash = cred.PasswordHash
		exists = true
	}

	valid, verifyErr := m.hasher.Verify(password, targetHash)
	if verifyErr != nil {
		// A stored hash we cannot parse is an internal signal, not a
		// caller-visible condition: the login simply fails.
		if exists {
			m.logger.Error("stored password hash is malformed",
				"username", username,
				"error", verifyErr)
		}
		return false, nil
	}

	if !exists || !valid {
		return false, nil
	}

	if m.hasher.NeedsRehash(cred.PasswordHash) {
		m.rehash(ctx, username, password)
	}

	return true, nil
}

// rehash recomputes and persists the hash under current parameters.
// Best effort: the caller's authentication already succeeded.
func (m *Manager) rehash(ctx context.Context, username, password string) {
	newHash, err := m.hasher.Hash(password)
	if err != nil {
		m.logger.Warn("password rehash failed",
			"username", username,
			"error", err)
		return
	}
	if err := m.store.UpdateHash(ctx, username, newHash); err != nil {
		m.logger.Warn("password rehash could not be persisted",
			"username", username,
			"error", err)
	}
}

// ListUsernames returns every registered username, for reconciliation
// sweeps.
func (m *Manager) ListUsernames(ctx context.Context) ([]string, error) {
	creds, err := m.store.GetAll(ctx)
	if err != nil {
		return nil, oops.Code("AUTH_STORE_FAILED").
			With("operation", "list credentials").
			Wrap(err)
	}
	usernames := make([]string, 0, len(creds))
	for _, cred := range creds {
		usernames = append(usernames, cred.Username)
	}
	return usernames, nil
}

// DeleteAccount removes the credential for a username. Idempotent: deleting
// an absent account succeeds.
func (m *Manager) DeleteAccount(ctx context.Context, username string) error {
	if err := m.store.Delete(ctx, username); err != nil {
		return oops.Code("AUTH_STORE_FAILED").
			With("operation", "delete credential").
			With("username", username).
			Wrap(err)
	}
	return nil
}
