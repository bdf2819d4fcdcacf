// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FitVault Contributors

package auth

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-memory CredentialStore for tests and local runs.
// It enforces username uniqueness the same way the relational store does:
// Create on a taken username returns ErrAlreadyExists.
type MemoryStore struct {
	mu      sync.RWMutex
	byName  map[string]*Credential
	nextID  int64
	lenient bool
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithLenientCreate makes Create silently no-op on a duplicate username
// instead of returning ErrAlreadyExists. This mirrors a historical quirk of
// the original mock repository and exists only so tests can exercise callers
// that must not depend on the store's conflict signal. Production wiring
// never uses it.
func WithLenientCreate() MemoryStoreOption {
	return func(s *MemoryStore) { s.lenient = true }
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	s := &MemoryStore{byName: make(map[string]*Credential)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get retrieves a credential by username.
func (s *MemoryStore) Get(_ context.Context, username string) (*Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cred, ok := s.byName[username]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *cred
	return &clone, nil
}

// GetAll retrieves every stored credential.
func (s *MemoryStore) GetAll(_ context.Context) ([]*Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	creds := make([]*Credential, 0, len(s.byName))
	for _, cred := range s.byName {
		clone := *cred
		creds = append(creds, &clone)
	}
	return creds, nil
}

// Exists reports whether a username is taken.
func (s *MemoryStore) Exists(_ context.Context, username string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.byName[username]
	return ok, nil
}

// Create stores a new credential.
func (s *MemoryStore) Create(_ context.Context, username, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byName[username]; ok {
		if s.lenient {
			return nil
		}
		return ErrAlreadyExists
	}
	s.nextID++
	s.byName[username] = &Credential{
		ID:           s.nextID,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	return nil
}

// UpdateHash replaces the password hash for an existing username.
func (s *MemoryStore) UpdateHash(_ context.Context, username, newHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cred, ok := s.byName[username]
	if !ok {
		return ErrNotFound
	}
	cred.PasswordHash = newHash
	return nil
}

// Delete removes a credential. Absent usernames are not an error.
func (s *MemoryStore) Delete(_ context.Context, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byName, username)
	return nil
}

// Compile-time interface check.
var _ CredentialStore = (*MemoryStore)(nil)
