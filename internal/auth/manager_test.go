// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FitVault Contributors

package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitvault/authd/internal/auth"
)

func newTestManager(t *testing.T, store auth.CredentialStore) *auth.Manager {
	t.Helper()
	manager, err := auth.NewManager(store, auth.NewArgon2idHasherWithParams(fastParams), nil)
	require.NoError(t, err)
	return manager
}

func TestNewManager_NilDependencies(t *testing.T) {
	hasher := auth.NewArgon2idHasherWithParams(fastParams)

	_, err := auth.NewManager(nil, hasher, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "credential store is required")

	_, err = auth.NewManager(auth.NewMemoryStore(), nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password hasher is required")
}

func TestManager_CreateAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("creates verifiable credential", func(t *testing.T) {
		manager := newTestManager(t, auth.NewMemoryStore())
		require.NoError(t, manager.CreateAccount(ctx, "alice", "password1234"))

		ok, err := manager.VerifyPassword(ctx, "alice", "password1234")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("duplicate username", func(t *testing.T) {
		manager := newTestManager(t, auth.NewMemoryStore())
		require.NoError(t, manager.CreateAccount(ctx, "alice", "password1234"))
		assert.ErrorIs(t, manager.CreateAccount(ctx, "alice", "other-password"), auth.ErrAlreadyExists)
	})
}

func TestManager_VerifyPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown user is a result, not an error", func(t *testing.T) {
		manager := newTestManager(t, auth.NewMemoryStore())
		ok, err := manager.VerifyPassword(ctx, "nobody", "password1234")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("wrong password", func(t *testing.T) {
		manager := newTestManager(t, auth.NewMemoryStore())
		require.NoError(t, manager.CreateAccount(ctx, "alice", "password1234"))

		ok, err := manager.VerifyPassword(ctx, "alice", "wrong-password")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("malformed stored hash fails closed", func(t *testing.T) {
		store := auth.NewMemoryStore()
		require.NoError(t, store.Create(ctx, "alice", "not-a-valid-hash"))
		manager := newTestManager(t, store)

		ok, err := manager.VerifyPassword(ctx, "alice", "password1234")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestManager_VerifyPassword_TransparentRehash(t *testing.T) {
	ctx := context.Background()
	store := auth.NewMemoryStore()

	weakHasher := auth.NewArgon2idHasherWithParams(auth.Params{
		Time:       1,
		Memory:     4 * 1024,
		Threads:    1,
		SaltLength: 16,
		KeyLength:  32,
	})
	weakManager, err := auth.NewManager(store, weakHasher, nil)
	require.NoError(t, err)
	require.NoError(t, weakManager.CreateAccount(ctx, "alice", "password1234"))

	before, err := store.Get(ctx, "alice")
	require.NoError(t, err)

	// Same store, current parameters: a successful login upgrades the hash.
	currentHasher := auth.NewArgon2idHasherWithParams(fastParams)
	currentManager, err := auth.NewManager(store, currentHasher, nil)
	require.NoError(t, err)

	ok, err := currentManager.VerifyPassword(ctx, "alice", "password1234")
	require.NoError(t, err)
	require.True(t, ok)

	after, err := store.Get(ctx, "alice")
	require.NoError(t, err)
	assert.NotEqual(t, before.PasswordHash, after.PasswordHash)
	assert.False(t, currentHasher.NeedsRehash(after.PasswordHash))

	// The upgraded hash still verifies.
	ok, err = currentManager.VerifyPassword(ctx, "alice", "password1234")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestManager_DeleteAccount_Idempotent(t *testing.T) {
	ctx := context.Background()
	manager := newTestManager(t, auth.NewMemoryStore())
	require.NoError(t, manager.CreateAccount(ctx, "alice", "password1234"))

	require.NoError(t, manager.DeleteAccount(ctx, "alice"))
	require.NoError(t, manager.DeleteAccount(ctx, "alice"))

	exists, err := manager.UsernameExists(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestManager_ListUsernames(t *testing.T) {
	ctx := context.Background()
	manager := newTestManager(t, auth.NewMemoryStore())
	require.NoError(t, manager.CreateAccount(ctx, "alice", "password1234"))
	require.NoError(t, manager.CreateAccount(ctx, "bob", "password1234"))

	usernames, err := manager.ListUsernames(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alice", "bob"}, usernames)
}
