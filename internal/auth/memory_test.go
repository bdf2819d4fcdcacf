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

func TestMemoryStore_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	store := auth.NewMemoryStore()

	require.NoError(t, store.Create(ctx, "alice", "hash-a"))

	cred, err := store.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", cred.Username)
	assert.Equal(t, "hash-a", cred.PasswordHash)
	assert.NotZero(t, cred.ID)
	assert.False(t, cred.CreatedAt.IsZero())
}

func TestMemoryStore_Get_NotFound(t *testing.T) {
	store := auth.NewMemoryStore()

	_, err := store.Get(context.Background(), "nobody")
	assert.ErrorIs(t, err, auth.ErrNotFound)
}

func TestMemoryStore_Create_Duplicate(t *testing.T) {
	ctx := context.Background()

	t.Run("strict by default", func(t *testing.T) {
		store := auth.NewMemoryStore()
		require.NoError(t, store.Create(ctx, "alice", "hash-a"))
		assert.ErrorIs(t, store.Create(ctx, "alice", "hash-b"), auth.ErrAlreadyExists)

		cred, err := store.Get(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "hash-a", cred.PasswordHash)
	})

	t.Run("lenient ignores the duplicate", func(t *testing.T) {
		store := auth.NewMemoryStore(auth.WithLenientCreate())
		require.NoError(t, store.Create(ctx, "alice", "hash-a"))
		require.NoError(t, store.Create(ctx, "alice", "hash-b"))

		// The duplicate create reports success but must not replace the
		// stored credential.
		cred, err := store.Get(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "hash-a", cred.PasswordHash)
	})
}

func TestMemoryStore_Exists(t *testing.T) {
	ctx := context.Background()
	store := auth.NewMemoryStore()
	require.NoError(t, store.Create(ctx, "alice", "hash-a"))

	exists, err := store.Exists(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = store.Exists(ctx, "bob")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemoryStore_UpdateHash(t *testing.T) {
	ctx := context.Background()
	store := auth.NewMemoryStore()
	require.NoError(t, store.Create(ctx, "alice", "hash-a"))

	require.NoError(t, store.UpdateHash(ctx, "alice", "hash-b"))
	cred, err := store.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "hash-b", cred.PasswordHash)

	assert.ErrorIs(t, store.UpdateHash(ctx, "bob", "hash-x"), auth.ErrNotFound)
}

func TestMemoryStore_Delete_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := auth.NewMemoryStore()
	require.NoError(t, store.Create(ctx, "alice", "hash-a"))

	require.NoError(t, store.Delete(ctx, "alice"))
	require.NoError(t, store.Delete(ctx, "alice"))

	_, err := store.Get(ctx, "alice")
	assert.ErrorIs(t, err, auth.ErrNotFound)
}

func TestMemoryStore_GetAll_ReturnsClones(t *testing.T) {
	ctx := context.Background()
	store := auth.NewMemoryStore()
	require.NoError(t, store.Create(ctx, "alice", "hash-a"))
	require.NoError(t, store.Create(ctx, "bob", "hash-b"))

	creds, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, creds, 2)

	// Mutating a returned credential must not touch the store.
	creds[0].PasswordHash = "tampered"
	fresh, err := store.Get(ctx, creds[0].Username)
	require.NoError(t, err)
	assert.NotEqual(t, "tampered", fresh.PasswordHash)
}
