// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FitVault Contributors

package account_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/fitvault/authd/internal/account"
	"github.com/fitvault/authd/internal/auth"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeProfileClient records calls and fails on demand.
type fakeProfileClient struct {
	createErr error
	deleteErr error

	createCalls []string
	deleteCalls []string
}

func (f *fakeProfileClient) CreateProfile(_ context.Context, userID string) error {
	f.createCalls = append(f.createCalls, userID)
	return f.createErr
}

func (f *fakeProfileClient) DeleteProfile(_ context.Context, userID string) error {
	f.deleteCalls = append(f.deleteCalls, userID)
	return f.deleteErr
}

// failingDeleteStore wraps a store so compensating deletes fail.
type failingDeleteStore struct {
	auth.CredentialStore
}

func (s *failingDeleteStore) Delete(context.Context, string) error {
	return errors.New("store down")
}

var testParams = auth.Params{
	Time:       1,
	Memory:     8 * 1024,
	Threads:    1,
	SaltLength: 16,
	KeyLength:  32,
}

func newCoordinator(t *testing.T, store auth.CredentialStore, profiles *fakeProfileClient) *account.Coordinator {
	t.Helper()
	manager, err := auth.NewManager(store, auth.NewArgon2idHasherWithParams(testParams), nil)
	require.NoError(t, err)
	coordinator, err := account.NewCoordinator(manager, profiles, nil)
	require.NoError(t, err)
	return coordinator
}

func TestNewCoordinator_NilDependencies(t *testing.T) {
	manager, err := auth.NewManager(auth.NewMemoryStore(), auth.NewArgon2idHasherWithParams(testParams), nil)
	require.NoError(t, err)

	_, err = account.NewCoordinator(nil, &fakeProfileClient{}, nil)
	assert.Error(t, err)

	_, err = account.NewCoordinator(manager, nil, nil)
	assert.Error(t, err)
}

func TestCoordinator_SignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("creates credential and profile", func(t *testing.T) {
		store := auth.NewMemoryStore()
		profiles := &fakeProfileClient{}
		coordinator := newCoordinator(t, store, profiles)

		require.NoError(t, coordinator.SignUp(ctx, "alice", "password1234"))

		exists, err := store.Exists(ctx, "alice")
		require.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, []string{"alice"}, profiles.createCalls)
	})

	t.Run("taken username conflicts without a remote call", func(t *testing.T) {
		store := auth.NewMemoryStore()
		profiles := &fakeProfileClient{}
		coordinator := newCoordinator(t, store, profiles)

		require.NoError(t, coordinator.SignUp(ctx, "alice", "password1234"))
		err := coordinator.SignUp(ctx, "alice", "other-password")
		assert.ErrorIs(t, err, account.ErrConflict)
		assert.Len(t, profiles.createCalls, 1)
	})

	t.Run("remote failure compensates and frees the username", func(t *testing.T) {
		store := auth.NewMemoryStore()
		profiles := &fakeProfileClient{createErr: errors.New("unavailable")}
		coordinator := newCoordinator(t, store, profiles)

		err := coordinator.SignUp(ctx, "alice", "password1234")
		assert.ErrorIs(t, err, account.ErrUpstreamUnavailable)

		exists, err := store.Exists(ctx, "alice")
		require.NoError(t, err)
		assert.False(t, exists, "compensating delete must free the username")

		// Retry after the upstream recovers succeeds with the same username.
		profiles.createErr = nil
		require.NoError(t, coordinator.SignUp(ctx, "alice", "password1234"))
	})

	t.Run("failed compensation still reports upstream unavailable", func(t *testing.T) {
		inner := auth.NewMemoryStore()
		store := &failingDeleteStore{CredentialStore: inner}
		profiles := &fakeProfileClient{createErr: errors.New("unavailable")}
		coordinator := newCoordinator(t, store, profiles)

		err := coordinator.SignUp(ctx, "alice", "password1234")
		assert.ErrorIs(t, err, account.ErrUpstreamUnavailable)

		// The orphaned credential stays behind for the reconcile sweep.
		exists, err := inner.Exists(ctx, "alice")
		require.NoError(t, err)
		assert.True(t, exists)
	})
}

func TestCoordinator_DeleteAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("removes both sides", func(t *testing.T) {
		store := auth.NewMemoryStore()
		profiles := &fakeProfileClient{}
		coordinator := newCoordinator(t, store, profiles)
		require.NoError(t, coordinator.SignUp(ctx, "alice", "password1234"))

		require.NoError(t, coordinator.DeleteAccount(ctx, "alice", "password1234"))

		exists, err := store.Exists(ctx, "alice")
		require.NoError(t, err)
		assert.False(t, exists)
		assert.Equal(t, []string{"alice"}, profiles.deleteCalls)
	})

	t.Run("wrong password leaves the account intact", func(t *testing.T) {
		store := auth.NewMemoryStore()
		profiles := &fakeProfileClient{}
		coordinator := newCoordinator(t, store, profiles)
		require.NoError(t, coordinator.SignUp(ctx, "alice", "password1234"))

		err := coordinator.DeleteAccount(ctx, "alice", "wrong-password")
		assert.ErrorIs(t, err, account.ErrUnauthorized)

		exists, err := store.Exists(ctx, "alice")
		require.NoError(t, err)
		assert.True(t, exists)
		assert.Empty(t, profiles.deleteCalls)
	})

	t.Run("already deleted account is unauthorized", func(t *testing.T) {
		coordinator := newCoordinator(t, auth.NewMemoryStore(), &fakeProfileClient{})
		err := coordinator.DeleteAccount(ctx, "ghost", "password1234")
		assert.ErrorIs(t, err, account.ErrUnauthorized)
	})

	t.Run("remote failure is swallowed", func(t *testing.T) {
		store := auth.NewMemoryStore()
		profiles := &fakeProfileClient{deleteErr: errors.New("unavailable")}
		coordinator := newCoordinator(t, store, profiles)
		require.NoError(t, coordinator.SignUp(ctx, "alice", "password1234"))

		require.NoError(t, coordinator.DeleteAccount(ctx, "alice", "password1234"))

		exists, err := store.Exists(ctx, "alice")
		require.NoError(t, err)
		assert.False(t, exists, "local deletion wins even when the remote call fails")
	})
}

func TestCoordinator_Reconcile(t *testing.T) {
	ctx := context.Background()
	store := auth.NewMemoryStore()
	profiles := &fakeProfileClient{}
	coordinator := newCoordinator(t, store, profiles)

	require.NoError(t, coordinator.SignUp(ctx, "alice", "password1234"))
	require.NoError(t, coordinator.SignUp(ctx, "bob", "password1234"))
	profiles.createCalls = nil

	report, err := coordinator.Reconcile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Checked)
	assert.Empty(t, report.Failed)
	assert.ElementsMatch(t, []string{"alice", "bob"}, profiles.createCalls)

	t.Run("failures are listed by username", func(t *testing.T) {
		profiles.createErr = errors.New("unavailable")
		report, err := coordinator.Reconcile(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, report.Checked)
		assert.ElementsMatch(t, []string{"alice", "bob"}, report.Failed)
	})
}
