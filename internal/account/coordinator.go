// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FitVault Contributors

// Package account coordinates the account lifecycle across the local
// credential store and the remote profile service. The two stores fail
// independently and share no transaction, so creation and deletion are small
// sagas with explicit compensation rules rather than atomic operations.
package account

import (
	"context"
	"errors"
	"log/slog"

	"github.com/samber/oops"

	"github.com/fitvault/authd/internal/auth"
	"github.com/fitvault/authd/internal/observability"
	"github.com/fitvault/authd/internal/profile"
)

// Coordinator drives signup and account deletion across both stores.
//
// Remote calls for a given username are never issued concurrently by the
// coordinator: the request-handling model feeding it serializes account
// actions per identity. Duplicate-username races between concurrent signups
// are the credential store's uniqueness constraint to settle, not the
// coordinator's.
type Coordinator struct {
	manager  *auth.Manager
	profiles profile.Client
	logger   *slog.Logger
}

// NewCoordinator creates a Coordinator.
func NewCoordinator(manager *auth.Manager, profiles profile.Client, logger *slog.Logger) (*Coordinator, error) {
	if manager == nil {
		return nil, oops.Code("ACCOUNT_INVALID_DEPS").Errorf("auth manager is required")
	}
	if profiles == nil {
		return nil, oops.Code("ACCOUNT_INVALID_DEPS").Errorf("profile client is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{manager: manager, profiles: profiles, logger: logger}, nil
}

// SignUp registers a new account: local durable write first, then the remote
// profile. If the remote call fails or times out, the local credential is
// deleted again so the username is free for a retry, and
// ErrUpstreamUnavailable is returned.
//
// The compensation is best effort. If the compensating delete itself fails,
// a local credential is left behind with no remote profile; that event is
// logged distinguishably and counted so a reconciliation sweep can find it.
func (c *Coordinator) SignUp(ctx context.Context, username, password string) error {
	// Fast-path pre-check for a friendlier conflict answer. The store's
	// uniqueness constraint below remains the authority.
	taken, err := c.manager.UsernameExists(ctx, username)
	if err != nil {
		return err
	}
	if taken {
		return ErrConflict
	}

	if err := c.manager.CreateAccount(ctx, username, password); err != nil {
		if errors.Is(err, auth.ErrAlreadyExists) {
			// Lost a concurrent signup race after the pre-check.
			return ErrConflict
		}
		return err
	}

	if err := c.profiles.CreateProfile(ctx, username); err != nil {
		observability.RecordProfileRPCFailure("create")
		c.logger.Warn("remote profile creation failed, compensating",
			"username", username,
			"error", err)

		if compErr := c.manager.DeleteAccount(ctx, username); compErr != nil {
			// Orphaned local credential with no remote profile. The
			// reconciliation sweep picks these up.
			observability.RecordCompensationFailure()
			c.logger.Error("compensating delete failed, local credential orphaned",
				"username", username,
				"error", compErr)
		}
		return ErrUpstreamUnavailable
	}

	return nil
}

// DeleteAccount destroys an account. The caller's bearer token was already
// verified at the boundary; the password is re-confirmed here because a
// token alone does not prove the password has not been compromised since
// issuance.
//
// The local delete runs first: the user's intent is irreversible once
// confirmed. A remote delete failure is swallowed - the account is already
// unusable locally, so the operation is reported successful and the orphan
// remote profile is only observed through logs and metrics. No compensation
// is attempted: re-creating the credential to "undo" an intentional deletion
// would violate user intent.
func (c *Coordinator) DeleteAccount(ctx context.Context, username, password string) error {
	exists, err := c.manager.UsernameExists(ctx, username)
	if err != nil {
		return err
	}
	if !exists {
		// Valid token for an account deleted in the meantime.
		return ErrUnauthorized
	}

	ok, err := c.manager.VerifyPassword(ctx, username, password)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUnauthorized
	}

	if err := c.manager.DeleteAccount(ctx, username); err != nil {
		return err
	}

	if err := c.profiles.DeleteProfile(ctx, username); err != nil {
		observability.RecordProfileRPCFailure("delete")
		c.logger.Warn("remote profile deletion failed, orphan profile remains",
			"username", username,
			"error", err)
	}

	return nil
}
