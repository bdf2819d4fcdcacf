// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FitVault Contributors

// Package profile provides the RPC client to the remote workout/profile
// service. The core only triggers profile creation and deletion and observes
// success or failure; profile data itself is owned entirely by the remote
// side.
package profile

import "context"

// Client is the contract the account coordinator needs from the remote
// profile service. Both operations must be safe to invoke with a
// previously-used id: the remote side treats them as idempotent.
type Client interface {
	// CreateProfile provisions a remote profile for the user.
	CreateProfile(ctx context.Context, userID string) error

	// DeleteProfile removes the remote profile for the user.
	DeleteProfile(ctx context.Context, userID string) error
}
