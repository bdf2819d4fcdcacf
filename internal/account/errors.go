// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FitVault Contributors

package account

import "errors"

// ErrConflict is returned when signing up a username that is already taken.
var ErrConflict = errors.New("username already exists")

// ErrUnauthorized is returned when the caller's credentials do not prove
// ownership of the account. Unknown username, wrong password, and
// already-deleted account are deliberately indistinguishable.
var ErrUnauthorized = errors.New("unauthorized")

// ErrUpstreamUnavailable is returned when the remote profile service could
// not be reached during signup, after the compensating local delete was
// attempted.
var ErrUpstreamUnavailable = errors.New("profile service unavailable")
