// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FitVault Contributors

package auth

import "errors"

// ErrNotFound is returned when a requested credential does not exist.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned when creating a credential whose username
// is already taken.
var ErrAlreadyExists = errors.New("already exists")
