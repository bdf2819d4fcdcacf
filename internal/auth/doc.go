// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FitVault Contributors

// Package auth provides the credential core of authd.
//
// # Domain Types
//
// A Credential binds a username to an opaque, versioned password hash.
// Usernames are case-sensitive and immutable once created; uniqueness is
// enforced by the CredentialStore, not by callers.
//
// # Components
//
//   - PasswordHasher - salted, versioned argon2id hashing with a
//     needs-rehash check for cost upgrades
//   - CredentialStore - persistence contract with two implementations:
//     MemoryStore (tests, local runs) and postgres.CredentialRepository
//   - Manager - orchestrates store and hasher: existence checks, account
//     creation, password verification with transparent rehash, deletion
//
// Authentication outcomes are results, not errors: Manager.VerifyPassword
// reports an unknown username and a wrong password identically as false so
// that callers cannot enumerate accounts.
package auth
