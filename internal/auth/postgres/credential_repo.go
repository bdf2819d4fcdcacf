// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FitVault Contributors

// Package postgres implements auth.CredentialStore on PostgreSQL.
package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/samber/oops"

	"github.com/fitvault/authd/internal/auth"
)

// pool is the subset of pgxpool.Pool the repository needs. pgxmock
// satisfies it in tests.
type pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CredentialRepository implements auth.CredentialStore using PostgreSQL.
type CredentialRepository struct {
	pool pool
}

// NewCredentialRepository creates a new CredentialRepository.
func NewCredentialRepository(pool pool) *CredentialRepository {
	return &CredentialRepository{pool: pool}
}

// Get retrieves a credential by username.
func (r *CredentialRepository) Get(ctx context.Context, username string) (*auth.Credential, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE username = $1
	`, username)

	cred := &auth.Credential{}
	err := row.Scan(&cred.ID, &cred.Username, &cred.PasswordHash, &cred.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, auth.ErrNotFound
	}
	if err != nil {
		return nil, oops.Code("STORE_UNAVAILABLE").
			With("operation", "get credential").
			With("username", username).
			Wrap(err)
	}
	return cred, nil
}

// GetAll retrieves every stored credential.
func (r *CredentialRepository) GetAll(ctx context.Context) ([]*auth.Credential, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, username, password_hash, created_at
		FROM users
		ORDER BY id
	`)
	if err != nil {
		return nil, oops.Code("STORE_UNAVAILABLE").
			With("operation", "list credentials").
			Wrap(err)
	}
	defer rows.Close()

	var creds []*auth.Credential
	for rows.Next() {
		cred := &auth.Credential{}
		if err := rows.Scan(&cred.ID, &cred.Username, &cred.PasswordHash, &cred.CreatedAt); err != nil {
			return nil, oops.Code("STORE_UNAVAILABLE").
				With("operation", "scan credential row").
				Wrap(err)
		}
		creds = append(creds, cred)
	}
	if err := rows.Err(); err != nil {
		return nil, oops.Code("STORE_UNAVAILABLE").
			With("operation", "iterate credentials").
			Wrap(err)
	}
	return creds, nil
}

// Exists reports whether a username is taken.
func (r *CredentialRepository) Exists(ctx context.Context, username string) (bool, error) {
	var one int
	err := r.pool.QueryRow(ctx, `
		SELECT 1 FROM users WHERE username = $1
	`, username).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, oops.Code("STORE_UNAVAILABLE").
			With("operation", "check username").
			With("username", username).
			Wrap(err)
	}
	return true, nil
}

// Create stores a new credential. The table's unique constraint on username
// is the authority for duplicate detection, including concurrent creates.
func (r *CredentialRepository) Create(ctx context.Context, username, passwordHash string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
	`, username, passwordHash)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return auth.ErrAlreadyExists
		}
		return oops.Code("STORE_UNAVAILABLE").
			With("operation", "insert credential").
			With("username", username).
			Wrap(err)
	}
	return nil
}

// UpdateHash replaces the password hash for an existing username.
func (r *CredentialRepository) UpdateHash(ctx context.Context, username, newHash string) error {
	result, err := r.pool.Exec(ctx, `
		UPDATE users SET password_hash = $2
		WHERE username = $1
	`, username, newHash)
	if err != nil {
		return oops.Code("STORE_UNAVAILABLE").
			With("operation", "update password hash").
			With("username", username).
			Wrap(err)
	}
	if result.RowsAffected() == 0 {
		return auth.ErrNotFound
	}
	return nil
}

// Delete removes a credential. Absent usernames are not an error.
func (r *CredentialRepository) Delete(ctx context.Context, username string) error {
	_, err := r.pool.Exec(ctx, `
		DELETE FROM users WHERE username = $1
	`, username)
	if err != nil {
		return oops.Code("STORE_UNAVAILABLE").
			With("operation", "delete credential").
			With("username", username).
			Wrap(err)
	}
	return nil
}

// Compile-time interface check.
var _ auth.CredentialStore = (*CredentialRepository)(nil)
