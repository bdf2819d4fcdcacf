// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FitVault Contributors

// Package store manages the PostgreSQL connection pool and schema migrations
// backing the credential repository.
package store

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/oops"
	"github.com/sethvargo/go-retry"
)

// Connect defaults. The database is usually started alongside authd, so the
// first ping frequently races container startup and needs a short retry loop.
const (
	defaultPingRetries = 5
	defaultPingBackoff = 500 * time.Millisecond
)

// ConnectOptions tunes pool establishment.
type ConnectOptions struct {
	// PingRetries is the number of additional ping attempts after the first
	// failure. Zero means use the default.
	PingRetries uint64
	// PingBackoff is the initial backoff between ping attempts; it grows
	// exponentially. Zero means use the default.
	PingBackoff time.Duration
}

// Connect creates a pgx connection pool and verifies connectivity with an
// exponential-backoff ping. The returned pool is ready for use; callers own
// Close.
func Connect(ctx context.Context, dsn string, opts ConnectOptions) (*pgxpool.Pool, error) {
	if opts.PingRetries == 0 {
		opts.PingRetries = defaultPingRetries
	}
	if opts.PingBackoff == 0 {
		opts.PingBackoff = defaultPingBackoff
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, oops.Code("STORE_CONNECT_FAILED").With("operation", "create pool").Wrap(err)
	}

	backoff := retry.WithMaxRetries(opts.PingRetries, retry.NewExponential(opts.PingBackoff))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		if pingErr := pool.Ping(ctx); pingErr != nil {
			slog.WarnContext(ctx, "database ping failed, retrying", "error", pingErr)
			return retry.RetryableError(pingErr)
		}
		return nil
	})
	if err != nil {
		pool.Close()
		return nil, oops.Code("STORE_CONNECT_FAILED").With("operation", "ping").Wrap(err)
	}

	return pool, nil
}
