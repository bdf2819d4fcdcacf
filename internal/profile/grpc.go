// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FitVault Contributors

package profile

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/samber/oops"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/status"

	profilev1 "github.com/fitvault/authd/internal/proto/profile/v1"
)

// GRPCClient implements Client over a single pooled gRPC connection,
// established once per process and shared across requests.
type GRPCClient struct {
	conn    *grpc.ClientConn
	client  profilev1.ProfileServiceClient
	timeout time.Duration
}

// GRPCClientConfig holds configuration for the gRPC client.
type GRPCClientConfig struct {
	// Address is the target gRPC server address (e.g., "localhost:4000")
	Address string

	// TLSConfig for transport security. If nil, insecure connection is used.
	TLSConfig *tls.Config

	// CallTimeout bounds every unary call (default: 5s). An unbounded
	// hang during signup would hold the local write in a half-committed
	// window indefinitely.
	CallTimeout time.Duration

	// KeepaliveTime is how often to ping the server (default: 10s)
	KeepaliveTime time.Duration

	// KeepaliveTimeout is how long to wait for ping response (default: 5s)
	KeepaliveTimeout time.Duration
}

// NewGRPCClient creates a gRPC client connected to the profile service.
func NewGRPCClient(cfg GRPCClientConfig) (*GRPCClient, error) {
	if cfg.Address == "" {
		return nil, oops.Code("PROFILE_CONFIG_INVALID").Errorf("address is required")
	}

	// Set defaults
	if cfg.CallTimeout == 0 {
		cfg.CallTimeout = 5 * time.Second
	}
	if cfg.KeepaliveTime == 0 {
		cfg.KeepaliveTime = 10 * time.Second
	}
	if cfg.KeepaliveTimeout == 0 {
		cfg.KeepaliveTimeout = 5 * time.Second
	}

	opts := []grpc.DialOption{
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                cfg.KeepaliveTime,
			Timeout:             cfg.KeepaliveTimeout,
			PermitWithoutStream: true,
		}),
	}

	if cfg.TLSConfig != nil {
		opts = append(opts, grpc.WithTransportCredentials(credentials.NewTLS(cfg.TLSConfig)))
	} else {
		opts = append(opts, grpc.WithTransportCredentials(insecure.NewCredentials()))
	}

	conn, err := grpc.NewClient(cfg.Address, opts...)
	if err != nil {
		return nil, oops.Code("PROFILE_CONNECT_FAILED").
			With("address", cfg.Address).
			Wrap(err)
	}

	return &GRPCClient{
		conn:    conn,
		client:  profilev1.NewProfileServiceClient(conn),
		timeout: cfg.CallTimeout,
	}, nil
}

// Close closes the underlying gRPC connection.
func (c *GRPCClient) Close() error {
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			return oops.Code("PROFILE_CLOSE_FAILED").Wrap(err)
		}
	}
	return nil
}

// CreateProfile provisions a remote profile. A remote AlreadyExists reply
// counts as success: the profile is there, which is all the caller needs.
func (c *GRPCClient) CreateProfile(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	_, err := c.client.CreateProfile(ctx, &profilev1.CreateProfileRequest{UserId: userID})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil
		}
		return oops.Code("PROFILE_RPC_FAILED").
			With("operation", "create profile").
			With("user_id", userID).
			Wrap(err)
	}
	return nil
}

// DeleteProfile removes a remote profile. A remote NotFound reply counts as
// success for the same reason.
func (c *GRPCClient) DeleteProfile(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	_, err := c.client.DeleteProfile(ctx, &profilev1.DeleteProfileRequest{UserId: userID})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil
		}
		return oops.Code("PROFILE_RPC_FAILED").
			With("operation", "delete profile").
			With("user_id", userID).
			Wrap(err)
	}
	return nil
}

// Compile-time interface check.
var _ Client = (*GRPCClient)(nil)
