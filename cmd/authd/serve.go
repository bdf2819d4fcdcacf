// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FitVault Contributors

package main

import (
	"context"
	cryptotls "crypto/tls"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/fitvault/authd/internal/account"
	"github.com/fitvault/authd/internal/auth"
	authpg "github.com/fitvault/authd/internal/auth/postgres"
	"github.com/fitvault/authd/internal/config"
	"github.com/fitvault/authd/internal/httpapi"
	"github.com/fitvault/authd/internal/logging"
	"github.com/fitvault/authd/internal/observability"
	"github.com/fitvault/authd/internal/profile"
	"github.com/fitvault/authd/internal/store"
	authtls "github.com/fitvault/authd/internal/tls"
	"github.com/fitvault/authd/internal/token"
)

const shutdownTimeout = 15 * time.Second

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the authentication API server",
		Long: `Start the HTTP API server, the observability server, and the gRPC
client connection to the profile service.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configFile, cmd.Flags())
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}

	// Flag names mirror config keys so posflag can overlay them.
	cmd.Flags().String("server.addr", "", "API listen address")
	cmd.Flags().String("metrics.addr", "", "metrics/health HTTP address")
	cmd.Flags().String("log.format", "", "log format (json or text)")
	cmd.Flags().String("log.level", "", "log level (debug, info, warn, error)")
	cmd.Flags().String("profile.address", "", "profile service gRPC address")

	return cmd
}

func runServe(ctx context.Context, cfg *config.Config) error {
	logging.SetDefault("authd", version, logging.Options{
		Format: cfg.Log.Format,
		Level:  cfg.Log.Level,
	})
	logger := slog.Default()

	if cfg.DatabaseURL == "" {
		return oops.Code("CONFIG_INVALID").Errorf("%s environment variable is required", config.EnvDatabaseURL)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pool, err := store.Connect(ctx, cfg.DatabaseURL, store.ConnectOptions{})
	if err != nil {
		return err
	}
	defer pool.Close()
	logger.Info("database pool established")

	issuer, err := buildIssuer(cfg.Token)
	if err != nil {
		return err
	}

	manager, err := auth.NewManager(authpg.NewCredentialRepository(pool), auth.NewArgon2idHasher(), logger)
	if err != nil {
		return err
	}

	profileTLS, err := buildProfileTLS(cfg.Profile.TLS)
	if err != nil {
		return err
	}
	profileClient, err := profile.NewGRPCClient(profile.GRPCClientConfig{
		Address:     cfg.Profile.Address,
		TLSConfig:   profileTLS,
		CallTimeout: cfg.Profile.CallTimeout,
	})
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := profileClient.Close(); closeErr != nil {
			logger.Warn("error closing profile client", "error", closeErr)
		}
	}()
	logger.Info("profile service client created", "addr", cfg.Profile.Address)

	coordinator, err := account.NewCoordinator(manager, profileClient, logger)
	if err != nil {
		return err
	}

	obsServer := observability.NewServer(cfg.Metrics.Addr, func() bool {
		pingCtx, pingCancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer pingCancel()
		return pool.Ping(pingCtx) == nil
	})
	obsErrCh, err := obsServer.Start()
	if err != nil {
		return err
	}
	logger.Info("observability server started", "addr", obsServer.Addr())

	handler := httpapi.NewHandler(coordinator, manager, issuer, obsServer.Metrics(), logger)
	apiServer := httpapi.NewServer(httpapi.ServerConfig{
		Addr:         cfg.Server.Addr,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}, httpapi.NewRouter(handler, issuer, logger), logger)

	apiErrCh, err := apiServer.Start()
	if err != nil {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer stopCancel()
		_ = obsServer.Stop(stopCtx)
		return err
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("authd ready", "api_addr", apiServer.Addr(), "metrics_addr", obsServer.Addr())

	var runErr error
	select {
	case sig := <-sigCh:
		logger.Info("received shutdown signal", "signal", sig.String())
	case runErr = <-apiErrCh:
		if runErr != nil {
			logger.Error("api server failed", "error", runErr)
		}
	case runErr = <-obsErrCh:
		if runErr != nil {
			logger.Error("observability server failed", "error", runErr)
		}
	case <-ctx.Done():
		logger.Info("context cancelled, shutting down")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := apiServer.Stop(shutdownCtx); err != nil {
		logger.Warn("error stopping api server", "error", err)
	}
	if err := obsServer.Stop(shutdownCtx); err != nil {
		logger.Warn("error stopping observability server", "error", err)
	}

	logger.Info("shutdown complete")
	return runErr
}

// buildProfileTLS loads client TLS material when configured; nil means the
// profile connection is dialed in plaintext.
func buildProfileTLS(cfg config.TLSConfig) (*cryptotls.Config, error) {
	if cfg.CAPath == "" {
		return nil, nil
	}
	return authtls.LoadClient(authtls.ClientConfig{
		CertPath: cfg.CertPath,
		KeyPath:  cfg.KeyPath,
		CAPath:   cfg.CAPath,
	})
}

// buildIssuer constructs the token issuer for the configured algorithm.
func buildIssuer(cfg config.TokenConfig) (*token.Issuer, error) {
	switch cfg.Algorithm {
	case "RS256":
		key, err := token.LoadRSAPrivateKey(cfg.PrivateKeyPath)
		if err != nil {
			return nil, err
		}
		return token.NewRS256Issuer(key, cfg.Lifetime)
	case "HS256":
		return token.NewHS256Issuer([]byte(cfg.Secret), cfg.Lifetime)
	default:
		return nil, oops.Code("CONFIG_INVALID").Errorf("unsupported token algorithm %q", cfg.Algorithm)
	}
}
