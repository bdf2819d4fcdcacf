// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FitVault Contributors

package main

import (
	"log/slog"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/fitvault/authd/internal/account"
	"github.com/fitvault/authd/internal/auth"
	authpg "github.com/fitvault/authd/internal/auth/postgres"
	"github.com/fitvault/authd/internal/config"
	"github.com/fitvault/authd/internal/logging"
	"github.com/fitvault/authd/internal/profile"
	"github.com/fitvault/authd/internal/store"
)

func newReconcileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile",
		Short: "Re-assert profiles for all stored credentials",
		Long: `Walk every stored credential and re-assert its profile on the
profile service. Repairs accounts orphaned by a failed compensating delete
during signup. Safe to run repeatedly; profile creation is idempotent.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configFile, nil)
			if err != nil {
				return err
			}
			if cfg.DatabaseURL == "" {
				return oops.Code("CONFIG_INVALID").Errorf("%s environment variable is required", config.EnvDatabaseURL)
			}

			logging.SetDefault("authd", version, logging.Options{
				Format: cfg.Log.Format,
				Level:  cfg.Log.Level,
			})
			logger := slog.Default()

			ctx := cmd.Context()
			pool, err := store.Connect(ctx, cfg.DatabaseURL, store.ConnectOptions{})
			if err != nil {
				return err
			}
			defer pool.Close()

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

			coordinator, err := account.NewCoordinator(manager, profileClient, logger)
			if err != nil {
				return err
			}

			report, err := coordinator.Reconcile(ctx)
			if err != nil {
				return err
			}

			cmd.Printf("checked: %d\n", report.Checked)
			cmd.Printf("failed:  %d\n", len(report.Failed))
			for _, username := range report.Failed {
				cmd.Printf("  %s\n", username)
			}
			if len(report.Failed) > 0 {
				return oops.Code("RECONCILE_INCOMPLETE").Errorf("%d profiles could not be asserted", len(report.Failed))
			}
			return nil
		},
	}
}
