// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FitVault Contributors

package main

import (
	"github.com/spf13/cobra"
)

// Global flags available to all subcommands.
var configFile string

// NewRootCmd creates the root command for the authd CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "authd",
		Short: "authd - authentication service for FitVault",
		Long: `authd guards the FitVault profile service: it stores password
credentials, issues bearer tokens, and keeps account creation and deletion
consistent with the remote profile store.`,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newMigrateCmd())
	cmd.AddCommand(newReconcileCmd())

	return cmd
}
