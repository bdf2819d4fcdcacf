// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FitVault Contributors

package account

import (
	"context"
)

// ReconcileReport summarizes one reconciliation sweep.
type ReconcileReport struct {
	Checked int
	Failed  []string
}

// Reconcile re-asserts a remote profile for every local credential. The
// remote create is idempotent, so accounts that are already consistent are
// unaffected; the sweep exists to repair the orphaned-credential window left
// by a failed signup compensation.
func (c *Coordinator) Reconcile(ctx context.Context) (ReconcileReport, error) {
	usernames, err := c.manager.ListUsernames(ctx)
	if err != nil {
		return ReconcileReport{}, err
	}

	report := ReconcileReport{Checked: len(usernames)}
	for _, username := range usernames {
		if err := c.profiles.CreateProfile(ctx, username); err != nil {
			report.Failed = append(report.Failed, username)
			c.logger.Warn("reconcile could not assert remote profile",
				"username", username,
				"error", err)
		}
	}

	c.logger.Info("reconciliation sweep finished",
		"checked", report.Checked,
		"failed", len(report.Failed))
	return report, nil
}
