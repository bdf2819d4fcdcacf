// Package main is the entry point for the authd server.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fitvault/authd/pkg/errutil"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd := NewRootCmd()
	cmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)

	if err := cmd.Execute(); err != nil {
		errutil.LogError(slog.Default(), "authd exited with error", err)
		os.Exit(1)
	}
}
