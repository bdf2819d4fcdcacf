// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FitVault Contributors

// Package tls loads client TLS material for the profile service connection.
// Deployments that terminate TLS at the mesh layer leave this unconfigured
// and the gRPC client dials with insecure credentials.
package tls

import (
	"crypto/tls"
	"crypto/x509"
	"os"

	"github.com/samber/oops"
)

// ClientConfig names the PEM files for a mutually authenticated client
// connection. CAPath is required; CertPath and KeyPath are optional and must
// be set together.
type ClientConfig struct {
	CertPath string
	KeyPath  string
	CAPath   string
}

// LoadClient builds a *tls.Config from PEM files. The returned config
// verifies the server against the given CA and presents a client certificate
// when one is configured.
func LoadClient(cfg ClientConfig) (*tls.Config, error) {
	caPEM, err := os.ReadFile(cfg.CAPath)
	if err != nil {
		return nil, oops.Code("TLS_CA_READ_FAILED").With("path", cfg.CAPath).Wrap(err)
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(caPEM) {
		return nil, oops.Code("TLS_CA_PARSE_FAILED").With("path", cfg.CAPath).
			Errorf("no certificates found in CA file")
	}

	tlsConfig := &tls.Config{
		RootCAs:    pool,
		MinVersion: tls.VersionTLS13,
	}

	if cfg.CertPath != "" || cfg.KeyPath != "" {
		if cfg.CertPath == "" || cfg.KeyPath == "" {
			return nil, oops.Code("TLS_CONFIG_INVALID").
				Errorf("cert_path and key_path must be set together")
		}
		cert, err := tls.LoadX509KeyPair(cfg.CertPath, cfg.KeyPath)
		if err != nil {
			return nil, oops.Code("TLS_KEYPAIR_FAILED").
				With("cert_path", cfg.CertPath).With("key_path", cfg.KeyPath).Wrap(err)
		}
		tlsConfig.Certificates = []tls.Certificate{cert}
	}

	return tlsConfig, nil
}
