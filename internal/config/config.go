// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FitVault Contributors

// Package config loads authd configuration. Values are layered: built-in
// defaults, then an optional YAML file, then command-line flags. Secrets
// (database URL, token secret) come from environment variables only, so they
// never land in config files or process listings.
package config

import (
	"os"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"
)

// Environment variables consulted for secrets.
const (
	EnvDatabaseURL = "DATABASE_URL"
	EnvTokenSecret = "AUTHD_TOKEN_SECRET"
)

// Config is the full authd runtime configuration.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Metrics MetricsConfig `koanf:"metrics"`
	Log     LogConfig     `koanf:"log"`
	Token   TokenConfig   `koanf:"token"`
	Profile ProfileConfig `koanf:"profile"`

	// DatabaseURL is read from DATABASE_URL, never from file or flags.
	DatabaseURL string `koanf:"-"`
}

// ServerConfig configures the HTTP API listener.
type ServerConfig struct {
	Addr            string        `koanf:"addr"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// MetricsConfig configures the observability listener.
type MetricsConfig struct {
	Addr string `koanf:"addr"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	Format string `koanf:"format"`
	Level  string `koanf:"level"`
}

// TokenConfig configures token issuance. Algorithm selects RS256 (PEM key
// paths required) or HS256 (secret from AUTHD_TOKEN_SECRET required).
type TokenConfig struct {
	Algorithm      string        `koanf:"algorithm"`
	Lifetime       time.Duration `koanf:"lifetime"`
	PrivateKeyPath string        `koanf:"private_key_path"`
	PublicKeyPath  string        `koanf:"public_key_path"`

	// Secret is populated from the environment for HS256.
	Secret string `koanf:"-"`
}

// ProfileConfig configures the upstream profile service client.
type ProfileConfig struct {
	Address     string        `koanf:"address"`
	CallTimeout time.Duration `koanf:"call_timeout"`
	TLS         TLSConfig     `koanf:"tls"`
}

// TLSConfig names the PEM files for the profile connection. An empty CAPath
// means plaintext, for deployments where the mesh carries transport security.
type TLSConfig struct {
	CertPath string `koanf:"cert_path"`
	KeyPath  string `koanf:"key_path"`
	CAPath   string `koanf:"ca_path"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"server.addr":             ":8080",
		"server.read_timeout":     "10s",
		"server.write_timeout":    "10s",
		"server.shutdown_timeout": "15s",
		"metrics.addr":            ":9090",
		"log.format":              "json",
		"log.level":               "info",
		"token.algorithm":         "RS256",
		"token.lifetime":          "30m",
		"profile.address":         "localhost:50051",
		"profile.call_timeout":    "5s",
	}
}

// Load builds a Config from defaults, an optional YAML file, and flags.
// The flag set may be nil when no flag overrides apply.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, oops.Code("CONFIG_DEFAULTS_FAILED").Wrap(err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, oops.Code("CONFIG_FILE_FAILED").With("path", path).Wrap(err)
		}
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return nil, oops.Code("CONFIG_FLAGS_FAILED").Wrap(err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.Code("CONFIG_UNMARSHAL_FAILED").Wrap(err)
	}

	cfg.DatabaseURL = os.Getenv(EnvDatabaseURL)
	cfg.Token.Secret = os.Getenv(EnvTokenSecret)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field requirements that koanf cannot express.
func (c *Config) Validate() error {
	switch c.Token.Algorithm {
	case "RS256":
		if c.Token.PrivateKeyPath == "" || c.Token.PublicKeyPath == "" {
			return oops.Code("CONFIG_INVALID").
				Errorf("token.private_key_path and token.public_key_path are required for RS256")
		}
	case "HS256":
		if c.Token.Secret == "" {
			return oops.Code("CONFIG_INVALID").
				Errorf("%s is required for HS256", EnvTokenSecret)
		}
	default:
		return oops.Code("CONFIG_INVALID").
			Errorf("token.algorithm must be RS256 or HS256, got %q", c.Token.Algorithm)
	}

	if c.Token.Lifetime <= 0 {
		return oops.Code("CONFIG_INVALID").Errorf("token.lifetime must be positive")
	}
	if c.Profile.Address == "" {
		return oops.Code("CONFIG_INVALID").Errorf("profile.address is required")
	}
	return nil
}
