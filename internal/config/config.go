// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used by the server and
// the command line tools.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultArtifactCacheTTL is how long a generated artifact response stays cached.
const DefaultArtifactCacheTTL = 10 * time.Minute

// DefaultGenerateRateLimit is the number of generate requests a client may
// send per minute.
const DefaultGenerateRateLimit = 30

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host     string
	Port     string
	Env      string // "development", "production", "testing"
	LogLevel slog.Level

	// GenerateRateLimit is the per-client limit of generate requests per
	// minute. Zero disables limiting.
	GenerateRateLimit int
	// TrustProxy takes the client address from X-Forwarded-For / X-Real-IP.
	// Only safe behind a reverse proxy that overwrites those headers.
	TrustProxy bool

	// Site
	SiteConfigPath string // empty means the embedded document
	SiteBaseURL    string // overrides the site config domain in generated links

	// Valkey (Redis-compatible cache). Caching is off when ValkeyHost is empty.
	ValkeyHost       string
	ValkeyPort       string
	ValkeyPassword   string
	ArtifactCacheTTL time.Duration

	// S3-compatible object storage for generated artifacts
	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3PublicURL string
}

// LoadDotEnv loads variables from the given .env files (".env" when none are
// given) without overriding variables that are already set. Missing files
// are not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("load %s: %w", strings.Join(existing, ", "), err)
	}
	return nil
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if a value cannot be
// parsed or a production requirement is not met.
func Load() (*Config, error) {
	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		SiteConfigPath: os.Getenv("SITE_CONFIG_PATH"),
		SiteBaseURL:    strings.TrimRight(os.Getenv("SITE_BASE_URL"), "/"),

		ValkeyHost:     os.Getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3Region:    envOrDefault("S3_REGION", "fsn1"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3Bucket:    envOrDefault("S3_BUCKET", "shipfree-artifacts"),
		S3PublicURL: os.Getenv("S3_PUBLIC_URL"),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(envOrDefault("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	ttl, err := time.ParseDuration(envOrDefault("ARTIFACT_CACHE_TTL", DefaultArtifactCacheTTL.String()))
	if err != nil {
		return nil, fmt.Errorf("ARTIFACT_CACHE_TTL: %w", err)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("ARTIFACT_CACHE_TTL must be positive, got %s", ttl)
	}
	cfg.ArtifactCacheTTL = ttl

	limit, err := strconv.Atoi(envOrDefault("GENERATE_RATE_LIMIT", strconv.Itoa(DefaultGenerateRateLimit)))
	if err != nil {
		return nil, fmt.Errorf("GENERATE_RATE_LIMIT: %w", err)
	}
	if limit < 0 {
		return nil, fmt.Errorf("GENERATE_RATE_LIMIT must not be negative, got %d", limit)
	}
	cfg.GenerateRateLimit = limit

	trust, err := strconv.ParseBool(envOrDefault("TRUST_PROXY", "false"))
	if err != nil {
		return nil, fmt.Errorf("TRUST_PROXY: %w", err)
	}
	cfg.TrustProxy = trust

	if cfg.Env == "production" {
		if cfg.SiteBaseURL != "" && !strings.HasPrefix(cfg.SiteBaseURL, "https://") {
			return nil, fmt.Errorf("SITE_BASE_URL must use https in production")
		}
	}

	return cfg, nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// CacheEnabled reports whether a Valkey host is configured.
func (c *Config) CacheEnabled() bool {
	return c.ValkeyHost != ""
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
