// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

var envVars = []string{
	"APP_HOST", "APP_PORT", "APP_ENV", "LOG_LEVEL", "GENERATE_RATE_LIMIT", "TRUST_PROXY",
	"SITE_CONFIG_PATH", "SITE_BASE_URL",
	"VALKEY_HOST", "VALKEY_PORT", "VALKEY_PASSWORD", "ARTIFACT_CACHE_TTL",
	"S3_ENDPOINT", "S3_REGION", "S3_ACCESS_KEY", "S3_SECRET_KEY", "S3_BUCKET", "S3_PUBLIC_URL",
}

// clearEnv sets every variable Load reads to the empty string, which
// envOrDefault treats the same as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envVars {
		t.Setenv(key, "")
	}
}

// TestLoad_Defaults verifies that Load returns sensible development defaults
// when no environment variables are set.
func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	check := func(field, got, want string) {
		t.Helper()
		if got != want {
			t.Errorf("%s = %q, want %q", field, got, want)
		}
	}

	check("Host", cfg.Host, "0.0.0.0")
	check("Port", cfg.Port, "8080")
	check("Env", cfg.Env, "development")
	check("SiteConfigPath", cfg.SiteConfigPath, "")
	check("SiteBaseURL", cfg.SiteBaseURL, "")
	check("ValkeyHost", cfg.ValkeyHost, "")
	check("ValkeyPort", cfg.ValkeyPort, "6379")
	check("S3Region", cfg.S3Region, "fsn1")
	check("S3Bucket", cfg.S3Bucket, "shipfree-artifacts")

	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want INFO", cfg.LogLevel)
	}
	if cfg.ArtifactCacheTTL != DefaultArtifactCacheTTL {
		t.Errorf("ArtifactCacheTTL = %v, want %v", cfg.ArtifactCacheTTL, DefaultArtifactCacheTTL)
	}
	if cfg.CacheEnabled() {
		t.Error("CacheEnabled() = true without VALKEY_HOST")
	}
	if cfg.GenerateRateLimit != DefaultGenerateRateLimit {
		t.Errorf("GenerateRateLimit = %d, want %d", cfg.GenerateRateLimit, DefaultGenerateRateLimit)
	}
	if cfg.TrustProxy {
		t.Error("TrustProxy = true by default")
	}
}

// TestLoad_EnvOverrides verifies that every environment variable properly
// overrides the default value.
func TestLoad_EnvOverrides(t *testing.T) {
	overrides := map[string]string{
		"APP_HOST":            "127.0.0.1",
		"APP_PORT":            "9090",
		"APP_ENV":             "testing",
		"LOG_LEVEL":           "debug",
		"GENERATE_RATE_LIMIT": "0",
		"TRUST_PROXY":         "true",
		"SITE_CONFIG_PATH":    "/etc/shipfree/site-config.json",
		"SITE_BASE_URL":       "https://xilo.dev/",
		"VALKEY_HOST":         "cache.example.com",
		"VALKEY_PORT":         "6380",
		"VALKEY_PASSWORD":     "cachepass",
		"ARTIFACT_CACHE_TTL":  "90s",
		"S3_ENDPOINT":         "https://s3.example.com",
		"S3_REGION":           "eu-central-1",
		"S3_ACCESS_KEY":       "AKIATEST",
		"S3_SECRET_KEY":       "secrettest",
		"S3_BUCKET":           "my-artifacts",
		"S3_PUBLIC_URL":       "https://cdn.example.com",
	}
	for key, val := range overrides {
		t.Setenv(key, val)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	check := func(field, got, want string) {
		t.Helper()
		if got != want {
			t.Errorf("%s = %q, want %q", field, got, want)
		}
	}

	check("Host", cfg.Host, "127.0.0.1")
	check("Port", cfg.Port, "9090")
	check("Env", cfg.Env, "testing")
	check("SiteConfigPath", cfg.SiteConfigPath, "/etc/shipfree/site-config.json")
	check("SiteBaseURL", cfg.SiteBaseURL, "https://xilo.dev")
	check("ValkeyHost", cfg.ValkeyHost, "cache.example.com")
	check("ValkeyPort", cfg.ValkeyPort, "6380")
	check("ValkeyPassword", cfg.ValkeyPassword, "cachepass")
	check("S3Endpoint", cfg.S3Endpoint, "https://s3.example.com")
	check("S3Region", cfg.S3Region, "eu-central-1")
	check("S3AccessKey", cfg.S3AccessKey, "AKIATEST")
	check("S3SecretKey", cfg.S3SecretKey, "secrettest")
	check("S3Bucket", cfg.S3Bucket, "my-artifacts")
	check("S3PublicURL", cfg.S3PublicURL, "https://cdn.example.com")

	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want DEBUG", cfg.LogLevel)
	}
	if cfg.ArtifactCacheTTL != 90*time.Second {
		t.Errorf("ArtifactCacheTTL = %v, want 90s", cfg.ArtifactCacheTTL)
	}
	if !cfg.CacheEnabled() {
		t.Error("CacheEnabled() = false with VALKEY_HOST set")
	}
	if cfg.GenerateRateLimit != 0 {
		t.Errorf("GenerateRateLimit = %d, want 0", cfg.GenerateRateLimit)
	}
	if !cfg.TrustProxy {
		t.Error("TrustProxy = false with TRUST_PROXY=true")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"unknown log level", "LOG_LEVEL", "loud"},
		{"unparsable ttl", "ARTIFACT_CACHE_TTL", "ten minutes"},
		{"zero ttl", "ARTIFACT_CACHE_TTL", "0s"},
		{"negative ttl", "ARTIFACT_CACHE_TTL", "-1m"},
		{"unparsable rate limit", "GENERATE_RATE_LIMIT", "many"},
		{"negative rate limit", "GENERATE_RATE_LIMIT", "-3"},
		{"unparsable trust proxy", "TRUST_PROXY", "sometimes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			if err == nil {
				t.Fatalf("Load() should fail for %s=%q", tt.key, tt.val)
			}
			if !strings.Contains(err.Error(), tt.key) {
				t.Errorf("error should mention %s, got: %v", tt.key, err)
			}
		})
	}
}

// TestLoad_ProductionBaseURL verifies that production mode rejects a plain
// HTTP base URL for generated links.
func TestLoad_ProductionBaseURL(t *testing.T) {
	t.Run("rejects http", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("APP_ENV", "production")
		t.Setenv("SITE_BASE_URL", "http://xilo.dev")
		if _, err := Load(); err == nil || !strings.Contains(err.Error(), "SITE_BASE_URL") {
			t.Fatalf("Load() error = %v, want SITE_BASE_URL error", err)
		}
	})

	t.Run("accepts https", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("APP_ENV", "production")
		t.Setenv("SITE_BASE_URL", "https://xilo.dev")
		if _, err := Load(); err != nil {
			t.Fatalf("Load() returned unexpected error: %v", err)
		}
	})

	t.Run("allows http in development", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SITE_BASE_URL", "http://localhost:8080")
		if _, err := Load(); err != nil {
			t.Fatalf("Load() returned unexpected error: %v", err)
		}
	})
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("APP_PORT=7070\nS3_BUCKET=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	clearEnv(t)
	os.Unsetenv("APP_PORT")
	os.Unsetenv("S3_BUCKET")
	t.Setenv("APP_HOST", "10.0.0.1")

	if err := LoadDotEnv(path, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("LoadDotEnv() error: %v", err)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.Port != "7070" || cfg.S3Bucket != "from-file" {
		t.Errorf("Port/S3Bucket = %q/%q, want values from .env", cfg.Port, cfg.S3Bucket)
	}
	if cfg.Host != "10.0.0.1" {
		t.Errorf("Host = %q, existing variable was overridden", cfg.Host)
	}

	if err := LoadDotEnv(filepath.Join(dir, "none.env")); err != nil {
		t.Errorf("LoadDotEnv() with no files error: %v", err)
	}
}

// TestAddr verifies the server listen address format.
func TestAddr(t *testing.T) {
	tests := []struct {
		name     string
		host     string
		port     string
		expected string
	}{
		{name: "default", host: "0.0.0.0", port: "8080", expected: "0.0.0.0:8080"},
		{name: "localhost with custom port", host: "127.0.0.1", port: "3000", expected: "127.0.0.1:3000"},
		{name: "empty host", host: "", port: "8080", expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Host: tt.host, Port: tt.port}
			if got := cfg.Addr(); got != tt.expected {
				t.Errorf("Addr() = %q, want %q", got, tt.expected)
			}
		})
	}
}

// TestIsDev verifies the IsDev method for various environment modes.
func TestIsDev(t *testing.T) {
	tests := []struct {
		env      string
		expected bool
	}{
		{"development", true},
		{"production", false},
		{"testing", false},
		{"", false},
		{"Development", false},
	}

	for _, tt := range tests {
		t.Run("env="+tt.env, func(t *testing.T) {
			cfg := Config{Env: tt.env}
			if got := cfg.IsDev(); got != tt.expected {
				t.Errorf("IsDev() = %v, want %v (env=%q)", got, tt.expected, tt.env)
			}
		})
	}
}
