// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the ShipFree API server.
// It loads configuration, connects to optional services, sets up routing,
// and starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shipfree/internal/cache"
	"shipfree/internal/config"
	"shipfree/internal/handlers"
	"shipfree/internal/holiday"
	"shipfree/internal/middleware"
	"shipfree/internal/router"
	"shipfree/internal/siteconfig"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		slog.Error("failed to load .env", "error", err)
		os.Exit(1)
	}

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(newLogHandler(os.Stdout, cfg)))

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"trust_proxy", cfg.TrustProxy,
	)

	site, err := siteconfig.LoadOrDefault(cfg.SiteConfigPath)
	if err != nil {
		slog.Error("failed to load site config", "error", err, "path", cfg.SiteConfigPath)
		os.Exit(1)
	}
	report := site.Validate()
	for _, msg := range report.Errors {
		slog.Warn("site config error", "error", msg)
	}
	for _, msg := range report.Warnings {
		slog.Info("site config warning", "warning", msg)
	}

	// Connect to Valkey for the artifact cache (optional, the API works without it).
	var artifacts handlers.ArtifactCache
	if cfg.CacheEnabled() {
		valkeyClient, err := cache.ConnectValkey(context.Background(), cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Error("failed to connect to valkey", "error", err)
			os.Exit(1)
		}
		defer valkeyClient.Close()

		ac := cache.NewArtifactCache(valkeyClient, cfg.ArtifactCacheTTL)
		// Cached responses may come from an older build.
		if n := ac.InvalidateAll(context.Background()); n > 0 {
			slog.Info("artifact cache cleared", "keys", n)
		}
		artifacts = ac
		slog.Info("artifact cache enabled", "ttl", cfg.ArtifactCacheTTL)
	} else {
		slog.Warn("valkey not configured, artifact cache disabled")
	}

	baseURL := cfg.SiteBaseURL
	if baseURL == "" && site.Company.Domain != "" {
		baseURL = site.BaseURL()
	}

	var limiter *middleware.RateLimiter
	if cfg.GenerateRateLimit > 0 {
		limiter = middleware.NewRateLimiter(cfg.GenerateRateLimit, time.Minute)
		defer limiter.Stop()
	}

	holidayHandlers := handlers.NewHoliday(holiday.Options{BaseURL: baseURL}, artifacts)
	siteHandlers := handlers.NewSite(site)

	r := router.New(holidayHandlers, siteHandlers, router.Options{
		Limiter:    limiter,
		HSTS:       cfg.Env == "production",
		TrustProxy: cfg.TrustProxy,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr(), "base_url", baseURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}

// newLogHandler writes human readable text in development and JSON lines
// everywhere else.
func newLogHandler(w io.Writer, cfg *config.Config) slog.Handler {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.IsDev() {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}
