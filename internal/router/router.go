// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up the HTTP routes and middleware chain of the
// ShipFree API: the holiday MVP generator and the read-only site
// configuration endpoints.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"shipfree/internal/handlers"
	"shipfree/internal/middleware"
)

// Options tunes the router.
type Options struct {
	// Limiter guards the generate endpoint. Nil disables rate limiting.
	Limiter *middleware.RateLimiter
	// HSTS adds Strict-Transport-Security to every response.
	HSTS bool
	// TrustProxy rewrites RemoteAddr from X-Forwarded-For / X-Real-IP.
	// Enable only behind a reverse proxy that sets those headers.
	TrustProxy bool
}

// New creates the chi router with all middleware and routes wired up.
func New(holidayH *handlers.Holiday, site *handlers.Site, opts Options) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	if opts.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders(opts.HSTS))

	r.NotFound(notFoundHandler)
	r.MethodNotAllowed(methodNotAllowedHandler)

	r.Get("/health", healthHandler)

	r.Route("/api/holiday-mvp/generate", func(r chi.Router) {
		r.Get("/", holidayH.Config)
		r.Group(func(r chi.Router) {
			if opts.Limiter != nil {
				r.Use(opts.Limiter.Middleware)
			}
			r.Post("/", holidayH.Generate)
		})
	})

	r.Route("/api/site", func(r chi.Router) {
		r.Get("/", site.Overview)
		r.Get("/seo/{page}", site.SEO)
		r.Get("/pages/{page}", site.Page)
		r.Get("/routes/{page}", site.Route)
		r.Get("/features", site.Features)
		r.Get("/pricing", site.Pricing)
		r.Get("/testimonials", site.Testimonials)
		r.Get("/faq", site.FAQ)
		r.Get("/projects", site.Projects)
		r.Get("/products", site.Products)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"success":false,"error":"Not Found"}`))
}

func methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusMethodNotAllowed)
	w.Write([]byte(`{"success":false,"error":"Method Not Allowed"}`))
}
