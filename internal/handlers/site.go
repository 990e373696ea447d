// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"shipfree/internal/siteconfig"
)

// Site serves read-only views of the site configuration.
type Site struct {
	cfg *siteconfig.Config
}

// NewSite creates the site configuration handlers.
func NewSite(cfg *siteconfig.Config) *Site {
	return &Site{cfg: cfg}
}

// Overview handles GET /api/site. Mail sender settings stay server side.
func (s *Site) Overview(w http.ResponseWriter, r *http.Request) {
	company := s.cfg.Company
	company.Mailgun = nil
	writeData(w, map[string]any{
		"company":  company,
		"branding": s.cfg.Branding,
	})
}

// SEO handles GET /api/site/seo/{page}.
func (s *Site) SEO(w http.ResponseWriter, r *http.Request) {
	writeData(w, s.cfg.PageSEO(chi.URLParam(r, "page")))
}

// Page handles GET /api/site/pages/{page}: the enabled flag and the
// enabled sections in render order.
func (s *Site) Page(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "page")
	p, ok := s.cfg.Page(name)
	if !ok {
		writeError(w, http.StatusNotFound, "page not found: "+name)
		return
	}
	writeData(w, map[string]any{
		"page":        name,
		"enabled":     p.Enabled,
		"title":       p.Title,
		"description": p.Description,
		"sections":    s.cfg.EnabledSections(name),
	})
}

// Route handles GET /api/site/routes/{page}.
func (s *Site) Route(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "page")
	writeData(w, map[string]string{"page": name, "path": s.cfg.Route(name)})
}

// Features handles GET /api/site/features.
func (s *Site) Features(w http.ResponseWriter, r *http.Request) {
	writeData(w, map[string]any{
		"flags":    s.cfg.FeatureFlags(),
		"features": s.cfg.Features,
	})
}

// Pricing handles GET /api/site/pricing and lists enabled plans only.
func (s *Site) Pricing(w http.ResponseWriter, r *http.Request) {
	writeData(w, map[string]any{
		"title":    s.cfg.Content.Pricing.Title,
		"subtitle": s.cfg.Content.Pricing.Subtitle,
		"plans":    s.cfg.EnabledPlans(),
	})
}

// Testimonials handles GET /api/site/testimonials and lists enabled ones only.
func (s *Site) Testimonials(w http.ResponseWriter, r *http.Request) {
	writeData(w, s.cfg.EnabledTestimonials())
}

// FAQ handles GET /api/site/faq and lists enabled entries only.
func (s *Site) FAQ(w http.ResponseWriter, r *http.Request) {
	writeData(w, s.cfg.EnabledFAQs())
}

// Projects handles GET /api/site/projects; ?featured=true narrows the list
// to featured projects.
func (s *Site) Projects(w http.ResponseWriter, r *http.Request) {
	if featuredOnly(r) {
		writeData(w, s.cfg.FeaturedProjects())
		return
	}
	writeData(w, s.cfg.EnabledProjects())
}

// Products handles GET /api/site/products; ?featured=true narrows the list
// to featured products.
func (s *Site) Products(w http.ResponseWriter, r *http.Request) {
	if featuredOnly(r) {
		writeData(w, s.cfg.FeaturedProducts())
		return
	}
	writeData(w, s.cfg.EnabledProducts())
}

func featuredOnly(r *http.Request) bool {
	return r.URL.Query().Get("featured") == "true"
}
