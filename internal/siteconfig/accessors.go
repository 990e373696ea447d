// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package siteconfig

import "sort"

// PageSEO returns the metadata for page: the page entry merged over the
// global metadata, where every non-empty page field wins. Unknown or empty
// page names yield the global metadata.
func (c *Config) PageSEO(page string) SEOMetadata {
	meta := c.SEO.Global
	p, ok := c.SEO.Pages[page]
	if page == "" || !ok {
		return meta
	}

	override := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	override(&meta.Title, p.Title)
	override(&meta.Description, p.Description)
	override(&meta.OGImage, p.OGImage)
	override(&meta.OGType, p.OGType)
	override(&meta.TwitterCard, p.TwitterCard)
	override(&meta.TwitterHandle, p.TwitterHandle)
	override(&meta.CanonicalURL, p.CanonicalURL)
	if p.Keywords != nil {
		meta.Keywords = p.Keywords
	}
	return meta
}

// Color returns the branding color registered under token.
func (c *Config) Color(token string) string {
	return c.Branding.Colors[token]
}

// EnabledFeatures returns the enabled feature items in document order.
func (c *Config) EnabledFeatures() []FeatureItem {
	return filter(c.Content.Features, func(f FeatureItem) bool { return f.Enabled })
}

// EnabledPlans returns the enabled pricing plans in document order.
func (c *Config) EnabledPlans() []PricingPlan {
	return filter(c.Content.Pricing.Plans, func(p PricingPlan) bool { return p.Enabled })
}

// EnabledTestimonials returns the enabled testimonials in document order.
func (c *Config) EnabledTestimonials() []TestimonialItem {
	return filter(c.Content.Testimonials, func(t TestimonialItem) bool { return t.Enabled })
}

// EnabledFAQs returns the enabled FAQ entries in document order.
func (c *Config) EnabledFAQs() []FAQItem {
	return filter(c.Content.FAQ, func(f FAQItem) bool { return f.Enabled })
}

// Page returns the configuration of page.
func (c *Config) Page(page string) (PageConfig, bool) {
	p, ok := c.Pages[page]
	return p, ok
}

// IsPageEnabled reports whether page exists and is enabled.
func (c *Config) IsPageEnabled(page string) bool {
	return c.Pages[page].Enabled
}

// EnabledSections returns the enabled sections of page sorted by order.
// Sections without an order sort as 0 and ties keep document order.
func (c *Config) EnabledSections(page string) []SectionConfig {
	p, ok := c.Pages[page]
	if !ok {
		return []SectionConfig{}
	}
	sections := filter(p.Sections, func(s SectionConfig) bool { return s.Enabled })
	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].order() < sections[j].order()
	})
	return sections
}

func (s SectionConfig) order() int {
	if s.Order == nil {
		return 0
	}
	return *s.Order
}

// Route returns the path registered for page, or "/" when there is none.
func (c *Config) Route(page string) string {
	if r, ok := c.Routes[page]; ok {
		return r
	}
	return "/"
}

// IsFeatureEnabled reports whether the named feature block exists and is
// enabled. Unknown names report false.
func (c *Config) IsFeatureEnabled(name string) bool {
	f := c.Features
	switch name {
	case "authentication":
		return f.Authentication != nil && f.Authentication.Enabled
	case "payments":
		return f.Payments != nil && f.Payments.Enabled
	case "email":
		return f.Email != nil && f.Email.Enabled
	case "analytics":
		return f.Analytics != nil && f.Analytics.Enabled
	case "blog":
		return f.Blog != nil && f.Blog.Enabled
	case "docs":
		return f.Docs != nil && f.Docs.Enabled
	}
	return false
}

// FeatureFlags returns the enabled state of every feature block.
func (c *Config) FeatureFlags() map[string]bool {
	flags := make(map[string]bool, len(featureNames))
	for _, name := range featureNames {
		flags[name] = c.IsFeatureEnabled(name)
	}
	return flags
}

var featureNames = []string{"authentication", "payments", "email", "analytics", "blog", "docs"}

// EnabledProjects returns the enabled projects in document order.
func (c *Config) EnabledProjects() []ProjectConfig {
	return filter(c.Projects, func(p ProjectConfig) bool { return p.Enabled })
}

// FeaturedProjects returns the projects that are both enabled and featured.
func (c *Config) FeaturedProjects() []ProjectConfig {
	return filter(c.Projects, func(p ProjectConfig) bool { return p.Enabled && p.Featured })
}

// EnabledProducts returns the enabled products in document order.
func (c *Config) EnabledProducts() []ProductConfig {
	return filter(c.Products, func(p ProductConfig) bool { return p.Enabled })
}

// FeaturedProducts returns the products that are both enabled and featured.
func (c *Config) FeaturedProducts() []ProductConfig {
	return filter(c.Products, func(p ProductConfig) bool { return p.Enabled && p.Featured })
}

// Mailgun returns the configured sender identities, or the stock ShipFree
// identities when the company block has none.
func (c *Config) Mailgun() MailgunConfig {
	if c.Company.Mailgun != nil {
		return *c.Company.Mailgun
	}
	return MailgunConfig{
		Subdomain:        "mg",
		FromNoReply:      "ShipFree <noreply@ag.shipfree.com>",
		FromAdmin:        "Idee8 at ShipFree <idee8@ag.shipfree.com>",
		SupportEmail:     "idee8@mg.shipfree.com",
		ForwardRepliesTo: "shipfree@gmail.com",
	}
}

// BaseURL is the public origin of the site derived from the company domain.
func (c *Config) BaseURL() string {
	if c.Company.Domain == "" {
		return ""
	}
	return "https://" + c.Company.Domain
}

// filter returns a new slice holding the items that satisfy keep. The result
// is never nil so it encodes as an empty JSON array.
func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
