// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package siteconfig holds the centralized site configuration that drives
// the marketing pages: company details, SEO metadata, branding, page
// content, page and route tables, feature flags, projects and products.
// A Config is loaded once and is read-only afterwards; accessor methods
// return filtered copies and never mutate the document.
package siteconfig

// Config is the root of the site configuration document.
type Config struct {
	Company  CompanyConfig         `json:"company"`
	SEO      SEOConfig             `json:"seo"`
	Branding BrandingConfig        `json:"branding"`
	Content  ContentConfig         `json:"content"`
	Pages    map[string]PageConfig `json:"pages" validate:"dive"`
	Routes   map[string]string     `json:"routes"`
	Features FeaturesConfig        `json:"features"`
	Projects []ProjectConfig       `json:"projects" validate:"dive"`
	Products []ProductConfig       `json:"products" validate:"dive"`
}

// CompanyConfig identifies the company behind the site.
type CompanyConfig struct {
	Name        string         `json:"name" validate:"required"`
	Domain      string         `json:"domain" validate:"required,hostname_rfc1123"`
	Description string         `json:"description"`
	Tagline     string         `json:"tagline,omitempty"`
	Email       string         `json:"email" validate:"required,email"`
	Twitter     string         `json:"twitter,omitempty"`
	GitHub      string         `json:"github,omitempty"`
	Discord     string         `json:"discord,omitempty"`
	LinkedIn    string         `json:"linkedin,omitempty"`
	Mailgun     *MailgunConfig `json:"mailgun,omitempty"`
}

// MailgunConfig holds the transactional email sender identities.
type MailgunConfig struct {
	Subdomain        string `json:"subdomain" validate:"required"`
	FromNoReply      string `json:"fromNoReply" validate:"required"`
	FromAdmin        string `json:"fromAdmin" validate:"required"`
	SupportEmail     string `json:"supportEmail,omitempty" validate:"omitempty,email"`
	ForwardRepliesTo string `json:"forwardRepliesTo,omitempty" validate:"omitempty,email"`
}

// SEOConfig holds the global metadata plus per-page overrides.
type SEOConfig struct {
	Global SEOMetadata            `json:"global"`
	Pages  map[string]SEOMetadata `json:"pages" validate:"required"`
}

// SEOMetadata is the head metadata of a page.
type SEOMetadata struct {
	Title         string   `json:"title" validate:"required"`
	Description   string   `json:"description" validate:"required"`
	Keywords      []string `json:"keywords,omitempty"`
	OGImage       string   `json:"ogImage,omitempty"`
	OGType        string   `json:"ogType,omitempty"`
	TwitterCard   string   `json:"twitterCard,omitempty"`
	TwitterHandle string   `json:"twitterHandle,omitempty"`
	CanonicalURL  string   `json:"canonicalUrl,omitempty" validate:"omitempty,url"`
}

// BrandingConfig groups colors, fonts and logo.
type BrandingConfig struct {
	// Colors maps a token (primary, secondary, accent, ...) to a CSS color.
	Colors map[string]string `json:"colors" validate:"required"`
	Fonts  FontConfig        `json:"fonts"`
	Logo   LogoConfig        `json:"logo"`
}

type FontConfig struct {
	Heading string `json:"heading" validate:"required"`
	Body    string `json:"body" validate:"required"`
	Mono    string `json:"mono,omitempty"`
}

type LogoConfig struct {
	Light  string `json:"light" validate:"required"`
	Dark   string `json:"dark,omitempty"`
	Alt    string `json:"alt" validate:"required"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// ContentConfig is the copy of the marketing sections.
type ContentConfig struct {
	Hero         HeroConfig        `json:"hero"`
	Features     []FeatureItem     `json:"features" validate:"dive"`
	Pricing      PricingConfig     `json:"pricing"`
	Testimonials []TestimonialItem `json:"testimonials" validate:"dive"`
	FAQ          []FAQItem         `json:"faq" validate:"dive"`
	CTA          CTAConfig         `json:"cta"`
	Footer       FooterConfig      `json:"footer"`
}

// Link is a labelled target used by buttons.
type Link struct {
	Text string `json:"text" validate:"required"`
	Href string `json:"href" validate:"required"`
	Icon string `json:"icon,omitempty"`
}

type HeroConfig struct {
	Title        string           `json:"title" validate:"required"`
	Subtitle     string           `json:"subtitle"`
	Description  string           `json:"description" validate:"required"`
	CTA          Link             `json:"cta"`
	SecondaryCTA *Link            `json:"secondaryCta,omitempty"`
	Images       *HeroImages      `json:"images,omitempty"`
	Stats        []HeroStat       `json:"stats,omitempty"`
	SocialProof  *HeroSocialProof `json:"socialProof,omitempty"`
}

type HeroImages struct {
	Hero       string `json:"hero,omitempty"`
	Background string `json:"background,omitempty"`
}

type HeroStat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type HeroSocialProof struct {
	Avatars []string `json:"avatars"`
	Text    string   `json:"text"`
}

// FeatureItem is a card of the features section.
type FeatureItem struct {
	ID          string `json:"id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Icon        string `json:"icon,omitempty"`
	Image       string `json:"image,omitempty"`
	Enabled     bool   `json:"enabled"`
}

type PricingConfig struct {
	Title    string        `json:"title"`
	Subtitle string        `json:"subtitle"`
	Plans    []PricingPlan `json:"plans" validate:"min=1,dive"`
}

// PricingPlan is a plan of the pricing section. Price is a pointer so an
// absent price can be told apart from a free plan.
type PricingPlan struct {
	ID          string   `json:"id" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Currency    string   `json:"currency"`
	Interval    string   `json:"interval,omitempty"`
	Features    []string `json:"features"`
	CTA         Link     `json:"cta"`
	Popular     bool     `json:"popular,omitempty"`
	Enabled     bool     `json:"enabled"`
}

type TestimonialItem struct {
	ID      string `json:"id" validate:"required"`
	Name    string `json:"name" validate:"required"`
	Role    string `json:"role"`
	Text    string `json:"text" validate:"required"`
	Avatar  string `json:"avatar,omitempty"`
	Rating  int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Enabled bool   `json:"enabled"`
}

type FAQItem struct {
	ID       string `json:"id" validate:"required"`
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
	Enabled  bool   `json:"enabled"`
}

type CTAConfig struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	CTA             Link   `json:"cta"`
	BackgroundImage string `json:"backgroundImage,omitempty"`
}

type FooterConfig struct {
	Tagline   string        `json:"tagline"`
	Copyright string        `json:"copyright"`
	Links     []FooterGroup `json:"links"`
	Social    *SocialLinks  `json:"social,omitempty"`
}

type FooterGroup struct {
	Title string       `json:"title"`
	Items []FooterLink `json:"items"`
}

type FooterLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

type SocialLinks struct {
	Twitter  string `json:"twitter,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Discord  string `json:"discord,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// PageConfig toggles a page and lists its sections.
type PageConfig struct {
	Enabled     bool            `json:"enabled"`
	Title       string          `json:"title,omitempty"`
	Description string          `json:"description,omitempty"`
	Sections    []SectionConfig `json:"sections,omitempty" validate:"dive"`
}

// SectionConfig places a component on a page. Sections without an order
// sort as order 0.
type SectionConfig struct {
	ID        string         `json:"id" validate:"required"`
	Component string         `json:"component" validate:"required"`
	Enabled   bool           `json:"enabled"`
	Order     *int           `json:"order,omitempty"`
	Props     map[string]any `json:"props,omitempty"`
}

// FeaturesConfig holds the product feature flags. Authentication, payments
// and email are mandatory blocks.
type FeaturesConfig struct {
	Authentication *AuthFeature      `json:"authentication" validate:"required"`
	Payments       *PaymentsFeature  `json:"payments" validate:"required"`
	Email          *EmailFeature     `json:"email" validate:"required"`
	Analytics      *AnalyticsFeature `json:"analytics,omitempty"`
	Blog           *Toggle           `json:"blog,omitempty"`
	Docs           *Toggle           `json:"docs,omitempty"`
}

type Toggle struct {
	Enabled bool `json:"enabled"`
}

type AuthFeature struct {
	Enabled   bool `json:"enabled"`
	Providers struct {
		Google    bool `json:"google"`
		GitHub    bool `json:"github"`
		MagicLink bool `json:"magicLink"`
	} `json:"providers"`
}

type PaymentsFeature struct {
	Enabled   bool `json:"enabled"`
	Providers struct {
		Stripe       bool `json:"stripe"`
		LemonSqueezy bool `json:"lemonSqueezy"`
	} `json:"providers"`
}

type EmailFeature struct {
	Enabled  bool   `json:"enabled"`
	Provider string `json:"provider" validate:"omitempty,oneof=mailgun sendgrid resend"`
}

type AnalyticsFeature struct {
	Enabled  bool   `json:"enabled"`
	Provider string `json:"provider,omitempty"`
}

// ProjectConfig is a portfolio entry.
type ProjectConfig struct {
	ID          string   `json:"id" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Image       string   `json:"image,omitempty"`
	URL         string   `json:"url,omitempty" validate:"omitempty,url"`
	GitHub      string   `json:"github,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Featured    bool     `json:"featured,omitempty"`
	Enabled     bool     `json:"enabled"`
}

// ProductConfig is a sellable product shown on the site.
type ProductConfig struct {
	ID                    string   `json:"id" validate:"required"`
	Name                  string   `json:"name" validate:"required"`
	Description           string   `json:"description"`
	Price                 *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Currency              string   `json:"currency,omitempty"`
	Image                 string   `json:"image,omitempty"`
	Features              []string `json:"features,omitempty"`
	CTA                   *Link    `json:"cta,omitempty"`
	StripeProductID       string   `json:"stripeProductId,omitempty"`
	LemonSqueezyProductID string   `json:"lemonSqueezyProductId,omitempty"`
	Featured              bool     `json:"featured,omitempty"`
	Enabled               bool     `json:"enabled"`
}
