// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// CTA is a call-to-action link.
type CTA struct {
	Label string `json:"label"`
	Href  string `json:"href"`
	Note  string `json:"note,omitempty"`
}

// LandingBrand identifies the brand a landing page is written for.
type LandingBrand struct {
	Name   string `json:"name"`
	Tone   string `json:"tone"`
	Locale Locale `json:"locale"`
}

// Hero is the top block of the landing page.
type Hero struct {
	Headline     string `json:"headline"`
	Subheadline  string `json:"subheadline"`
	PrimaryCTA   CTA    `json:"primary_cta"`
	SecondaryCTA *CTA   `json:"secondary_cta,omitempty"`
}

// ValueProp is a single value proposition card.
type ValueProp struct {
	Icon  string `json:"icon"`
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

// HowItWorksStep is one numbered step of the "how it works" section.
type HowItWorksStep struct {
	Step  string `json:"step"`
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

// ProductPrice is the displayed price of a product card. Alt carries the
// price in a secondary currency when one applies.
type ProductPrice struct {
	Currency Currency  `json:"currency"`
	Value    int       `json:"value"`
	Alt      *PriceMap `json:"alt,omitempty"`
}

// Product is a product card on the landing page.
type Product struct {
	ID      ProductID    `json:"id"`
	Title   string       `json:"title"`
	Bullets []string     `json:"bullets"`
	Price   ProductPrice `json:"price"`
	CTABuy  CTA          `json:"cta_buy"`
	CTATry  *CTA         `json:"cta_try,omitempty"`
	Tags    []string     `json:"tags"`
}

// SKU is a purchasable line of the pricing table.
type SKU struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Price        PriceMap    `json:"price"`
	Deliverables []string    `json:"deliverables,omitempty"`
	Includes     []ProductID `json:"includes,omitempty"`
	CTA          string      `json:"cta"`
}

// PricingTable lists every SKU plus a footnote.
type PricingTable struct {
	SKUs  []SKU  `json:"skus"`
	Notes string `json:"notes"`
}

// FAQ is a question/answer pair.
type FAQ struct {
	Q string `json:"q"`
	A string `json:"a"`
}

// Testimonial is a quote shown as social proof.
type Testimonial struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
}

// SocialProof groups the testimonials block.
type SocialProof struct {
	Testimonials []Testimonial `json:"testimonials"`
}

// Analytics toggles tracking integrations and the events to emit.
type Analytics struct {
	Vercel        bool     `json:"vercel"`
	FacebookPixel bool     `json:"facebook_pixel"`
	Events        []string `json:"events"`
}

// Legal holds links to the legal pages.
type Legal struct {
	PrivacyURL string `json:"privacy_url"`
	TermsURL   string `json:"terms_url"`
}

// LandingSpec declaratively describes a marketing landing page.
type LandingSpec struct {
	Brand        LandingBrand     `json:"brand"`
	Hero         Hero             `json:"hero"`
	ValueProps   []ValueProp      `json:"value_props"`
	HowItWorks   []HowItWorksStep `json:"how_it_works"`
	Products     []Product        `json:"products"`
	PricingTable PricingTable     `json:"pricing_table"`
	FAQ          []FAQ            `json:"faq"`
	SocialProof  SocialProof      `json:"social_proof"`
	Analytics    Analytics        `json:"analytics"`
	Legal        Legal            `json:"legal"`
}

// HasSKU reports whether the pricing table contains a SKU with the given id.
func (l *LandingSpec) HasSKU(id string) bool {
	for _, s := range l.PricingTable.SKUs {
		if s.ID == id {
			return true
		}
	}
	return false
}
