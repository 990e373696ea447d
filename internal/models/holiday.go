// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the plain records produced and consumed by the
// Holiday MVP generator. Records are built fresh per generation call and
// carry JSON tags matching the exported artifact format.
package models

// Currency is a supported pricing currency.
type Currency string

const (
	CurrencyMXN Currency = "MXN"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// Currencies lists the supported currencies in display order.
var Currencies = []Currency{CurrencyMXN, CurrencyUSD, CurrencyEUR}

// Valid reports whether c is one of the supported currencies.
func (c Currency) Valid() bool {
	switch c {
	case CurrencyMXN, CurrencyUSD, CurrencyEUR:
		return true
	}
	return false
}

// Locale is a supported content locale.
type Locale string

const (
	LocaleMX Locale = "es-MX"
	LocaleES Locale = "es-ES"
	LocaleUS Locale = "en-US"
)

// Locales lists the supported locales in display order.
var Locales = []Locale{LocaleMX, LocaleES, LocaleUS}

// Valid reports whether l is one of the supported locales.
func (l Locale) Valid() bool {
	switch l {
	case LocaleMX, LocaleES, LocaleUS:
		return true
	}
	return false
}

// ProductID identifies an entry of the product catalog.
type ProductID string

const (
	ProductAdviento      ProductID = "adviento"
	ProductRecetario     ProductID = "recetario"
	ProductPlantillas    ProductID = "plantillas"
	ProductGuiaVentas    ProductID = "guia_ventas"
	ProductKitImprimible ProductID = "kit_imprimible"
	ProductTaller2026    ProductID = "taller_2026"
)

// Priority ranks a distribution action.
type Priority string

const (
	PriorityAlta  Priority = "alta"
	PriorityMedia Priority = "media"
	PriorityBaja  Priority = "baja"
)

// Priorities lists the priority tiers from highest to lowest.
var Priorities = []Priority{PriorityAlta, PriorityMedia, PriorityBaja}

// PriceMap holds a price per currency. A zero entry means the price is not
// defined for that currency and is omitted from JSON.
type PriceMap struct {
	MXN int `json:"MXN,omitempty"`
	USD int `json:"USD,omitempty"`
	EUR int `json:"EUR,omitempty"`
}

// Get returns the price for c, or 0 when it is not defined.
func (p PriceMap) Get(c Currency) int {
	switch c {
	case CurrencyMXN:
		return p.MXN
	case CurrencyUSD:
		return p.USD
	case CurrencyEUR:
		return p.EUR
	}
	return 0
}

// IsZero reports whether no currency has a price.
func (p PriceMap) IsZero() bool {
	return p.MXN == 0 && p.USD == 0 && p.EUR == 0
}

// ProductDefinition is a static catalog entry.
type ProductDefinition struct {
	ID             ProductID `json:"id"`
	Title          string    `json:"title"`
	Deliverables   []string  `json:"deliverables"`
	PriceSuggested PriceMap  `json:"price_suggested"`
	Bundleable     bool      `json:"bundleable"`
}

// GeneratorInput is the brief the generator works from. Zero-valued fields
// are treated as absent by the normalizer; a nil Channels slice is absent
// while an empty non-nil slice is an explicit empty list.
type GeneratorInput struct {
	BrandName         string      `json:"brand_name" yaml:"brand_name"`
	TargetAudience    string      `json:"target_audience" yaml:"target_audience"`
	ToneVoice         string      `json:"tone_voice" yaml:"tone_voice"`
	PrimaryGoal       string      `json:"primary_goal" yaml:"primary_goal"`
	Currency          Currency    `json:"currency" yaml:"currency"`
	Locale            Locale      `json:"locale" yaml:"locale"`
	SalesStack        string      `json:"sales_stack" yaml:"sales_stack"`
	EmailStack        string      `json:"email_stack" yaml:"email_stack"`
	Channels          []string    `json:"channels" yaml:"channels"`
	ProductsToInclude []ProductID `json:"products_to_include" yaml:"products_to_include"`
	BrandConstraints  string      `json:"brand_constraints,omitempty" yaml:"brand_constraints,omitempty"`
	LegalNotes        string      `json:"legal_notes,omitempty" yaml:"legal_notes,omitempty"`
}

// GeneratorOutput aggregates every artifact of a generation run.
type GeneratorOutput struct {
	LandingSpec   LandingSpec       `json:"landing_spec"`
	ContentPlan   []ContentPlanItem `json:"content_plan"`
	ExecutionPlan ExecutionPlan     `json:"execution_plan"`
	Assumptions   []string          `json:"assumptions"`
}
