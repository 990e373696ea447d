// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package holiday implements the Holiday MVP generator. From a short brief it
// builds a landing-page spec, a content production plan and a weekend
// execution plan by selecting among hand-written templates, then exports
// them as JSON and Markdown. Every function is pure and deterministic for a
// given input and Options.
package holiday

import (
	"math"

	"shipfree/internal/models"
)

// catalogOrder fixes the iteration order of the catalog.
var catalogOrder = []models.ProductID{
	models.ProductAdviento,
	models.ProductRecetario,
	models.ProductPlantillas,
	models.ProductGuiaVentas,
	models.ProductKitImprimible,
	models.ProductTaller2026,
}

// catalog is read-only after package initialization.
var catalog = map[models.ProductID]models.ProductDefinition{
	models.ProductAdviento: {
		ID:             models.ProductAdviento,
		Title:          "Calendario de Adviento Digital",
		Deliverables:   []string{"PDF/Notion con 24 días (3 días abiertos de demo)"},
		PriceSuggested: models.PriceMap{MXN: 129, USD: 7},
		Bundleable:     true,
	},
	models.ProductRecetario: {
		ID:             models.ProductRecetario,
		Title:          "Recetario Navideño (ebook)",
		Deliverables:   []string{"Ebook 20 recetas MX (costos aprox, swaps saludables)"},
		PriceSuggested: models.PriceMap{MXN: 159, USD: 9},
		Bundleable:     true,
	},
	models.ProductPlantillas: {
		ID:    models.ProductPlantillas,
		Title: "Pack de Plantillas Navideñas (Canva)",
		Deliverables: []string{
			"50 plantillas: 20 post 1:1, 20 stories 9:16, 10 covers reels + guía",
		},
		PriceSuggested: models.PriceMap{MXN: 219, USD: 12},
		Bundleable:     true,
	},
	models.ProductGuiaVentas: {
		ID:             models.ProductGuiaVentas,
		Title:          "Guía: Cerrar el Año con Más Ventas",
		Deliverables:   []string{"Mini-playbook 12 págs + 3 checklists + calendario 10 días"},
		PriceSuggested: models.PriceMap{MXN: 279, USD: 15},
		Bundleable:     true,
	},
	models.ProductKitImprimible: {
		ID:             models.ProductKitImprimible,
		Title:          "Kit Imprimible de Navidad",
		Deliverables:   []string{"PDF 20 págs: etiquetas, tarjetas, bingo/sopa, listas"},
		PriceSuggested: models.PriceMap{MXN: 109, USD: 6},
		Bundleable:     true,
	},
	models.ProductTaller2026: {
		ID:             models.ProductTaller2026,
		Title:          "Taller en Vivo: Planea tu 2026 con Propósito",
		Deliverables:   []string{"Temario 90 min, workbook simple, plantilla Notion metas"},
		PriceSuggested: models.PriceMap{MXN: 349, USD: 19},
		Bundleable:     false,
	},
}

// DefaultBundleDiscount is the bundle discount in percent.
const DefaultBundleDiscount = 20

// ProductIDs returns every catalog id in catalog order.
func ProductIDs() []models.ProductID {
	out := make([]models.ProductID, len(catalogOrder))
	copy(out, catalogOrder)
	return out
}

// IsValidProductID reports whether id names a catalog entry.
func IsValidProductID(id models.ProductID) bool {
	_, ok := catalog[id]
	return ok
}

// Lookup returns the catalog entry for id. The returned definition shares
// no slices with the catalog.
func Lookup(id models.ProductID) (models.ProductDefinition, bool) {
	def, ok := catalog[id]
	if !ok {
		return models.ProductDefinition{}, false
	}
	def.Deliverables = append([]string(nil), def.Deliverables...)
	return def, true
}

// BundleableProducts returns the bundle-eligible catalog entries in catalog order.
func BundleableProducts() []models.ProductDefinition {
	var out []models.ProductDefinition
	for _, id := range catalogOrder {
		if def, _ := Lookup(id); def.Bundleable {
			out = append(out, def)
		}
	}
	return out
}

// BundlePrice sums the catalog prices of ids in currency (missing prices
// count as zero) and applies discountPercent, rounding to the nearest unit.
func BundlePrice(ids []models.ProductID, currency models.Currency, discountPercent int) int {
	total := 0
	for _, id := range ids {
		total += catalog[id].PriceSuggested.Get(currency)
	}
	return round(float64(total) * (1 - float64(discountPercent)/100))
}

// round rounds half away from zero; every rounded quantity here is positive.
func round(x float64) int {
	return int(math.Round(x))
}
