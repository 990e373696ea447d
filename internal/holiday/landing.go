// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package holiday

import (
	"fmt"
	"strings"

	"shipfree/internal/models"
)

// BundleSKUID is the id of the computed bundle SKU.
const BundleSKUID = "sku_bundle_navidad"

// Hero headline variants.
const (
	HeadlineSalesAndLeads = "Productos Navideños Listos para Vender Hoy y Hacer Crecer tu Comunidad"
	HeadlineSales         = "Productos Navideños Listos para Vender Hoy"
	HeadlineLeads         = "Descarga Recursos Navideños para Crecer tu Negocio"
	headlineDefaultFmt    = "🎄 Cierra %d con productos que tu audiencia amará"
)

const (
	defaultPricingNotes  = "Pago seguro. Descarga inmediata. Garantía de 7 días si no has descargado."
	defaultLicenseAnswer = "Sí, todos los productos incluyen licencia de uso comercial. Puedes revenderlos, regalarlos o usarlos en tu negocio."
)

// goalMentionsSales and goalMentionsLeads are literal substring checks on
// the primary goal. Branch selection across the generators depends on them.
func goalMentionsSales(in models.GeneratorInput) bool {
	return strings.Contains(in.PrimaryGoal, "venta")
}

func goalMentionsLeads(in models.GeneratorInput) bool {
	return strings.Contains(in.PrimaryGoal, "lead")
}

// LandingSpec assembles the landing-page description for a normalized brief.
func LandingSpec(in models.GeneratorInput, opts Options) models.LandingSpec {
	opts = opts.Resolved()
	base := opts.BaseURL

	return models.LandingSpec{
		Brand: models.LandingBrand{
			Name:   in.BrandName,
			Tone:   firstNonEmpty(in.ToneVoice, DefaultTone),
			Locale: in.Locale,
		},
		Hero:         landingHero(in, opts),
		ValueProps:   landingValueProps(in),
		HowItWorks:   landingHowItWorks(in),
		Products:     landingProducts(in, base),
		PricingTable: landingPricingTable(in, base),
		FAQ:          landingFAQ(in),
		SocialProof: models.SocialProof{
			Testimonials: landingTestimonials(in),
		},
		Analytics: models.Analytics{
			Vercel:        true,
			FacebookPixel: false,
			Events:        []string{"view_content", "begin_checkout", "purchase"},
		},
		Legal: models.Legal{
			PrivacyURL: base + "/privacy-policy",
			TermsURL:   base + "/tos",
		},
	}
}

func landingHero(in models.GeneratorInput, opts Options) models.Hero {
	sales, leads := goalMentionsSales(in), goalMentionsLeads(in)

	var headline string
	switch {
	case sales && leads:
		headline = HeadlineSalesAndLeads
	case sales:
		headline = HeadlineSales
	case leads:
		headline = HeadlineLeads
	default:
		headline = fmt.Sprintf(headlineDefaultFmt, opts.Year)
	}

	label := "Descargar Ahora"
	if sales {
		label = "Ver Productos"
	}

	return models.Hero{
		Headline: headline,
		Subheadline: fmt.Sprintf("%d productos digitales diseñados para %s. Descarga inmediata, uso ilimitado.",
			len(in.ProductsToInclude), in.TargetAudience),
		PrimaryCTA: models.CTA{
			Label: label,
			Href:  opts.BaseURL + "?utm_source=hero#pricing",
			Note:  "checkout",
		},
		SecondaryCTA: &models.CTA{
			Label: "Probar Demo Gratis",
			Href:  opts.BaseURL + "?utm_source=hero#demo",
		},
	}
}

func landingValueProps(in models.GeneratorInput) []models.ValueProp {
	license := "flexible"
	if in.LegalNotes != "" {
		license = "especificada"
	}
	return []models.ValueProp{
		{Icon: "🎁", Title: "Descarga Inmediata", Desc: "Acceso instantáneo tras la compra. Sin esperas, sin complicaciones."},
		{Icon: "⚡", Title: "Listo para Usar", Desc: "Plantillas y contenidos 100% editables. Personaliza en minutos."},
		{Icon: "💰", Title: "Uso Comercial", Desc: "Revende, regala o usa en tu negocio. Licencia " + license + "."},
		{Icon: "🎯", Title: "Especializado", Desc: "Diseñado específicamente para " + in.TargetAudience + " con expertise real."},
	}
}

func landingHowItWorks(in models.GeneratorInput) []models.HowItWorksStep {
	pay := models.HowItWorksStep{
		Step:  "2",
		Title: "Regístrate",
		Desc:  "Déjanos tu email y recibe acceso inmediato.",
	}
	if goalMentionsSales(in) {
		pay.Title = "Paga Seguro"
		pay.Desc = fmt.Sprintf("Pago seguro con %s. %s aceptado.", in.SalesStack, in.Currency)
	}

	return []models.HowItWorksStep{
		{
			Step:  "1",
			Title: "Elige tu Producto",
			Desc:  fmt.Sprintf("Selecciona entre %d productos o compra el bundle completo.", len(in.ProductsToInclude)),
		},
		pay,
		{
			Step:  "3",
			Title: "Descarga y Usa",
			Desc:  "Accede a tu dashboard, descarga todo y comienza a crear de inmediato.",
		},
	}
}

// productBullets holds the marketing bullets per product; products without
// an entry fall back to their catalog deliverables.
var productBullets = map[models.ProductID][]string{
	models.ProductAdviento: {
		"24 retos diarios con versión fácil y avanzada",
		"3 días de demo gratuitos para probar",
		"Formato PDF + Notion editable",
	},
	models.ProductRecetario: {
		"20 recetas mexicanas para 6 personas",
		"Costos aproximados y alternativas saludables",
		"Diseño imprimible y digital",
	},
	models.ProductPlantillas: {
		"50 plantillas Canva: posts, stories y covers",
		"Guía de uso con mejores prácticas",
		"Espacios editables para logo y colores",
	},
	models.ProductGuiaVentas: {
		"Mini-playbook de 12 páginas accionables",
		"3 checklists + calendario de 10 días",
		"KPI cheat-sheet incluido",
	},
	models.ProductKitImprimible: {
		"20 páginas: etiquetas, tarjetas, juegos",
		"Listo para imprimir en casa",
		"Incluye bingo, sopa de letras y listas",
	},
	models.ProductTaller2026: {
		"Taller en vivo de 90 minutos",
		"Workbook digital + plantilla Notion",
		"Acceso a grabación por 30 días",
	},
}

// altPrice returns the price in the secondary display currency: USD next
// to MXN and MXN next to USD.
func altPrice(def models.ProductDefinition, currency models.Currency) *models.PriceMap {
	switch {
	case currency == models.CurrencyMXN && def.PriceSuggested.USD != 0:
		return &models.PriceMap{USD: def.PriceSuggested.USD}
	case currency == models.CurrencyUSD && def.PriceSuggested.MXN != 0:
		return &models.PriceMap{MXN: def.PriceSuggested.MXN}
	}
	return nil
}

func landingProducts(in models.GeneratorInput, base string) []models.Product {
	products := make([]models.Product, 0, len(in.ProductsToInclude))
	for _, id := range in.ProductsToInclude {
		def, _ := Lookup(id)

		bullets, ok := productBullets[id]
		if !ok {
			bullets = def.Deliverables
		}
		tags := []string{"navidad"}
		if def.Bundleable {
			tags = append(tags, "bundleable")
		}

		products = append(products, models.Product{
			ID:      id,
			Title:   def.Title,
			Bullets: append([]string(nil), bullets...),
			Price: models.ProductPrice{
				Currency: in.Currency,
				Value:    def.PriceSuggested.Get(in.Currency),
				Alt:      altPrice(def, in.Currency),
			},
			CTABuy: models.CTA{
				Label: "Comprar Ahora",
				Href:  fmt.Sprintf("%s/checkout?product=%s&utm_source=product_card", base, id),
			},
			CTATry: &models.CTA{
				Label: "Ver Demo",
				Href:  fmt.Sprintf("%s/demo/%s", base, id),
			},
			Tags: tags,
		})
	}
	return products
}

func landingPricingTable(in models.GeneratorInput, base string) models.PricingTable {
	skus := make([]models.SKU, 0, len(in.ProductsToInclude)+1)
	var bundleable []models.ProductID
	for _, id := range in.ProductsToInclude {
		def, _ := Lookup(id)
		skus = append(skus, models.SKU{
			ID:           "sku_" + string(id),
			Title:        def.Title,
			Price:        def.PriceSuggested,
			Deliverables: def.Deliverables,
			CTA:          fmt.Sprintf("%s/checkout?product=%s", base, id),
		})
		if def.Bundleable {
			bundleable = append(bundleable, id)
		}
	}

	if len(bundleable) >= 2 {
		skus = append(skus, models.SKU{
			ID:    BundleSKUID,
			Title: "🎁 Bundle Navidad Completo",
			Price: models.PriceMap{
				MXN: BundlePrice(bundleable, models.CurrencyMXN, DefaultBundleDiscount),
				USD: BundlePrice(bundleable, models.CurrencyUSD, DefaultBundleDiscount),
			},
			Includes: bundleable,
			CTA:      base + "/checkout?product=bundle",
		})
	}

	return models.PricingTable{
		SKUs:  skus,
		Notes: firstNonEmpty(in.LegalNotes, defaultPricingNotes),
	}
}

func landingFAQ(in models.GeneratorInput) []models.FAQ {
	var faq []models.FAQ
	if !goalMentionsSales(in) {
		faq = append(faq, models.FAQ{
			Q: "¿Es realmente gratis?",
			A: "Sí, algunos productos tienen versiones demo o acceso gratuito limitado. Regístrate con tu email para acceder.",
		})
	}
	return append(faq,
		models.FAQ{
			Q: "¿Cómo recibo los productos después de comprar?",
			A: fmt.Sprintf("Tras completar tu pago en %s, recibirás un email con acceso a tu dashboard. Ahí encontrarás todos tus productos listos para descargar.", in.SalesStack),
		},
		models.FAQ{
			Q: "¿Puedo usar estos productos comercialmente?",
			A: firstNonEmpty(in.LegalNotes, defaultLicenseAnswer),
		},
		models.FAQ{
			Q: "¿Los precios incluyen impuestos?",
			A: fmt.Sprintf("Los precios están en %s. Dependiendo de tu ubicación, pueden aplicar impuestos locales que se mostrarán en el checkout.", in.Currency),
		},
		models.FAQ{
			Q: "¿Hay garantía de devolución?",
			A: "Sí, garantía de 7 días sin preguntas si aún no has descargado los archivos. Contáctanos para procesar tu reembolso.",
		},
	)
}

func landingTestimonials(in models.GeneratorInput) []models.Testimonial {
	return []models.Testimonial{
		{
			Quote:  "Exactamente lo que necesitaba para cerrar el año con contenido de calidad. ¡Súper recomendado!",
			Author: "María G., Content Creator",
		},
		{
			Quote:  fmt.Sprintf("Los productos de %s me ahorraron semanas de trabajo. Calidad profesional lista para usar.", in.BrandName),
			Author: "Carlos R., Emprendedor",
		},
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
