// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package holiday

import (
	"fmt"
	"strings"

	"shipfree/internal/models"
)

// Defaults applied to optional brief fields.
const (
	DefaultAudience   = "emprendedores y creadores digitales"
	DefaultTone       = "profesional y cercano"
	DefaultGoal       = "pre-ventas + captar 100 leads"
	DefaultCurrency   = models.CurrencyMXN
	DefaultLocale     = models.LocaleMX
	DefaultSalesStack = "Gumroad"
	DefaultEmailStack = "ConvertKit"
)

// Validation messages returned by Normalize.
const (
	ErrMsgBrandRequired    = "brand_name es requerido"
	ErrMsgProductsRequired = "Debe seleccionar al menos 1 producto"
)

// Assumption notes recorded when optional fields are absent.
const (
	AssumptionBrandConstraints = "No se especificaron constraints de marca. Usando paleta navideña estándar (rojo #C41E3A, verde #0F5C3C, dorado #FFD700)."
	AssumptionLegalNotes       = "No se especificaron notas legales. Usando política estándar: garantía 7 días si no descargado, uso comercial permitido."
	AssumptionChannels         = "No se especificaron canales de distribución. Usando X, IG, LinkedIn por defecto."
)

// DefaultChannels returns the channel list used when the brief has none.
func DefaultChannels() []string {
	return []string{"X", "IG", "LinkedIn"}
}

// ValidationError reports every problem found in a brief.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "invalid generator input: " + strings.Join(e.Errors, "; ")
}

// Normalize validates in and fills every absent optional field with its
// default. It returns the completed brief plus one assumption note per
// default applied. in is never modified; the result shares no slices with it.
func Normalize(in models.GeneratorInput) (models.GeneratorInput, []string, error) {
	var errs []string
	if strings.TrimSpace(in.BrandName) == "" {
		errs = append(errs, ErrMsgBrandRequired)
	}
	if len(in.ProductsToInclude) == 0 {
		errs = append(errs, ErrMsgProductsRequired)
	}
	for _, id := range in.ProductsToInclude {
		if !IsValidProductID(id) {
			errs = append(errs, fmt.Sprintf("Producto desconocido: %q", id))
		}
	}
	if in.Currency != "" && !in.Currency.Valid() {
		errs = append(errs, fmt.Sprintf("Moneda no soportada: %q", in.Currency))
	}
	if in.Locale != "" && !in.Locale.Valid() {
		errs = append(errs, fmt.Sprintf("Locale no soportado: %q", in.Locale))
	}
	if len(errs) > 0 {
		return models.GeneratorInput{}, nil, &ValidationError{Errors: errs}
	}

	out := in
	out.ProductsToInclude = append([]models.ProductID(nil), in.ProductsToInclude...)
	out.Channels = append([]string(nil), in.Channels...)

	var assumptions []string
	fill := func(field *string, def, label string) {
		if *field == "" {
			*field = def
			assumptions = append(assumptions, fmt.Sprintf("No se especificó %s. Usando %q.", label, def))
		}
	}
	fill(&out.TargetAudience, DefaultAudience, "audiencia objetivo")
	fill(&out.ToneVoice, DefaultTone, "tono de voz")
	fill(&out.PrimaryGoal, DefaultGoal, "objetivo principal")
	fill(&out.SalesStack, DefaultSalesStack, "plataforma de ventas")
	fill(&out.EmailStack, DefaultEmailStack, "plataforma de email")

	if out.Currency == "" {
		out.Currency = DefaultCurrency
		assumptions = append(assumptions, fmt.Sprintf("No se especificó moneda. Usando %s.", DefaultCurrency))
	}
	if out.Locale == "" {
		out.Locale = DefaultLocale
		assumptions = append(assumptions, fmt.Sprintf("No se especificó locale. Usando %s.", DefaultLocale))
	}
	if out.BrandConstraints == "" {
		assumptions = append(assumptions, AssumptionBrandConstraints)
	}
	if out.LegalNotes == "" {
		assumptions = append(assumptions, AssumptionLegalNotes)
	}
	if len(out.Channels) == 0 {
		out.Channels = DefaultChannels()
		assumptions = append(assumptions, AssumptionChannels)
	}

	return out, assumptions, nil
}
