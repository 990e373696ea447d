// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package holiday

import "shipfree/internal/models"

// Generate normalizes the brief and runs the three generators on it.
// The only error it returns is a *ValidationError.
func Generate(in models.GeneratorInput, opts Options) (*models.GeneratorOutput, error) {
	brief, assumptions, err := Normalize(in)
	if err != nil {
		return nil, err
	}
	opts = opts.Resolved()

	if assumptions == nil {
		assumptions = []string{}
	}
	return &models.GeneratorOutput{
		LandingSpec:   LandingSpec(brief, opts),
		ContentPlan:   ContentPlan(brief),
		ExecutionPlan: ExecutionPlan(brief, opts),
		Assumptions:   assumptions,
	}, nil
}

// QuickBrief is the brief used by QuickGenerate.
func QuickBrief(brand string, products []models.ProductID) models.GeneratorInput {
	return models.GeneratorInput{
		BrandName:         brand,
		TargetAudience:    DefaultAudience,
		ToneVoice:         "profesional y festivo",
		PrimaryGoal:       "pre-ventas + 100 leads",
		Currency:          DefaultCurrency,
		Locale:            DefaultLocale,
		SalesStack:        DefaultSalesStack,
		EmailStack:        DefaultEmailStack,
		Channels:          DefaultChannels(),
		ProductsToInclude: products,
	}
}

// QuickGenerate runs Generate on a quick-start brief built from a brand name
// and a product selection.
func QuickGenerate(brand string, products []models.ProductID, opts Options) (*models.GeneratorOutput, error) {
	return Generate(QuickBrief(brand, products), opts)
}
