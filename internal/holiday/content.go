// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package holiday

import (
	"strings"
	"text/template"

	"shipfree/internal/models"
)

// productContent is the product-specific part of a content plan item.
type productContent struct {
	Deliverables       []string
	ProductionOrder    []string
	Prompts            []*template.Template
	AcceptanceCriteria []string
	FileStructure      []string
	SampleExamples     []string
}

// contentGenerators dispatches each catalog product to its hand-authored
// production plan. The key set equals the catalog's.
var contentGenerators = map[models.ProductID]func() productContent{
	models.ProductAdviento:      advientoContent,
	models.ProductRecetario:     recetarioContent,
	models.ProductPlantillas:    plantillasContent,
	models.ProductGuiaVentas:    guiaVentasContent,
	models.ProductKitImprimible: kitImprimibleContent,
	models.ProductTaller2026:    taller2026Content,
}

// promptData is the brief as seen by prompt templates.
type promptData struct {
	Audience    string
	Tone        string
	Goal        string
	Currency    string
	Locale      string
	Channels    string
	SalesStack  string
	EmailStack  string
	Constraints string
}

func newPromptData(in models.GeneratorInput) promptData {
	return promptData{
		Audience:    in.TargetAudience,
		Tone:        in.ToneVoice,
		Goal:        in.PrimaryGoal,
		Currency:    string(in.Currency),
		Locale:      string(in.Locale),
		Channels:    strings.Join(in.Channels, ", "),
		SalesStack:  in.SalesStack,
		EmailStack:  in.EmailStack,
		Constraints: in.BrandConstraints,
	}
}

// prompt parses a named generation prompt. Templates are static, so a parse
// failure is a programming error.
func prompt(name, text string) *template.Template {
	return template.Must(template.New(name).Option("missingkey=error").Parse(text))
}

// ContentPlan builds one production plan per selected product, in input order.
func ContentPlan(in models.GeneratorInput) []models.ContentPlanItem {
	data := newPromptData(in)
	items := make([]models.ContentPlanItem, 0, len(in.ProductsToInclude))
	for _, id := range in.ProductsToInclude {
		def, _ := Lookup(id)
		c := contentGenerators[id]()

		prompts := make(models.PromptSet, 0, len(c.Prompts))
		for _, t := range c.Prompts {
			var b strings.Builder
			if err := t.Execute(&b, data); err != nil {
				panic("holiday: render prompt " + t.Name() + ": " + err.Error())
			}
			prompts = append(prompts, models.NamedPrompt{Name: t.Name(), Template: b.String()})
		}

		items = append(items, models.ContentPlanItem{
			ProductID:          id,
			ProductTitle:       def.Title,
			Deliverables:       c.Deliverables,
			ProductionOrder:    c.ProductionOrder,
			GenerationPrompts:  prompts,
			AcceptanceCriteria: c.AcceptanceCriteria,
			FileStructure:      c.FileStructure,
			SampleExamples:     c.SampleExamples,
		})
	}
	return items
}
