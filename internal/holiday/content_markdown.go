// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package holiday

import (
	"fmt"
	"strings"

	"shipfree/internal/models"
)

// ContentPlanMarkdown renders the content plan as a single Markdown document.
func ContentPlanMarkdown(items []models.ContentPlanItem) string {
	var b strings.Builder
	b.WriteString("# Plan de Contenidos - Holiday MVP\n\n")
	b.WriteString("*Generado automáticamente por Holiday MVP Generator*\n\n")
	b.WriteString("---\n\n")

	for i, item := range items {
		fmt.Fprintf(&b, "## %d. %s\n\n", i+1, item.ProductTitle)

		b.WriteString("### Entregables\n\n")
		for _, d := range item.Deliverables {
			fmt.Fprintf(&b, "- %s\n", d)
		}
		b.WriteString("\n")

		b.WriteString("### Orden de Producción\n\n")
		for _, step := range item.ProductionOrder {
			b.WriteString(step + "\n")
		}
		b.WriteString("\n")

		b.WriteString("### Prompts de Generación\n\n")
		for _, p := range item.GenerationPrompts {
			fmt.Fprintf(&b, "#### %s\n\n", promptHeading(p.Name))
			fmt.Fprintf(&b, "```\n%s\n```\n\n", strings.TrimSpace(p.Template))
		}

		b.WriteString("### Criterios de Aceptación\n\n")
		for _, c := range item.AcceptanceCriteria {
			fmt.Fprintf(&b, "- ✅ %s\n", c)
		}
		b.WriteString("\n")

		b.WriteString("### Estructura de Archivos\n\n")
		fmt.Fprintf(&b, "```\n%s\n```\n\n", strings.Join(item.FileStructure, "\n"))

		b.WriteString("### Ejemplos de Muestra\n\n")
		for _, ex := range item.SampleExamples {
			fmt.Fprintf(&b, "```\n%s\n```\n\n", ex)
		}

		b.WriteString("---\n\n")
	}
	return b.String()
}

// promptHeading turns a prompt key into a heading: underscores become
// spaces and every letter that starts an ASCII word is upper-cased. Non-ASCII
// letters break words, so "diseño_pdf" becomes "DiseñO Pdf".
func promptHeading(key string) string {
	var b strings.Builder
	prevWord := false
	for _, r := range strings.ReplaceAll(key, "_", " ") {
		word := isASCIIWord(r)
		if word && !prevWord && r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		b.WriteRune(r)
		prevWord = word
	}
	return b.String()
}

func isASCIIWord(r rune) bool {
	return r == '_' || (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
