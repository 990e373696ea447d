// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package holiday

import (
	"fmt"
	"strings"

	"shipfree/internal/models"
)

// ExecutionPlanMarkdown renders the execution plan as Markdown.
func ExecutionPlanMarkdown(plan models.ExecutionPlan) string {
	var b strings.Builder
	b.WriteString("# Plan de Ejecución - Fin de Semana Holiday MVP\n\n")
	b.WriteString("*Generado automáticamente por Holiday MVP Generator*\n\n")
	b.WriteString("---\n\n")

	b.WriteString("## 🎯 Objetivo del Fin de Semana\n\n")
	b.WriteString(plan.Objective + "\n\n")

	m := plan.SuccessMetrics
	b.WriteString("### Definición de Éxito (48-72h)\n\n")
	b.WriteString("| Métrica | Objetivo |\n")
	b.WriteString("|---------|----------|\n")
	fmt.Fprintf(&b, "| Visitas | %d+ |\n", m.Visits)
	fmt.Fprintf(&b, "| Leads | %d+ |\n", m.Leads)
	fmt.Fprintf(&b, "| Ventas | %d+ |\n\n", m.Sales)

	b.WriteString("## 📅 Cronograma Sábado\n\n")
	writeSchedule(&b, plan.SaturdaySchedule)
	b.WriteString("## 📅 Cronograma Domingo\n\n")
	writeSchedule(&b, plan.SundaySchedule)

	b.WriteString("## 👥 Roles y Responsabilidades\n\n")
	for _, role := range plan.Roles {
		b.WriteString(role + "\n\n")
	}

	b.WriteString("## ✅ Checklist de Publicación\n\n")
	b.WriteString("Verifica TODOS estos puntos antes de distribuir:\n\n")
	for _, item := range plan.PublicationChecklist {
		b.WriteString(item + "\n")
	}
	b.WriteString("\n")

	b.WriteString("## 📢 Plan de Distribución (2 horas)\n\n")
	b.WriteString("### Acciones por Canal\n\n")
	for _, p := range models.Priorities {
		actions := plan.ActionsByPriority(p)
		if len(actions) == 0 {
			continue
		}
		fmt.Fprintf(&b, "#### Prioridad %s\n\n", capitalize(string(p)))
		for _, a := range actions {
			fmt.Fprintf(&b, "**%s**\n", a.Channel)
			fmt.Fprintf(&b, "- Acción: %s\n", a.Action)
			fmt.Fprintf(&b, "- Formato: %s\n\n", a.Format)
		}
	}

	t := plan.Experiments.Thresholds
	b.WriteString("## 📊 Métricas & Experimentos\n\n")
	b.WriteString("### Umbrales de Decisión (72h post-launch)\n\n")
	b.WriteString("| Escenario | Visitas | Leads | Ventas | Decisión |\n")
	b.WriteString("|-----------|---------|-------|--------|----------|\n")
	fmt.Fprintf(&b, "| 🟢 GO | %d+ | %d+ | %d+ | Invertir en ads, escalar |\n", t.Go.Visits, t.Go.Leads, t.Go.Sales)
	fmt.Fprintf(&b, "| 🟡 MAYBE | %d+ | %d+ | %d+ | Iterar copys, probar nuevos canales |\n", t.Maybe.Visits, t.Maybe.Leads, t.Maybe.Sales)
	fmt.Fprintf(&b, "| 🔴 KILL | <%d | <%d | <%d | Pivotar oferta o audiencia |\n\n", t.Kill.Visits, t.Kill.Leads, t.Kill.Sales)

	ab := plan.Experiments.ABTest
	b.WriteString("### Experimento A/B Mínimo\n\n")
	fmt.Fprintf(&b, "**Variable:** %s\n\n", ab.Variable)
	fmt.Fprintf(&b, "- **Variante A:** %s\n", ab.VariantA)
	fmt.Fprintf(&b, "- **Variante B:** %s\n", ab.VariantB)
	fmt.Fprintf(&b, "- **Métrica:** %s\n\n", ab.Metric)
	b.WriteString("**Implementación:** Cambiar headline a las 24h si variante A tiene <2% CTR.\n\n")

	b.WriteString("---\n\n")
	b.WriteString("**Próximos pasos:** Documentar aprendizajes, iterar según feedback, preparar semana 1 post-launch.\n")
	return b.String()
}

func writeSchedule(b *strings.Builder, blocks []models.ScheduleBlock) {
	for _, block := range blocks {
		fmt.Fprintf(b, "### %s (%s) — %s\n\n", block.Time, block.Duration, block.Owner)
		for _, task := range block.Tasks {
			fmt.Fprintf(b, "- %s\n", task)
		}
		b.WriteString("\n")
	}
}

// capitalize upper-cases the first ASCII letter of s.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
