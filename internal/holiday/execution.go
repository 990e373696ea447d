// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package holiday

import (
	"fmt"
	"strings"

	"shipfree/internal/models"
)

// Variants of the minimal A/B test on the hero headline.
const (
	abVariantA  = "Productos Navideños Listos para Vender Hoy"
	abVariantBF = "🎄 Cierra %d con Productos que Tu Audiencia Amará"
)

// isHighVolume is a literal substring check, not a parsed quantity.
func isHighVolume(in models.GeneratorInput) bool {
	return strings.Contains(in.PrimaryGoal, "200") || strings.Contains(in.PrimaryGoal, "100")
}

// baseMetrics are the success targets the thresholds scale from.
func baseMetrics(in models.GeneratorInput) models.Metrics {
	m := models.Metrics{Visits: 200, Leads: 50, Sales: 5}
	if isHighVolume(in) {
		m.Visits, m.Leads = 500, 200
	}
	if goalMentionsSales(in) {
		m.Sales = 10
	}
	return m
}

// ExecutionPlan builds the weekend launch plan for a normalized brief.
func ExecutionPlan(in models.GeneratorInput, opts Options) models.ExecutionPlan {
	opts = opts.Resolved()
	return models.ExecutionPlan{
		Objective:            executionObjective(in),
		SuccessMetrics:       baseMetrics(in),
		SaturdaySchedule:     saturdaySchedule(in),
		SundaySchedule:       sundaySchedule(in),
		Roles:                executionRoles(),
		PublicationChecklist: publicationChecklist(in),
		DistributionPlan:     DistributionPlan(in.Channels),
		Experiments:          experiments(in, opts),
	}
}

func executionObjective(in models.GeneratorInput) string {
	n := len(in.ProductsToInclude)
	sales, leads := goalMentionsSales(in), goalMentionsLeads(in)
	switch {
	case sales && leads:
		return fmt.Sprintf("Lanzar %d productos digitales navideños con landing funcional, captar %s durante el fin de semana. Validar tracción antes de inversión mayor en ads.", n, in.PrimaryGoal)
	case sales:
		return fmt.Sprintf("Validar ventas de %d productos navideños con MVP ligero. Objetivo: %s orgánico + comunidades en 48-72h.", n, in.PrimaryGoal)
	default:
		return fmt.Sprintf("Captar %s con oferta de valor clara (%d productos) y validar interés antes de construir producto completo.", in.PrimaryGoal, n)
	}
}

func saturdaySchedule(in models.GeneratorInput) []models.ScheduleBlock {
	return []models.ScheduleBlock{
		{
			Time:     "09:00 - 11:00",
			Duration: "2h",
			Tasks: []string{
				"Finalizar oferta y pricing de productos",
				"Redactar copys principales (hero, value props, FAQ)",
				fmt.Sprintf("Validar integración %s + %s", in.SalesStack, in.EmailStack),
				"Crear 3 prototipos de productos (demo/preview)",
			},
			Owner: "PM + Content",
		},
		{
			Time:     "11:00 - 13:00",
			Duration: "2h",
			Tasks: []string{
				"Implementar landing page (componentes base)",
				"Integrar pricing table con CTAs funcionales",
				"Configurar analytics (Vercel/Plausible + eventos)",
				"Setup checkout flow básico",
			},
			Owner: "Frontend",
		},
		{
			Time:     "13:00 - 14:00",
			Duration: "1h",
			Tasks:    []string{"🍽️ Break + almuerzo", "Review de progreso (quick standup)"},
			Owner:    "Todos",
		},
		{
			Time:     "14:00 - 16:00",
			Duration: "2h",
			Tasks: []string{
				"Diseñar creativos para redes (5 posts, 3 stories)",
				"Redactar 10 captions para " + strings.Join(in.Channels, ", "),
				"Crear video/reel corto de 30 seg (opcional)",
				"Preparar assets para distribución",
			},
			Owner: "Content + Design",
		},
		{
			Time:     "16:00 - 18:00",
			Duration: "2h",
			Tasks: []string{
				"Completar integración de productos",
				"Testing end-to-end (checkout + email confirmación)",
				"Optimizar mobile (responsive check)",
				"Deploy a producción (staging primero)",
			},
			Owner: "Frontend + QA",
		},
		{
			Time:     "18:00 - 19:00",
			Duration: "1h",
			Tasks: []string{
				"QA final: todos los CTAs funcionando",
				"Verificar UTMs en todos los enlaces",
				"Agendar posts para domingo (mañana)",
				"Retro del día + ajustes para domingo",
			},
			Owner: "Todos",
		},
	}
}

func sundaySchedule(in models.GeneratorInput) []models.ScheduleBlock {
	return []models.ScheduleBlock{
		{
			Time:     "09:00 - 11:00",
			Duration: "2h",
			Tasks: []string{
				"Redactar playbook/guía (si aplica a productos)",
				"Completar bundle offer con descuento",
				"Crear FAQ extendido basado en objeciones comunes",
				"Preparar email de bienvenida post-compra",
			},
			Owner: "Content + PM",
		},
		{
			Time:     "11:00 - 13:00",
			Duration: "2h",
			Tasks: []string{
				"Distribución FASE 1: Posts orgánicos en redes",
				"Publicar en " + strings.Join(in.Channels, ", "),
				"Enviar 10 DMs personalizados a early adopters",
				"Post en 2 comunidades relevantes (no spam)",
			},
			Owner: "Marketing Ops",
		},
		{
			Time:     "13:00 - 14:00",
			Duration: "1h",
			Tasks:    []string{"🍽️ Break + almuerzo", "Monitoreo de métricas tempranas"},
			Owner:    "Todos",
		},
		{
			Time:     "14:00 - 16:00",
			Duration: "2h",
			Tasks: []string{
				"Distribución FASE 2: Engagement activo",
				"Responder comentarios y DMs en tiempo real",
				"Repostear testimonios tempranos (si hay)",
				"Ajustar copys según feedback inicial",
			},
			Owner: "Marketing Ops + Content",
		},
		{
			Time:     "16:00 - 18:00",
			Duration: "2h",
			Tasks: []string{
				"Análisis de métricas (visits, leads, sales)",
				"Identificar bottlenecks (dónde se cae la gente)",
				"Implementar ajustes rápidos (A/B headline si aplica)",
				"Preparar assets para semana siguiente",
			},
			Owner: "PM + Marketing Ops",
		},
		{
			Time:     "18:00 - 19:00",
			Duration: "1h",
			Tasks: []string{
				"Retro del fin de semana: qué funcionó, qué no",
				"Decisión GO/MAYBE/KILL según métricas",
				"Planear siguientes pasos (semana 1 post-launch)",
				"Documentar aprendizajes clave",
			},
			Owner: "Todos",
		},
	}
}

func executionRoles() []string {
	return []string{
		"**PM (Product Manager)**: Define oferta, pricing, coordina equipo, toma decisión GO/KILL",
		"**Content**: Redacta copys, crea creativos, genera contenido de productos",
		"**Frontend**: Implementa landing, integra checkout, deploy y testing técnico",
		"**Marketing Ops**: Distribuye contenido, gestiona canales, analiza métricas",
		"**Nota**: Puede ser 1 persona haciendo todos los roles (solopreneur) o equipo pequeño",
	}
}

func publicationChecklist(in models.GeneratorInput) []string {
	return []string{
		"☐ Dominio configurado y SSL activo",
		"☐ Landing page deployada en producción (Vercel/Netlify)",
		fmt.Sprintf("☐ Checkout %s funcional en mobile y desktop", in.SalesStack),
		fmt.Sprintf("☐ Email de confirmación %s configurado", in.EmailStack),
		"☐ Analytics instalado (Vercel Analytics / Plausible) con eventos custom",
		"☐ Todos los CTAs tienen UTMs correctos (?utm_source=X&utm_medium=Y)",
		"☐ Links de descarga/entrega preparados (Gumroad/Notion/Drive)",
		"☐ FAQ completo con respuestas a objeciones",
		"☐ Políticas de privacidad y términos enlazados",
		"☐ 3 demos/previews de productos accesibles sin pago",
		"☐ Creativos para redes agendados/listos (5 posts, 3 stories)",
		"☐ Lista de 10 contactos para outreach directo preparada",
		"☐ Backup de toda la configuración (env vars, keys, accesos)",
	}
}

func experiments(in models.GeneratorInput, opts Options) models.ExperimentConfig {
	base := baseMetrics(in)
	return models.ExperimentConfig{
		Thresholds: models.Thresholds{
			Go: models.Metrics{
				Visits: round(float64(base.Visits) * 1.5),
				Leads:  round(float64(base.Leads) * 1.5),
				Sales:  base.Sales * 2,
			},
			Maybe: base,
			Kill: models.Metrics{
				Visits: round(float64(base.Visits) * 0.5),
				Leads:  round(float64(base.Leads) * 0.5),
				Sales:  round(float64(base.Sales) * 0.3),
			},
		},
		ABTest: models.ABTest{
			Variable: "Headline Hero",
			VariantA: abVariantA,
			VariantB: fmt.Sprintf(abVariantBF, opts.Year),
			Metric:   "CTR a pricing section",
		},
	}
}
